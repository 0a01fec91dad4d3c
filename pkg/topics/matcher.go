package topics

import "strings"

// MatchCount returns the number of distinct definition keywords that
// occur anywhere in text, case-insensitive.
//
// Matching is plain substring containment: a keyword hits even
// mid-word ("agent" matches "agentic"). No word boundaries, no
// stemming, no synonyms. The trade-off favors recall over precision
// for short social posts.
func MatchCount(text string, def Definition) int {
	lower := strings.ToLower(text)

	count := 0
	seen := make(map[string]struct{}, len(def.Keywords))
	for _, kw := range def.Keywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		if strings.Contains(lower, k) {
			count++
		}
	}

	return count
}

// Matches reports whether the post text belongs to the definition's
// cluster: a single keyword hit is enough.
func Matches(text string, def Definition) bool {
	return MatchCount(text, def) >= 1
}

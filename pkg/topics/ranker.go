package topics

import (
	"math"
	"sort"
)

// Importance aggregates per-post match data into a single score:
//
//	round(matchedPostCount * mean(matchCount) * 10)
//
// The multiplicative form rewards both breadth (how many posts hit the
// topic) and conviction (how strongly each one matched), so a topic hit
// by many posts with weak keyword overlap does not automatically
// outrank a topic hit by fewer posts that match strongly.
//
// A cluster with no matched posts scores 0.
func Importance(matches []PostMatch) int {
	if len(matches) == 0 {
		return 0
	}

	sum := 0
	for _, m := range matches {
		sum += m.MatchCount
	}
	avg := float64(sum) / float64(len(matches))

	return int(math.Round(float64(len(matches)) * avg * 10))
}

// Rank computes importance for each cluster and returns them ordered by
// importance, highest first. Clusters with no matched posts are dropped
// entirely rather than ranked at 0. Ties keep their input order.
func Rank(clusters []*Cluster) []*Cluster {
	ranked := make([]*Cluster, 0, len(clusters))
	for _, c := range clusters {
		if len(c.Posts) == 0 {
			continue
		}
		c.Importance = Importance(c.Posts)
		ranked = append(ranked, c)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	return ranked
}

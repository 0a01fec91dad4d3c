package topics

import (
	"testing"

	"github.com/feedradar/radar/pkg/posts"
)

func matchesWithCounts(counts ...int) []PostMatch {
	result := make([]PostMatch, len(counts))
	for i, c := range counts {
		result[i] = PostMatch{
			Post:       &posts.Post{ID: "post"},
			MatchCount: c,
		}
	}
	return result
}

func TestImportance(t *testing.T) {
	tests := []struct {
		name    string
		matches []PostMatch
		want    int
	}{
		{
			name:    "no matched posts scores zero",
			matches: nil,
			want:    0,
		},
		{
			name:    "one post with avg score 2",
			matches: matchesWithCounts(2),
			want:    20,
		},
		{
			name:    "breadth and density multiply",
			matches: matchesWithCounts(3, 1),
			// 2 posts * avg 2.0 * 10
			want: 40,
		},
		{
			name:    "fractional average rounds",
			matches: matchesWithCounts(1, 2, 2),
			// 3 posts * avg 1.666... * 10 = 50
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Importance(tt.matches); got != tt.want {
				t.Errorf("Importance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRank_ExcludesEmptyClusters(t *testing.T) {
	clusters := []*Cluster{
		{Definition: Definition{Name: "empty"}},
		{Definition: Definition{Name: "hit"}, Posts: matchesWithCounts(1)},
	}

	ranked := Rank(clusters)

	if len(ranked) != 1 {
		t.Fatalf("Rank() returned %d clusters, want 1", len(ranked))
	}
	if ranked[0].Definition.Name != "hit" {
		t.Errorf("Rank() kept %q, want %q", ranked[0].Definition.Name, "hit")
	}
}

func TestRank_OrdersByImportanceDescending(t *testing.T) {
	clusters := []*Cluster{
		{Definition: Definition{Name: "low"}, Posts: matchesWithCounts(1)},
		{Definition: Definition{Name: "high"}, Posts: matchesWithCounts(2, 2)},
	}

	ranked := Rank(clusters)

	if len(ranked) != 2 {
		t.Fatalf("Rank() returned %d clusters, want 2", len(ranked))
	}
	if ranked[0].Definition.Name != "high" || ranked[1].Definition.Name != "low" {
		t.Errorf("Rank() order = [%s, %s], want [high, low]",
			ranked[0].Definition.Name, ranked[1].Definition.Name)
	}
	if ranked[0].Importance != 40 {
		t.Errorf("Importance = %d, want 40", ranked[0].Importance)
	}
}

// Ties keep their input order: two clusters scoring 20 each must come
// out in the order they went in.
func TestRank_TiesAreStable(t *testing.T) {
	clusters := []*Cluster{
		{Definition: Definition{Name: "first"}, Posts: matchesWithCounts(2)},
		{Definition: Definition{Name: "second"}, Posts: matchesWithCounts(2)},
		{Definition: Definition{Name: "third"}, Posts: matchesWithCounts(1)},
	}

	ranked := Rank(clusters)

	got := make([]string, len(ranked))
	for i, c := range ranked {
		got[i] = c.Definition.Name
	}

	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Rank() order = %v, want %v", got, want)
		}
	}
}

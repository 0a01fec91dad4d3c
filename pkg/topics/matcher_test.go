package topics

import "testing"

func TestMatchCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  Definition
		want int
	}{
		{
			name: "counts distinct keyword hits",
			text: "New agent sandbox runtime released",
			def: Definition{
				Name:     "Agent Infrastructure",
				Keywords: []string{"agent", "sandbox", "runtime"},
			},
			want: 3,
		},
		{
			name: "case insensitive",
			text: "Block cuts jobs after $8B market cap gain",
			def: Definition{
				Name:     "Block AI Layoffs",
				Keywords: []string{"block", "layoff", "market cap"},
			},
			want: 2,
		},
		{
			name: "substring matches mid-word",
			text: "the agentic shift is here",
			def: Definition{
				Name:     "Agents",
				Keywords: []string{"agent"},
			},
			want: 1,
		},
		{
			name: "no hits yields zero, not an error",
			text: "completely unrelated content",
			def: Definition{
				Name:     "Agents",
				Keywords: []string{"agent", "sandbox"},
			},
			want: 0,
		},
		{
			name: "duplicate keywords counted once",
			text: "agents everywhere",
			def: Definition{
				Name:     "Agents",
				Keywords: []string{"agent", "Agent", "AGENT"},
			},
			want: 1,
		},
		{
			name: "empty keyword ignored",
			text: "anything",
			def: Definition{
				Name:     "Empty",
				Keywords: []string{""},
			},
			want: 0,
		},
		{
			name: "multi-word keyword matched as a phrase",
			text: "they added $8B in market cap overnight",
			def: Definition{
				Name:     "Market",
				Keywords: []string{"market cap"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchCount(tt.text, tt.def); got != tt.want {
				t.Errorf("MatchCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatches_SingleKeywordIsEnough(t *testing.T) {
	def := Definition{Name: "Local AI", Keywords: []string{"local", "macbook", "open weight"}}

	if !Matches("running it on my macbook", def) {
		t.Error("Matches() = false for a single keyword hit, want true")
	}
	if Matches("cloud only deployment", def) {
		t.Error("Matches() = true for zero keyword hits, want false")
	}
}

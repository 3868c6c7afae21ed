package match

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		candidate string
		want      bool
	}{
		{name: "literal match", pattern: "Farm", candidate: "Farm", want: true},
		{name: "literal mismatch", pattern: "Farm", candidate: "Beach", want: false},
		{name: "case sensitive", pattern: "farm", candidate: "Farm", want: false},
		{name: "anchored not substring", pattern: "arm", candidate: "Farm", want: false},
		{name: "star prefix", pattern: "Island*", candidate: "IslandWest", want: true},
		{name: "star prefix mismatch", pattern: "Island*", candidate: "Farm", want: false},
		{name: "star suffix", pattern: "*West", candidate: "IslandWest", want: true},
		{name: "star middle", pattern: "Island*Cave", candidate: "IslandWestCave", want: true},
		{name: "two stars", pattern: "I*W*1", candidate: "IslandWestCave1", want: true},
		{name: "bare star matches anything", pattern: "*", candidate: "Farm", want: true},
		{name: "bare star matches empty", pattern: "*", candidate: "", want: true},
		{name: "empty pattern matches empty only", pattern: "", candidate: "", want: true},
		{name: "empty pattern rejects nonempty", pattern: "", candidate: "x", want: false},
		{name: "negated literal", pattern: "!Farm", candidate: "Farm", want: false},
		{name: "negated literal other", pattern: "!Farm", candidate: "Beach", want: true},
		{name: "negated glob", pattern: "!Island*", candidate: "IslandWest", want: false},
		{name: "bare bang excludes only empty", pattern: "!", candidate: "", want: false},
		{name: "bare bang passes nonempty", pattern: "!", candidate: "Farm", want: true},
		{name: "star consumes nothing", pattern: "Is*landWest", candidate: "IslandWest", want: true},
		{name: "adjacent stars", pattern: "Is**West", candidate: "IslandWest", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.pattern, tt.candidate); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.candidate, got, tt.want)
			}
		})
	}
}

// Negation must always invert: matches("!"+p, s) == !matches(p, s),
// including the empty-literal case.
func TestMatchNegationProperty(t *testing.T) {
	patterns := []string{"", "*", "Farm", "Island*", "*Cave", "I*W*1", "a*b*c"}
	candidates := []string{"", "Farm", "IslandWest", "IslandWestCave1", "abc", "axbyc"}
	for _, p := range patterns {
		for _, s := range candidates {
			if Match("!"+p, s) == Match(p, s) {
				t.Errorf("negation not inverted for pattern %q candidate %q", p, s)
			}
		}
	}
}

func TestMatchAny(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		candidate string
		want      bool
	}{
		{name: "empty list matches everything", patterns: nil, candidate: "Farm", want: true},
		{name: "empty list matches empty", patterns: nil, candidate: "", want: true},
		{name: "single positive hit", patterns: []string{"Farm"}, candidate: "Farm", want: true},
		{name: "single positive miss", patterns: []string{"Farm"}, candidate: "Beach", want: false},
		{name: "positive OR", patterns: []string{"Farm", "Beach"}, candidate: "Beach", want: true},
		{name: "negative only passes others", patterns: []string{"!Farm"}, candidate: "Beach", want: true},
		{name: "negative only excludes match", patterns: []string{"!Farm"}, candidate: "Farm", want: false},
		{name: "positive with exclusion kept", patterns: []string{"Island*", "!IslandWest"}, candidate: "IslandNorth", want: true},
		{name: "positive with exclusion excluded", patterns: []string{"Island*", "!IslandWest"}, candidate: "IslandWest", want: false},
		{name: "positive with exclusion unrelated", patterns: []string{"Island*", "!IslandWest"}, candidate: "Farm", want: false},
		{name: "negative wins over positive", patterns: []string{"*", "!Farm"}, candidate: "Farm", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchAny(tt.patterns, tt.candidate); got != tt.want {
				t.Errorf("MatchAny(%v, %q) = %v, want %v", tt.patterns, tt.candidate, got, tt.want)
			}
		})
	}
}

// The island scenario from the filter contract: an inclusive pattern plus
// an exclusion selects only the uncovered islands.
func TestMatchAnyIslandScenario(t *testing.T) {
	patterns := []string{"Island*", "!IslandWest"}
	candidates := []string{"IslandWest", "IslandNorth", "Farm"}
	var got []string
	for _, c := range candidates {
		if MatchAny(patterns, c) {
			got = append(got, c)
		}
	}
	if len(got) != 1 || got[0] != "IslandNorth" {
		t.Errorf("got %v, want [IslandNorth]", got)
	}
}

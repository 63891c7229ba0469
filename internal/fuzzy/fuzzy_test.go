//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import "testing"

func TestMatcher_Closest(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "identical excluded",
			input:      "verbose",
			candidates: []string{"verbose"},
			expected:   "",
		},
		{
			name:       "simple typo",
			input:      "verbos",
			candidates: []string{"verbose", "port", "debug"},
			expected:   "verbose",
		},
		{
			name:       "case only",
			input:      "vac",
			candidates: []string{"VAC", "bar"},
			expected:   "VAC",
		},
		{
			name:       "nothing close",
			input:      "xyz",
			candidates: []string{"verbose", "datadir"},
			expected:   "",
		},
		{
			name:       "too short",
			input:      "x",
			candidates: []string{"y"},
			expected:   "",
		},
		{
			name:       "no candidates",
			input:      "port",
			candidates: nil,
			expected:   "",
		},
		{
			name:       "prefers shared prefix",
			input:      "rpcport",
			candidates: []string{"xpcport", "rpcpart"},
			expected:   "rpcpart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Closest(tt.input, tt.candidates); got != tt.expected {
				t.Errorf("Closest(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMatcher_RankOrder(t *testing.T) {
	matcher := NewMatcher(2)

	matches := matcher.Rank("datadir", []string{"datadur", "dbdadir", "datadr", "unrelated"})
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Errorf("matches not sorted by score: %+v", matches)
		}
	}
}

func TestMatcher_Distance(t *testing.T) {
	matcher := NewMatcher(10)

	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"port", "post", 1},
		{"noBAR", "BAR", 2},
	}

	for _, tt := range tests {
		if got := matcher.distance(tt.a, tt.b); got != tt.expected {
			t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestMatcher_EarlyTermination(t *testing.T) {
	matcher := NewMatcher(1)

	if got := matcher.distance("a", "abcdef"); got != 2 {
		t.Errorf("expected cut-off distance 2, got %d", got)
	}
	if got := matcher.distance("abcd", "wxyz"); got != 2 {
		t.Errorf("expected cut-off distance 2, got %d", got)
	}
}

func TestCommonPrefixLength(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "abc", 0},
		{"abc", "abd", 2},
		{"rpc", "rpcport", 3},
		{"x", "y", 0},
	}

	for _, tt := range tests {
		if got := commonPrefixLength(tt.a, tt.b); got != tt.expected {
			t.Errorf("commonPrefixLength(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

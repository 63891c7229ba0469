// Package fuzzy ranks flag names by similarity to a name that was asked for
// but never supplied. Used by getarg.Suggest for typo hints.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
)

// Matcher finds candidates within a bounded edit distance
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher that accepts candidates up to maxDistance edits away
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Single letters match everything
	}
}

// Match is one ranked candidate
type Match struct {
	Value    string
	Distance int
	Score    float64 // Higher is better
}

// Closest returns the best candidate for input, or "" if none is close enough.
// A candidate identical to input is never returned; one differing only in
// case is, since flag names are case-sensitive.
func (m *Matcher) Closest(input string, candidates []string) string {
	matches := m.Rank(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Rank returns every candidate within range, best first
func (m *Matcher) Rank(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	lowered := strings.ToLower(input)

	for _, candidate := range candidates {
		if candidate == input {
			continue
		}

		other := strings.ToLower(candidate)
		distance := m.distance(lowered, other)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.score(lowered, other, distance),
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Distance, b.Distance)
	})

	return matches
}

// score weighs edit distance, shared prefix and length similarity
func (m *Matcher) score(a, b string, distance int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	s := 1.0 - float64(distance)/float64(longest)

	if prefix := commonPrefixLength(a, b); prefix > 0 {
		s += float64(prefix) / float64(min(len(a), len(b))) * 0.3
	}

	s += (1.0 - float64(abs(len(a)-len(b)))/float64(longest)) * 0.2

	return s
}

// distance is the Levenshtein distance between a and b, cut off once it
// exceeds maxDistance
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i

		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}

		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(a)]
}

func commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

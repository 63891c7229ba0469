package getarg

import (
	"slices"

	"github.com/keri88/vaccercoin/internal/fuzzy"
)

// suggestDistance is the largest edit distance Suggest will bridge.
const suggestDistance = 2

// ParsedArguments holds the tables produced by one Parse call.
// It is never modified after Parse returns, so any number of goroutines may
// query it concurrently.
type ParsedArguments struct {
	flags       map[string]Flag     // First occurrence of each name
	negations   map[string]Flag     // Base name -> its no<base> flag
	occurrences map[string][]string // Every value of each name, in input order
	order       []string            // Names in order of first appearance
	positional  []string            // Tokens that are not flags
}

func newParsedArguments(capacity int) *ParsedArguments {
	return &ParsedArguments{
		flags:       make(map[string]Flag, capacity),
		negations:   make(map[string]Flag),
		occurrences: make(map[string][]string, capacity),
	}
}

// GetBoolArg resolves name as a boolean.
//
// A directly supplied flag is true unless its value is the integer 0. Failing
// that, a no<name> flag makes it false, unless the negation's own value is the
// integer 0, in which case it reads true. Otherwise def is returned. Direct
// presence always beats negation, whatever their order on the command line.
func (p *ParsedArguments) GetBoolArg(name string, def bool) bool {
	key, ok := normalizeName(name)
	if !ok {
		return def
	}

	if f, exists := p.flags[key]; exists {
		return !isZero(f.Value)
	}

	if neg, exists := p.negations[key]; exists {
		return isZero(neg.Value)
	}

	return def
}

// GetArg returns the raw value of name, or def if it was not supplied.
// A supplied flag without "=value" yields the empty string, not def.
func (p *ParsedArguments) GetArg(name, def string) string {
	if value, ok := p.Lookup(name); ok {
		return value
	}
	return def
}

// GetIntArg returns name parsed as a base-10 integer. def is used only when
// the flag is absent; a supplied but malformed value yields 0.
func (p *ParsedArguments) GetIntArg(name string, def int64) int64 {
	value, ok := p.Lookup(name)
	if !ok {
		return def
	}
	n, ok := parseInt(value)
	if !ok {
		return 0
	}
	return n
}

// Lookup returns the raw value of name and whether it was supplied.
func (p *ParsedArguments) Lookup(name string) (string, bool) {
	key, ok := normalizeName(name)
	if !ok {
		return "", false
	}
	f, exists := p.flags[key]
	return f.Value, exists
}

// LookupInt parses name as a base-10 integer, reporting a *ValueError when
// the flag is absent or its value is not an integer.
func (p *ParsedArguments) LookupInt(name string) (int64, error) {
	value, ok := p.Lookup(name)
	if !ok {
		return 0, &ValueError{Type: ErrorTypeAbsent, Name: trimName(name)}
	}
	n, ok := parseInt(value)
	if !ok {
		return 0, &ValueError{Type: ErrorTypeInvalidInt, Name: trimName(name), Value: value}
	}
	return n, nil
}

// IsSet reports whether name was supplied directly.
func (p *ParsedArguments) IsSet(name string) bool {
	_, ok := p.Lookup(name)
	return ok
}

// IsNegated reports whether a no<name> flag was supplied, whether or not it
// decides the boolean value of name.
func (p *ParsedArguments) IsNegated(name string) bool {
	key, ok := normalizeName(name)
	if !ok {
		return false
	}
	_, exists := p.negations[key]
	return exists
}

// Flag returns the first occurrence of name.
func (p *ParsedArguments) Flag(name string) (Flag, bool) {
	key, ok := normalizeName(name)
	if !ok {
		return Flag{}, false
	}
	f, exists := p.flags[key]
	return f, exists
}

// Values returns every value supplied for name, in command-line order.
func (p *ParsedArguments) Values(name string) []string {
	key, ok := normalizeName(name)
	if !ok {
		return nil
	}
	return slices.Clone(p.occurrences[key])
}

// Names returns the distinct flag names in order of first appearance.
func (p *ParsedArguments) Names() []string {
	return slices.Clone(p.order)
}

// Args returns the tokens that were not recognized as flags.
func (p *ParsedArguments) Args() []string {
	return slices.Clone(p.positional)
}

// Len returns the number of distinct flags.
func (p *ParsedArguments) Len() int {
	return len(p.flags)
}

// Suggest returns the supplied flag name closest to name, or "" when nothing
// is close enough. Useful for hinting at typos on the command line.
func (p *ParsedArguments) Suggest(name string) string {
	key, ok := normalizeName(name)
	if !ok {
		return ""
	}
	return fuzzy.NewMatcher(suggestDistance).Closest(key, p.order)
}

// isZero reports whether value parses as the integer 0.
func isZero(value string) bool {
	n, ok := parseInt(value)
	return ok && n == 0
}

// trimName strips dashes for error messages, falling back to the input.
func trimName(name string) string {
	if key, ok := normalizeName(name); ok {
		return key
	}
	return name
}

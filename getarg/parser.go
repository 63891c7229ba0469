// Package getarg turns a raw argument vector into a loose flag table.
//
// Any token of the form -name, --name, -name=value or --name=value is a
// flag; nothing has to be declared up front. Values are kept as strings and
// coerced only when a typed accessor asks for them, so parsing never fails.
// A flag called no<name> negates <name> unless <name> itself was supplied.
package getarg

import (
	"math"
	"os"
	"strings"
)

// Flag is a single parsed flag occurrence.
type Flag struct {
	Name     string // Name with its leading dashes stripped
	Value    string // Text after the first '=', empty if none
	HasValue bool   // True if the token carried '='
	Position int    // Index of the token in the parsed vector
}

// negationPrefix turns a flag into the negation of the flag named by the rest.
const negationPrefix = "no"

// Parse builds a fresh ParsedArguments from args, which must not include the
// program name. Parsing is total: tokens that are not flags are kept as
// positional arguments and never cause an error.
func Parse(args []string) *ParsedArguments {
	p := newParsedArguments(len(args))

	for i, arg := range args {
		name, value, hasValue, ok := splitFlag(arg)
		if !ok {
			p.positional = append(p.positional, arg)
			continue
		}

		f := Flag{Name: name, Value: value, HasValue: hasValue, Position: i}
		p.occurrences[name] = append(p.occurrences[name], value)

		// First occurrence wins
		if _, seen := p.flags[name]; seen {
			continue
		}
		p.flags[name] = f
		p.order = append(p.order, name)

		if base, isNeg := strings.CutPrefix(name, negationPrefix); isNeg && base != "" {
			p.negations[base] = f
		}
	}

	return p
}

// ParseOS parses the arguments of the running process, skipping the program name.
func ParseOS() *ParsedArguments {
	if len(os.Args) < 2 {
		return Parse(nil)
	}
	return Parse(os.Args[1:])
}

// splitFlag recognizes a flag token and splits it into name and value.
// ok is false for anything that is not a flag.
func splitFlag(arg string) (name, value string, hasValue, ok bool) {
	rest, ok := stripDashes(arg)
	if !ok {
		return "", "", false, false
	}

	// Only the first '=' separates
	if eq := strings.IndexByte(rest, '='); eq != -1 {
		name, value, hasValue = rest[:eq], rest[eq+1:], true
	} else {
		name = rest
	}

	if name == "" {
		return "", "", false, false
	}
	return name, value, hasValue, true
}

// stripDashes removes one or two leading dashes. A token without a leading
// dash, a bare "-" or "--", or a token with three or more leading dashes is
// not a flag.
func stripDashes(s string) (string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(s, "--"):
		rest = s[2:]
	case strings.HasPrefix(s, "-"):
		rest = s[1:]
	default:
		return "", false
	}

	if rest == "" || rest[0] == '-' {
		return "", false
	}
	return rest, true
}

// normalizeName maps a query name ("-x", "--x" or "x") to its table key.
func normalizeName(name string) (string, bool) {
	if !strings.HasPrefix(name, "-") {
		return name, name != ""
	}
	return stripDashes(name)
}

// parseInt parses a signed base-10 integer using ASCII math.
// Empty input, stray characters and overflow all report ok=false.
func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	limit := uint64(math.MaxInt64)
	if negative {
		limit = uint64(math.MaxInt64) + 1
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if n > (limit-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}

	if negative {
		// MaxInt64+1 converts to MinInt64, which negates to itself
		return -int64(n), true
	}
	return int64(n), true
}

//nolint:testpackage // using package name 'getarg' to access unexported fields for testing
package getarg

import (
	"math"
	"slices"
	"strings"
	"testing"
)

// parseLine splits a command line on whitespace the way a shell would for
// unquoted input, then parses it.
func parseLine(line string) *ParsedArguments {
	return Parse(strings.Fields(line))
}

func TestParseEmpty(t *testing.T) {
	for _, args := range [][]string{nil, {}} {
		p := Parse(args)
		if p.Len() != 0 {
			t.Errorf("expected empty table, got %d flags", p.Len())
		}
		if len(p.Args()) != 0 {
			t.Errorf("expected no positional args, got %v", p.Args())
		}
	}
}

func TestParseTokenShapes(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		wantFlag  string
		wantValue string
		hasValue  bool
		isFlag    bool
	}{
		{"single dash", "-foo", "foo", "", false, true},
		{"double dash", "--foo", "foo", "", false, true},
		{"single dash value", "-foo=bar", "foo", "bar", true, true},
		{"double dash value", "--foo=bar", "foo", "bar", true, true},
		{"empty value", "-foo=", "foo", "", true, true},
		{"value keeps later equals", "-foo=a=b=c", "foo", "a=b=c", true, true},
		{"negation", "-nofoo", "nofoo", "", false, true},
		{"positional", "foo", "", "", false, false},
		{"bare dash", "-", "", "", false, false},
		{"bare double dash", "--", "", "", false, false},
		{"triple dash", "---foo", "", "", false, false},
		{"empty name", "-=foo", "", "", false, false},
		{"empty name double dash", "--=foo", "", "", false, false},
		{"empty string", "", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, hasValue, ok := splitFlag(tt.arg)
			if ok != tt.isFlag {
				t.Fatalf("splitFlag(%q) ok = %v, want %v", tt.arg, ok, tt.isFlag)
			}
			if name != tt.wantFlag || value != tt.wantValue || hasValue != tt.hasValue {
				t.Errorf("splitFlag(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.arg, name, value, hasValue, tt.wantFlag, tt.wantValue, tt.hasValue)
			}
		})
	}
}

func TestParseNonFlagsArePositional(t *testing.T) {
	p := Parse([]string{"file1", "-foo", "---bar", "-", "--", "-=x", "file2"})

	want := []string{"file1", "---bar", "-", "--", "-=x", "file2"}
	if got := p.Args(); !slices.Equal(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
	if names := p.Names(); !slices.Equal(names, []string{"foo"}) {
		t.Errorf("Names() = %v, want [foo]", names)
	}
	if p.IsSet("-bar") || p.IsSet("---bar") {
		t.Error("triple-dash token must not become a flag")
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	p := parseLine("-foo=11 -foo=22 --foo=33")

	if got := p.GetIntArg("-foo", 0); got != 11 {
		t.Errorf("GetIntArg = %d, want 11", got)
	}
	if got := p.Values("-foo"); !slices.Equal(got, []string{"11", "22", "33"}) {
		t.Errorf("Values = %v, want [11 22 33]", got)
	}

	f, ok := p.Flag("foo")
	if !ok || f.Position != 0 || !f.HasValue {
		t.Errorf("Flag(foo) = %+v, %v; want position 0 with value", f, ok)
	}
}

func TestParseFirstNegationWins(t *testing.T) {
	p := parseLine("-nofoo=0 -nofoo=1")
	if !p.GetBoolArg("-foo", false) {
		t.Error("expected first -nofoo=0 to disable negation")
	}
}

func TestParseNamesOrder(t *testing.T) {
	p := parseLine("-b -a -b=2 -c")
	if got := p.Names(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("Names() = %v, want [b a c]", got)
	}
}

func TestParseIdempotent(t *testing.T) {
	args := []string{"-foo=1", "-nobar", "--baz=hello", "pos"}

	first := Parse(args)
	second := Parse(args)

	for _, name := range []string{"-foo", "-bar", "-baz", "-missing"} {
		if first.GetBoolArg(name, true) != second.GetBoolArg(name, true) {
			t.Errorf("GetBoolArg(%s) differs between parses", name)
		}
		if first.GetArg(name, "d") != second.GetArg(name, "d") {
			t.Errorf("GetArg(%s) differs between parses", name)
		}
		if first.GetIntArg(name, 7) != second.GetIntArg(name, 7) {
			t.Errorf("GetIntArg(%s) differs between parses", name)
		}
	}
	if len(second.Values("-foo")) != 1 {
		t.Errorf("values accumulated across parses: %v", second.Values("-foo"))
	}
}

func TestParseDoesNotAliasInput(t *testing.T) {
	args := []string{"pos"}
	p := Parse(args)

	got := p.Args()
	got[0] = "changed"
	if p.Args()[0] != "pos" {
		t.Error("Args() must return a copy")
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"00", 0, true},
		{"-0", 0, true},
		{"+0", 0, true},
		{"11", 11, true},
		{"-12", -12, true},
		{"+13", 13, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"+", 0, false},
		{"NaN", 0, false},
		{"12abc", 0, false},
		{" 1", 0, false},
		{"0x10", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseInt(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseInt(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"-foo", "foo", true},
		{"--foo", "foo", true},
		{"foo", "foo", true},
		{"---foo", "", false},
		{"-", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeName(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeName(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

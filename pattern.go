package phonedata

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Dialect names the regular expression engine a pattern needs.
type Dialect int

const (
	// DialectRE2 patterns compile with the standard library regexp package.
	DialectRE2 Dialect = iota
	// DialectExtended patterns use conditionals (?(N)yes|no) or lookbehind
	// and need a backtracking engine.
	DialectExtended
)

func (d Dialect) String() string {
	switch d {
	case DialectRE2:
		return "re2"
	case DialectExtended:
		return "extended"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

var errEmptyPattern = errors.New("phonedata: empty pattern")

// PatternDialect reports the engine pattern requires.
func PatternDialect(pattern string) Dialect {
	if _, err := regexp.Compile(pattern); err == nil {
		return DialectRE2
	}
	return DialectExtended
}

// compileOptions keeps \d, \w and \s ASCII only, as in the PCRE patterns the
// table was written for.
const compileOptions = regexp2.RE2

// CompilePattern compiles a table pattern with an engine that understands
// every construct used in the bundled data.
func CompilePattern(pattern string) (*regexp2.Regexp, error) {
	if pattern == "" {
		return nil, errEmptyPattern
	}
	re, err := regexp2.Compile(pattern, compileOptions)
	if err != nil {
		return nil, fmt.Errorf("phonedata: compile %q: %w", pattern, err)
	}
	return re, nil
}

// Compile compiles the national pattern.
func (n N6L) Compile() (*regexp2.Regexp, error) {
	return CompilePattern(n.Pattern)
}

// Compile compiles the cleanup pattern. It returns nil, nil when none is set.
func (e EPP) Compile() (*regexp2.Regexp, error) {
	if !e.HasPattern() {
		return nil, nil
	}
	return CompilePattern(e.Pattern)
}

// Dialect returns the strictest engine needed by the entry's patterns.
func (e Entry) Dialect() Dialect {
	if PatternDialect(e.N6L.Pattern) == DialectExtended {
		return DialectExtended
	}
	if e.EPP.HasPattern() && PatternDialect(e.EPP.Pattern) == DialectExtended {
		return DialectExtended
	}
	return DialectRE2
}

// ExtendedPatterns lists, in table order, the countries whose patterns cannot
// be compiled by the standard library regexp package.
func (t *Table) ExtendedPatterns() []string {
	var out []string
	for code, entry := range t.All() {
		if entry.Dialect() == DialectExtended {
			out = append(out, code)
		}
	}
	return out
}

func captureGroupCount(re *regexp2.Regexp) int {
	highest := 0
	for _, n := range re.GetGroupNumbers() {
		if n > highest {
			highest = n
		}
	}
	return highest
}

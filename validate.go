package phonedata

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/language"
)

var (
	entryValidator  = validator.New(validator.WithRequiredStructEnabled())
	replacementRefs = regexp.MustCompile(`\$\{?(\d+)\}?`)
)

// Issue is a single problem found in a table entry.
type Issue struct {
	Country string
	Field   string
	Err     error
}

func (i *Issue) Error() string {
	return fmt.Sprintf("phonedata: %s %s: %v", i.Country, i.Field, i.Err)
}

func (i *Issue) Unwrap() error {
	return i.Err
}

// Validate checks every entry of t and returns a *multierror.Error of *Issue
// values, or nil when the table is clean. Checked:
//   - struct rules (two uppercase letters, required pattern, 1-4 digit idc)
//   - the code is a known ISO 3166-1 region
//   - patterns compile
//   - replacement group references exist in the pattern
func Validate(t *Table) error {
	if t == nil {
		return ErrInvalidData
	}

	var result *multierror.Error
	for code, entry := range t.All() {
		entry.Country = code
		if issues := validateEntry(entry); len(issues) > 0 {
			result = multierror.Append(result, issues...)
		}
	}
	return result.ErrorOrNil()
}

// Issues flattens an error returned by Validate.
func Issues(err error) []*Issue {
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var issue *Issue
		if errors.As(err, &issue) {
			return []*Issue{issue}
		}
		return nil
	}

	out := make([]*Issue, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var issue *Issue
		if errors.As(e, &issue) {
			out = append(out, issue)
		}
	}
	return out
}

func validateEntry(entry Entry) []error {
	var issues []error
	add := func(field string, err error) {
		issues = append(issues, &Issue{Country: entry.Country, Field: field, Err: err})
	}

	if err := entryValidator.Struct(entry); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			add("Entry", err)
		}
		for _, fe := range fieldErrs {
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			add(strings.TrimPrefix(fe.StructNamespace(), "Entry."), fmt.Errorf("failed %q rule", rule))
		}
	}

	if region, err := language.ParseRegion(entry.Country); err != nil {
		add("Country", fmt.Errorf("unknown ISO 3166-1 region: %w", err))
	} else if region.String() != entry.Country {
		add("Country", fmt.Errorf("not canonical, expected %s", region.String()))
	}

	if entry.N6L.Pattern != "" {
		re, err := entry.N6L.Compile()
		if err != nil {
			add("N6L.Pattern", err)
		} else if entry.N6L.HasReplacement() {
			groups := captureGroupCount(re)
			for _, ref := range replacementGroupRefs(entry.N6L.Replacement) {
				if ref > groups {
					add("N6L.Replacement", fmt.Errorf("references group $%d, pattern has %d", ref, groups))
				}
			}
		}
	}

	if _, err := entry.EPP.Compile(); err != nil {
		add("EPP.Pattern", err)
	}

	return issues
}

func replacementGroupRefs(template string) []int {
	matches := replacementRefs.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]int, 0, len(matches))
	for _, match := range matches {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		refs = append(refs, n)
	}
	return refs
}

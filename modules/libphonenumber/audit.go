// Package libphonenumber cross-checks a phonedata registry against the
// metadata shipped with github.com/nyaruka/phonenumbers.
package libphonenumber

import (
	"fmt"
	"strconv"
	"strings"

	phonedata "github.com/goliatone/go-phonedata"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
)

// Kind classifies a Finding.
type Kind int

const (
	// KindMismatch means the dialling codes differ.
	KindMismatch Kind = iota + 1
	// KindUnknownRegion means libphonenumber has no metadata for the country.
	KindUnknownRegion
	// KindExampleMismatch means the national pattern does not match
	// libphonenumber's example number in national format.
	KindExampleMismatch
)

func (k Kind) String() string {
	switch k {
	case KindMismatch:
		return "mismatch"
	case KindUnknownRegion:
		return "unknown-region"
	case KindExampleMismatch:
		return "example-mismatch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Finding is a single disagreement between the registry and libphonenumber.
type Finding struct {
	Country string
	Kind    Kind
	Got     string
	Want    string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s got=%q want=%q", f.Country, f.Kind, f.Got, f.Want)
}

type options struct {
	countries []string
	examples  bool
}

// Option configures an audit run.
type Option func(*options)

// WithCountries restricts the audit to the given codes. Unknown codes are skipped.
func WithCountries(codes ...string) Option {
	return func(o *options) {
		for _, code := range codes {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code != "" {
				o.countries = append(o.countries, code)
			}
		}
	}
}

// WithExampleNumbers also matches each national pattern against the
// libphonenumber example number for the region.
func WithExampleNumbers() Option {
	return func(o *options) {
		o.examples = true
	}
}

// Audit compares every entry of reg with libphonenumber and returns the
// findings in table order. A nil registry yields no findings.
func Audit(reg *phonedata.Registry, opts ...Option) []Finding {
	if reg == nil {
		return nil
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	codes := reg.Countries()
	if len(cfg.countries) > 0 {
		codes = cfg.countries
	}

	var findings []Finding
	for _, code := range codes {
		entry, err := reg.Entry(code)
		if err != nil {
			continue
		}

		want, ok := ExpectedIDC(code)
		if !ok {
			findings = append(findings, Finding{Country: code, Kind: KindUnknownRegion, Got: entry.EPP.IDC})
			continue
		}
		if entry.EPP.IDC != want {
			findings = append(findings, Finding{Country: code, Kind: KindMismatch, Got: entry.EPP.IDC, Want: want})
		}

		if cfg.examples {
			if f, ok := checkExample(entry); ok {
				findings = append(findings, f)
			}
		}
	}
	return findings
}

// ExpectedIDC returns the dialling code libphonenumber assigns to region.
func ExpectedIDC(region string) (string, bool) {
	code := normalizeRegion(region)
	if code == "" {
		return "", false
	}

	idc := phonenumbers.GetCountryCodeForRegion(code)
	if idc <= 0 {
		return "", false
	}
	return strconv.Itoa(idc), true
}

func checkExample(entry phonedata.Entry) (Finding, bool) {
	number := phonenumbers.GetExampleNumber(entry.Country)
	if number == nil {
		return Finding{}, false
	}
	national := phonenumbers.Format(number, phonenumbers.NATIONAL)

	re, err := entry.N6L.Compile()
	if err != nil {
		return Finding{Country: entry.Country, Kind: KindExampleMismatch, Got: entry.N6L.Pattern, Want: national}, true
	}
	if matched, err := re.MatchString(national); err == nil && matched {
		return Finding{}, false
	}
	return Finding{Country: entry.Country, Kind: KindExampleMismatch, Got: entry.N6L.Pattern, Want: national}, true
}

func normalizeRegion(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return ""
	}

	parsed, err := language.ParseRegion(region)
	if err != nil || !parsed.IsCountry() {
		return ""
	}
	return strings.ToUpper(parsed.String())
}

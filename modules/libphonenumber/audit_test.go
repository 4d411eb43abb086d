package libphonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	phonedata "github.com/goliatone/go-phonedata"
)

func TestExpectedIDC(t *testing.T) {
	tests := []struct {
		region string
		want   string
		ok     bool
	}{
		{region: "US", want: "1", ok: true},
		{region: "gb", want: "44", ok: true},
		{region: "CM", want: "237", ok: true},
		{region: "NA", want: "264", ok: true},
		{region: "", ok: false},
		{region: "GBR", want: "44", ok: true},
		{region: "XX", ok: false},
	}

	for _, tc := range tests {
		got, ok := ExpectedIDC(tc.region)
		assert.Equal(t, tc.ok, ok, tc.region)
		assert.Equal(t, tc.want, got, tc.region)
	}
}

func TestAuditBundledCorrections(t *testing.T) {
	findings := Audit(phonedata.Default(), WithCountries("CM", "GN", "NA", "US", "DE"))
	assert.Empty(t, findings)
}

func TestAuditReportsMismatch(t *testing.T) {
	reg, err := phonedata.New(phonedata.WithEntries(map[string]phonedata.Entry{
		"CM": {N6L: phonedata.N6L{Pattern: `^\d{8}`}, EPP: phonedata.EPP{IDC: "273"}},
		"US": {N6L: phonedata.N6L{Pattern: `^\d{10}`}, EPP: phonedata.EPP{IDC: "1"}},
	}))
	require.NoError(t, err)

	findings := Audit(reg)
	require.Len(t, findings, 1)
	assert.Equal(t, Finding{Country: "CM", Kind: KindMismatch, Got: "273", Want: "237"}, findings[0])
	assert.Contains(t, findings[0].String(), "CM: mismatch")
}

func TestAuditExampleNumbers(t *testing.T) {
	reg, err := phonedata.New(phonedata.WithEntries(map[string]phonedata.Entry{
		"FR": {N6L: phonedata.N6L{Pattern: `^x`}, EPP: phonedata.EPP{IDC: "33"}},
	}))
	require.NoError(t, err)

	assert.Empty(t, Audit(reg))

	findings := Audit(reg, WithExampleNumbers())
	require.Len(t, findings, 1)
	assert.Equal(t, KindExampleMismatch, findings[0].Kind)
	assert.Equal(t, `^x`, findings[0].Got)
	assert.NotEmpty(t, findings[0].Want)
}

func TestAuditSkipsUnknownCodes(t *testing.T) {
	findings := Audit(phonedata.Default(), WithCountries("XX", " "))
	assert.Empty(t, findings)
	assert.Nil(t, Audit(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unknown-region", KindUnknownRegion.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

package phonedata

// N6L describes a nationally formatted number.
// Pattern matches the local representation; Replacement, when set, rewrites a
// match into the canonical display form using $1, $2, ... group references.
type N6L struct {
	Pattern     string `json:"pattern" yaml:"pattern" validate:"required"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
}

// HasReplacement reports whether a display template is defined.
func (n N6L) HasReplacement() bool {
	return n.Replacement != ""
}

// EPP describes the data needed to build an internationally formatted number.
// Pattern matches characters to strip from the national number; IDC is the
// international dialling code without the leading plus sign.
type EPP struct {
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	IDC     string `json:"idc" yaml:"idc" validate:"required,number,min=1,max=4"`
}

// HasPattern reports whether a cleanup pattern is defined.
func (e EPP) HasPattern() bool {
	return e.Pattern != ""
}

// Entry is a single row of the table.
// Country is taken from the mapping key and is not part of the encoded value.
type Entry struct {
	Country string `json:"-" yaml:"-" validate:"required,len=2,alpha,uppercase"`
	N6L     N6L    `json:"n6l" yaml:"n6l"`
	EPP     EPP    `json:"epp" yaml:"epp"`
}

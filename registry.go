package phonedata

// Registry answers lookups against an immutable country table.
// It holds no mutable state and is safe for concurrent use.
type Registry struct {
	table *Table
}

// New resolves the configured source once and builds a Registry.
// Without options the bundled data is used.
func New(opts ...Option) (*Registry, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	table, err := cfg.Source.Load()
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrInvalidData
	}

	reg := &Registry{table: table}
	if cfg.strict {
		if err := reg.Validate(); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// NewFromSource is shorthand for New(WithSource(src)).
func NewFromSource(src Source) (*Registry, error) {
	return New(WithSource(src))
}

// Countries returns every country code in table order.
func (r *Registry) Countries() []string {
	return r.tableOrNil().Countries()
}

// HasCountry reports whether code is present.
func (r *Registry) HasCountry(code string) bool {
	return r.tableOrNil().Has(code)
}

// N6L returns the national format descriptor for code.
func (r *Registry) N6L(code string) (N6L, error) {
	entry, err := r.Entry(code)
	if err != nil {
		return N6L{}, err
	}
	return entry.N6L, nil
}

// EPP returns the international format descriptor for code.
func (r *Registry) EPP(code string) (EPP, error) {
	entry, err := r.Entry(code)
	if err != nil {
		return EPP{}, err
	}
	return entry.EPP, nil
}

// Entry returns the full row for code.
func (r *Registry) Entry(code string) (Entry, error) {
	entry, ok := r.tableOrNil().Entry(code)
	if !ok {
		return Entry{}, countryNotFound(code)
	}
	return entry, nil
}

// Len returns the number of countries.
func (r *Registry) Len() int {
	return r.tableOrNil().Len()
}

// Table exposes the underlying table. It has no mutators and rejects Unmarshal.
func (r *Registry) Table() *Table {
	return r.tableOrNil()
}

// Validate checks every entry; see Validate.
func (r *Registry) Validate() error {
	return Validate(r.tableOrNil())
}

func (r *Registry) tableOrNil() *Table {
	if r == nil {
		return nil
	}
	return r.table
}

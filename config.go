package phonedata

// Config captures registry construction settings
type Config struct {
	Source Source
	strict bool
}

// Option mutates Config during construction
type Option func(*Config) error

// WithSource selects where the table comes from. A nil source means the bundled data.
func WithSource(src Source) Option {
	return func(c *Config) error {
		c.Source = src
		return nil
	}
}

// WithDataFile loads the table from a JSON or YAML file.
// An empty path keeps the bundled data.
func WithDataFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			c.Source = nil
			return nil
		}
		c.Source = FileSource(path)
		return nil
	}
}

// WithTable uses an already built table. A nil table fails with ErrInvalidData.
func WithTable(t *Table) Option {
	return func(c *Config) error {
		c.Source = TableSource(t)
		return nil
	}
}

// WithEntries builds the table from an in-memory map, with codes sorted.
func WithEntries(data map[string]Entry) Option {
	return func(c *Config) error {
		c.Source = MapSource(data)
		return nil
	}
}

// WithStrictValidation runs Validate during construction and fails on any issue.
func WithStrictValidation() Option {
	return func(c *Config) error {
		c.strict = true
		return nil
	}
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Source == nil {
		cfg.Source = BundledSource()
	}

	return cfg, nil
}

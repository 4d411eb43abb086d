package phonedata

import (
	"errors"
	"fmt"
)

// ErrInvalidData indicates that a resolved source is not a mapping of country codes to entries.
var ErrInvalidData = errors.New("phonedata: data must be a mapping of country codes to national phone number data, a path to a file containing one, or nil to use the bundled data")

// ErrCountryNotFound indicates that a country code is not present in the table.
var ErrCountryNotFound = errors.New("phonedata: country not found")

// ErrUnsupportedFormat marks data files whose extension has no decoder
var ErrUnsupportedFormat = errors.New("phonedata: unsupported data format")

// ErrImmutableTable is returned when decoding into a table that already holds data.
var ErrImmutableTable = errors.New("phonedata: table is immutable")

// CountryNotFoundError carries the code that failed a lookup.
// It matches ErrCountryNotFound with errors.Is.
type CountryNotFoundError struct {
	Country string
}

func (e *CountryNotFoundError) Error() string {
	return fmt.Sprintf("phonedata: country %s not found in list of national phone number formats", e.Country)
}

func (e *CountryNotFoundError) Is(target error) bool {
	return target == ErrCountryNotFound
}

func countryNotFound(code string) error {
	return &CountryNotFoundError{Country: code}
}

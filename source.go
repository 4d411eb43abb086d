package phonedata

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed data/countries.json
var bundledData []byte

// Source resolves the data behind a Registry.
type Source interface {
	Load() (*Table, error)
}

// SourceFunc adapts a bare function to Source
type SourceFunc func() (*Table, error)

// Load implements Source for SourceFunc
func (fn SourceFunc) Load() (*Table, error) {
	return fn()
}

// BundledSource returns the data shipped with the package.
func BundledSource() Source {
	return SourceFunc(func() (*Table, error) {
		return decodeTable(bytes.NewReader(bundledData))
	})
}

// FileSource reads a JSON or YAML file from disk. The format follows the
// extension; a path without one may hold either. The file is closed before
// Load returns.
func FileSource(path string) Source {
	return fileSource{path: path}
}

// FSSource reads a JSON or YAML file from fsys.
func FSSource(fsys fs.FS, name string) Source {
	return fileSource{fsys: fsys, path: name}
}

// ReaderSource decodes an already opened stream. The caller owns r.
func ReaderSource(r io.Reader) Source {
	return SourceFunc(func() (*Table, error) {
		return decodeTable(r)
	})
}

// TableSource wraps an already built table.
func TableSource(t *Table) Source {
	return SourceFunc(func() (*Table, error) {
		if t == nil {
			return nil, ErrInvalidData
		}
		return t, nil
	})
}

// MapSource wraps an in-memory map. Codes are sorted since maps carry no order.
func MapSource(data map[string]Entry) Source {
	return SourceFunc(func() (*Table, error) {
		return TableFromMap(data)
	})
}

type fileSource struct {
	fsys fs.FS
	path string
}

func (s fileSource) Load() (*Table, error) {
	// files without an extension are sniffed by the decoder
	if filepath.Ext(s.path) != "" {
		if _, err := formatFromPath(s.path); err != nil {
			return nil, err
		}
	}

	f, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("phonedata: open %s: %w", s.path, err)
	}
	defer f.Close()

	table, err := decodeTable(f)
	if err != nil {
		if err == ErrInvalidData {
			return nil, err
		}
		return nil, fmt.Errorf("phonedata: read %s: %w", s.path, err)
	}
	return table, nil
}

func (s fileSource) open() (io.ReadCloser, error) {
	if s.fsys != nil {
		return s.fsys.Open(s.path)
	}
	return os.Open(s.path)
}

package phonedata

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestFileSourceBundledCopy(t *testing.T) {
	reg, err := New(WithDataFile(filepath.Join("data", "countries.json")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, want := reg.Len(), bundledKeyCount(t); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestFileSourceYAMLKeepsOrder(t *testing.T) {
	reg, err := NewFromSource(FileSource(filepath.Join("testdata", "subset.yaml")))
	if err != nil {
		t.Fatalf("NewFromSource: %v", err)
	}

	countries := reg.Countries()
	if len(countries) != 2 || countries[0] != "US" || countries[1] != "AD" {
		t.Fatalf("Countries() = %v, want [US AD]", countries)
	}

	want, _ := Default().N6L("AD")
	got, err := reg.N6L("AD")
	if err != nil {
		t.Fatalf("N6L(AD): %v", err)
	}
	if got != want {
		t.Fatalf("N6L(AD) = %+v, want %+v", got, want)
	}

	epp, _ := reg.EPP("US")
	if epp.IDC != "1" || epp.Pattern != `\D` {
		t.Fatalf("EPP(US) = %+v", epp)
	}
}

func TestFileSourceNonMappingIsInvalidData(t *testing.T) {
	for _, name := range []string{"array", "null", "string", "empty"} {
		t.Run(name, func(t *testing.T) {
			_, err := New(WithDataFile(filepath.Join("testdata", name+".json")))
			if err != ErrInvalidData {
				t.Fatalf("New err = %v, want ErrInvalidData", err)
			}
			if err.Error() != ErrInvalidData.Error() {
				t.Fatalf("message should be fixed, got %q", err.Error())
			}
		})
	}
}

func TestFileSourceFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := New(WithDataFile(filepath.Join("testdata", "missing.json")))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("err = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := New(WithDataFile(filepath.Join("testdata", "malformed.json")))
		if err == nil {
			t.Fatal("expected parse error")
		}
		if errors.Is(err, ErrInvalidData) {
			t.Fatalf("parse error should not be reported as invalid data: %v", err)
		}
		if !strings.Contains(err.Error(), "malformed.json") {
			t.Fatalf("error should name the file: %v", err)
		}
	})

	t.Run("entry is not a mapping", func(t *testing.T) {
		_, err := New(WithDataFile(filepath.Join("testdata", "scalar_entry.json")))
		if !errors.Is(err, ErrInvalidData) {
			t.Fatalf("err = %v, want wrapped ErrInvalidData", err)
		}
		if !strings.Contains(err.Error(), "AD") {
			t.Fatalf("error should name the entry: %v", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := New(WithDataFile("countries.txt"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"phone/data.yml": &fstest.MapFile{Data: []byte("FR:\n  n6l:\n    pattern: '^(0[1-9])'\n  epp:\n    idc: '33'\n")},
	}

	reg, err := NewFromSource(FSSource(fsys, "phone/data.yml"))
	if err != nil {
		t.Fatalf("NewFromSource: %v", err)
	}

	epp, err := reg.EPP("FR")
	if err != nil {
		t.Fatalf("EPP(FR): %v", err)
	}
	if epp.IDC != "33" || epp.HasPattern() {
		t.Fatalf("EPP(FR) = %+v", epp)
	}

	if _, err := NewFromSource(FSSource(fsys, "phone/other.yml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing fs file err = %v", err)
	}
}

func TestReaderSource(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "subset.yaml"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	reg, err := NewFromSource(ReaderSource(f))
	if err != nil {
		t.Fatalf("NewFromSource: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d", reg.Len())
	}

	if _, err := NewFromSource(ReaderSource(nil)); err != ErrInvalidData {
		t.Fatalf("nil reader err = %v, want ErrInvalidData", err)
	}
}

func TestMapSourceCopiesInput(t *testing.T) {
	src := map[string]Entry{
		"US": {N6L: N6L{Pattern: `^\d{10}`}, EPP: EPP{IDC: "1"}},
	}

	reg, err := NewFromSource(MapSource(src))
	if err != nil {
		t.Fatalf("NewFromSource: %v", err)
	}

	src["US"] = Entry{N6L: N6L{Pattern: "changed"}, EPP: EPP{IDC: "9"}}
	src["CA"] = Entry{N6L: N6L{Pattern: `^\d{10}`}, EPP: EPP{IDC: "1"}}

	n6l, _ := reg.N6L("US")
	if n6l.Pattern != `^\d{10}` {
		t.Fatalf("expected snapshot to remain unchanged, got %q", n6l.Pattern)
	}
	if reg.HasCountry("CA") {
		t.Fatal("unexpected country copied from mutated input")
	}
}

func TestSourceErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewFromSource(SourceFunc(func() (*Table, error) {
		return nil, boom
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestFileSourceWithoutExtension(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]string{
		"countries": `{"US": {"n6l": {"pattern": "^\\d{10}"}, "epp": {"idc": "1"}}}`,
		"phonedata": "US:\n  n6l:\n    pattern: '^\\d{10}'\n  epp:\n    idc: '1'\n",
	}
	for name, content := range tests {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}

		reg, err := New(WithDataFile(path))
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		n6l, err := reg.N6L("US")
		if err != nil || n6l.Pattern != `^\d{10}` {
			t.Fatalf("%s: N6L(US) = %+v,%v", name, n6l, err)
		}
	}
}

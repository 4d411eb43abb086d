package phonedata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a data file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func formatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// decodeTable reads a JSON or YAML document. JSON goes through the YAML
// decoder too so that key order is kept.
func decodeTable(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, ErrInvalidData
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrInvalidData
		}
		return nil, fmt.Errorf("phonedata: parse data: %w", err)
	}

	return tableFromNode(&doc)
}

func tableFromNode(node *yaml.Node) (*Table, error) {
	if node == nil {
		return nil, ErrInvalidData
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, ErrInvalidData
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, ErrInvalidData
	}

	entries := make([]Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("phonedata: line %d: country key must be a scalar", key.Line)
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("phonedata: entry %s is not a mapping: %w", key.Value, ErrInvalidData)
		}

		var entry Entry
		if err := value.Decode(&entry); err != nil {
			return nil, fmt.Errorf("phonedata: decode %s: %w", key.Value, err)
		}
		entry.Country = key.Value
		entries = append(entries, entry)
	}

	return NewTable(entries...)
}

// Encode writes the table in the requested format, preserving order.
func Encode(w io.Writer, t *Table, format Format) error {
	if t == nil {
		return ErrInvalidData
	}

	switch format {
	case FormatJSON:
		data, err := t.MarshalJSON()
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err = w.Write(out.Bytes())
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// MarshalJSON encodes the table as an object keyed by country code in insertion order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, code := range t.Countries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalJSONValue(code)
		if err != nil {
			return nil, err
		}
		value, err := marshalJSONValue(t.entries[code])
		if err != nil {
			return nil, fmt.Errorf("phonedata: encode %s: %w", code, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes into a zero Table. Loaded tables are immutable and
// reject it.
func (t *Table) UnmarshalJSON(data []byte) error {
	if err := t.checkZero(); err != nil {
		return err
	}
	decoded, err := decodeTable(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler with an ordered mapping node.
func (t *Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for code, entry := range t.All() {
		value := &yaml.Node{}
		if err := value.Encode(entry); err != nil {
			return nil, fmt.Errorf("phonedata: encode %s: %w", code, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: code},
			value,
		)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for a zero Table. Loaded tables
// are immutable and reject it.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if err := t.checkZero(); err != nil {
		return err
	}
	decoded, err := tableFromNode(node)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}

func (t *Table) checkZero() error {
	if t == nil {
		return fmt.Errorf("phonedata: decode into nil table: %w", ErrInvalidData)
	}
	if t.entries != nil || t.codes != nil {
		return ErrImmutableTable
	}
	return nil
}

// marshalJSONValue is json.Marshal without HTML escaping, since patterns carry '<'.
func marshalJSONValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

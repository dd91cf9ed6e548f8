// Package load reads catalogs: the declarative list of vector and matrix
// shapes that the generator turns into Go types.
//
// A catalog is decoded from YAML or JSON:
//
//	package: nums
//	vectors:
//	  - name: Vec2
//	    scalar: float32
//	    components: [x, y]
//	matrices:
//	  - name: Mat2
//	    scalar: float32
//	    rows: 2
//	    cols: 2
//
// Matrices may name their row and column vectors explicitly; otherwise the
// generator resolves them by scalar kind and arity.
package load

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Catalog is a catalog as it was loaded, before validation.
type Catalog struct {
	Package  string    `json:"package,omitempty" yaml:"package,omitempty"`
	Vectors  []*Vector `json:"vectors,omitempty" yaml:"vectors,omitempty"`
	Matrices []*Matrix `json:"matrices,omitempty" yaml:"matrices,omitempty"`
}

// Vector describes one vector shape.
type Vector struct {
	Name       string   `json:"name" yaml:"name"`
	Scalar     string   `json:"scalar" yaml:"scalar"`
	Components []string `json:"components" yaml:"components,flow"`
}

// Matrix describes one matrix shape.
type Matrix struct {
	Name      string `json:"name" yaml:"name"`
	Scalar    string `json:"scalar" yaml:"scalar"`
	Rows      int    `json:"rows" yaml:"rows"`
	Cols      int    `json:"cols" yaml:"cols"`
	RowVector string `json:"row_vector,omitempty" yaml:"row_vector,omitempty"`
	ColVector string `json:"col_vector,omitempty" yaml:"col_vector,omitempty"`
}

// Format is a catalog encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf returns the format for the given file name by its extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("load: unsupported catalog extension %q", ext)
	}
}

// File reads and decodes the catalog file at path.
func File(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read catalog: %w", err)
	}
	c, err := Parse(buf, format)
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog. Unknown fields are rejected.
func Parse(buf []byte, format Format) (*Catalog, error) {
	c := &Catalog{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	return c, nil
}

// Marshal encodes the catalog in the given format.
func (c *Catalog) Marshal(format Format) ([]byte, error) {
	switch format {
	case YAML:
		var b bytes.Buffer
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case JSON:
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, fmt.Errorf("load: unknown catalog format %q", format)
	}
}

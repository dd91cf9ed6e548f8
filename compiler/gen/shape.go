package gen

import (
	"fmt"
	"go/token"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/syssam/nums/compiler/gen/swizzle"
	"github.com/syssam/nums/schema/scalar"
)

// Arity bounds of vectors, and of matrix rows and columns.
const (
	MinArity = 2
	MaxArity = 4
)

// Shape is a generated type: a vector or a matrix.
type Shape interface {
	// Name returns the Go type name.
	Name() string
	// Scalar returns the element kind.
	Scalar() scalar.Kind
	// FileName returns the name of the file the shape is generated into.
	FileName() string
}

var (
	_ Shape = (*VectorShape)(nil)
	_ Shape = (*MatrixShape)(nil)
)

// VectorShape describes a fixed-arity vector type. It is immutable once
// constructed.
type VectorShape struct {
	name       string
	kind       scalar.Kind
	components []string
}

// NewVectorShape returns a vector shape with the given components, in order.
// Components are lowercase identifiers, unique and prefix-free, and their
// count is between MinArity and MaxArity.
func NewVectorShape(name string, kind scalar.Kind, components ...string) (*VectorShape, error) {
	if err := checkTypeName(name); err != nil {
		return nil, NewShapeError(name, "", err.Error(), nil)
	}
	if !kind.Valid() {
		return nil, NewShapeError(name, "", "invalid scalar kind", nil)
	}
	if n := len(components); n < MinArity || n > MaxArity {
		return nil, NewShapeError(name, "", fmt.Sprintf("arity %d out of range [%d, %d]", n, MinArity, MaxArity), nil)
	}
	for _, c := range components {
		if !token.IsIdentifier(c) || strings.ToLower(c) != c {
			return nil, NewShapeError(name, c, "component must be a lowercase identifier", nil)
		}
	}
	if err := swizzle.CheckAlphabet(components); err != nil {
		return nil, NewShapeError(name, "", "", err)
	}
	return &VectorShape{
		name:       name,
		kind:       kind,
		components: slices.Clone(components),
	}, nil
}

// Name returns the Go type name.
func (v *VectorShape) Name() string { return v.name }

// Scalar returns the component kind.
func (v *VectorShape) Scalar() scalar.Kind { return v.kind }

// Arity returns the number of components.
func (v *VectorShape) Arity() int { return len(v.components) }

// Components returns a copy of the component names, in order.
func (v *VectorShape) Components() []string { return slices.Clone(v.components) }

// Component returns the i-th component name.
func (v *VectorShape) Component(i int) string { return v.components[i] }

// FileName returns the name of the file the vector is generated into.
func (v *VectorShape) FileName() string { return fileName(v.name) }

// Swizzles enumerates the swizzles of arity k over the vector's components.
func (v *VectorShape) Swizzles(k int) ([]swizzle.Swizzle, error) {
	return swizzle.Enumerate(v.components, k)
}

// String implements fmt.Stringer.
func (v *VectorShape) String() string {
	return fmt.Sprintf("%s(%s, %s)", v.name, v.kind, strings.Join(v.components, ""))
}

// MatrixShape describes a matrix type stored as a sequence of row vectors.
// It is immutable once constructed.
type MatrixShape struct {
	name       string
	kind       scalar.Kind
	rows, cols int
	row, col   *VectorShape
}

// NewMatrixShape returns a rows×cols matrix shape. The row vector has arity
// cols, the column vector has arity rows, and both have the matrix's kind.
func NewMatrixShape(name string, kind scalar.Kind, rows, cols int, row, col *VectorShape) (*MatrixShape, error) {
	if err := checkTypeName(name); err != nil {
		return nil, NewShapeError(name, "", err.Error(), nil)
	}
	switch {
	case !kind.Valid():
		return nil, NewShapeError(name, "", "invalid scalar kind", nil)
	case rows < MinArity || rows > MaxArity:
		return nil, NewShapeError(name, "", fmt.Sprintf("row count %d out of range [%d, %d]", rows, MinArity, MaxArity), nil)
	case cols < MinArity || cols > MaxArity:
		return nil, NewShapeError(name, "", fmt.Sprintf("column count %d out of range [%d, %d]", cols, MinArity, MaxArity), nil)
	case row == nil:
		return nil, NewShapeError(name, "", "missing row vector", nil)
	case col == nil:
		return nil, NewShapeError(name, "", "missing column vector", nil)
	case row.Arity() != cols:
		return nil, NewShapeError(name, "", fmt.Sprintf("row vector %s has arity %d, want %d", row.Name(), row.Arity(), cols), nil)
	case col.Arity() != rows:
		return nil, NewShapeError(name, "", fmt.Sprintf("column vector %s has arity %d, want %d", col.Name(), col.Arity(), rows), nil)
	case row.Scalar() != kind:
		return nil, NewShapeError(name, "", fmt.Sprintf("row vector %s has kind %s, want %s", row.Name(), row.Scalar(), kind), nil)
	case col.Scalar() != kind:
		return nil, NewShapeError(name, "", fmt.Sprintf("column vector %s has kind %s, want %s", col.Name(), col.Scalar(), kind), nil)
	}
	return &MatrixShape{
		name: name,
		kind: kind,
		rows: rows,
		cols: cols,
		row:  row,
		col:  col,
	}, nil
}

// Name returns the Go type name.
func (m *MatrixShape) Name() string { return m.name }

// Scalar returns the element kind.
func (m *MatrixShape) Scalar() scalar.Kind { return m.kind }

// Rows returns the number of rows.
func (m *MatrixShape) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *MatrixShape) Cols() int { return m.cols }

// Square reports whether the matrix has as many rows as columns.
func (m *MatrixShape) Square() bool { return m.rows == m.cols }

// RowVector returns the shape of a row, with Cols components.
func (m *MatrixShape) RowVector() *VectorShape { return m.row }

// ColVector returns the shape of a column, with Rows components.
func (m *MatrixShape) ColVector() *VectorShape { return m.col }

// FileName returns the name of the file the matrix is generated into.
func (m *MatrixShape) FileName() string { return fileName(m.name) }

// String implements fmt.Stringer.
func (m *MatrixShape) String() string {
	return fmt.Sprintf("%s(%s, %dx%d)", m.name, m.kind, m.rows, m.cols)
}

func fileName(name string) string {
	return strings.ToLower(name) + ".go"
}

// checkTypeName reports whether name can be used as an exported Go type name.
func checkTypeName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("name %q is not a valid identifier", name)
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return fmt.Errorf("name %q is not exported", name)
	}
	return nil
}

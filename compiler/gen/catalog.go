package gen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"github.com/syssam/nums/compiler/load"
	"github.com/syssam/nums/schema/scalar"
)

// SharedFile is the name of the generated file holding declarations shared
// by all shapes of the package.
const SharedFile = "errors.go"

// Catalog is the validated set of shapes to generate, in declaration order.
// Every vector of arity n has a same-kind vector for each arity in
// [MinArity, n), so that all of its swizzles have a result type. The
// matrices are closed under transposition and multiplication: shapes
// implied by the declared ones follow them in Matrices.
type Catalog struct {
	*Config

	// Package is the resolved Go package name of the generated code.
	Package string

	Vectors  []*VectorShape
	Matrices []*MatrixShape

	names    map[string]Shape
	vectors  map[vectorKey]*VectorShape
	matrices map[matrixKey]*MatrixShape
}

type (
	vectorKey struct {
		kind  scalar.Kind
		arity int
	}
	matrixKey struct {
		kind       scalar.Kind
		rows, cols int
	}
)

// NewCatalog validates the loaded catalog and returns its shapes. All
// violations are reported together.
func NewCatalog(c *Config, l *load.Catalog) (*Catalog, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "missing config")
	}
	if l == nil {
		return nil, NewConfigError("Catalog", nil, "missing catalog")
	}
	cat := &Catalog{
		Config:   c,
		Package:  c.Package,
		names:    make(map[string]Shape),
		vectors:  make(map[vectorKey]*VectorShape),
		matrices: make(map[matrixKey]*MatrixShape),
	}
	if cat.Package == "" {
		cat.Package = l.Package
	}
	if cat.Package == "" {
		cat.Package = load.DefaultPackage
	}
	if !token.IsIdentifier(cat.Package) {
		return nil, NewConfigError("Package", cat.Package, "package must be a valid Go identifier")
	}
	var errs []error
	for _, v := range l.Vectors {
		if err := cat.addVector(v); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, cat.checkSwizzleTargets()...)
	for _, m := range l.Matrices {
		if err := cat.addMatrix(m); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		errs = cat.closeMatrices()
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) addVector(l *load.Vector) error {
	if l == nil {
		return NewShapeError("", "", "nil vector entry", nil)
	}
	kind, err := scalar.Parse(l.Scalar)
	if err != nil {
		return NewShapeError(l.Name, "", "", err)
	}
	v, err := NewVectorShape(l.Name, kind, l.Components...)
	if err != nil {
		return err
	}
	if err := c.declare(v); err != nil {
		return err
	}
	key := vectorKey{kind: kind, arity: v.Arity()}
	if prev, ok := c.vectors[key]; ok {
		return NewShapeError(v.Name(), "", fmt.Sprintf("%s already declares a %s vector of arity %d", prev.Name(), kind, v.Arity()), nil)
	}
	c.vectors[key] = v
	c.Vectors = append(c.Vectors, v)
	return nil
}

func (c *Catalog) checkSwizzleTargets() []error {
	var errs []error
	for _, v := range c.Vectors {
		for k := MinArity; k < v.Arity(); k++ {
			if c.Vector(v.Scalar(), k) == nil {
				errs = append(errs, NewShapeError(v.Name(), "", fmt.Sprintf("no %s vector of arity %d for its swizzles", v.Scalar(), k), nil))
			}
		}
	}
	return errs
}

func (c *Catalog) addMatrix(l *load.Matrix) error {
	if l == nil {
		return NewShapeError("", "", "nil matrix entry", nil)
	}
	kind, err := scalar.Parse(l.Scalar)
	if err != nil {
		return NewShapeError(l.Name, "", "", err)
	}
	row, err := c.resolve(l.Name, l.RowVector, kind, l.Cols)
	if err != nil {
		return err
	}
	col, err := c.resolve(l.Name, l.ColVector, kind, l.Rows)
	if err != nil {
		return err
	}
	m, err := NewMatrixShape(l.Name, kind, l.Rows, l.Cols, row, col)
	if err != nil {
		return err
	}
	if err := c.declare(m); err != nil {
		return err
	}
	key := matrixKey{kind: kind, rows: m.Rows(), cols: m.Cols()}
	if prev, ok := c.matrices[key]; ok {
		return NewShapeError(m.Name(), "", fmt.Sprintf("%s already declares a %s %dx%d matrix", prev.Name(), kind, m.Rows(), m.Cols()), nil)
	}
	c.matrices[key] = m
	c.Matrices = append(c.Matrices, m)
	return nil
}

// defaultMatrixPrefix names implied matrices of a kind whose declared
// matrices do not follow the conventional naming.
var defaultMatrixPrefix = map[scalar.Kind]string{
	scalar.Float32: "Mat",
	scalar.Float64: "DMat",
	scalar.Int32:   "IMat",
	scalar.Int64:   "LMat",
}

// closeMatrices adds the transpose of every matrix and the product of every
// same-kind pairing until no new shape is implied. Every unordered pair is
// visited once, when its later member is reached.
func (c *Catalog) closeMatrices() []error {
	prefixes := c.matrixPrefixes()
	var errs []error
	imply := func(by string, kind scalar.Kind, rows, cols int, row, col *VectorShape) {
		if c.Matrix(kind, rows, cols) != nil {
			return
		}
		name := load.MatrixName(prefixes[kind], rows, cols)
		m, err := NewMatrixShape(name, kind, rows, cols, row, col)
		if err == nil {
			err = c.declare(m)
		}
		if err != nil {
			var se *ShapeError
			if errors.As(err, &se) {
				se.Message = fmt.Sprintf("implied by %s: %s", by, se.Message)
			}
			errs = append(errs, err)
			return
		}
		c.matrices[matrixKey{kind: kind, rows: rows, cols: cols}] = m
		c.Matrices = append(c.Matrices, m)
		c.Log().Debug("implied matrix", "matrix", name, "by", by)
	}
	for i := 0; i < len(c.Matrices) && len(errs) == 0; i++ {
		m := c.Matrices[i]
		imply("transpose of "+m.Name(), m.Scalar(), m.Cols(), m.Rows(), m.ColVector(), m.RowVector())
		for j := 0; j <= i; j++ {
			r := c.Matrices[j]
			if r.Scalar() != m.Scalar() {
				continue
			}
			if m.Cols() == r.Rows() {
				imply(m.Name()+" * "+r.Name(), m.Scalar(), m.Rows(), r.Cols(), r.RowVector(), m.ColVector())
			}
			if r.Cols() == m.Rows() {
				imply(r.Name()+" * "+m.Name(), m.Scalar(), r.Rows(), m.Cols(), m.RowVector(), r.ColVector())
			}
		}
	}
	return errs
}

// matrixPrefixes returns the name prefix of implied matrices per kind: the
// prefix of the first declared matrix named like "Mat3" or "Mat2x3", or
// the default one.
func (c *Catalog) matrixPrefixes() map[scalar.Kind]string {
	prefixes := make(map[scalar.Kind]string, len(defaultMatrixPrefix))
	for _, m := range c.Matrices {
		if _, ok := prefixes[m.Scalar()]; ok {
			continue
		}
		suffix := load.MatrixName("", m.Rows(), m.Cols())
		if p, ok := strings.CutSuffix(m.Name(), suffix); ok && p != "" && !unicode.IsDigit(rune(p[len(p)-1])) {
			prefixes[m.Scalar()] = p
		}
	}
	for k, p := range defaultMatrixPrefix {
		if _, ok := prefixes[k]; !ok {
			prefixes[k] = p
		}
	}
	return prefixes
}

// resolve returns the vector named by an explicit reference, or the
// same-kind vector of the given arity.
func (c *Catalog) resolve(matrix, ref string, kind scalar.Kind, arity int) (*VectorShape, error) {
	if ref == "" {
		if v := c.Vector(kind, arity); v != nil {
			return v, nil
		}
		return nil, NewShapeError(matrix, "", fmt.Sprintf("no %s vector of arity %d", kind, arity), nil)
	}
	v, ok := c.names[ref].(*VectorShape)
	if !ok {
		return nil, NewShapeError(matrix, "", fmt.Sprintf("unknown vector %q", ref), nil)
	}
	return v, nil
}

// declare registers the shape name and its file name.
func (c *Catalog) declare(s Shape) error {
	if _, ok := c.names[s.Name()]; ok {
		return NewShapeError(s.Name(), "", "duplicate shape name", nil)
	}
	if s.FileName() == SharedFile {
		return NewShapeError(s.Name(), "", fmt.Sprintf("file name collides with %s", SharedFile), nil)
	}
	for _, prev := range c.names {
		if prev.FileName() == s.FileName() {
			return NewShapeError(s.Name(), "", fmt.Sprintf("file name %s collides with %s", s.FileName(), prev.Name()), nil)
		}
	}
	c.names[s.Name()] = s
	return nil
}

// Shapes returns all shapes: vectors first, then matrices, each in
// declaration order.
func (c *Catalog) Shapes() []Shape {
	shapes := make([]Shape, 0, len(c.Vectors)+len(c.Matrices))
	for _, v := range c.Vectors {
		shapes = append(shapes, v)
	}
	for _, m := range c.Matrices {
		shapes = append(shapes, m)
	}
	return shapes
}

// Lookup returns the shape with the given name.
func (c *Catalog) Lookup(name string) (Shape, bool) {
	s, ok := c.names[name]
	return s, ok
}

// Vector returns the vector of the given kind and arity, or nil.
func (c *Catalog) Vector(kind scalar.Kind, arity int) *VectorShape {
	return c.vectors[vectorKey{kind: kind, arity: arity}]
}

// Matrix returns the matrix of the given kind and dimensions, or nil.
func (c *Catalog) Matrix(kind scalar.Kind, rows, cols int) *MatrixShape {
	return c.matrices[matrixKey{kind: kind, rows: rows, cols: cols}]
}

// Transpose returns the shape of the transpose of m, or nil if m is not a
// matrix of the catalog.
func (c *Catalog) Transpose(m *MatrixShape) *MatrixShape {
	return c.Matrix(m.Scalar(), m.Cols(), m.Rows())
}

// Pairings returns the multiplications with m on the left: one for every
// same-kind matrix whose row count equals m's column count. Pairings follow
// the order of the right-hand matrices. The product shape of each is part of
// the catalog; a pairing that fails validation is returned as a
// *PairingError.
func (c *Catalog) Pairings(m *MatrixShape) ([]*Pairing, error) {
	var pairs []*Pairing
	for _, r := range c.Matrices {
		if r.Scalar() != m.Scalar() || r.Rows() != m.Cols() {
			continue
		}
		p, err := NewPairing(m, r, c.Matrix(m.Scalar(), m.Rows(), r.Cols()))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Conversion is a conversion from a vector to a same-arity vector of
// another scalar kind.
type Conversion struct {
	Target *VectorShape
	Kind   scalar.Conversion
}

// Conversions returns the conversions of v to every other same-arity
// vector, in declaration order.
func (c *Catalog) Conversions(v *VectorShape) []Conversion {
	var convs []Conversion
	for _, t := range c.Vectors {
		if t == v || t.Arity() != v.Arity() {
			continue
		}
		if k := scalar.Convert(v.Scalar(), t.Scalar()); k != scalar.None {
			convs = append(convs, Conversion{Target: t, Kind: k})
		}
	}
	return convs
}

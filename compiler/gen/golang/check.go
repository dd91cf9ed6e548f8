package golang

import (
	"fmt"
	"go/types"

	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/gen/swizzle"
)

// scope records declared identifiers and reports the first redeclaration.
type scope struct {
	owner string
	names map[string]string
	err   error
}

func newScope(owner string) *scope {
	return &scope{owner: owner, names: make(map[string]string)}
}

func (s *scope) declare(name, by string) {
	if s.err != nil {
		return
	}
	if prev, ok := s.names[name]; ok {
		s.err = gen.NewShapeError(s.owner, "", fmt.Sprintf("identifier %s of %s collides with %s", name, by, prev), nil)
		return
	}
	s.names[name] = by
}

// check rejects catalogs whose generated Go identifiers collide: members of
// one type, package-level declarations, or component names that shadow
// predeclared identifiers.
func check(h gen.GeneratorHelper) error {
	c := h.Catalog()
	pkg := newScope(h.Pkg())
	pkg.declare(errIndexOutOfRange, gen.SharedFile)
	pkg.declare(indexErrorType, gen.SharedFile)
	for _, v := range c.Vectors {
		for _, comp := range v.Components() {
			if types.Universe.Lookup(comp) != nil {
				return gen.NewShapeError(v.Name(), comp, "component shadows a predeclared identifier", nil)
			}
		}
		pkg.declare(v.Name(), "type "+v.Name())
		for _, name := range vectorFuncs(v) {
			pkg.declare(name, "constructors of "+v.Name())
		}
		if err := checkVector(h, v); err != nil {
			return err
		}
	}
	for _, m := range c.Matrices {
		pkg.declare(m.Name(), "type "+m.Name())
		for _, name := range matrixFuncs(m) {
			pkg.declare(name, "constructors of "+m.Name())
		}
		if err := checkMatrix(h, m); err != nil {
			return err
		}
	}
	return pkg.err
}

// vectorFuncs returns the package-level functions generated for v.
func vectorFuncs(v *gen.VectorShape) []string {
	names := []string{
		"New" + v.Name(),
		v.Name() + "FromArray",
		funcName(v.Name(), "zero"),
		funcName(v.Name(), "one"),
	}
	for _, c := range v.Components() {
		names = append(names, funcName(v.Name(), "unit", c))
	}
	return names
}

// matrixFuncs returns the package-level functions generated for m.
func matrixFuncs(m *gen.MatrixShape) []string {
	names := []string{"New" + m.Name(), m.Name() + "FromValues"}
	if m.Square() {
		names = append(names, funcName(m.Name(), "identity"))
	}
	return names
}

func checkVector(h gen.GeneratorHelper, v *gen.VectorShape) error {
	s := newScope(v.Name())
	for _, f := range fieldNames(v) {
		s.declare(f, "field")
	}
	for _, m := range []string{
		"Array", "Sum", "ByteSize", "SqLength", "Length", "Normalized", "At", "SetAt",
		"Add", "Sub", "Mul", "Div", "MulScalar", "DivScalar", "Neg",
		"Dot", "DistTo", "AngleTo", "Lerp", "Reflect", "String",
	} {
		s.declare(m, "method")
	}
	setters := h.FeatureEnabled(gen.FeatureSwizzleSetters.Name)
	all, err := swizzle.All(v.Components())
	if err != nil {
		return gen.NewShapeError(v.Name(), "", "", err)
	}
	for _, sw := range all {
		name := swizzleName(sw)
		s.declare(name, "swizzle")
		if setters && sw.Writable() {
			s.declare("Set"+name, "swizzle setter")
		}
	}
	if h.FeatureEnabled(gen.FeatureConversions.Name) {
		for _, conv := range h.Catalog().Conversions(v) {
			name, _ := conversionName(conv)
			s.declare(name, "conversion")
		}
	}
	return s.err
}

func checkMatrix(h gen.GeneratorHelper, m *gen.MatrixShape) error {
	s := newScope(m.Name())
	for i := range m.Rows() {
		s.declare(rowField(i), "field")
		for j := range m.Cols() {
			s.declare(elemMethod(i, j), "element getter")
			s.declare("Set"+elemMethod(i, j), "element setter")
		}
	}
	for j := range m.Cols() {
		s.declare(colMethod(j), "column getter")
		s.declare("Set"+colMethod(j), "column setter")
	}
	for _, name := range []string{"Transpose", "MulVec", "String"} {
		s.declare(name, "method")
	}
	pairs, err := h.Catalog().Pairings(m)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		s.declare("Mul"+p.Right.Name(), "product")
	}
	return s.err
}

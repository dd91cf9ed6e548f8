package golang

import (
	"fmt"
	"strings"

	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/gen/emit"
	"github.com/syssam/nums/schema/scalar"
)

// vector holds the naming context of one vector session.
type vector struct {
	h      gen.GeneratorHelper
	w      *emit.Writer
	v      *gen.VectorShape
	name   string
	typ    string
	fields []string
}

// genVector writes the declarations of a vector file.
func genVector(h gen.GeneratorHelper, w *emit.Writer, v *gen.VectorShape) error {
	g := &vector{
		h:      h,
		w:      w,
		v:      v,
		name:   v.Name(),
		typ:    v.Scalar().String(),
		fields: fieldNames(v),
	}
	genImports(w, "fmt", "math")
	g.genType()
	g.genConstructors()
	g.genConstants()
	g.genDerived()
	g.genIndexer()
	if err := g.genSwizzles(); err != nil {
		return err
	}
	g.genArithmetic()
	g.genGeometry()
	if h.FeatureEnabled(gen.FeatureConversions.Name) {
		g.genConversions()
	}
	g.genString()
	return w.Err()
}

func (g *vector) genType() {
	g.w.Doc("%s is a %d component vector of %s.", g.name, g.v.Arity(), g.typ)
	g.w.Open("type %s struct", g.name)
	for i, f := range g.fields {
		g.w.Doc("%s is the %s component.", f, ordinal(i))
		g.w.Line("%s %s", f, g.typ)
	}
	g.w.Close()
	g.w.Blank()
}

// each renders expr for every field and joins the results with sep.
func (g *vector) each(sep string, expr func(f string) string) string {
	return mapJoin(g.fields, sep, func(_ int, f string) string { return expr(f) })
}

// literal returns a composite literal of the vector with one element per
// field.
func (g *vector) literal(elem func(f string) string) string {
	return g.name + "{" + g.each(", ", elem) + "}"
}

func (g *vector) genConstructors() {
	w := g.w
	w.Region("constructors")
	params := strings.Join(g.v.Components(), ", ")
	fn(w, fmt.Sprintf("New%s returns a vector with the given components.", g.name),
		fmt.Sprintf("func New%s(%s %s) %s", g.name, params, g.typ, g.name),
		fmt.Sprintf("return %s{%s}", g.name, params))

	n := g.v.Arity()
	indices := make([]string, n)
	for i := range indices {
		indices[i] = fmt.Sprintf("a[%d]", i)
	}
	fn(w, fmt.Sprintf("%sFromArray returns the vector whose components are the elements of a, in order.", g.name),
		fmt.Sprintf("func %sFromArray(a [%d]%s) %s", g.name, n, g.typ, g.name),
		fmt.Sprintf("return %s{%s}", g.name, strings.Join(indices, ", ")))
	fn(w, "Array returns the components as an array, in order.",
		fmt.Sprintf("func (v %s) Array() [%d]%s", g.name, n, g.typ),
		fmt.Sprintf("return [%d]%s{%s}", n, g.typ, g.each(", ", func(f string) string { return "v." + f })))
	w.EndRegion()
}

func (g *vector) genConstants() {
	w := g.w
	w.Region("constants")
	fn(w, fmt.Sprintf("%s returns the vector with all components zero.", funcName(g.name, "zero")),
		fmt.Sprintf("func %s() %s", funcName(g.name, "zero"), g.name),
		fmt.Sprintf("return %s{}", g.name))
	fn(w, fmt.Sprintf("%s returns the vector with all components one.", funcName(g.name, "one")),
		fmt.Sprintf("func %s() %s", funcName(g.name, "one"), g.name),
		"return "+g.literal(func(string) string { return "1" }))
	for i, c := range g.v.Components() {
		name := funcName(g.name, "unit", c)
		fn(w, fmt.Sprintf("%s returns the unit vector along the %s component.", name, ordinal(i)),
			fmt.Sprintf("func %s() %s", name, g.name),
			fmt.Sprintf("return %s{%s: 1}", g.name, g.fields[i]))
	}
	w.EndRegion()
}

func (g *vector) genDerived() {
	w := g.w
	w.Region("derived")
	fn(w, "Sum returns the sum of the components.",
		fmt.Sprintf("func (v %s) Sum() %s", g.name, g.typ),
		"return "+g.each(" + ", func(f string) string { return "v." + f }))
	fn(w, "ByteSize returns the size of the vector in bytes.",
		fmt.Sprintf("func (%s) ByteSize() int", g.name),
		fmt.Sprintf("return %d * %d", g.v.Scalar().Size(), g.v.Arity()))
	fn(w, "SqLength returns the squared length of the vector.",
		fmt.Sprintf("func (v %s) SqLength() %s", g.name, g.typ),
		"return v.Dot(v)")
	fn(w, "Length returns the length of the vector.",
		fmt.Sprintf("func (v %s) Length() %s", g.name, g.typ),
		"return "+fromFloat64(g.v.Scalar(), "math.Sqrt("+toFloat64(g.v.Scalar(), "v.Dot(v)")+")"))
	normalized := "Normalized returns the vector divided by its length."
	if g.v.Scalar().Integer() {
		normalized += " The vector must be non-zero: integer division by a zero length panics."
	}
	fn(w, normalized,
		fmt.Sprintf("func (v %s) Normalized() %s", g.name, g.name),
		"return v.DivScalar(v.Length())")
	w.EndRegion()
}

func (g *vector) genIndexer() {
	w := g.w
	n := g.v.Arity()
	w.Region("indexer")

	w.Doc("At returns the i-th component. It returns an *IndexError if i is not in [0, %d).", n)
	w.Open("func (v %s) At(i int) (%s, error)", g.name, g.typ)
	w.Open("switch i")
	for i, f := range g.fields {
		w.Line("case %d:", i)
		w.Line("return v.%s, nil", f)
	}
	w.Close()
	w.Line("return 0, %s", indexError(g.name, n))
	w.Close()
	w.Blank()

	w.Doc("SetAt sets the i-th component. It returns an *IndexError if i is not in [0, %d).", n)
	w.Open("func (v *%s) SetAt(i int, s %s) error", g.name, g.typ)
	w.Open("switch i")
	for i, f := range g.fields {
		w.Line("case %d:", i)
		w.Line("v.%s = s", f)
	}
	w.Line("default:")
	w.Line("return %s", indexError(g.name, n))
	w.Close()
	w.Line("return nil")
	w.Close()
	w.Blank()
	w.EndRegion()
}

func indexError(typ string, n int) string {
	return fmt.Sprintf("&IndexError{Type: %q, Index: i, Len: %d}", typ, n)
}

// genSwizzles writes one getter per swizzle of every arity from 2 to the
// vector's arity, and a setter for each read-write one.
func (g *vector) genSwizzles() error {
	w := g.w
	c := g.h.Catalog()
	setters := g.h.FeatureEnabled(gen.FeatureSwizzleSetters.Name)
	w.Region("swizzles")
	for k := gen.MinArity; k <= g.v.Arity(); k++ {
		target := c.Vector(g.v.Scalar(), k)
		if target == nil {
			return gen.NewShapeError(g.name, "", fmt.Sprintf("no %s vector of arity %d for its swizzles", g.v.Scalar(), k), nil)
		}
		swizzles, err := g.v.Swizzles(k)
		if err != nil {
			return err
		}
		targetFields := fieldNames(target)
		for _, sw := range swizzles {
			name := swizzleName(sw)
			elems := make([]string, k)
			fields := make([]string, k)
			for pos, idx := range sw.Indices {
				elems[pos] = "v." + g.fields[idx]
				fields[pos] = g.fields[idx]
			}
			tuple := "(" + strings.Join(fields, ", ") + ")"
			w.Doc("%s returns the %s %s.", name, target.Name(), tuple)
			w.Open("func (v %s) %s() %s", g.name, name, target.Name())
			w.Line("return %s{%s}", target.Name(), strings.Join(elems, ", "))
			w.Close()
			w.Blank()
			if !setters || !sw.Writable() {
				continue
			}
			w.Doc("Set%s sets %s to the components of s, in order.", name, tuple)
			w.Open("func (v *%s) Set%s(s %s)", g.name, name, target.Name())
			for pos, idx := range sw.Indices {
				w.Line("v.%s = s.%s", g.fields[idx], targetFields[pos])
			}
			w.Close()
			w.Blank()
		}
	}
	w.EndRegion()
	return nil
}

func (g *vector) genArithmetic() {
	w := g.w
	w.Region("arithmetic")
	for _, op := range []struct{ name, sym, doc string }{
		{"Add", "+", "Add returns the componentwise sum of v and o."},
		{"Sub", "-", "Sub returns the componentwise difference of v and o."},
		{"Mul", "*", "Mul returns the componentwise product of v and o."},
		{"Div", "/", "Div returns the componentwise quotient of v and o."},
	} {
		fn(w, op.doc,
			fmt.Sprintf("func (v %s) %s(o %s) %s", g.name, op.name, g.name, g.name),
			"return "+g.literal(func(f string) string { return fmt.Sprintf("v.%s %s o.%s", f, op.sym, f) }))
	}
	fn(w, "MulScalar returns v with every component multiplied by s.",
		fmt.Sprintf("func (v %s) MulScalar(s %s) %s", g.name, g.typ, g.name),
		"return "+g.literal(func(f string) string { return "v." + f + " * s" }))
	fn(w, "DivScalar returns v with every component divided by s.",
		fmt.Sprintf("func (v %s) DivScalar(s %s) %s", g.name, g.typ, g.name),
		"return "+g.literal(func(f string) string { return "v." + f + " / s" }))
	fn(w, "Neg returns v with every component negated.",
		fmt.Sprintf("func (v %s) Neg() %s", g.name, g.name),
		"return "+g.literal(func(f string) string { return "-v." + f }))
	w.EndRegion()
}

func (g *vector) genGeometry() {
	w := g.w
	k := g.v.Scalar()
	w.Region("geometry")
	fn(w, "Dot returns the dot product of v and o.",
		fmt.Sprintf("func (v %s) Dot(o %s) %s", g.name, g.name, g.typ),
		"return "+g.each(" + ", func(f string) string { return "v." + f + "*o." + f }))
	fn(w, "DistTo returns the distance between v and o.",
		fmt.Sprintf("func (v %s) DistTo(o %s) %s", g.name, g.name, g.typ),
		"return o.Sub(v).Length()")
	fn(w, "AngleTo returns the angle between v and o, in radians.",
		fmt.Sprintf("func (v %s) AngleTo(o %s) %s", g.name, g.name, g.typ),
		"return "+fromFloat64(k, fmt.Sprintf("math.Acos(%s / (%s * %s))",
			toFloat64(k, "v.Dot(o)"), toFloat64(k, "v.Length()"), toFloat64(k, "o.Length()"))))
	fn(w, "Lerp returns the linear interpolation between v and o at t.",
		fmt.Sprintf("func (v %s) Lerp(o %s, t %s) %s", g.name, g.name, g.typ, g.name),
		"return v.Add(o.Sub(v).MulScalar(t))")
	fn(w, "Reflect returns v reflected about the given normal.",
		fmt.Sprintf("func (v %s) Reflect(n %s) %s", g.name, g.name, g.name),
		"return v.Sub(n.MulScalar(2).MulScalar(v.Dot(n) / n.Dot(n)))")
	w.EndRegion()
}

func (g *vector) genConversions() {
	convs := g.h.Catalog().Conversions(g.v)
	if len(convs) == 0 {
		return
	}
	w := g.w
	w.Region("conversions")
	for _, conv := range convs {
		t := conv.Target
		tk := t.Scalar().String()
		elems := g.each(", ", func(f string) string { return tk + "(v." + f + ")" })
		name, doc := conversionName(conv)
		if conv.Kind == scalar.Narrowing && scalar.Truncates(g.v.Scalar(), t.Scalar()) {
			doc += " Each component is truncated toward zero."
		}
		fn(w, doc,
			fmt.Sprintf("func (v %s) %s() %s", g.name, name, t.Name()),
			fmt.Sprintf("return %s{%s}", t.Name(), elems))
	}
	w.EndRegion()
}

// conversionName returns the method name and documentation of a conversion.
func conversionName(conv gen.Conversion) (string, string) {
	t := conv.Target.Name()
	if conv.Kind == scalar.Narrowing {
		name := "Narrow" + t
		return name, fmt.Sprintf("%s converts the vector to %s. The conversion may lose range or precision.", name, t)
	}
	return t, fmt.Sprintf("%s converts the vector to %s.", t, t)
}

func (g *vector) genString() {
	verbs := strings.Repeat("%v, ", g.v.Arity())
	format := "(" + strings.TrimSuffix(verbs, ", ") + ")"
	fn(g.w, "String implements fmt.Stringer.",
		fmt.Sprintf("func (v %s) String() string", g.name),
		fmt.Sprintf("return fmt.Sprintf(%q, %s)", format, g.each(", ", func(f string) string { return "v." + f })))
}

// fn writes a function with a single-statement body.
func fn(w *emit.Writer, doc, header, body string) {
	if doc != "" {
		w.Doc("%s", doc)
	}
	w.Open("%s", header)
	w.Line("%s", body)
	w.Close()
	w.Blank()
}

// genImports writes the import declaration.
func genImports(w *emit.Writer, paths ...string) {
	w.Line("import (")
	for _, p := range paths {
		w.Line("\t%q", p)
	}
	w.Line(")")
	w.Blank()
}

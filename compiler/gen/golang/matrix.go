package golang

import (
	"fmt"
	"strings"

	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/gen/emit"
)

// matrix holds the naming context of one matrix session.
type matrix struct {
	h         gen.GeneratorHelper
	w         *emit.Writer
	m         *gen.MatrixShape
	name      string
	typ       string
	row, col  *gen.VectorShape
	rowFields []string
	colFields []string
}

// genMatrix writes the declarations of a matrix file.
func genMatrix(h gen.GeneratorHelper, w *emit.Writer, m *gen.MatrixShape) error {
	g := newMatrix(h, w, m)
	genImports(w, "fmt")
	g.genType()
	g.genConstructors()
	g.genColumns()
	g.genElements()
	if err := g.genProducts(); err != nil {
		return err
	}
	g.genString()
	return w.Err()
}

func newMatrix(h gen.GeneratorHelper, w *emit.Writer, m *gen.MatrixShape) *matrix {
	return &matrix{
		h:         h,
		w:         w,
		m:         m,
		name:      m.Name(),
		typ:       m.Scalar().String(),
		row:       m.RowVector(),
		col:       m.ColVector(),
		rowFields: fieldNames(m.RowVector()),
		colFields: fieldNames(m.ColVector()),
	}
}

// rows returns the row indices, zero-based.
func (g *matrix) rows() []int { return indices(g.m.Rows()) }

// cols returns the column indices, zero-based.
func (g *matrix) cols() []int { return indices(g.m.Cols()) }

func indices(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func (g *matrix) genType() {
	w := g.w
	w.Doc("%s is a %d by %d matrix of %s, stored as %d row vectors.", g.name, g.m.Rows(), g.m.Cols(), g.typ, g.m.Rows())
	w.Open("type %s struct", g.name)
	for _, i := range g.rows() {
		w.Doc("%s is the %s row.", rowField(i), ordinal(i))
		w.Line("%s %s", rowField(i), g.row.Name())
	}
	w.Close()
	w.Blank()
}

func (g *matrix) genConstructors() {
	w := g.w
	w.Region("constructors")
	params := mapJoin(g.rows(), ", ", func(_ int, i int) string { return strings.ToLower(rowField(i)) })
	fn(w, fmt.Sprintf("New%s returns the matrix with the given rows.", g.name),
		fmt.Sprintf("func New%s(%s %s) %s", g.name, params, g.row.Name(), g.name),
		fmt.Sprintf("return %s{%s}", g.name, params))

	var values []string
	for _, i := range g.rows() {
		for _, j := range g.cols() {
			values = append(values, strings.ToLower(elemMethod(i, j)))
		}
	}
	w.Doc("%sFromValues returns the matrix with the given elements, in row-major order.", g.name)
	w.Open("func %sFromValues(%s %s) %s", g.name, strings.Join(values, ", "), g.typ, g.name)
	w.Open("return %s", g.name)
	for _, i := range g.rows() {
		w.Line("%s{%s},", g.row.Name(), strings.Join(values[i*g.m.Cols():(i+1)*g.m.Cols()], ", "))
	}
	w.Close()
	w.Close()
	w.Blank()

	if g.m.Square() {
		name := funcName(g.name, "identity")
		w.Doc("%s returns the identity matrix.", name)
		w.Open("func %s() %s", name, g.name)
		w.Open("return %s", g.name)
		for _, i := range g.rows() {
			w.Line("%s{%s},", g.row.Name(), mapJoin(g.cols(), ", ", func(_ int, j int) string {
				if i == j {
					return "1"
				}
				return "0"
			}))
		}
		w.Close()
		w.Close()
		w.Blank()
	}
	w.EndRegion()
}

func (g *matrix) genColumns() {
	w := g.w
	w.Region("columns")
	for _, j := range g.cols() {
		fn(w, fmt.Sprintf("%s returns the %s column.", colMethod(j), ordinal(j)),
			fmt.Sprintf("func (m %s) %s() %s", g.name, colMethod(j), g.col.Name()),
			fmt.Sprintf("return %s{%s}", g.col.Name(), mapJoin(g.rows(), ", ", func(_ int, i int) string {
				return fmt.Sprintf("m.%s.%s", rowField(i), g.rowFields[j])
			})))

		w.Doc("Set%s sets the %s column.", colMethod(j), ordinal(j))
		w.Open("func (m *%s) Set%s(c %s)", g.name, colMethod(j), g.col.Name())
		for _, i := range g.rows() {
			w.Line("m.%s.%s = c.%s", rowField(i), g.rowFields[j], g.colFields[i])
		}
		w.Close()
		w.Blank()
	}
	w.EndRegion()
}

func (g *matrix) genElements() {
	w := g.w
	w.Region("elements")
	for _, i := range g.rows() {
		for _, j := range g.cols() {
			name := elemMethod(i, j)
			fn(w, fmt.Sprintf("%s returns the element in the %s row and the %s column.", name, ordinal(i), ordinal(j)),
				fmt.Sprintf("func (m %s) %s() %s", g.name, name, g.typ),
				fmt.Sprintf("return m.%s.%s", rowField(i), g.rowFields[j]))
			fn(w, fmt.Sprintf("Set%s sets the element in the %s row and the %s column.", name, ordinal(i), ordinal(j)),
				fmt.Sprintf("func (m *%s) Set%s(s %s)", g.name, name, g.typ),
				fmt.Sprintf("m.%s.%s = s", rowField(i), g.rowFields[j]))
		}
	}
	w.EndRegion()
}

func (g *matrix) genProducts() error {
	w := g.w
	c := g.h.Catalog()
	t := c.Transpose(g.m)
	if t == nil {
		return gen.NewShapeError(g.name, "", fmt.Sprintf("no %dx%d matrix for its transpose", g.m.Cols(), g.m.Rows()), nil)
	}
	pairs, err := c.Pairings(g.m)
	if err != nil {
		return err
	}
	w.Region("products")
	fn(w, fmt.Sprintf("Transpose returns the %d by %d transpose of the matrix.", t.Rows(), t.Cols()),
		fmt.Sprintf("func (m %s) Transpose() %s", g.name, t.Name()),
		fmt.Sprintf("return %s{%s}", t.Name(), mapJoin(g.cols(), ", ", func(_ int, j int) string {
			return "m." + colMethod(j) + "()"
		})))

	fn(w, "MulVec returns the product of the matrix and the column vector v.",
		fmt.Sprintf("func (m %s) MulVec(v %s) %s", g.name, g.row.Name(), g.col.Name()),
		fmt.Sprintf("return %s{%s}", g.col.Name(), mapJoin(g.rows(), ", ", func(_ int, i int) string {
			return "m." + rowField(i) + ".Dot(v)"
		})))

	for _, p := range pairs {
		if err := g.genMulMat(p); err != nil {
			return err
		}
	}
	w.EndRegion()
	return nil
}

// genMulMat writes the product with the right-hand matrix of the pairing.
// Element (i, k) of the result is the dot product of row i and column k.
func (g *matrix) genMulMat(p *gen.Pairing) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Left != g.m {
		return gen.NewPairingError(p.Left.Name(), p.Right.Name(), fmt.Sprintf("left operand is not %s", g.name), nil)
	}
	w := g.w
	res := p.Result
	w.Doc("Mul%s returns the matrix product of m and o.", p.Right.Name())
	w.Open("func (m %s) Mul%s(o %s) %s", g.name, p.Right.Name(), p.Right.Name(), res.Name())
	w.Open("return %s", res.Name())
	for _, i := range g.rows() {
		w.Line("%s{%s},", res.RowVector().Name(), mapJoin(indices(p.Right.Cols()), ", ", func(_ int, k int) string {
			return fmt.Sprintf("m.%s.Dot(o.%s())", rowField(i), colMethod(k))
		}))
	}
	w.Close()
	w.Close()
	w.Blank()
	return nil
}

func (g *matrix) genString() {
	format := "[" + strings.TrimSuffix(strings.Repeat("%v, ", g.m.Rows()), ", ") + "]"
	fn(g.w, "String implements fmt.Stringer.",
		fmt.Sprintf("func (m %s) String() string", g.name),
		fmt.Sprintf("return fmt.Sprintf(%q, %s)", format, mapJoin(g.rows(), ", ", func(_ int, i int) string {
			return "m." + rowField(i)
		})))
}

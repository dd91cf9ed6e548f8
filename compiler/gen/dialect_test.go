package gen

import (
	"errors"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/nums/compiler/gen/emit"
)

// =============================================================================
// Interface Compliance Tests
// =============================================================================

// stubDialect implements MinimalDialect with a struct declaration per shape.
type stubDialect struct {
	helper GeneratorHelper

	// failVector fails the session of the named vector.
	failVector string
	// unbalanced leaves a block open in every matrix session.
	unbalanced bool
}

func (d *stubDialect) Name() string { return "stub" }

func (d *stubDialect) GenVector(w *emit.Writer, v *VectorShape) error {
	if v.Name() == d.failVector {
		return errors.New("stub: vector failed")
	}
	w.Doc("%s is a vector.", v.Name())
	w.Open("type %s struct", v.Name())
	for _, c := range v.Components() {
		w.Line("%s %s", c, v.Scalar())
	}
	w.Close()
	return nil
}

func (d *stubDialect) GenMatrix(w *emit.Writer, m *MatrixShape) error {
	w.Region("rows")
	w.Open("type %s struct", m.Name())
	w.Line("rows [%d]%s", m.Rows(), m.RowVector().Name())
	if !d.unbalanced {
		w.Close()
	}
	w.EndRegion()
	return nil
}

func (d *stubDialect) GenPackage() *jen.File {
	f := jen.NewFile(d.helper.Pkg())
	f.Var().Id("shapes").Op("=").Lit(len(d.helper.Catalog().Shapes()))
	return f
}

// checkingDialect implements MinimalDialect and Checker.
type checkingDialect struct {
	stubDialect
	err error
}

func (d *checkingDialect) Check() error { return d.err }

func TestMinimalDialectInterface(t *testing.T) {
	var _ MinimalDialect = &stubDialect{}

	t.Run("composes the generators", func(t *testing.T) {
		var d MinimalDialect = &stubDialect{}

		var _ VectorGenerator = d
		var _ MatrixGenerator = d
		var _ PackageGenerator = d
		assert.Equal(t, "stub", d.Name())
	})
}

func TestGeneratorHelperInterface(t *testing.T) {
	var _ GeneratorHelper = &SourceGenerator{}
}

// TestCapabilityDetection verifies type assertion for optional capabilities.
func TestCapabilityDetection(t *testing.T) {
	t.Run("Checker is optional", func(t *testing.T) {
		var d any = &stubDialect{}

		_, ok := d.(MinimalDialect)
		assert.True(t, ok)

		_, ok = d.(Checker)
		assert.False(t, ok)
	})

	t.Run("Checker is detected by WithDialect", func(t *testing.T) {
		d := &checkingDialect{}
		g := &SourceGenerator{}
		g.WithDialect(d)

		assert.Same(t, d, g.dialect)
		assert.Same(t, d, g.checker)
	})

	t.Run("nil dialect is ignored", func(t *testing.T) {
		g := &SourceGenerator{}
		g.WithDialect(nil)
		assert.Nil(t, g.dialect)
	})
}

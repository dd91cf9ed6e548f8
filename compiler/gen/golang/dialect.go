// Package golang provides Go dialect code generation for catalogs of vector
// and matrix shapes.
//
// This package implements the gen.MinimalDialect interface and the optional
// gen.Checker.
//
// Usage:
//
//	import (
//	    "github.com/syssam/nums/compiler/gen"
//	    "github.com/syssam/nums/compiler/gen/golang"
//	)
//
//	generator := gen.NewSourceGenerator(catalog, outDir)
//	dialect := golang.NewDialect(generator)
//	generator.WithDialect(dialect)
//	generator.Generate(ctx)
//
// Generated code structure:
//
//	{output}/
//	├── errors.go    # Package doc, ErrIndexOutOfRange, IndexError
//	├── vec3.go      # Vec3 struct, constructors, swizzles, arithmetic
//	└── mat2x3.go    # Mat2x3 struct, columns, elements, products
package golang

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/gen/emit"
)

// Generate is a convenience function to generate the Go package of a
// catalog. This is the recommended entry point for code generation.
//
// Hooks registered in c.Config.Hooks wrap the generator, first hook
// outermost.
//
// Example:
//
//	import "github.com/syssam/nums/compiler/gen/golang"
//	err := golang.Generate(ctx, catalog)
func Generate(ctx context.Context, c *gen.Catalog) error {
	if c.Config == nil || c.Config.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}

	base := gen.GenerateFunc(func(c *gen.Catalog) error {
		generator := gen.NewSourceGenerator(c, c.Config.Target)
		generator.WithDialect(NewDialect(generator))
		return generator.Generate(ctx)
	})
	return c.Config.Wrap(base).Generate(c)
}

// Dialect implements gen.MinimalDialect for Go.
type Dialect struct {
	helper gen.GeneratorHelper
}

var (
	_ gen.MinimalDialect = (*Dialect)(nil)
	_ gen.Checker        = (*Dialect)(nil)
)

// NewDialect creates a new Go dialect generator.
// The helper parameter should be a *gen.SourceGenerator.
func NewDialect(helper gen.GeneratorHelper) *Dialect {
	return &Dialect{helper: helper}
}

// Name returns the dialect name.
func (d *Dialect) Name() string {
	return "go"
}

// GenVector generates the vector file ({vector}.go).
// Includes: struct, constructors, constants, indexer, swizzles,
// arithmetic, geometry, conversions.
func (d *Dialect) GenVector(w *emit.Writer, v *gen.VectorShape) error {
	return genVector(d.helper, w, v)
}

// GenMatrix generates the matrix file ({matrix}.go).
// Includes: struct, constructors, columns, elements, transpose, products.
func (d *Dialect) GenMatrix(w *emit.Writer, m *gen.MatrixShape) error {
	return genMatrix(d.helper, w, m)
}

// GenPackage generates the shared file (errors.go).
func (d *Dialect) GenPackage() *jen.File {
	return genPackage(d.helper)
}

// Check reports identifier collisions in the generated package.
func (d *Dialect) Check() error {
	return check(d.helper)
}

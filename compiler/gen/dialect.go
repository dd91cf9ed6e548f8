package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/nums/compiler/gen/emit"
)

// =============================================================================
// Interface Segregation: a dialect is split into small, focused interfaces
// =============================================================================

// VectorGenerator generates per-vector code.
// It is called once per vector shape, each call in its own session.
type VectorGenerator interface {
	// GenVector writes the declarations of the vector ({vector}.go),
	// after the file header and package clause.
	GenVector(w *emit.Writer, v *VectorShape) error
}

// MatrixGenerator generates per-matrix code.
// It is called once per matrix shape, each call in its own session.
type MatrixGenerator interface {
	// GenMatrix writes the declarations of the matrix ({matrix}.go),
	// after the file header and package clause.
	GenMatrix(w *emit.Writer, m *MatrixShape) error
}

// PackageGenerator generates the declarations shared by all shapes.
// It is called once per generation run.
type PackageGenerator interface {
	// GenPackage generates the shared file (errors.go).
	GenPackage() *jen.File
}

// Checker is implemented by dialects that reject catalogs they cannot
// render, such as ones whose generated identifiers collide. It is called
// before any session starts.
type Checker interface {
	Check() error
}

// MinimalDialect is the minimum interface a dialect must implement.
type MinimalDialect interface {
	// Name returns the dialect name (e.g., "go").
	Name() string
	VectorGenerator
	MatrixGenerator
	PackageGenerator
}

// GeneratorHelper gives dialect implementations access to the catalog and
// generation settings. SourceGenerator implements this interface.
type GeneratorHelper interface {
	// Catalog returns the validated catalog.
	Catalog() *Catalog

	// Pkg returns the output package name.
	Pkg() string

	// FeatureEnabled reports whether the named feature is enabled. Unknown
	// names report false.
	FeatureEnabled(name string) bool
}

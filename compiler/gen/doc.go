// Package gen provides code generation for catalogs of vector and matrix shapes.
//
// This package turns a loaded catalog into a validated model and drives a
// dialect that renders one source file per shape, plus one shared file.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Catalog file (catalog.yaml / catalog.json)
//	        ↓
//	   load.Catalog (decoded, unvalidated)
//	        ↓
//	   Catalog (validated shapes closed under transpose and product, lookups, pairings)
//	        ↓
//	   MinimalDialect (language-specific code, one session per shape)
//	        ↓
//	   Generated package ({target}/)
//
// # Key Types
//
//   - Catalog: Holds all shapes with validation and lookups
//   - VectorShape: A fixed-arity vector with named components
//   - MatrixShape: A rows×cols matrix stored as row vectors
//   - Pairing: A valid matrix multiplication Left × Right = Result
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
//	MinimalDialect
//	├── Name() string
//	├── VectorGenerator  (GenVector, one session per vector)
//	├── MatrixGenerator  (GenMatrix, one session per matrix)
//	└── PackageGenerator (GenPackage, the shared file)
//
//	Checker (optional, detected by type assertion)
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ShapeError: Invalid shapes and catalog invariant violations
//   - ConfigError: Configuration errors
//   - PairingError: Invalid matrix multiplication pairings
//   - GenerationError: Rendering, formatting and commit errors
//
// Example error handling:
//
//	catalog, err := gen.NewCatalog(config, loaded)
//	if err != nil {
//	    if gen.IsShapeError(err) {
//	        // Handle shape-specific error
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./nums"),
//	    gen.WithFeatures(gen.FeatureRegions),
//	    gen.WithoutFeatures(gen.FeatureConversions.Name),
//	)
//
// # Generation
//
// Rendering happens entirely in memory. Files are committed only when every
// session succeeded, so a failed run leaves the target directory untouched:
//
//	g := gen.NewSourceGenerator(catalog, outDir)
//	g.WithDialect(golang.NewDialect(g)).WithWorkers(4)
//	err := g.Generate(ctx)
//
// # Generated Output
//
//	{output}/
//	├── errors.go           // Package doc, ErrIndexOutOfRange, IndexError
//	├── {vector}.go         // One per vector, e.g. vec3.go
//	├── {matrix}.go         // One per matrix, e.g. mat2x3.go
//	└── .nums.manifest      // Files of the last run (manifest feature)
package gen

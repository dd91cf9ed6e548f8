// Package compiler loads catalogs and generates their Go packages.
//
//	err := compiler.Generate(ctx, "./catalog.yaml", &gen.Config{
//	    Target: "./nums",
//	})
//
// An empty path generates the default catalog (see load.Default).
package compiler

import (
	"context"
	"fmt"

	"github.com/syssam/nums/compiler/gen"
	"github.com/syssam/nums/compiler/gen/golang"
	"github.com/syssam/nums/compiler/load"
)

// Generate loads the catalog at path and generates its package. Options are
// applied to cfg before generation.
func Generate(ctx context.Context, path string, cfg *gen.Config, opts ...gen.Option) error {
	c, err := LoadCatalog(path)
	if err != nil {
		return err
	}
	return GenerateCatalog(ctx, c, cfg, opts...)
}

// GenerateCatalog validates a loaded catalog and generates its package.
func GenerateCatalog(ctx context.Context, c *load.Catalog, cfg *gen.Config, opts ...gen.Option) error {
	if cfg == nil {
		return gen.NewConfigError("Config", nil, "missing config")
	}
	if err := cfg.Apply(opts...); err != nil {
		return err
	}
	catalog, err := gen.NewCatalog(cfg, c)
	if err != nil {
		return fmt.Errorf("nums/compiler: %w", err)
	}
	return golang.Generate(ctx, catalog)
}

// LoadCatalog reads the catalog at path, or returns the default catalog for
// an empty path.
func LoadCatalog(path string) (*load.Catalog, error) {
	if path == "" {
		return load.Default(), nil
	}
	c, err := load.File(path)
	if err != nil {
		return nil, fmt.Errorf("nums/compiler: %w", err)
	}
	return c, nil
}

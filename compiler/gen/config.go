package gen

import (
	"log/slog"
	"runtime"
)

// DefaultHeader is the comment written at the top of every generated file.
const DefaultHeader = "Code generated by nums. DO NOT EDIT."

// Config holds the configuration for code generation.
type Config struct {
	// Target is the output directory of the generated package.
	Target string

	// Package is the Go package name of the generated code. When empty,
	// the catalog's package name is used.
	Package string

	// Header is the comment written at the top of each generated file.
	// Defaults to DefaultHeader.
	Header string

	// Workers bounds the number of files rendered concurrently.
	// Defaults to GOMAXPROCS.
	Workers int

	// Features enables optional feature-flags; see AllFeatures.
	Features []Feature

	// Disabled lists feature names switched off, including default ones.
	Disabled []string

	// Hooks wrap the generator, outermost first.
	Hooks []Hook

	// Logger receives progress and diagnostic records.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// FeatureEnabled reports if the given feature name is enabled.
// It's exported to be used by the dialects.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	f, ok := FeatureByName(name)
	if !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	for _, d := range c.Disabled {
		if d == name {
			return false, nil
		}
	}
	for i := range c.Features {
		if c.Features[i].Name == name {
			return true, nil
		}
	}
	return f.Default, nil
}

// HeaderComment returns the configured header, or DefaultHeader.
func (c *Config) HeaderComment() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

// Log returns the configured logger, or slog.Default().
func (c *Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

type (
	// The Generator interface is implemented by the dialect drivers to
	// generate the package of a validated catalog.
	Generator interface {
		// Generate generates the package for the given catalog.
		Generate(*Catalog) error
	}

	// GenerateFunc type is an adapter to allow the use of ordinary
	// function as Generator. If f is a function with the appropriate signature,
	// GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(*Catalog) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(c *gen.Catalog) error {
	//			fmt.Println("Catalog:", len(c.Vectors), "vectors")
	//			return next.Generate(c)
	//		})
	//	}
	//
	Hook func(Generator) Generator
)

// Generate calls f(c).
func (f GenerateFunc) Generate(c *Catalog) error {
	return f(c)
}

// Wrap applies the hooks of the config to g. The first hook is the
// outermost one.
func (c *Config) Wrap(g Generator) Generator {
	for i := len(c.Hooks) - 1; i >= 0; i-- {
		g = c.Hooks[i](g)
	}
	return g
}

package gen

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/nums/compiler/gen/emit"
)

// File is a rendered source file, named relative to the output directory.
type File struct {
	Name   string
	Source []byte
}

// Metrics tracks generation performance.
type Metrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     time.Duration
	WriteTime      time.Duration
}

// SourceGenerator renders one file per shape, plus the shared file, and
// commits them to the output directory. Shapes render in parallel; nothing
// is written until every file rendered and formatted successfully.
type SourceGenerator struct {
	catalog *Catalog
	workers int
	outDir  string
	pkg     string

	// Dialect generator for language-specific code.
	dialect MinimalDialect
	// Optional interface implementations detected at runtime.
	checker Checker

	mu      sync.Mutex
	metrics Metrics
}

// NewSourceGenerator creates a new generator for the catalog.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/syssam/nums/compiler/gen/golang"
//
//	g := gen.NewSourceGenerator(catalog, outDir)
//	g.WithDialect(golang.NewDialect(g))
//	g.Generate(ctx)
func NewSourceGenerator(c *Catalog, outDir string) *SourceGenerator {
	return &SourceGenerator{
		catalog: c,
		workers: c.workers(),
		outDir:  outDir,
		pkg:     c.Package,
	}
}

// WithWorkers sets the number of parallel workers.
func (g *SourceGenerator) WithWorkers(n int) *SourceGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithDialect sets the dialect generator.
// Additional capabilities are detected via Checker.
func (g *SourceGenerator) WithDialect(d MinimalDialect) *SourceGenerator {
	if d != nil {
		g.dialect = d
		if c, ok := d.(Checker); ok {
			g.checker = c
		}
	}
	return g
}

// Catalog returns the validated catalog.
func (g *SourceGenerator) Catalog() *Catalog {
	return g.catalog
}

// Pkg returns the output package name.
func (g *SourceGenerator) Pkg() string {
	return g.pkg
}

// FeatureEnabled reports whether the named feature is enabled.
func (g *SourceGenerator) FeatureEnabled(name string) bool {
	enabled, err := g.catalog.FeatureEnabled(name)
	return err == nil && enabled
}

// Metrics returns a snapshot of the generation metrics.
func (g *SourceGenerator) Metrics() Metrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.metrics
}

// Generate renders all files and commits them to the output directory.
// Returns an error if no dialect has been set via WithDialect().
func (g *SourceGenerator) Generate(ctx context.Context) error {
	start := time.Now()
	files, err := g.Render(ctx)
	if err != nil {
		return err
	}
	if err := g.Commit(files); err != nil {
		return err
	}
	m := g.Metrics()
	g.log().Info("generated package",
		"dir", g.outDir,
		"package", g.pkg,
		"files", m.FilesGenerated,
		"bytes", m.TotalBytes,
		"duration", time.Since(start))
	return nil
}

// Render renders every file in memory. The result lists one file per shape,
// in catalog order, followed by the shared file.
func (g *SourceGenerator) Render(ctx context.Context) ([]*File, error) {
	if g.dialect == nil {
		return nil, NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if g.checker != nil {
		if err := g.checker.Check(); err != nil {
			return nil, err
		}
	}
	start := time.Now()
	shapes := g.catalog.Shapes()
	files := make([]*File, len(shapes)+1)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, s := range shapes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := g.renderShape(s)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := g.renderShared()
		if err != nil {
			return err
		}
		files[len(shapes)] = f
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.metrics.RenderTime += time.Since(start)
	g.mu.Unlock()
	return files, nil
}

// renderShape runs one emission session for the shape and formats the result.
func (g *SourceGenerator) renderShape(s Shape) (*File, error) {
	var (
		phase string
		body  func(*emit.Writer) error
	)
	switch s := s.(type) {
	case *VectorShape:
		phase = "vector"
		body = func(w *emit.Writer) error { return g.dialect.GenVector(w, s) }
	case *MatrixShape:
		phase = "matrix"
		body = func(w *emit.Writer) error { return g.dialect.GenMatrix(w, s) }
	default:
		return nil, NewGenerationError("shape", s.FileName(), "unknown shape type", nil)
	}
	src, err := emit.Session(func(w *emit.Writer) error {
		g.preamble(w)
		return body(w)
	}, emit.WithRegions(g.FeatureEnabled(FeatureRegions.Name)))
	if err != nil {
		return nil, NewGenerationError(phase, s.FileName(), s.Name(), err)
	}
	formatted, err := imports.Process(filepath.Join(g.outDir, s.FileName()), src, nil)
	if err != nil {
		g.log().Debug("unformatted source", "file", s.FileName(), "source", string(src))
		return nil, NewGenerationError("format", s.FileName(), "", err)
	}
	g.log().Debug("rendered file", "file", s.FileName(), "bytes", len(formatted))
	return &File{Name: s.FileName(), Source: formatted}, nil
}

func (g *SourceGenerator) renderShared() (*File, error) {
	f := g.dialect.GenPackage()
	if f == nil {
		return nil, NewGenerationError("package", SharedFile, "dialect returned no file", nil)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError("package", SharedFile, "", err)
	}
	return &File{Name: SharedFile, Source: buf.Bytes()}, nil
}

// preamble writes the header comment and the package clause.
func (g *SourceGenerator) preamble(w *emit.Writer) {
	for _, line := range HeaderLines(g.catalog.HeaderComment()) {
		w.Line("// %s", line)
	}
	w.Blank()
	w.Line("package %s", g.pkg)
	w.Blank()
}

func (g *SourceGenerator) log() *slog.Logger {
	return g.catalog.Log()
}

// HeaderLines splits a header into comment lines without their "//" markers.
func HeaderLines(header string) []string {
	lines := strings.Split(strings.TrimRight(header, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "//"))
	}
	return lines
}

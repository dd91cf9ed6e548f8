package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Commit writes the rendered files to the output directory. Each file is
// replaced atomically. With FeatureManifest enabled, files recorded by an
// earlier run and missing from this one are removed.
func (g *SourceGenerator) Commit(files []*File) error {
	start := time.Now()
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("commit", "", "create output directory", err)
	}
	var written int64
	for _, f := range files {
		if err := writeFile(filepath.Join(g.outDir, f.Name), f.Source); err != nil {
			return NewGenerationError("commit", f.Name, "", err)
		}
		written += int64(len(f.Source))
		g.log().Debug("wrote file", "file", f.Name, "bytes", len(f.Source))
	}

	if g.FeatureEnabled(FeatureManifest.Name) {
		if err := g.prune(files); err != nil {
			return NewGenerationError("commit", ManifestFile, "", err)
		}
	}
	if err := g.cleanup(); err != nil {
		return NewGenerationError("commit", "", "feature cleanup", err)
	}

	g.mu.Lock()
	g.metrics.FilesGenerated += len(files)
	g.metrics.TotalBytes += written
	g.metrics.WriteTime += time.Since(start)
	g.mu.Unlock()
	return nil
}

// prune removes the files of the previous manifest that this run did not
// generate, and records the new manifest.
func (g *SourceGenerator) prune(files []*File) error {
	prev, err := ReadManifest(g.outDir)
	if err != nil {
		return err
	}
	next := NewManifest(g.pkg, files)
	for _, name := range prev.Stale(next) {
		if err := os.Remove(filepath.Join(g.outDir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale file %s: %w", name, err)
		}
		g.log().Info("removed stale file", "file", name)
	}
	return next.Write(g.outDir)
}

// cleanup runs the cleanup of every disabled feature.
func (g *SourceGenerator) cleanup() error {
	cfg := *g.catalog.Config
	cfg.Target = g.outDir
	for _, f := range AllFeatures {
		if f.cleanup == nil || g.FeatureEnabled(f.Name) {
			continue
		}
		if err := f.cleanup(&cfg); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers never observe a partially written file.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}

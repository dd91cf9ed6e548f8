package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// ManifestFile is the name of the manifest kept in the output directory.
const ManifestFile = ".nums.manifest"

// manifestVersion is bumped when the manifest encoding changes.
const manifestVersion = 1

// Manifest records the files of one generation run.
type Manifest struct {
	Version int      `msgpack:"version"`
	Package string   `msgpack:"package"`
	Files   []string `msgpack:"files"`
}

// NewManifest returns the manifest of the given files, sorted by name.
func NewManifest(pkg string, files []*File) *Manifest {
	m := &Manifest{Version: manifestVersion, Package: pkg}
	for _, f := range files {
		m.Files = append(m.Files, f.Name)
	}
	slices.Sort(m.Files)
	return m
}

// ReadManifest reads the manifest of dir. A missing manifest reads as an
// empty one.
func ReadManifest(dir string) (*Manifest, error) {
	buf, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{Version: manifestVersion}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m := &Manifest{}
	if err := msgpack.Unmarshal(buf, m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Version != manifestVersion {
		return nil, fmt.Errorf("unsupported manifest version %d", m.Version)
	}
	return m, nil
}

// Write records the manifest in dir.
func (m *Manifest) Write(dir string) error {
	buf, err := msgpack.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return writeFile(filepath.Join(dir, ManifestFile), buf)
}

// Stale returns the files of m that next does not list. Names that are not
// plain Go file names in the output directory are never reported.
func (m *Manifest) Stale(next *Manifest) []string {
	var stale []string
	for _, name := range m.Files {
		if filepath.Base(name) != name || !strings.HasSuffix(name, ".go") {
			continue
		}
		if !slices.Contains(next.Files, name) {
			stale = append(stale, name)
		}
	}
	return stale
}

func removeManifest(dir string) error {
	if err := os.Remove(filepath.Join(dir, ManifestFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

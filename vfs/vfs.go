package vfs

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/docforge/convertd"
)

// Mem is an in-memory staging filesystem. It is safe to share between a fake
// engine and the orchestrator within one test.
type Mem struct {
	fs afero.Fs
}

var _ convertd.FS = (*Mem)(nil)

// NewMem creates an empty in-memory staging filesystem.
func NewMem() *Mem {
	return &Mem{fs: afero.NewMemMapFs()}
}

func (m *Mem) MkdirAll(path string) error {
	return m.fs.MkdirAll(path, 0o755)
}

func (m *Mem) ReadDir(path string) ([]string, error) {
	return readDirNames(m.fs, path)
}

func (m *Mem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(m.fs, path)
}

func (m *Mem) WriteFile(path string, data []byte) error {
	return afero.WriteFile(m.fs, path, data, 0o644)
}

// Dir is a staging filesystem rooted at a host directory. Virtual paths under
// prefix resolve beneath root, so the host-side view and a directory mount
// handed to the engine observe the same files.
type Dir struct {
	fs     afero.Fs
	prefix string
	root   string
}

var _ convertd.FS = (*Dir)(nil)

// NewDir creates a staging filesystem over root. Virtual paths are expected
// to start with prefix (the engine's working directory, e.g. "/working").
func NewDir(root, prefix string) *Dir {
	return &Dir{
		fs:     afero.NewBasePathFs(afero.NewOsFs(), root),
		prefix: strings.TrimSuffix(prefix, "/"),
		root:   root,
	}
}

// Root returns the host directory backing the staging tree.
func (d *Dir) Root() string {
	return d.root
}

// rel strips the virtual prefix. Paths outside the prefix pass through
// unchanged; BasePathFs still confines them beneath root.
func (d *Dir) rel(path string) string {
	p := strings.TrimPrefix(path, d.prefix)
	if p == "" {
		return "/"
	}
	return p
}

func (d *Dir) MkdirAll(path string) error {
	return d.fs.MkdirAll(d.rel(path), 0o755)
}

func (d *Dir) ReadDir(path string) ([]string, error) {
	return readDirNames(d.fs, d.rel(path))
}

func (d *Dir) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(d.fs, d.rel(path))
}

func (d *Dir) WriteFile(path string, data []byte) error {
	return afero.WriteFile(d.fs, d.rel(path), data, 0o644)
}

func readDirNames(fs afero.Fs, path string) ([]string, error) {
	infos, err := afero.ReadDir(fs, path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// Package assets serves the static files and hands out cache-busting URLs.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sync"

	"github.com/spf13/afero"

	"github.com/nivahq/niva/web"
)

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static"

// Manager owns the static file system.
type Manager struct {
	fs  afero.Fs
	dir string

	mu       sync.Mutex
	versions map[string]string
}

// New serves files from dir when it is set, and from the embedded assets
// otherwise.
func New(dir string) (*Manager, error) {
	if dir != "" {
		return NewFromFs(afero.NewBasePathFs(afero.NewOsFs(), dir), dir), nil
	}
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded assets: %w", err)
	}
	return NewFromFs(afero.FromIOFS{FS: sub}, ""), nil
}

// NewFromFs serves files from fsys. dir is the on-disk location to watch for
// changes and may be empty.
func NewFromFs(fsys afero.Fs, dir string) *Manager {
	return &Manager{
		fs:       afero.NewReadOnlyFs(fsys),
		dir:      dir,
		versions: make(map[string]string),
	}
}

// FS returns the files for http serving.
func (m *Manager) FS() fs.FS {
	return afero.NewIOFS(m.fs)
}

// URL returns the public URL of name with a content hash appended so browsers
// refetch the file after it changes. Missing files get a bare URL.
func (m *Manager) URL(name string) string {
	u := path.Join(Prefix, name)
	if v := m.version(name); v != "" {
		return u + "?v=" + v
	}
	return u
}

func (m *Manager) version(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.versions[name]; ok {
		return v
	}
	data, err := afero.ReadFile(m.fs, name)
	if err != nil {
		slog.Warn("static asset not found", "name", name, "error", err)
		return ""
	}
	sum := sha256.Sum256(data)
	v := hex.EncodeToString(sum[:4])
	m.versions[name] = v
	return v
}

// Invalidate forgets the cached version of name, or of every file when name
// is empty.
func (m *Manager) Invalidate(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == "" {
		clear(m.versions)
		return
	}
	delete(m.versions, name)
}

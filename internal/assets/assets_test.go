package assets

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCarriesContentVersion(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "app.css", []byte("body{}"), 0o644))
	m := NewFromFs(mem, "")

	u := m.URL("app.css")
	assert.True(t, strings.HasPrefix(u, "/static/app.css?v="), u)
	assert.Equal(t, u, m.URL("app.css"), "version is stable while the file is unchanged")

	require.NoError(t, afero.WriteFile(mem, "app.css", []byte("body{color:red}"), 0o644))
	assert.Equal(t, u, m.URL("app.css"), "cached until invalidated")

	m.Invalidate("app.css")
	assert.NotEqual(t, u, m.URL("app.css"))
}

func TestURLForMissingFile(t *testing.T) {
	m := NewFromFs(afero.NewMemMapFs(), "")
	assert.Equal(t, "/static/missing.css", m.URL("missing.css"))
}

func TestEmbeddedAssets(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)

	data, err := fs.ReadFile(m.FS(), "app.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".htmx-request")
	assert.Contains(t, m.URL("app.css"), "?v=")

	// embedded assets never change, so there is nothing to watch
	require.NoError(t, m.Watch(context.Background()))
}

func TestFSIsReadOnly(t *testing.T) {
	mem := afero.NewMemMapFs()
	m := NewFromFs(mem, "")
	_, err := m.fs.Create("new.css")
	assert.Error(t, err)
}

func TestWatchInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.css")
	require.NoError(t, os.WriteFile(file, []byte("a{}"), 0o644))

	m, err := New(dir)
	require.NoError(t, err)
	first := m.URL("app.css")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, m.Watch(ctx))

	require.NoError(t, os.WriteFile(file, []byte("a{color:blue}"), 0o644))

	assert.Eventually(t, func() bool {
		return m.URL("app.css") != first
	}, 2*time.Second, 20*time.Millisecond)
}

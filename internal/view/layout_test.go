package view_test

import (
	"strings"
	"testing"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Home - Niva", view.CalculateTitle("Home"))
	assert.Equal(t, "Niva", view.CalculateTitle(""))
}

func TestPage(t *testing.T) {
	html := render(t, view.Page(view.PageProps{
		Title:         "Home",
		StylesheetURL: "/static/app.css?v=abc",
		Flash:         view.FlashData{Success: []string{"Welcome"}},
	}, view.App(domain.ViewHome, g.Text("content"))))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Home - Niva</title>")
	assert.Contains(t, html, `href="/static/app.css?v=abc"`)
	assert.Contains(t, html, "htmx.org")
	assert.Contains(t, html, "Welcome")
	assert.Contains(t, html, `<div id="app" data-view="home">content</div>`)
}

func TestNavigateButton(t *testing.T) {
	html := render(t, view.NavigateButton(domain.ViewPreferences, "btn", g.Text("Go")))

	assert.Contains(t, html, `action="/navigate"`)
	assert.Contains(t, html, `hx-post="/navigate"`)
	assert.Contains(t, html, `hx-target="#app"`)
	assert.Contains(t, html, `name="target" value="preferences"`)
	assert.Contains(t, html, `<button type="submit" class="btn">Go</button>`)
}

func TestInertButton(t *testing.T) {
	html := render(t, view.InertButton("x", g.Text("Share")))
	assert.Equal(t, `<button type="button" class="x">Share</button>`, html)
}

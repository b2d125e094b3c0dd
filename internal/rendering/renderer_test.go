package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), h.P(g.Text("hi & bye")))
		require.NoError(t, err)
		assert.Equal(t, "<p>hi &amp; bye</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<b>templ</b>")
			return err
		})
		out, err := r.RenderComponent(context.Background(), comp)
		require.NoError(t, err)
		assert.Equal(t, "<b>templ</b>", string(out))
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		assert.ErrorContains(t, err, "unsupported component type: int")
	})
}

func TestRenderPageAndEchoRenderer(t *testing.T) {
	r := NewUniversalRenderer()
	e := echo.New()
	e.Renderer = r
	e.GET("/page", func(c echo.Context) error {
		return r.RenderPage(c, http.StatusCreated, h.Div(g.Text("page")))
	})
	e.GET("/render", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", h.Span(g.Text("echo")))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "<div>page</div>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<span>echo</span>", rec.Body.String())
}

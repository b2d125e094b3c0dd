package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nivahq/niva/internal/view"
	"github.com/stretchr/testify/assert"
	h "maragu.dev/gomponents/html"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the session store is
	// attached to the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")
		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"It worked!"}, flashes.Success)
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "It failed!")
		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"It failed!"}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})

	t.Run("Without a session store", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		view.SetFlashSuccess(c, "lost")
		assert.True(t, view.GetFlashData(c).Empty())
	})
}

func TestFlashBanner(t *testing.T) {
	html := render(t, view.FlashBanner(view.FlashData{
		Success: []string{"Saved <b>"},
		Error:   []string{"Oops"},
	}))

	assert.Contains(t, html, `id="flash"`)
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Saved &lt;b&gt;")
	assert.Contains(t, html, "bg-red-50")
	assert.Contains(t, html, "Oops")

	assert.Nil(t, view.FlashBanner(view.FlashData{}))
	assert.Equal(t, `<div id="flash-slot"></div>`,
		render(t, h.Div(h.ID(view.FlashSlotID), view.FlashBanner(view.FlashData{}))))
}

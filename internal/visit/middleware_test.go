package visit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/visit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newTestEcho(store *visit.Store) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.Use(visit.Middleware(store))
	e.GET("/", func(c echo.Context) error {
		v := visit.FromContext(c)
		return c.String(http.StatusOK, v.ID)
	})
	e.POST("/go", func(c echo.Context) error {
		v := visit.FromContext(c)
		return c.String(http.StatusOK, v.Navigate(domain.ViewHome).String())
	})
	return e
}

func TestMiddlewareStartsAndResumesVisit(t *testing.T) {
	store := visit.NewStore(time.Hour)
	e := newTestEcho(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Body.String()
	require.NotEmpty(t, id)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "a new visit must set the session cookie")

	req = httptest.NewRequest(http.MethodPost, "/go", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "home", rec.Body.String())

	v, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, domain.ViewHome, v.Current())
	assert.Equal(t, 1, store.Len())
}

func TestMiddlewareIgnoresForgedCookie(t *testing.T) {
	store := visit.NewStore(time.Hour)
	e := newTestEcho(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: visit.SessionName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.Len())
}

// Package testutils builds a running application for handler tests: the
// shell, the visit store, the bus and the modules under test, wired the same
// way the server wires them.
package testutils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	g "maragu.dev/gomponents"

	"github.com/nivahq/niva/internal/assets"
	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/domain"
	appmiddleware "github.com/nivahq/niva/internal/middleware"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/pubsub"
	"github.com/nivahq/niva/internal/rendering"
	"github.com/nivahq/niva/internal/shell"
	"github.com/nivahq/niva/internal/visit"
)

// ConfigForTests loads the .env.test file at the project root and returns a
// validated config.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}

	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("invalid .env.test: %v", err)
	}
	return cfg
}

const visitIDPath = "/_test/visit"

// App is an Echo instance with the shell and the given modules booted.
type App struct {
	Echo     *echo.Echo
	Shell    *shell.Shell
	Visits   *visit.Store
	Bus      *pubsub.WatermillBridge
	Catalog  *pubsub.Catalog
	Injector do.Injector
}

// NewApp boots modules against a fresh container. Views no module mounts get
// a placeholder naming the view.
func NewApp(t *testing.T, modules ...module.Module) *App {
	t.Helper()
	cfg := ConfigForTests(t)

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "app.css", []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := &App{
		Echo:    echo.New(),
		Shell:   shell.New(rendering.NewUniversalRenderer(), assets.NewFromFs(fs, "")),
		Visits:  visit.NewStore(cfg.VisitTTL),
		Bus:     pubsub.NewWatermillBridge(),
		Catalog: pubsub.NewCatalog(),
	}
	t.Cleanup(func() { _ = app.Bus.Close() })

	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, app.Shell)
	do.ProvideValue(i, app.Visits)
	do.ProvideValue(i, app.Catalog)
	do.ProvideValue[pubsub.Publisher](i, app.Bus)
	do.ProvideValue[pubsub.Subscriber](i, app.Bus)
	app.Injector = i

	app.Echo.Use(echomw.RequestID())
	app.Echo.Use(appmiddleware.Logger)
	app.Echo.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SessionSecret))))
	app.Echo.Use(visit.Middleware(app.Visits))
	app.Shell.Routes(app.Echo)
	app.Echo.GET(visitIDPath, func(c echo.Context) error {
		return c.String(http.StatusOK, visit.FromContext(c).ID)
	})

	ctx := context.Background()
	for _, m := range modules {
		if err := m.Register(i); err != nil {
			t.Fatalf("register %s: %v", m.Name(), err)
		}
	}
	for _, m := range modules {
		if err := m.Boot(ctx, app.Echo.Group("/"+m.Name()), i); err != nil {
			t.Fatalf("boot %s: %v", m.Name(), err)
		}
	}
	for _, v := range domain.Views {
		if !app.Shell.Mounted(v) {
			name := v.String()
			app.Shell.Mount(v, func(context.Context, visit.Snapshot) g.Node {
				return g.Text("placeholder:" + name)
			})
		}
	}
	return app
}

// Client is one browser: it keeps its cookies between requests.
type Client struct {
	t       *testing.T
	app     *App
	cookies map[string]*http.Cookie
}

// NewClient starts a visit by loading the page once.
func (a *App) NewClient(t *testing.T) *Client {
	t.Helper()
	c := &Client{t: t, app: a, cookies: make(map[string]*http.Cookie)}
	if rec := c.Get("/"); rec.Code != http.StatusOK {
		t.Fatalf("initial page load: status %d", rec.Code)
	}
	return c
}

func (c *Client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.app.Echo.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

// Get issues a plain GET.
func (c *Client) Get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// Post submits form to path the way a browser would without htmx.
func (c *Client) Post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return c.do(req)
}

// HTMX submits form to path as an htmx request.
func (c *Client) HTMX(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	return c.do(req)
}

// Visit returns the server-side state of this client's visit.
func (c *Client) Visit() *visit.Visit {
	c.t.Helper()
	rec := c.Get(visitIDPath)
	v, ok := c.app.Visits.Get(rec.Body.String())
	if !ok {
		c.t.Fatalf("client has no visit")
	}
	return v
}

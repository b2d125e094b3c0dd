// Package shell is the composition root of the UI. It renders exactly one
// view per response, chosen by the visit's navigator, and is the only place
// that switches views on request.
package shell

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	hxhttp "maragu.dev/gomponents-htmx/http"
	h "maragu.dev/gomponents/html"

	"github.com/nivahq/niva/internal/assets"
	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/middleware"
	"github.com/nivahq/niva/internal/rendering"
	"github.com/nivahq/niva/internal/view"
	"github.com/nivahq/niva/internal/visit"
)

// ErrNoVisit is returned when a request reaches the shell without a visit.
var ErrNoVisit = errors.New("no visit attached to request")

// ViewRenderer renders the content of one view.
type ViewRenderer func(ctx context.Context, snap visit.Snapshot) g.Node

// Shell maps views to their renderers.
type Shell struct {
	renderer rendering.Renderer
	assets   *assets.Manager

	mu    sync.RWMutex
	views map[domain.View]ViewRenderer
}

// New creates a Shell with no views mounted.
func New(renderer rendering.Renderer, assets *assets.Manager) *Shell {
	return &Shell{
		renderer: renderer,
		assets:   assets,
		views:    make(map[domain.View]ViewRenderer),
	}
}

// Mount registers the renderer for v, replacing any previous one.
func (s *Shell) Mount(v domain.View, r ViewRenderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v] = r
}

// Mounted reports whether v has a renderer.
func (s *Shell) Mounted(v domain.View) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.views[v]
	return ok
}

// Routes registers the shell's own endpoints.
func (s *Shell) Routes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.GET("/", s.Show, m...)
	e.POST(view.NavigatePath, s.Navigate, m...)
}

// Render returns the application root for snap.
func (s *Shell) Render(ctx context.Context, snap visit.Snapshot) (g.Node, error) {
	s.mu.RLock()
	r, ok := s.views[snap.View]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no renderer mounted for view %q", snap.View)
	}
	return view.App(snap.View, r(ctx, snap)), nil
}

// Show renders the full page for the caller's current view.
func (s *Shell) Show(c echo.Context) error {
	v := visit.FromContext(c)
	if v == nil {
		return ErrNoVisit
	}
	ctx := c.Request().Context()
	snap := v.Snapshot()

	app, err := s.Render(ctx, snap)
	if err != nil {
		return err
	}
	page := view.Page(view.PageProps{
		Title:         view.Title(snap.View),
		StylesheetURL: s.assets.URL("app.css"),
		Flash:         view.GetFlashData(c),
	}, app)
	return s.renderer.RenderPage(c, http.StatusOK, page)
}

// Navigate switches the caller's visit to the posted target view.
func (s *Shell) Navigate(c echo.Context) error {
	v := visit.FromContext(c)
	if v == nil {
		return ErrNoVisit
	}
	from := v.Current()
	to := v.Navigate(domain.View(c.FormValue("target")))
	middleware.FromContext(c.Request().Context()).Debug("navigated",
		"visit_id", v.ID, "from", from, "to", to)
	return s.Respond(c)
}

// Respond finishes a state-changing request. htmx callers get the new
// application root plus any pending flash messages; plain form posts are
// redirected back to the page.
func (s *Shell) Respond(c echo.Context) error {
	if !hxhttp.IsRequest(c.Request().Header) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	v := visit.FromContext(c)
	if v == nil {
		return ErrNoVisit
	}
	ctx := c.Request().Context()

	app, err := s.Render(ctx, v.Snapshot())
	if err != nil {
		return err
	}
	nodes := g.Group{app}
	if flash := view.GetFlashData(c); !flash.Empty() {
		nodes = append(nodes, h.Div(h.ID(view.FlashSlotID), hx.SwapOOB("true"),
			view.FlashBanner(flash)))
	}
	return s.renderer.RenderPage(c, http.StatusOK, nodes)
}

// Fragment answers an htmx request with node alone, or redirects plain
// requests back to the page.
func (s *Shell) Fragment(c echo.Context, node g.Node) error {
	if !hxhttp.IsRequest(c.Request().Header) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return s.renderer.RenderPage(c, http.StatusOK, node)
}

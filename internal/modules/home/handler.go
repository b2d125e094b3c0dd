package home

import (
	"github.com/labstack/echo/v4"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/shell"
	"github.com/nivahq/niva/internal/visit"
)

// Dashboard endpoints. The module is mounted under /home.
const (
	SearchPath  = "/home/search"
	SidebarPath = "/home/sidebar"
	PanelPath   = "/home/panel"
	TabPath     = "/home/tab"
)

// Handler serves the dashboard toggles. None of them touch dashboard data.
type Handler struct {
	shell *shell.Shell
}

// NewHandler creates a home handler.
func NewHandler(sh *shell.Shell) *Handler {
	return &Handler{shell: sh}
}

func (h *Handler) update(c echo.Context, fn func(s *domain.HomeState)) error {
	v := visit.FromContext(c)
	if v == nil {
		return shell.ErrNoVisit
	}
	v.UpdateHome(fn)
	return h.shell.Respond(c)
}

// SearchPost stores the query. htmx callers only get the suggestion list
// back so the search box keeps focus.
func (h *Handler) SearchPost(c echo.Context) error {
	v := visit.FromContext(c)
	if v == nil {
		return shell.ErrNoVisit
	}
	q := c.FormValue("q")
	v.UpdateHome(func(s *domain.HomeState) { s.Search(q) })
	return h.shell.Fragment(c, suggestions(v.Snapshot().Home))
}

// SidebarPost collapses or expands the sidebar.
func (h *Handler) SidebarPost(c echo.Context) error {
	return h.update(c, (*domain.HomeState).ToggleSidebar)
}

// PanelPost collapses or expands the right panel.
func (h *Handler) PanelPost(c echo.Context) error {
	return h.update(c, (*domain.HomeState).ToggleRightPanel)
}

// TabPost selects a sidebar tab. Unknown tabs change nothing.
func (h *Handler) TabPost(c echo.Context) error {
	tab := c.FormValue("tab")
	return h.update(c, func(s *domain.HomeState) { s.SelectTab(tab) })
}

package server

import (
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/shell"
)

// Routes returns the registered routes sorted by path then method. Echo's
// catch-all not-found routes are left out.
func (s *Server) Routes() []*echo.Route {
	var out []*echo.Route
	for _, r := range s.E.Routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *echo.Route) int {
		if c := strings.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return strings.Compare(a.Method, b.Method)
	})
	return out
}

func (s *Server) missingViews(sh *shell.Shell) []domain.View {
	var missing []domain.View
	for _, v := range domain.Views {
		if !sh.Mounted(v) {
			missing = append(missing, v)
		}
	}
	return missing
}

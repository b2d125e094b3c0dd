package landing

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/shell"
)

// LandingModule contributes the marketing page. It has no routes of its own;
// every action on the page is a navigation handled by the shell.
type LandingModule struct {
	module.BaseModule
}

// New creates the landing module.
func New() *LandingModule {
	return &LandingModule{}
}

// Name returns the module name.
func (m *LandingModule) Name() string {
	return "landing"
}

// Boot mounts the landing renderer on the shell.
func (m *LandingModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	sh, err := do.Invoke[*shell.Shell](i)
	if err != nil {
		return err
	}
	sh.Mount(domain.ViewLanding, Render)
	slog.Info("LandingModule booted")
	return nil
}

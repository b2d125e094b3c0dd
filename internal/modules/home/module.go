package home

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/shell"
)

// HomeModule serves the dashboard and its layout toggles.
type HomeModule struct {
	module.BaseModule
}

// New creates the home module.
func New() *HomeModule {
	return &HomeModule{}
}

// Name returns the module name.
func (m *HomeModule) Name() string {
	return "home"
}

// Boot mounts the dashboard on the shell and sets up its routes.
func (m *HomeModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	sh, err := do.Invoke[*shell.Shell](i)
	if err != nil {
		return err
	}
	sh.Mount(domain.ViewHome, Render)

	handler := NewHandler(sh)
	g.POST("/search", handler.SearchPost)
	g.POST("/sidebar", handler.SidebarPost)
	g.POST("/panel", handler.PanelPost)
	g.POST("/tab", handler.TabPost)

	slog.Info("HomeModule booted")
	return nil
}

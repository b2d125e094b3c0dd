package preferences

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/pubsub"
	"github.com/nivahq/niva/internal/shell"
)

// PreferencesModule owns the intake form and publishes saved drafts.
type PreferencesModule struct {
	module.BaseModule
}

// New creates the preferences module.
func New() *PreferencesModule {
	return &PreferencesModule{}
}

// Name returns the module name.
func (m *PreferencesModule) Name() string {
	return "preferences"
}

// Register adds the module's topics to the catalog.
func (m *PreferencesModule) Register(i do.Injector) error {
	catalog, err := do.Invoke[*pubsub.Catalog](i)
	if err != nil {
		return err
	}
	topic, err := pubsub.Describe(DraftSubmitted, m.Name(), exampleSubmission())
	if err != nil {
		return err
	}
	return catalog.Register(topic)
}

// Boot mounts the form on the shell and sets up its routes.
func (m *PreferencesModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	sh, err := do.Invoke[*shell.Shell](i)
	if err != nil {
		return err
	}
	publisher, err := do.Invoke[pubsub.Publisher](i)
	if err != nil {
		return err
	}

	sh.Mount(domain.ViewPreferences, Render)

	handler := NewHandler(sh, publisher)
	g.POST("/field", handler.FieldPost)
	g.POST("/toggle", handler.TogglePost)
	g.POST("/submit", handler.SubmitPost)

	slog.Info("PreferencesModule booted")
	return nil
}

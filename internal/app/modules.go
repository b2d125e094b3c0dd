package app

import (
	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/modules/diagnostics"
	"github.com/nivahq/niva/internal/modules/home"
	"github.com/nivahq/niva/internal/modules/landing"
	"github.com/nivahq/niva/internal/modules/preferences"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(cfg *config.Config) []module.Module {
	return []module.Module{
		landing.New(),
		preferences.New(),
		home.New(),
		diagnostics.New(diagnostics.Dependencies{
			RateLimit: cfg.DiagnosticsRateLimit,
		}),
	}
}

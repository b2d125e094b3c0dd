// Package diagnostics listens for submitted preferences and logs them. In
// development it also lists the latest submissions over HTTP.
package diagnostics

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/middleware"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/modules/preferences"
	"github.com/nivahq/niva/internal/pubsub"
)

const recentLimit = 20

// DiagnosticsModule subscribes to preference submissions.
type DiagnosticsModule struct {
	module.BaseModule
	rateLimit int
}

// Dependencies holds the settings the module is built with. Services come
// from the container at boot.
type Dependencies struct {
	// RateLimit caps listing requests per client per minute. Zero disables
	// the limit.
	RateLimit int
}

// New creates the diagnostics module.
func New(deps Dependencies) *DiagnosticsModule {
	return &DiagnosticsModule{rateLimit: deps.RateLimit}
}

// Name returns the module name.
func (m *DiagnosticsModule) Name() string {
	return "diagnostics"
}

// Register provides the submission log to the container.
func (m *DiagnosticsModule) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*SubmissionLog, error) {
		return NewSubmissionLog(recentLimit, slog.Default().With("module", "diagnostics")), nil
	})
	return nil
}

// Boot starts the subscription. The listing route only exists outside
// production.
func (m *DiagnosticsModule) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	sub, err := do.Invoke[pubsub.Subscriber](i)
	if err != nil {
		return err
	}
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return err
	}
	submissions, err := do.Invoke[*SubmissionLog](i)
	if err != nil {
		return err
	}

	if err := pubsub.Subscribe(ctx, sub, preferences.DraftSubmitted, submissions.Handle); err != nil {
		return err
	}

	if !cfg.IsProduction() {
		var mw []echo.MiddlewareFunc
		if m.rateLimit > 0 {
			mw = append(mw, middleware.RateLimiter(m.rateLimit))
		}
		g.GET("/submissions", func(c echo.Context) error {
			return c.JSON(http.StatusOK, submissions.Recent())
		}, mw...)
	}

	slog.Info("DiagnosticsModule subscribed",
		"topic", preferences.DraftSubmitted.Name(),
		"rate_limit", m.rateLimit)
	return nil
}

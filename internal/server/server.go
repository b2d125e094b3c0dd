package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nivahq/niva/internal/app"
	"github.com/nivahq/niva/internal/assets"
	"github.com/nivahq/niva/internal/config"
	appmiddleware "github.com/nivahq/niva/internal/middleware"
	"github.com/nivahq/niva/internal/module"
	"github.com/nivahq/niva/internal/shell"
	"github.com/nivahq/niva/internal/visit"
)

// sessionMaxAge bounds the visit cookie. The visit itself may be swept
// sooner; a stale cookie simply starts a new visit.
const sessionMaxAge = 86400 * 7

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	injector *do.RootScope
	modules  []module.Module
	assets   *assets.Manager
	visits   *visit.Store

	// bootCtx lives until shutdown; module background work hangs off it.
	bootCtx    context.Context
	cancelBoot context.CancelFunc
}

// New creates the Echo instance, the dependency container and boots every
// module. The server is ready to serve once New returns.
func New(cfg *config.Config, modules []module.Module) (*Server, error) {
	injector := app.NewContainer(cfg)
	bootCtx, cancel := context.WithCancel(context.Background())
	s := &Server{
		E:          echo.New(),
		Cfg:        cfg,
		injector:   injector,
		modules:    modules,
		bootCtx:    bootCtx,
		cancelBoot: cancel,
	}
	if err := s.setup(); err != nil {
		cancel()
		injector.Shutdown()
		return nil, err
	}
	return s, nil
}

func (s *Server) setup() error {
	e := s.E
	e.HideBanner = true
	e.HidePort = true
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(s.Cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   s.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	var err error
	if s.assets, err = do.Invoke[*assets.Manager](s.injector); err != nil {
		return err
	}
	if s.visits, err = do.Invoke[*visit.Store](s.injector); err != nil {
		return err
	}
	sh, err := do.Invoke[*shell.Shell](s.injector)
	if err != nil {
		return err
	}

	e.StaticFS(assets.Prefix, s.assets.FS())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	visits := visit.Middleware(s.visits)
	sh.Routes(e, visits)
	if err := s.bootModules(visits); err != nil {
		return err
	}

	if missing := s.missingViews(sh); len(missing) > 0 {
		return fmt.Errorf("no module renders the %s view", missing[0])
	}
	return nil
}

// bootModules runs the two-phase module startup: every module registers
// its services, then every module boots with its own route group.
func (s *Server) bootModules(visits echo.MiddlewareFunc) error {
	for _, m := range s.modules {
		if err := m.Register(s.injector); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		g := s.E.Group("/"+m.Name(), visits)
		if err := m.Boot(s.bootCtx, g, s.injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}

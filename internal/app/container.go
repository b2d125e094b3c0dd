package app

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/nivahq/niva/internal/assets"
	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/pubsub"
	"github.com/nivahq/niva/internal/rendering"
	"github.com/nivahq/niva/internal/shell"
	"github.com/nivahq/niva/internal/visit"
)

// Services are the shared services every module can resolve from the
// container. Services with a Shutdown method are closed with the container.
var Services = do.Package(
	do.Lazy(func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	}),
	do.Bind[*pubsub.WatermillBridge, pubsub.Publisher](),
	do.Bind[*pubsub.WatermillBridge, pubsub.Subscriber](),
	do.Lazy(func(i do.Injector) (*pubsub.Catalog, error) {
		return pubsub.NewCatalog(), nil
	}),
	do.Lazy(func(i do.Injector) (*visit.Store, error) {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return nil, err
		}
		return visit.NewStore(cfg.VisitTTL), nil
	}),
	do.Lazy(func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	}),
	do.Lazy(func(i do.Injector) (*assets.Manager, error) {
		cfg, err := do.Invoke[*config.Config](i)
		if err != nil {
			return nil, err
		}
		m, err := assets.New(cfg.StaticDir)
		if err != nil {
			return nil, fmt.Errorf("static assets: %w", err)
		}
		return m, nil
	}),
	do.Lazy(func(i do.Injector) (*shell.Shell, error) {
		renderer, err := do.Invoke[rendering.Renderer](i)
		if err != nil {
			return nil, err
		}
		m, err := do.Invoke[*assets.Manager](i)
		if err != nil {
			return nil, err
		}
		return shell.New(renderer, m), nil
	}),
)

// NewContainer creates the dependency container for cfg.
func NewContainer(cfg *config.Config) *do.RootScope {
	return do.New(do.Eager(cfg), Services)
}

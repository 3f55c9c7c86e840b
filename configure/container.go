package configure

import (
	"fmt"

	cp "github.com/looplab/commandprocessor"
	"github.com/looplab/commandprocessor/container"
	"github.com/looplab/commandprocessor/registry"
)

// Container used to configure handlers
type Container interface {
	RegisterHandlers(...HandlerConfig) error
}

// NewContainer creates a new container that provides handler factories on
// services and binds them to their commands in the registry.
func NewContainer(reg *registry.Registry, services *container.Container) Container {
	return &handlerContainer{
		registry: reg,
		services: services,
	}
}

type handlerContainer struct {
	registry       *registry.Registry
	services       *container.Container
	handlerConfigs []HandlerConfig
}

func (c *handlerContainer) RegisterHandlers(cfgs ...HandlerConfig) error {
	for _, cfg := range cfgs {
		if cfg.CommandType() == "" {
			return cp.ErrEmptyCommandType
		}

		ht := cfg.HandlerType()

		// The factory is optional, the handler may already be provided.
		if f := cfg.Factory(); f != nil {
			if err := c.services.Provide(ht, f, cfg.Lifetime()); err != nil {
				return fmt.Errorf("could not provide handler for %s: %w", cfg.CommandType(), err)
			}
		} else if !c.services.Has(ht) {
			return fmt.Errorf("could not register handler for %s: %w", cfg.CommandType(),
				&container.Error{Err: container.ErrNotProvided, ServiceType: ht})
		}

		if err := c.registry.Register(cfg.CommandType(), ht); err != nil {
			return fmt.Errorf("could not register handler for %s: %w", cfg.CommandType(), err)
		}

		c.handlerConfigs = append(c.handlerConfigs, cfg)
	}

	return nil
}

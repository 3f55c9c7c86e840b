package configure

import (
	cp "github.com/looplab/commandprocessor"
	"github.com/looplab/commandprocessor/container"
)

// HandlerConfig building handlers
type HandlerConfig interface {
	SetCommandType(cp.CommandType) HandlerConfig
	SetHandlerType(cp.ServiceType) HandlerConfig
	SetFactory(container.Factory) HandlerConfig
	SetLifetime(container.Lifetime) HandlerConfig

	CommandType() cp.CommandType
	HandlerType() cp.ServiceType
	Factory() container.Factory
	Lifetime() container.Lifetime
}

// NewHandlerConfig create a new HandlerConfig, with a transient lifetime
func NewHandlerConfig() HandlerConfig {
	return &config{
		lifetime: container.Transient,
	}
}

type config struct {
	commandType cp.CommandType
	handlerType cp.ServiceType
	factory     container.Factory
	lifetime    container.Lifetime
}

func (c *config) SetCommandType(commandType cp.CommandType) HandlerConfig {
	c.commandType = commandType
	return c
}
func (c *config) SetHandlerType(handlerType cp.ServiceType) HandlerConfig {
	c.handlerType = handlerType
	return c
}
func (c *config) SetFactory(factory container.Factory) HandlerConfig {
	c.factory = factory
	return c
}
func (c *config) SetLifetime(lifetime container.Lifetime) HandlerConfig {
	c.lifetime = lifetime
	return c
}

func (c *config) CommandType() cp.CommandType {
	return c.commandType
}
func (c *config) HandlerType() cp.ServiceType {
	// Default to a handler type named after the command.
	if c.handlerType == "" && c.commandType != "" {
		return cp.ServiceType(c.commandType + "Handler")
	}
	return c.handlerType
}
func (c *config) Factory() container.Factory {
	return c.factory
}
func (c *config) Lifetime() container.Lifetime {
	return c.lifetime
}

// Copyright (c) 2026 - The Event Horizon authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package container is a small dependency injection container that can be used
// as the resolver of a registry.
//
// Services are provided as factories keyed by service type. A factory gets a
// resolver for its own dependencies, so a handler can depend on other services
// without knowing how they are built.
package container

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	cp "github.com/looplab/commandprocessor"
)

var (
	// ErrNotProvided is when no factory is provided for a service type.
	ErrNotProvided = errors.New("service not provided")
	// ErrAlreadyProvided is when a factory is already provided for a service type.
	ErrAlreadyProvided = errors.New("service already provided")
	// ErrNilFactory is when a nil factory is provided.
	ErrNilFactory = errors.New("factory is nil")
	// ErrNilInstance is when a factory returns a nil instance without an error.
	ErrNilInstance = errors.New("factory returned nil")
	// ErrInvalidLifetime is when a factory is provided with an unknown lifetime.
	ErrInvalidLifetime = errors.New("invalid lifetime")
	// ErrCircularDependency is when a service depends on itself.
	ErrCircularDependency = errors.New("circular dependency")
	// ErrWrongType is when a resolved instance is not of the requested Go type.
	ErrWrongType = errors.New("wrong type")
)

// Lifetime decides how long a resolved instance is reused.
type Lifetime int

const (
	// Transient services are created on every resolve.
	Transient Lifetime = iota
	// Singleton services are created once per container, including its scopes.
	Singleton
	// Scoped services are created once per scope.
	Scoped
)

// String returns the name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

// Factory creates an instance of a service. Dependencies should be resolved
// with the passed resolver and context.
type Factory func(context.Context, cp.Resolver) (interface{}, error)

// Container is a resolver of provided services.
type Container struct {
	root *Container

	// Only used in the root container.
	providers   map[cp.ServiceType]*provider
	providersMu sync.RWMutex

	scoped   map[cp.ServiceType]*instance
	scopedMu sync.Mutex
}

var _ = cp.Resolver(&Container{})

type provider struct {
	factory   Factory
	lifetime  Lifetime
	singleton instance
}

type instance struct {
	mu    sync.Mutex
	value interface{}
}

// NewContainer creates a new Container.
func NewContainer() *Container {
	c := &Container{
		providers: make(map[cp.ServiceType]*provider),
		scoped:    make(map[cp.ServiceType]*instance),
	}
	c.root = c

	return c
}

// NewScope creates a scope sharing the providers and singletons of the
// container, but with its own instances of scoped services.
func (c *Container) NewScope() *Container {
	return &Container{
		root:   c.root,
		scoped: make(map[cp.ServiceType]*instance),
	}
}

// Provide adds the factory for a service type. Factories can only be provided
// once per service type; a scope provides to its root container.
func (c *Container) Provide(t cp.ServiceType, f Factory, l Lifetime) error {
	if t == "" {
		return cp.ErrEmptyServiceType
	}

	if f == nil {
		return &Error{Err: ErrNilFactory, ServiceType: t}
	}

	if l < Transient || l > Scoped {
		return &Error{Err: ErrInvalidLifetime, ServiceType: t}
	}

	root := c.root
	root.providersMu.Lock()
	defer root.providersMu.Unlock()

	if _, ok := root.providers[t]; ok {
		return &Error{Err: ErrAlreadyProvided, ServiceType: t}
	}

	root.providers[t] = &provider{
		factory:  f,
		lifetime: l,
	}

	return nil
}

// ProvideFunc is a typed version of Provide.
func ProvideFunc[T any](c *Container, t cp.ServiceType, f func(context.Context, cp.Resolver) (T, error), l Lifetime) error {
	if f == nil {
		return c.Provide(t, nil, l)
	}

	return c.Provide(t, func(ctx context.Context, r cp.Resolver) (interface{}, error) {
		return f(ctx, r)
	}, l)
}

// Has returns true if a factory is provided for the service type.
func (c *Container) Has(t cp.ServiceType) bool {
	_, ok := c.provider(t)
	return ok
}

// Resolve implements the Resolve method of the commandprocessor.Resolver
// interface.
func (c *Container) Resolve(ctx context.Context, t cp.ServiceType) (interface{}, error) {
	path := pathFromContext(ctx)
	for _, p := range path {
		if p == t {
			return nil, &Error{Err: ErrCircularDependency, ServiceType: t, Path: withType(path, t)}
		}
	}

	p, ok := c.provider(t)
	if !ok {
		return nil, &Error{Err: ErrNotProvided, ServiceType: t, Path: withType(path, t)}
	}

	ctx = context.WithValue(ctx, pathKey, withType(path, t))

	switch p.lifetime {
	case Singleton:
		// Singletons only see the root, so they never hold on to scoped services.
		return c.root.once(ctx, t, p, &p.singleton)
	case Scoped:
		return c.once(ctx, t, p, c.scopedInstance(t))
	default:
		return c.create(ctx, t, p)
	}
}

// ResolveAs resolves a service type and returns it as a T.
func ResolveAs[T any](ctx context.Context, r cp.Resolver, t cp.ServiceType) (T, error) {
	var zero T

	i, err := r.Resolve(ctx, t)
	if err != nil {
		return zero, err
	}

	v, ok := i.(T)
	if !ok {
		return zero, &Error{
			Err:         fmt.Errorf("%w: got %T", ErrWrongType, i),
			ServiceType: t,
		}
	}

	return v, nil
}

func (c *Container) provider(t cp.ServiceType) (*provider, bool) {
	root := c.root
	root.providersMu.RLock()
	defer root.providersMu.RUnlock()

	p, ok := root.providers[t]

	return p, ok
}

func (c *Container) scopedInstance(t cp.ServiceType) *instance {
	c.scopedMu.Lock()
	defer c.scopedMu.Unlock()

	i, ok := c.scoped[t]
	if !ok {
		i = &instance{}
		c.scoped[t] = i
	}

	return i
}

// once returns the cached instance, or creates it. Failed creations are not
// cached.
func (c *Container) once(ctx context.Context, t cp.ServiceType, p *provider, i *instance) (interface{}, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.value != nil {
		return i.value, nil
	}

	v, err := c.create(ctx, t, p)
	if err != nil {
		return nil, err
	}

	i.value = v

	return v, nil
}

func (c *Container) create(ctx context.Context, t cp.ServiceType, p *provider) (interface{}, error) {
	v, err := p.factory(ctx, c)
	if err != nil {
		// Errors from resolving dependencies already have their path.
		var cErr *Error
		if errors.As(err, &cErr) {
			return nil, err
		}

		return nil, &Error{Err: err, ServiceType: t, Path: pathFromContext(ctx)}
	}

	if v == nil {
		return nil, &Error{Err: ErrNilInstance, ServiceType: t, Path: pathFromContext(ctx)}
	}

	return v, nil
}

type contextKey int

const pathKey contextKey = iota

func pathFromContext(ctx context.Context) []cp.ServiceType {
	path, _ := ctx.Value(pathKey).([]cp.ServiceType)
	return path
}

func withType(path []cp.ServiceType, t cp.ServiceType) []cp.ServiceType {
	p := make([]cp.ServiceType, len(path), len(path)+1)
	copy(p, path)

	return append(p, t)
}

// Error is an error when providing or resolving a service.
type Error struct {
	// Err is the error.
	Err error
	// ServiceType is the service type that failed.
	ServiceType cp.ServiceType
	// Path is the chain of service types being resolved, ending with
	// ServiceType. Empty when providing.
	Path []cp.ServiceType
}

// Error implements the Error method of the errors.Error interface.
func (e *Error) Error() string {
	errStr := "unknown error"
	if e.Err != nil {
		errStr = e.Err.Error()
	}

	if len(e.Path) > 1 {
		path := make([]string, len(e.Path))
		for i, t := range e.Path {
			path[i] = string(t)
		}

		return fmt.Sprintf("%s: %s (%s)", e.ServiceType, errStr, strings.Join(path, " -> "))
	}

	return fmt.Sprintf("%s: %s", e.ServiceType, errStr)
}

// Unwrap implements the errors.Unwrap method.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors Unwrap method.
func (e *Error) Cause() error {
	return e.Unwrap()
}

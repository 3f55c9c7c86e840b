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

// Package registry binds command types to handler service types and resolves
// handler instances for them.
package registry

import (
	"context"
	"sort"
	"sync"

	cp "github.com/looplab/commandprocessor"
)

// Registry is a table of command type to handler type bindings, together with
// the resolver used to create handler instances.
//
// Registries are independent of each other; create one per application (or
// per test) and pass it to the processor.
type Registry struct {
	resolver   cp.Resolver
	bindings   map[cp.CommandType]binding
	bindingsMu sync.RWMutex
}

type binding struct {
	handlerType cp.ServiceType
	adapt       func(interface{}) (cp.CommandHandler, bool)
}

// NewRegistry creates a Registry that uses the resolver to create handlers.
func NewRegistry(resolver cp.Resolver) (*Registry, error) {
	if resolver == nil {
		return nil, cp.ErrNilResolver
	}

	return &Registry{
		resolver: resolver,
		bindings: make(map[cp.CommandType]binding),
	}, nil
}

// Resolver returns the resolver used to create handlers.
func (r *Registry) Resolver() cp.Resolver {
	return r.resolver
}

// Register binds a handler type to a command type, replacing any previous
// binding for the command type. Instances of the handler type must implement
// cp.CommandHandler.
func (r *Registry) Register(cmdType cp.CommandType, handlerType cp.ServiceType) error {
	return r.bind(cmdType, handlerType, asCommandHandler)
}

// RegisterTyped binds a handler type to a command type, replacing any previous
// binding for the command type. Instances of the handler type may implement
// either cp.TypedCommandHandler[C] or cp.CommandHandler.
func RegisterTyped[C cp.Command](r *Registry, cmdType cp.CommandType, handlerType cp.ServiceType) error {
	return r.bind(cmdType, handlerType, func(i interface{}) (cp.CommandHandler, bool) {
		if h, ok := i.(cp.TypedCommandHandler[C]); ok {
			return cp.AdaptCommandHandler[C](h), true
		}

		return asCommandHandler(i)
	})
}

func (r *Registry) bind(
	cmdType cp.CommandType,
	handlerType cp.ServiceType,
	adapt func(interface{}) (cp.CommandHandler, bool),
) error {
	if cmdType == "" {
		return cp.ErrEmptyCommandType
	}

	if handlerType == "" {
		return cp.ErrEmptyServiceType
	}

	r.bindingsMu.Lock()
	defer r.bindingsMu.Unlock()

	r.bindings[cmdType] = binding{
		handlerType: handlerType,
		adapt:       adapt,
	}

	return nil
}

// Unregister removes the binding for a command type. Returns
// cp.ErrHandlerNotFound if there is no binding.
func (r *Registry) Unregister(cmdType cp.CommandType) error {
	r.bindingsMu.Lock()
	defer r.bindingsMu.Unlock()

	if _, ok := r.bindings[cmdType]; !ok {
		return &cp.ResolveError{
			Err:         cp.ErrHandlerNotFound,
			CommandType: cmdType,
		}
	}

	delete(r.bindings, cmdType)

	return nil
}

// HandlerType returns the handler type bound to a command type.
func (r *Registry) HandlerType(cmdType cp.CommandType) (cp.ServiceType, bool) {
	r.bindingsMu.RLock()
	defer r.bindingsMu.RUnlock()

	b, ok := r.bindings[cmdType]

	return b.handlerType, ok
}

// CommandTypes returns all command types with a binding, sorted.
func (r *Registry) CommandTypes() []cp.CommandType {
	r.bindingsMu.RLock()
	defer r.bindingsMu.RUnlock()

	cmdTypes := make([]cp.CommandType, 0, len(r.bindings))
	for cmdType := range r.bindings {
		cmdTypes = append(cmdTypes, cmdType)
	}

	sort.Slice(cmdTypes, func(i, j int) bool {
		return cmdTypes[i] < cmdTypes[j]
	})

	return cmdTypes
}

// ResolveHandler implements the ResolveHandler method of the
// commandprocessor.HandlerResolver interface.
//
// The bound handler type is resolved with the registry's resolver; errors from
// the resolver are returned wrapped in a cp.ResolveError.
func (r *Registry) ResolveHandler(ctx context.Context, cmdType cp.CommandType) (cp.CommandHandler, error) {
	r.bindingsMu.RLock()
	b, ok := r.bindings[cmdType]
	r.bindingsMu.RUnlock()

	if !ok {
		return nil, &cp.ResolveError{
			Err:         cp.ErrHandlerNotFound,
			CommandType: cmdType,
		}
	}

	// The resolver can take a while (and resolve other types), so it is
	// called without holding the lock.
	i, err := r.resolver.Resolve(ctx, b.handlerType)
	if err != nil {
		return nil, &cp.ResolveError{
			Err:         err,
			CommandType: cmdType,
			HandlerType: b.handlerType,
		}
	}

	h, ok := b.adapt(i)
	if !ok {
		return nil, &cp.ResolveError{
			Err:         cp.ErrInvalidHandler,
			CommandType: cmdType,
			HandlerType: b.handlerType,
		}
	}

	return h, nil
}

func asCommandHandler(i interface{}) (cp.CommandHandler, bool) {
	h, ok := i.(cp.CommandHandler)
	if !ok || h == nil {
		return nil, false
	}

	return h, true
}

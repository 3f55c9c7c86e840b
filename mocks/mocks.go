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

// Package mocks contains mocks of the commandprocessor interfaces, useful in
// testing.
package mocks

import (
	"context"
	"sync"

	cp "github.com/looplab/commandprocessor"
)

const (
	// CommandType is the type for Command.
	CommandType cp.CommandType = "Command"
	// CommandOtherType is the type for CommandOther.
	CommandOtherType cp.CommandType = "CommandOther"

	// HandlerType is the service type for CommandHandler.
	HandlerType cp.ServiceType = "CommandHandler"
)

// Command is a mocked commandprocessor.Command, useful in testing.
type Command struct {
	Content string
	Result  string
}

var _ = cp.Command(Command{})

func (c Command) CommandType() cp.CommandType { return CommandType }

// CommandOther is a mocked commandprocessor.Command, useful in testing.
type CommandOther struct {
	Content string
}

var _ = cp.Command(CommandOther{})

func (c CommandOther) CommandType() cp.CommandType { return CommandOtherType }

// CommandHandler is a mocked commandprocessor.CommandHandler, useful in testing.
// It copies the content of *Command to its result.
type CommandHandler struct {
	sync.RWMutex
	Commands []cp.Command
	Context  context.Context
	// Used to simulate errors when handling.
	Err error
}

var _ = cp.CommandHandler(&CommandHandler{})

// HandleCommand implements the HandleCommand method of the
// commandprocessor.CommandHandler interface.
func (h *CommandHandler) HandleCommand(ctx context.Context, cmd cp.Command) error {
	h.Lock()
	defer h.Unlock()

	if h.Err != nil {
		return h.Err
	}

	if c, ok := cmd.(*Command); ok {
		c.Result = c.Content
	}

	h.Commands = append(h.Commands, cmd)
	h.Context = ctx

	return nil
}

// Resolver is a mocked commandprocessor.Resolver, useful in testing.
type Resolver struct {
	sync.RWMutex
	Instances map[cp.ServiceType]interface{}
	Resolved  []cp.ServiceType
	// Used to simulate errors when resolving.
	Err error
}

var _ = cp.Resolver(&Resolver{})

// Resolve implements the Resolve method of the commandprocessor.Resolver
// interface. Unknown service types resolve to nil.
func (r *Resolver) Resolve(ctx context.Context, t cp.ServiceType) (interface{}, error) {
	r.Lock()
	defer r.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}

	r.Resolved = append(r.Resolved, t)

	return r.Instances[t], nil
}

// HandlerResolver is a mocked commandprocessor.HandlerResolver, useful in
// testing.
type HandlerResolver struct {
	sync.RWMutex
	Handlers map[cp.CommandType]cp.CommandHandler
	// Used to simulate errors when resolving.
	Err error
}

var _ = cp.HandlerResolver(&HandlerResolver{})

// ResolveHandler implements the ResolveHandler method of the
// commandprocessor.HandlerResolver interface.
func (r *HandlerResolver) ResolveHandler(ctx context.Context, cmdType cp.CommandType) (cp.CommandHandler, error) {
	r.RLock()
	defer r.RUnlock()

	if r.Err != nil {
		return nil, r.Err
	}

	h, ok := r.Handlers[cmdType]
	if !ok {
		return nil, &cp.ResolveError{
			Err:         cp.ErrHandlerNotFound,
			CommandType: cmdType,
		}
	}

	return h, nil
}

// Processor is a mocked commandprocessor.Processor, useful in testing.
type Processor struct {
	sync.RWMutex
	Sent    []cp.Command
	Awaited []cp.Command
	Context context.Context
	// Used to simulate errors when sending.
	Err error
}

var _ = cp.Processor(&Processor{})

// Send implements the Send method of the commandprocessor.Processor interface.
func (p *Processor) Send(ctx context.Context, cmd cp.Command) error {
	p.Lock()
	defer p.Unlock()

	if p.Err != nil {
		return p.Err
	}

	p.Sent = append(p.Sent, cmd)
	p.Context = ctx

	return nil
}

// SendAndAwait implements the SendAndAwait method of the
// commandprocessor.Processor interface.
func (p *Processor) SendAndAwait(ctx context.Context, cmd cp.Command) error {
	p.Lock()
	defer p.Unlock()

	if p.Err != nil {
		return p.Err
	}

	p.Awaited = append(p.Awaited, cmd)
	p.Context = ctx

	return nil
}

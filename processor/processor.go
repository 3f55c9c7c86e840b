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

// Package processor dispatches commands to the handlers a HandlerResolver
// returns for them.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	cp "github.com/looplab/commandprocessor"
)

// DefaultErrorBufferSize is the size of the error channel for Send.
const DefaultErrorBufferSize = 20

var (
	// ErrNilHandlerResolver is when a processor is created without a handler resolver.
	ErrNilHandlerResolver = errors.New("handler resolver is nil")
	// ErrInvalidBufferSize is when a negative error buffer size is used.
	ErrInvalidBufferSize = errors.New("invalid error buffer size")
)

// Processor sends commands to the handlers resolved for their command types.
type Processor struct {
	handlers cp.HandlerResolver
	errCh    chan *Error
	wg       sync.WaitGroup
}

var _ = cp.Processor(&Processor{})

// Option is an option setter used to configure creation.
type Option func(*Processor) error

// WithErrorBufferSize sets the buffer size of the channel returned by Errors.
// A size of 0 makes delivery of handler errors from Send depend on a reader
// waiting on the channel.
func WithErrorBufferSize(size int) Option {
	return func(p *Processor) error {
		if size < 0 {
			return ErrInvalidBufferSize
		}

		p.errCh = make(chan *Error, size)

		return nil
	}
}

// NewProcessor creates a Processor that gets handlers from the handler
// resolver, usually a *registry.Registry.
func NewProcessor(handlers cp.HandlerResolver, options ...Option) (*Processor, error) {
	if handlers == nil {
		return nil, ErrNilHandlerResolver
	}

	p := &Processor{
		handlers: handlers,
		errCh:    make(chan *Error, DefaultErrorBufferSize),
	}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, fmt.Errorf("error while applying option: %w", err)
		}
	}

	return p, nil
}

// Errors returns the channel that errors from handlers started by Send are
// delivered on.
func (p *Processor) Errors() <-chan *Error {
	return p.errCh
}

// Send implements the Send method of the commandprocessor.Processor interface.
//
// The handler is resolved before Send returns, so a missing or unresolvable
// handler is returned as an error. The handler itself runs in a new goroutine
// with a context that is not canceled with ctx. Errors returned by the handler,
// and panics in it, are delivered on the Errors channel. If the channel is full
// the error is logged and dropped.
func (p *Processor) Send(ctx context.Context, cmd cp.Command) error {
	h, err := p.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	ctx, _ = cp.EnsureDispatchID(context.WithoutCancel(ctx))

	p.wg.Add(1)

	go func() {
		defer p.wg.Done()

		if err := handle(ctx, h, cmd); err != nil {
			p.deliver(&Error{Err: err, Ctx: ctx, Command: cmd})
		}
	}()

	return nil
}

// SendAndAwait implements the SendAndAwait method of the
// commandprocessor.Processor interface.
//
// The handler runs on the calling goroutine and its error is returned as is.
// A panic in the handler is returned as an error wrapping cp.ErrHandlerPanicked.
func (p *Processor) SendAndAwait(ctx context.Context, cmd cp.Command) error {
	h, err := p.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	ctx, _ = cp.EnsureDispatchID(ctx)

	return handle(ctx, h, cmd)
}

// Wait waits for all handlers started by Send to finish.
func (p *Processor) Wait() {
	p.wg.Wait()
}

func (p *Processor) resolve(ctx context.Context, cmd cp.Command) (cp.CommandHandler, error) {
	if cmd == nil {
		return nil, cp.ErrNilCommand
	}

	return p.handlers.ResolveHandler(ctx, cmd.CommandType())
}

func (p *Processor) deliver(err *Error) {
	select {
	case p.errCh <- err:
	default:
		log.Printf("commandprocessor: dropped handler error, error channel is full: %s", err)
	}
}

func handle(ctx context.Context, h cp.CommandHandler, cmd cp.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", cp.ErrHandlerPanicked, r)
		}
	}()

	return h.HandleCommand(ctx, cmd)
}

// Error is an error from a handler started by Send.
type Error struct {
	// Err is the error returned by the handler.
	Err error
	// Ctx is the context the handler was called with.
	Ctx context.Context
	// Command is the command that was handled.
	Command cp.Command
}

// Error implements the Error method of the error interface.
func (e *Error) Error() string {
	errStr := "unknown error"
	if e.Err != nil {
		errStr = e.Err.Error()
	}

	if e.Ctx != nil {
		if id, ok := cp.DispatchIDFromContext(e.Ctx); ok {
			return fmt.Sprintf("%s (%s): %s", e.Command.CommandType(), id, errStr)
		}
	}

	return fmt.Sprintf("%s: %s", e.Command.CommandType(), errStr)
}

// Unwrap implements the errors.Unwrap method.
func (e *Error) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors Unwrap method.
func (e *Error) Cause() error {
	return e.Unwrap()
}

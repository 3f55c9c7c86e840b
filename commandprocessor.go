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

// Package commandprocessor is a minimal in-process command dispatcher.
//
// Commands are bound to handler service types in a registry. A processor looks
// up the binding for each submitted command, resolves a fresh handler instance
// through a Resolver (usually a dependency injection container) and invokes it.
package commandprocessor

import "context"

// Processor submits commands for handling by exactly one registered handler.
type Processor interface {
	// Send resolves the handler for the command and starts handling it without
	// waiting for the result. Errors from resolving the handler are returned
	// directly, errors from the handler itself are not.
	Send(context.Context, Command) error

	// SendAndAwait resolves the handler for the command and waits for it to
	// finish handling. Any changes the handler makes to the command are visible
	// once it returns.
	SendAndAwait(context.Context, Command) error
}

// HandlerResolver returns a handler instance for a command type.
type HandlerResolver interface {
	// ResolveHandler returns a new handler for the command type, or an error
	// wrapping ErrHandlerNotFound if no handler is registered for it.
	ResolveHandler(context.Context, CommandType) (CommandHandler, error)
}

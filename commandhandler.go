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

package commandprocessor

import "context"

// CommandHandler is an interface that all handlers of commands should implement.
type CommandHandler interface {
	HandleCommand(context.Context, Command) error
}

// CommandHandlerFunc is a function that can be used as a command handler.
type CommandHandlerFunc func(context.Context, Command) error

// HandleCommand implements the HandleCommand method of the CommandHandler.
func (h CommandHandlerFunc) HandleCommand(ctx context.Context, cmd Command) error {
	return h(ctx, cmd)
}

// TypedCommandHandler is a handler for one concrete command type C.
type TypedCommandHandler[C Command] interface {
	HandleCommand(context.Context, C) error
}

// TypedCommandHandlerFunc is a function that can be used as a typed command handler.
type TypedCommandHandlerFunc[C Command] func(context.Context, C) error

// HandleCommand implements the HandleCommand method of the TypedCommandHandler.
func (h TypedCommandHandlerFunc[C]) HandleCommand(ctx context.Context, cmd C) error {
	return h(ctx, cmd)
}

// AdaptCommandHandler returns a CommandHandler that passes commands of type C
// on to the typed handler. Other commands are rejected with a CommandTypeError.
func AdaptCommandHandler[C Command](h TypedCommandHandler[C]) CommandHandler {
	return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		c, ok := cmd.(C)
		if !ok {
			return &CommandTypeError{
				Err:     ErrCommandTypeMismatch,
				Command: cmd,
				Want:    typeName[C](),
			}
		}

		return h.HandleCommand(ctx, c)
	})
}

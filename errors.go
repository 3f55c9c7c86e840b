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

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrHandlerNotFound is when no handler is registered for a command type.
	ErrHandlerNotFound = errors.New("no handler for command")
	// ErrInvalidHandler is when a resolved instance can not handle the command
	// type it was registered for.
	ErrInvalidHandler = errors.New("invalid handler for command")
	// ErrNilResolver is when a registry is created without a resolver.
	ErrNilResolver = errors.New("resolver is nil")
	// ErrEmptyCommandType is when a command type is empty.
	ErrEmptyCommandType = errors.New("command type is empty")
	// ErrEmptyServiceType is when a service type is empty.
	ErrEmptyServiceType = errors.New("service type is empty")
	// ErrNilCommand is when a nil command is sent.
	ErrNilCommand = errors.New("command is nil")
	// ErrHandlerPanicked is when a handler panics while handling a command.
	ErrHandlerPanicked = errors.New("handler panicked")
	// ErrCommandTypeMismatch is when a typed handler gets a command of another type.
	ErrCommandTypeMismatch = errors.New("command type mismatch")
)

// ResolveError is an error when resolving the handler for a command type.
type ResolveError struct {
	// Err is the error, either ErrHandlerNotFound, ErrInvalidHandler or the
	// error from the resolver.
	Err error
	// CommandType is the command type that a handler was resolved for.
	CommandType CommandType
	// HandlerType is the bound handler type, empty if there was no binding.
	HandlerType ServiceType
}

// Error implements the Error method of the errors.Error interface.
func (e *ResolveError) Error() string {
	errStr := "unknown error"
	if e.Err != nil {
		errStr = e.Err.Error()
	}

	if e.HandlerType == "" {
		return fmt.Sprintf("could not resolve handler for '%s': %s", e.CommandType, errStr)
	}

	return fmt.Sprintf("could not resolve handler '%s' for '%s': %s",
		e.HandlerType, e.CommandType, errStr)
}

// Unwrap implements the errors.Unwrap method.
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors Unwrap method.
func (e *ResolveError) Cause() error {
	return e.Unwrap()
}

// CommandTypeError is returned by typed handlers given a command of another type.
type CommandTypeError struct {
	Err     error
	Command Command
	// Want is the Go type name the handler accepts.
	Want string
}

// Error implements the Error method of the errors.Error interface.
func (e *CommandTypeError) Error() string {
	errStr := "unknown error"
	if e.Err != nil {
		errStr = e.Err.Error()
	}

	if e.Command == nil {
		return fmt.Sprintf("%s: got nil command, want %s", errStr, e.Want)
	}

	return fmt.Sprintf("%s: got %T (%s), want %s", errStr, e.Command, e.Command.CommandType(), e.Want)
}

// Unwrap implements the errors.Unwrap method.
func (e *CommandTypeError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors Unwrap method.
func (e *CommandTypeError) Cause() error {
	return e.Unwrap()
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

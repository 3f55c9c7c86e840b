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
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestCommandHandlerFunc(t *testing.T) {
	var handled []Command
	h := CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = append(handled, cmd)
		return nil
	})

	cmd := &TestCommand{Content: "content"}
	if err := h.HandleCommand(context.Background(), cmd); err != nil {
		t.Error("there should be no error:", err)
	}

	if !reflect.DeepEqual(handled, []Command{cmd}) {
		t.Error("the handled command should be correct:", handled)
	}
}

func TestAdaptCommandHandler(t *testing.T) {
	ctx := context.WithValue(context.Background(), "testkey", "testval")

	var handledCtx context.Context
	h := AdaptCommandHandler[*TestCommand](TypedCommandHandlerFunc[*TestCommand](
		func(ctx context.Context, cmd *TestCommand) error {
			handledCtx = ctx
			cmd.Result = cmd.Content
			return nil
		},
	))

	t.Log("handle the right command type")

	cmd := &TestCommand{Content: "content"}
	if err := h.HandleCommand(ctx, cmd); err != nil {
		t.Error("there should be no error:", err)
	}

	if cmd.Result != "content" {
		t.Error("the command result should be correct:", cmd.Result)
	}

	if val, ok := handledCtx.Value("testkey").(string); !ok || val != "testval" {
		t.Error("the context should be correct:", handledCtx)
	}

	t.Log("handle another command type")

	err := h.HandleCommand(ctx, TestOtherCommand{})
	if !errors.Is(err, ErrCommandTypeMismatch) {
		t.Error("there should be a ErrCommandTypeMismatch error:", err)
	}

	var typeErr *CommandTypeError
	if !errors.As(err, &typeErr) {
		t.Fatal("there should be a CommandTypeError:", err)
	}

	if typeErr.Want != "*commandprocessor.TestCommand" {
		t.Error("the wanted type should be correct:", typeErr.Want)
	}

	expected := "command type mismatch: got commandprocessor.TestOtherCommand (TestOtherCommand), want *commandprocessor.TestCommand"
	if err.Error() != expected {
		t.Error("the error message should be correct:", err.Error())
	}

	t.Log("handle the value of a pointer command type")

	if err := h.HandleCommand(ctx, TestCommand{}); !errors.Is(err, ErrCommandTypeMismatch) {
		t.Error("there should be a ErrCommandTypeMismatch error:", err)
	}
}

func TestAdaptCommandHandlerError(t *testing.T) {
	handlingErr := errors.New("handling error")
	h := AdaptCommandHandler[TestOtherCommand](TypedCommandHandlerFunc[TestOtherCommand](
		func(ctx context.Context, cmd TestOtherCommand) error {
			return handlingErr
		},
	))

	if err := h.HandleCommand(context.Background(), TestOtherCommand{}); !errors.Is(err, handlingErr) {
		t.Error("the handling error should be returned:", err)
	}
}

type TestCommand struct {
	Content string
	Result  string
}

var _ = Command(TestCommand{})

func (c TestCommand) CommandType() CommandType { return "TestCommand" }

type TestOtherCommand struct{}

var _ = Command(TestOtherCommand{})

func (c TestOtherCommand) CommandType() CommandType { return "TestOtherCommand" }

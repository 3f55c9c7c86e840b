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

// Package tracing adds opentracing spans to command processing.
package tracing

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	cp "github.com/looplab/commandprocessor"
)

// Processor is a Processor that adds tracing spans.
type Processor struct {
	cp.Processor
}

// NewProcessor creates a new Processor.
func NewProcessor(p cp.Processor) *Processor {
	return &Processor{
		Processor: p,
	}
}

// Send implements the Send method of the commandprocessor.Processor interface.
// The span only covers resolving and starting the handler.
func (p *Processor) Send(ctx context.Context, cmd cp.Command) error {
	return p.trace(ctx, "SendCommand", cmd, p.Processor.Send)
}

// SendAndAwait implements the SendAndAwait method of the
// commandprocessor.Processor interface.
func (p *Processor) SendAndAwait(ctx context.Context, cmd cp.Command) error {
	return p.trace(ctx, "Command", cmd, p.Processor.SendAndAwait)
}

func (p *Processor) trace(
	ctx context.Context,
	op string,
	cmd cp.Command,
	send func(context.Context, cp.Command) error,
) error {
	if cmd == nil {
		return send(ctx, cmd)
	}

	// Set the dispatch ID here to be able to tag it on the span.
	ctx, id := cp.EnsureDispatchID(ctx)

	opName := fmt.Sprintf("%s(%s)", op, cmd.CommandType())
	sp, ctx := opentracing.StartSpanFromContext(ctx, opName)

	err := send(ctx, cmd)

	sp.SetTag("cp.command_type", cmd.CommandType().String())
	sp.SetTag("cp.dispatch_id", id.String())

	if err != nil {
		ext.LogError(sp, err)
	}

	sp.Finish()

	return err
}

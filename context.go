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

	"github.com/google/uuid"
)

type contextKey int

const (
	dispatchIDKey contextKey = iota
)

// DispatchIDFromContext returns the ID of the dispatch that the context was
// created for, if any.
func DispatchIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(dispatchIDKey).(uuid.UUID)
	return id, ok
}

// NewContextWithDispatchID returns the context with the dispatch ID set.
// Processors set one on every dispatch unless the context already has an ID.
func NewContextWithDispatchID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, dispatchIDKey, id)
}

// EnsureDispatchID returns the context with a new dispatch ID if it does not
// already have one, together with the ID in use.
func EnsureDispatchID(ctx context.Context) (context.Context, uuid.UUID) {
	if id, ok := DispatchIDFromContext(ctx); ok {
		return ctx, id
	}

	id := uuid.New()

	return NewContextWithDispatchID(ctx, id), id
}

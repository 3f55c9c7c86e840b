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
	"testing"

	"github.com/google/uuid"
)

func TestContextDispatchID(t *testing.T) {
	ctx := context.Background()

	if _, ok := DispatchIDFromContext(ctx); ok {
		t.Error("there should be no dispatch ID")
	}

	id := uuid.New()
	ctx = NewContextWithDispatchID(ctx, id)

	if v, ok := DispatchIDFromContext(ctx); !ok || v != id {
		t.Error("the dispatch ID should be correct:", v)
	}

	t.Log("keep an existing ID")

	ctx2, id2 := EnsureDispatchID(ctx)
	if id2 != id {
		t.Error("the dispatch ID should be kept:", id2)
	}

	if ctx2 != ctx {
		t.Error("the context should be unchanged")
	}

	t.Log("add a new ID")

	ctx3, id3 := EnsureDispatchID(context.Background())
	if id3 == uuid.Nil {
		t.Error("the dispatch ID should be set")
	}

	if v, ok := DispatchIDFromContext(ctx3); !ok || v != id3 {
		t.Error("the dispatch ID should be in the context:", v)
	}
}

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

// ServiceType is the identifier of a type that a Resolver can construct,
// typically a command handler or one of its dependencies.
type ServiceType string

// String returns the string representation of a service type.
func (st ServiceType) String() string {
	return string(st)
}

// Resolver constructs instances from service types, resolving the constructor
// dependencies of each instance itself.
type Resolver interface {
	// Resolve returns an instance of the service type. The instance lifetime
	// (new per call, shared, scoped) is up to the resolver.
	Resolve(context.Context, ServiceType) (interface{}, error)
}

// ResolverFunc is a function that can be used as a resolver.
type ResolverFunc func(context.Context, ServiceType) (interface{}, error)

// Resolve implements the Resolve method of the Resolver interface.
func (f ResolverFunc) Resolve(ctx context.Context, t ServiceType) (interface{}, error) {
	return f(ctx, t)
}

/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Strategy produces identity tokens for types and for runtime values.
//
// A Strategy must satisfy the identity axiom the whole system depends on:
// for any concrete type T, Static(reflect.TypeOf(x)) and Dynamic(x) must
// yield the same Token for every value x of concrete type T. A violation
// silently breaks all lookups for that type.
type Strategy interface {
	// Name returns a short stable identifier for the strategy.
	// It participates in the DomainKey: domains using different strategies
	// never share storage.
	Name() string

	// Static returns the identity token for a type known at the call site.
	// Implementations may memoize; the result for a given type never changes
	// within one process run.
	Static(t reflect.Type) Token

	// Dynamic returns the identity token for v's concrete type.
	// It reports false when the strategy cannot identify v (nil value, or a
	// capability the value does not implement); callers decide how to
	// degrade.
	Dynamic(v any) (Token, bool)
}

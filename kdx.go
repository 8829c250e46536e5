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

package kdx

import (
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/kdx/apis"
	"dirpx.dev/kdx/config"
	"dirpx.dev/kdx/domain"
	"dirpx.dev/kdx/registry"
)

// init initializes the global registry state.
func init() {
	st.Store(&state{reg: registry.Default()})
}

// Register associates concrete type T with value in the type-only domain
// of E (no base-type relation; the domain's base is the empty interface).
// It returns false once the domain is frozen.
func Register[T any, E comparable](value E) bool {
	return RegisterAs[any, T](value)
}

// RegisterAs associates concrete type T with value in the domain scoped by
// Base and E. When Base is an interface type, a T that does not implement
// it panics; Go generics cannot express the constraint statically.
func RegisterAs[Base, T any, E comparable](value E) bool {
	return DomainOf[Base, E]().Register(typeOf[T](), value)
}

// SetFallback configures the fallback value of E's type-only domain.
// Must be called before the domain freezes; returns false afterwards.
func SetFallback[E comparable](value E) bool {
	return SetFallbackAs[any](value)
}

// SetFallbackAs is SetFallback for a base-scoped domain.
func SetFallbackAs[Base any, E comparable](value E) bool {
	return DomainOf[Base, E]().SetFallback(value)
}

// Freeze transitions E's type-only domain to its frozen phase. Idempotent.
func Freeze[E comparable]() {
	FreezeAs[any, E]()
}

// FreezeAs is Freeze for a base-scoped domain.
func FreezeAs[Base any, E comparable]() {
	DomainOf[Base, E]().Freeze()
}

// FreezeAll freezes every domain that currently exists in the global
// registry. Domains created afterwards start unfrozen.
func FreezeAll() {
	st.Load().reg.FreezeAll()
}

// KindOf returns the value associated with obj's concrete type in E's
// type-only domain, resolving misses through the domain fallback and then
// E's zero value.
func KindOf[E comparable](obj any) E {
	return KindOfAs[any, E](obj)
}

// KindOfAs is KindOf for a base-scoped domain.
func KindOfAs[Base any, E comparable](obj any) E {
	return DomainOf[Base, E]().Query(obj)
}

// KindOr is KindOf with a caller-supplied fallback, which takes priority
// over the domain's configured one.
func KindOr[E comparable](obj any, fallback E) E {
	return KindOrAs[any](obj, fallback)
}

// KindOrAs is KindOr for a base-scoped domain.
func KindOrAs[Base any, E comparable](obj any, fallback E) E {
	return DomainOf[Base, E]().QueryOr(fallback, obj)
}

// TryKind returns the value associated with obj's concrete type and
// whether an association exists. No fallback chain applies.
func TryKind[E comparable](obj any) (E, bool) {
	return TryKindAs[any, E](obj)
}

// TryKindAs is TryKind for a base-scoped domain.
func TryKindAs[Base any, E comparable](obj any) (E, bool) {
	return DomainOf[Base, E]().TryQuery(obj)
}

// KindOfType is the instance-free form of KindOf for a type known at the
// call site.
func KindOfType[T any, E comparable]() E {
	return DomainOf[any, E]().QueryType(typeOf[T]())
}

// KindOrType is the instance-free form of KindOr.
func KindOrType[T any, E comparable](fallback E) E {
	return DomainOf[any, E]().QueryTypeOr(typeOf[T](), fallback)
}

// TryKindType is the instance-free form of TryKind.
func TryKindType[T any, E comparable]() (E, bool) {
	return DomainOf[any, E]().TryQueryType(typeOf[T]())
}

// DomainOf returns the global domain storage for (Base, E), creating it on
// first reference. The handle is stable for the process lifetime.
func DomainOf[Base any, E comparable]() *domain.Storage[E] {
	return registry.Of[Base, E](st.Load().reg)
}

// Registry returns the global registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// Config returns the global registry's default configuration.
func Config() apis.Config {
	return st.Load().reg.Config()
}

// SetConfig replaces the default configuration applied to domains created
// afterwards. Existing domains keep the settings they were created with.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Load().reg.SetDefaults(&cfg, nil, nil)
}

// SetStrategy replaces the default identity strategy for domains created
// afterwards. Nil is ignored.
func SetStrategy(s apis.Strategy) {
	if s == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Load().reg.SetDefaults(nil, s, nil)
}

// SetReporter replaces the diagnostics reporter for domains created
// afterwards. Nil is ignored.
func SetReporter(r apis.Reporter) {
	if r == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Load().reg.SetDefaults(nil, nil, r)
}

// SetAll replaces the entire global registry in one shot. Nil cfg selects
// the default configuration; nil strat and rep select the reflect strategy
// and no diagnostics; a non-nil reg is installed as-is and the other
// arguments are ignored.
//
// All previously registered domains and entries are discarded. This is the
// hard-reset API, mainly used by tests to get a deterministic state
// between cases.
func SetAll(cfg *apis.Config, strat apis.Strategy, rep apis.Reporter, reg *registry.Registry) {
	buildMu.Lock()
	defer buildMu.Unlock()

	if reg == nil {
		ncfg := config.DefaultConfig()
		if cfg != nil {
			ncfg = *cfg
		}
		reg = registry.New(ncfg, strat, rep)
	}

	// Store the new state atomically.
	st.Store(&state{reg: reg})
}

// buildMu serializes writers (reconfigurations/swaps) so concurrent Set*
// calls cannot interleave partial updates.
var buildMu sync.Mutex

// st is the global kdx state.
var st atomic.Pointer[state]

// state is the global kdx state snapshot.
// Immutable once published; writers create a new state and swap it in.
type state struct {
	// reg is the process-wide domain registry.
	reg *registry.Registry
}

// typeOf resolves the reflect.Type of a type parameter, including
// interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

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

// Package domain implements the storage unit behind one (base type, enum
// type, strategy) triple: a two-phase map plus the phase-transition lock.
//
// A Storage starts in the building phase, where registrations accumulate
// under a mutex, and transitions exactly once to the frozen phase, where
// all queries read an immutable structure without taking any lock. The
// transition is monotonic; there is no thaw.
package domain

import (
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/kdx/apis"
	"dirpx.dev/kdx/phasemap"
	uref "dirpx.dev/kdx/utils/reflect"
)

// Storage owns one domain's entries, phase flag and fallback value.
// All methods are safe for concurrent use.
type Storage[E comparable] struct {
	name  string
	key   apis.DomainKey
	strat apis.Strategy
	rep   apis.Reporter
	auto  bool

	// mu serializes registrations, fallback configuration, the freeze
	// transition and building-phase lookups.
	mu sync.Mutex
	// frozen flips once, under mu, and is read with acquire semantics on
	// the lock-free fast paths.
	frozen atomic.Bool
	// building holds entries until the freeze; nil afterwards.
	building *phasemap.Builder[E]
	// view is published by the freeze and read lock-free from then on.
	view atomic.Pointer[phasemap.Frozen[E]]

	fallback    E
	hasFallback bool
	// queried records that a lookup was served while still building; used
	// only for the freeze-after-query diagnostic.
	queried bool
}

// New constructs a Storage for the given domain key. rep may be nil to
// disable diagnostics. Callers normally go through the registry, which
// guarantees one Storage per key.
func New[E comparable](key apis.DomainKey, strat apis.Strategy, rep apis.Reporter, cfg apis.Config) *Storage[E] {
	if rep == nil {
		rep = noReporter{}
	}
	return &Storage[E]{
		name:     uref.Label(key.Base) + "→" + uref.Label(key.Enum) + "@" + key.Strategy,
		key:      key,
		strat:    strat,
		rep:      rep,
		auto:     cfg.AutoFreeze,
		building: phasemap.NewBuilder[E](),
	}
}

// Ensure Storage satisfies the registry's type-erased view.
var _ apis.Handle = (*Storage[int])(nil)

// Key returns the domain's identity triple.
func (s *Storage[E]) Key() apis.DomainKey { return s.key }

// DomainName returns the label used in diagnostics.
func (s *Storage[E]) DomainName() string { return s.name }

// IsFrozen reports whether the domain has frozen.
func (s *Storage[E]) IsFrozen() bool { return s.frozen.Load() }

// Len returns the number of registered entries.
func (s *Storage[E]) Len() int {
	if f := s.view.Load(); f != nil {
		return f.Len()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := s.view.Load(); f != nil {
		return f.Len()
	}
	return s.building.Len()
}

// Register associates the concrete type t with value v.
// It returns false, without mutating anything, once the domain is frozen;
// callers that care about registration ordering must check it. Registering
// a type twice overwrites the earlier value and fires the duplicate
// diagnostic; that is still a successful registration.
//
// When the domain's base is an interface type, a t that does not implement
// it is a programming error and panics.
func (s *Storage[E]) Register(t reflect.Type, v E) bool {
	if t == nil {
		return false
	}

	// Fast path: no lock needed to refuse after the transition.
	if s.frozen.Load() {
		return false
	}

	s.checkBase(t)
	tok := s.strat.Static(t)
	if tok == apis.NoToken {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock in case Freeze won the race.
	if s.frozen.Load() {
		return false
	}
	if s.building.Insert(tok, v) {
		s.rep.DuplicateRegistration(s.name, tok)
	}
	return true
}

// SetFallback configures the value returned by Query when no entry
// matches. It must be called before freezing; afterwards it returns false
// and changes nothing.
func (s *Storage[E]) SetFallback(v E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen.Load() {
		return false
	}
	s.fallback = v
	s.hasFallback = true
	return true
}

// Fallback returns the configured fallback value, if any.
func (s *Storage[E]) Fallback() (E, bool) {
	// Frozen state is immutable; no lock needed.
	if s.frozen.Load() {
		return s.fallback, s.hasFallback
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fallback, s.hasFallback
}

// Freeze transitions the domain to the frozen phase. Idempotent. If the
// domain served a query while still building, the freeze-after-query
// diagnostic fires first: registrations added after that query may have
// been invisible to its caller.
func (s *Storage[E]) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.freezeLocked()
}

// freezeLocked performs the transition. Caller holds s.mu.
func (s *Storage[E]) freezeLocked() {
	if s.frozen.Load() {
		return
	}
	if s.queried {
		s.rep.FreezeAfterQuery(s.name)
	}
	s.view.Store(s.building.Freeze())
	s.building = nil
	s.frozen.Store(true)
}

// Query returns the value associated with obj's concrete type, resolving
// misses through the domain fallback and then the enum's zero value.
func (s *Storage[E]) Query(obj any) E {
	return s.resolve(s.effectiveFallback(), s.dynamicToken(obj))
}

// QueryOr is Query with a caller-supplied fallback, which takes priority
// over the configured one.
func (s *Storage[E]) QueryOr(fallback E, obj any) E {
	return s.resolve(fallback, s.dynamicToken(obj))
}

// TryQuery returns the value associated with obj's concrete type and
// whether an entry existed. Absence is the caller's requested signal here,
// so no miss diagnostic fires.
func (s *Storage[E]) TryQuery(obj any) (E, bool) {
	return s.lookup(s.dynamicToken(obj))
}

// QueryType is the instance-free form of Query for a type known at the
// call site.
func (s *Storage[E]) QueryType(t reflect.Type) E {
	return s.resolve(s.effectiveFallback(), s.strat.Static(t))
}

// QueryTypeOr is the instance-free form of QueryOr.
func (s *Storage[E]) QueryTypeOr(t reflect.Type, fallback E) E {
	return s.resolve(fallback, s.strat.Static(t))
}

// TryQueryType is the instance-free form of TryQuery.
func (s *Storage[E]) TryQueryType(t reflect.Type) (E, bool) {
	return s.lookup(s.strat.Static(t))
}

// dynamicToken resolves obj's identity. When the strategy cannot identify
// obj (e.g. the anchor strategy without the Anchored capability), the
// domain degrades to identifying its static base type.
func (s *Storage[E]) dynamicToken(obj any) apis.Token {
	if tok, ok := s.strat.Dynamic(obj); ok {
		return tok
	}
	return s.strat.Static(s.key.Base)
}

// resolve looks up tok and applies the fallback. A result equal to the
// fallback fires the miss diagnostic, even when the fallback happens to be
// the registered answer; the conflation is deliberate.
func (s *Storage[E]) resolve(fallback E, tok apis.Token) E {
	v, ok := s.lookup(tok)
	if !ok {
		v = fallback
	}
	if v == fallback {
		s.rep.LookupMiss(s.name, tok)
	}
	return v
}

// lookup reads the frozen view lock-free when available, else consults the
// builder under the mutex. A building-phase lookup marks the domain as
// queried, or freezes it first when auto-freeze is configured.
func (s *Storage[E]) lookup(tok apis.Token) (E, bool) {
	if f := s.view.Load(); f != nil {
		return f.Lookup(tok)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The freeze may have completed while we waited for the lock.
	if f := s.view.Load(); f != nil {
		return f.Lookup(tok)
	}
	if s.auto {
		s.freezeLocked()
		return s.view.Load().Lookup(tok)
	}
	s.queried = true
	return s.building.Lookup(tok)
}

// effectiveFallback is the configured fallback, else the zero value.
// Lock-free once frozen; the fallback never changes after the transition.
func (s *Storage[E]) effectiveFallback() E {
	if !s.frozen.Load() {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if s.hasFallback {
		return s.fallback
	}
	var zero E
	return zero
}

// checkBase enforces the derived-is-a-base constraint where Go can express
// it: an interface base rejects non-conforming types. Generics cannot
// relate two type parameters, so this is a runtime precondition; violating
// it is a programming error, not a recoverable outcome.
func (s *Storage[E]) checkBase(t reflect.Type) {
	base := s.key.Base
	if base == nil || base.Kind() != reflect.Interface || base.NumMethod() == 0 {
		return
	}
	if t.Implements(base) || reflect.PointerTo(t).Implements(base) {
		return
	}
	panic("kdx(domain): " + uref.Label(t) + " does not implement " + uref.Label(base))
}

// noReporter drops all diagnostics.
type noReporter struct{}

func (noReporter) DuplicateRegistration(string, apis.Token) {}
func (noReporter) LookupMiss(string, apis.Token)            {}
func (noReporter) FreezeAfterQuery(string)                  {}

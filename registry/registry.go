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

// Package registry provides the type-erased directory of domain storages,
// keyed by the (base type, enum type, strategy) triple. Domains are
// created lazily with double-checked locking and live for the process
// lifetime; equal keys always resolve to the same storage instance.
package registry

import (
	"reflect"
	"sync"

	"dirpx.dev/kdx/apis"
	"dirpx.dev/kdx/config"
	"dirpx.dev/kdx/domain"
	"dirpx.dev/kdx/report"
	"dirpx.dev/kdx/strategy"
)

// Registry is a directory of domain storages. The zero value is not usable;
// construct with New.
type Registry struct {
	// mu is read-preferring: domain lookup after creation takes only the
	// read lock, creation upgrades to the write lock and re-checks.
	mu sync.RWMutex
	// domains maps keys to type-erased storage handles. Entries are never
	// removed.
	domains map[apis.DomainKey]apis.Handle

	// Defaults applied to domains created later; changing them never
	// affects existing domains.
	cfg   apis.Config
	strat apis.Strategy
	rep   apis.Reporter
}

// New constructs a Registry. A nil strat selects the reflect strategy; a
// nil rep disables diagnostics.
func New(cfg apis.Config, strat apis.Strategy, rep apis.Reporter) *Registry {
	if strat == nil {
		strat = strategy.NewReflect(cfg)
	}
	if rep == nil {
		rep = report.Nop()
	}
	return &Registry{
		domains: make(map[apis.DomainKey]apis.Handle),
		cfg:     cfg,
		strat:   strat,
		rep:     rep,
	}
}

// Default constructs a Registry with the default configuration, the
// reflect strategy and no diagnostics.
func Default() *Registry {
	return New(config.DefaultConfig(), nil, nil)
}

// Of returns the domain storage for (Base, E) under the registry's default
// strategy, creating it on first reference.
func Of[Base any, E comparable](r *Registry) *domain.Storage[E] {
	return OfStrategy[Base, E](r, nil)
}

// OfStrategy is Of with an explicit identity strategy. A nil strat uses
// the registry default. Two calls with equal (base, enum, strategy name)
// triples always return the same instance.
func OfStrategy[Base any, E comparable](r *Registry, strat apis.Strategy) *domain.Storage[E] {
	r.mu.RLock()
	if strat == nil {
		strat = r.strat
	}
	key := apis.DomainKey{
		Base:     typeOf[Base](),
		Enum:     typeOf[E](),
		Strategy: strat.Name(),
	}
	h, ok := r.domains[key]
	r.mu.RUnlock()
	if ok {
		return h.(*domain.Storage[E])
	}

	// Upgrade to the write lock and re-check: another goroutine may have
	// created the domain between the two lock acquisitions.
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.domains[key]; ok {
		return h.(*domain.Storage[E])
	}

	s := domain.New[E](key, strat, r.rep, r.cfg)
	r.domains[key] = s
	return s
}

// FreezeAll freezes every existing domain. Domains created afterwards
// start unfrozen and are unaffected.
func (r *Registry) FreezeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.domains {
		h.Freeze()
	}
}

// Handles returns a snapshot of all domain handles for diagnostics/docs
// (order is unspecified).
func (r *Registry) Handles() []apis.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Handle, 0, len(r.domains))
	for _, h := range r.domains {
		out = append(out, h)
	}
	return out
}

// Len returns the number of existing domains.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.domains)
}

// Config returns the registry's default configuration.
func (r *Registry) Config() apis.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// Strategy returns the registry's default identity strategy.
func (r *Registry) Strategy() apis.Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.strat
}

// Reporter returns the registry's diagnostics reporter.
func (r *Registry) Reporter() apis.Reporter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rep
}

// SetDefaults replaces the defaults used for domains created afterwards.
// Nil arguments leave the corresponding default unchanged. Existing
// domains keep the settings they were created with; entries are never
// rebuilt or removed.
func (r *Registry) SetDefaults(cfg *apis.Config, strat apis.Strategy, rep apis.Reporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cfg != nil {
		r.cfg = *cfg
	}
	if strat != nil {
		r.strat = strat
	}
	if rep != nil {
		r.rep = rep
	}
}

// typeOf resolves the reflect.Type of a type parameter, including
// interface types.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

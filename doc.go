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

// Package kdx classifies polymorphic values into caller-defined
// enumerations at runtime.
//
// kdx answers one question: "given a value whose concrete type is unknown
// at the call site, which category does it belong to?" Categories are
// values of an arbitrary enumeration type chosen by the caller; the
// association between concrete types and enum values is registered by
// independent code units, without touching the type hierarchy itself and
// without funneling every classification through one global enum.
//
// # Design
//
// The core is a directory of domains. A domain is the scope of one
// (base type, enum type, identity strategy) triple and owns one
// independent type→enum mapping:
//
//   - Identity strategies (package strategy) turn a type, or a runtime
//     value's concrete type, into an opaque ordered token. The reflect
//     strategy interns reflect.Types; the anchor strategy uses a unique
//     per-type marker exposed through the apis.Anchored capability, for
//     builds where runtime type identity cannot be trusted across module
//     boundaries.
//
//   - Each domain (package domain) runs a two-phase map (package
//     phasemap). While building, registrations accumulate under a mutex
//     and overwrite on duplicate tokens. Freezing sorts the entries into
//     an immutable view; from then on every query is a lock-free binary
//     search. The transition is one-way and idempotent.
//
//   - The registry (package registry) indexes domains by their key and
//     creates them lazily with double-checked locking. Equal keys always
//     resolve to the same domain instance for the process lifetime.
//
//   - Diagnostics (package report) are a fire-and-forget hook: duplicate
//     registration, lookup miss, freeze-after-query. Reporters observe
//     and never affect outcomes.
//
// # Global API
//
// The package front door is a process-wide registry behind an atomic
// snapshot pointer. Readers load the pointer and never take locks; the
// few writers (SetConfig, SetReporter, SetStrategy, SetAll) serialize on
// an internal build mutex and publish atomically.
//
// Registration and queries are generic free functions. The simplest form
// scopes a domain by enum type alone:
//
//	kdx.Register[Circle](ShapeCircle)
//	kdx.Register[Square](ShapeSquare)
//	kdx.Freeze[ShapeKind]()
//
//	var s Shape = &Circle{}
//	kind := kdx.KindOf[ShapeKind](s)
//
// Base-scoped domains and explicit strategies go through the domain
// handle:
//
//	d := kdx.DomainOf[Shape, ShapeKind]()
//	d.Register(reflect.TypeOf(Circle{}), ShapeCircle)
//	d.Freeze()
//	kind := d.Query(s)
//
// Misses resolve through a fallback chain: the caller's explicit fallback
// argument, else the domain's configured fallback (SetFallback, only
// before freezing), else the enum's zero value. TryKind reports absence
// explicitly instead.
//
// # Concurrency model
//
// Registrations, fallback configuration and the freeze are mutually
// exclusive per domain. A completed freeze is visible to every goroutine
// that subsequently queries the domain; frozen-phase queries read an
// immutable structure and never contend. Domain creation takes the
// registry's write lock once per key.
//
// # Scope
//
// kdx is intentionally small. It is not a general reflection system, not
// a serialization framework and not a dependency-injection container. It
// performs exactly one mapping: concrete-type identity → enumeration
// value, scoped per (base, enum, strategy) triple.
package kdx

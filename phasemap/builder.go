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

// Package phasemap implements the two-phase token→value map backing one
// domain: a mutable Builder accumulates entries during registration, then
// Freeze compiles them into an immutable, binary-searchable Frozen view.
//
// The Builder is not safe for concurrent use; the owning domain serializes
// access under its mutex. The Frozen view never mutates and needs no
// synchronization at all.
package phasemap

import (
	"cmp"
	"slices"

	"dirpx.dev/kdx/apis"
)

// entry is one (token, value) association.
type entry[E any] struct {
	tok apis.Token
	val E
}

// Builder is the build-phase half of the map.
type Builder[E any] struct {
	// entries holds associations in insertion order until Freeze sorts them.
	entries []entry[E]
	// index maps tokens to entry positions for pre-freeze lookups.
	index map[apis.Token]int
}

// NewBuilder returns an empty Builder.
func NewBuilder[E any]() *Builder[E] {
	return &Builder[E]{index: make(map[apis.Token]int)}
}

// Insert associates tok with v. Insertion always succeeds; if tok is
// already present the value is overwritten and Insert reports true so the
// caller can surface a duplicate-registration diagnostic.
func (b *Builder[E]) Insert(tok apis.Token, v E) (replaced bool) {
	if i, ok := b.index[tok]; ok {
		b.entries[i].val = v
		return true
	}
	b.index[tok] = len(b.entries)
	b.entries = append(b.entries, entry[E]{tok: tok, val: v})
	return false
}

// Lookup returns the value for tok, if present. Usable before freezing;
// domains may be queried while still building.
func (b *Builder[E]) Lookup(tok apis.Token) (E, bool) {
	if i, ok := b.index[tok]; ok {
		return b.entries[i].val, true
	}
	var zero E
	return zero, false
}

// Len returns the number of entries.
func (b *Builder[E]) Len() int { return len(b.entries) }

// Freeze consumes the builder and returns the immutable read view, with
// entries sorted by token for logarithmic lookup. The builder holds no
// entries afterwards and must not be reused.
func (b *Builder[E]) Freeze() *Frozen[E] {
	entries := b.entries
	b.entries = nil
	b.index = nil
	slices.SortFunc(entries, func(a, b entry[E]) int {
		return cmp.Compare(a.tok, b.tok)
	})
	return &Frozen[E]{entries: entries}
}

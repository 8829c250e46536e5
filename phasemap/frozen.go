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

package phasemap

import (
	"sort"

	"dirpx.dev/kdx/apis"
)

// Frozen is the read-phase half of the map: entries sorted by token,
// looked up by binary search. It never mutates after construction and is
// safe for unsynchronized concurrent readers.
type Frozen[E any] struct {
	entries []entry[E]
}

// Lookup returns the value for tok, if present.
func (f *Frozen[E]) Lookup(tok apis.Token) (E, bool) {
	i := sort.Search(len(f.entries), func(i int) bool {
		return f.entries[i].tok >= tok
	})
	if i < len(f.entries) && f.entries[i].tok == tok {
		return f.entries[i].val, true
	}
	var zero E
	return zero, false
}

// Len returns the number of entries.
func (f *Frozen[E]) Len() int { return len(f.entries) }

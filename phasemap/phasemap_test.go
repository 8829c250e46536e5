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

package phasemap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"dirpx.dev/kdx/apis"
	"dirpx.dev/kdx/phasemap"
)

func TestBuilder_InsertAndLookup(t *testing.T) {
	b := phasemap.NewBuilder[string]()

	require.False(t, b.Insert(apis.Token(7), "seven"), "first insert should not replace")
	require.False(t, b.Insert(apis.Token(3), "three"), "first insert should not replace")
	require.Equal(t, 2, b.Len())

	v, ok := b.Lookup(apis.Token(7))
	require.True(t, ok)
	require.Equal(t, "seven", v)

	_, ok = b.Lookup(apis.Token(99))
	require.False(t, ok, "unknown token should miss")
}

func TestBuilder_InsertOverwrites(t *testing.T) {
	b := phasemap.NewBuilder[string]()

	require.False(t, b.Insert(apis.Token(1), "v1"))
	require.True(t, b.Insert(apis.Token(1), "v2"), "second insert should report replacement")
	require.Equal(t, 1, b.Len(), "overwrite must not add an entry")

	v, ok := b.Lookup(apis.Token(1))
	require.True(t, ok)
	require.Equal(t, "v2", v, "last write wins")
}

func TestFreeze_PreservesEntries(t *testing.T) {
	b := phasemap.NewBuilder[int]()
	// Insert out of token order to exercise the sort.
	toks := []apis.Token{42, 7, 19, 3, 88}
	for i, tok := range toks {
		b.Insert(tok, i)
	}

	f := b.Freeze()
	require.Equal(t, len(toks), f.Len())
	for i, tok := range toks {
		v, ok := f.Lookup(tok)
		require.True(t, ok, "token %d should be present after freeze", tok)
		require.Equal(t, i, v)
	}

	_, ok := f.Lookup(apis.Token(100))
	require.False(t, ok)
	require.Equal(t, 0, b.Len(), "builder should hold nothing after Freeze")
}

func TestFrozen_EmptyMap(t *testing.T) {
	f := phasemap.NewBuilder[int]().Freeze()
	require.Equal(t, 0, f.Len())
	_, ok := f.Lookup(apis.Token(1))
	require.False(t, ok)
}

// TestPhaseMap_FreezeEquivalence checks that freezing never changes the
// map's contents: for arbitrary insert sequences (duplicates included),
// every token resolves to the same value before and after Freeze, and
// absent tokens stay absent.
func TestPhaseMap_FreezeEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := phasemap.NewBuilder[int]()
		model := map[apis.Token]int{}

		n := rapid.IntRange(0, 200).Draw(t, "n")
		for i := 0; i < n; i++ {
			tok := apis.Token(rapid.Uint64Range(1, 64).Draw(t, "tok"))
			val := rapid.Int().Draw(t, "val")
			_, existed := model[tok]
			replaced := b.Insert(tok, val)
			if replaced != existed {
				t.Fatalf("Insert(%d) replaced=%v, model says %v", tok, replaced, existed)
			}
			model[tok] = val
		}

		if b.Len() != len(model) {
			t.Fatalf("builder Len = %d, model has %d", b.Len(), len(model))
		}
		for tok, want := range model {
			got, ok := b.Lookup(tok)
			if !ok || got != want {
				t.Fatalf("builder Lookup(%d) = (%d,%v), want (%d,true)", tok, got, ok, want)
			}
		}

		f := b.Freeze()
		if f.Len() != len(model) {
			t.Fatalf("frozen Len = %d, model has %d", f.Len(), len(model))
		}
		for tok := apis.Token(1); tok <= 64; tok++ {
			got, ok := f.Lookup(tok)
			want, present := model[tok]
			if ok != present {
				t.Fatalf("frozen Lookup(%d) ok=%v, model present=%v", tok, ok, present)
			}
			if present && got != want {
				t.Fatalf("frozen Lookup(%d) = %d, want %d", tok, got, want)
			}
		}
	})
}

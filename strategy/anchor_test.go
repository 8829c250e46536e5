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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/kdx/apis"
	"dirpx.dev/kdx/config"
	"dirpx.dev/kdx/strategy"
)

// Anchored via value receiver.
type Marked struct{}

var markedAnchor apis.Anchor

func (Marked) TypeAnchor() *apis.Anchor { return &markedAnchor }

// Anchored via pointer receiver.
type PtrMarked struct{}

var ptrMarkedAnchor apis.Anchor

func (*PtrMarked) TypeAnchor() *apis.Anchor { return &ptrMarkedAnchor }

// No anchor.
type Unmarked struct{}

func TestAnchor_StaticDynamicAgree(t *testing.T) {
	s := strategy.NewAnchor(config.DefaultConfig())

	static := s.Static(reflect.TypeOf(Marked{}))
	if static != markedAnchor.Token() {
		t.Fatalf("Static(Marked) = %d, want anchor token %d", static, markedAnchor.Token())
	}

	dyn, ok := s.Dynamic(Marked{})
	if !ok || dyn != static {
		t.Fatalf("Dynamic(Marked{}) = (%d,%v), want (%d,true)", dyn, ok, static)
	}
}

func TestAnchor_PointerReceiver(t *testing.T) {
	s := strategy.NewAnchor(config.DefaultConfig())

	static := s.Static(reflect.TypeOf(PtrMarked{}))
	if static != ptrMarkedAnchor.Token() {
		t.Fatalf("Static(PtrMarked) = %d, want anchor token %d", static, ptrMarkedAnchor.Token())
	}

	// The value must be passed as a pointer to carry the capability.
	dyn, ok := s.Dynamic(&PtrMarked{})
	if !ok || dyn != static {
		t.Fatalf("Dynamic(&PtrMarked{}) = (%d,%v), want (%d,true)", dyn, ok, static)
	}
}

func TestAnchor_PointerTypeNormalized(t *testing.T) {
	s := strategy.NewAnchor(config.DefaultConfig())

	if s.Static(reflect.TypeOf(&Marked{})) != s.Static(reflect.TypeOf(Marked{})) {
		t.Fatal("Static(*Marked) and Static(Marked) disagree")
	}
}

func TestAnchor_UnmarkedStaticInterned(t *testing.T) {
	s := strategy.NewAnchor(config.DefaultConfig())

	first := s.Static(reflect.TypeOf(Unmarked{}))
	if first == apis.NoToken {
		t.Fatal("Static(Unmarked) = NoToken")
	}
	if again := s.Static(reflect.TypeOf(Unmarked{})); again != first {
		t.Fatalf("Static(Unmarked) unstable: %d -> %d", first, again)
	}
}

func TestAnchor_UnmarkedDynamicNotIdentifiable(t *testing.T) {
	s := strategy.NewAnchor(config.DefaultConfig())

	if tok, ok := s.Dynamic(Unmarked{}); ok {
		t.Fatalf("Dynamic(Unmarked{}) = (%d,true), want not identifiable", tok)
	}
}

func TestAnchor_TokenAssignedOnce(t *testing.T) {
	var a apis.Anchor
	first := a.Token()
	if first == apis.NoToken {
		t.Fatal("anchor token = NoToken")
	}
	for i := 0; i < 100; i++ {
		if got := a.Token(); got != first {
			t.Fatalf("anchor token changed: %d -> %d", first, got)
		}
	}
}

func TestAnchor_Name(t *testing.T) {
	if got := strategy.NewAnchor(config.DefaultConfig()).Name(); got != "anchor" {
		t.Fatalf("Name() = %q, want %q", got, "anchor")
	}
}

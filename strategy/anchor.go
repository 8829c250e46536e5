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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/kdx/apis"
	uref "dirpx.dev/kdx/utils/reflect"
)

// NewAnchor creates an apis.Strategy that identifies types by an
// author-provided marker instead of runtime type identity.
//
// A type participates by exposing one package-level apis.Anchor through
// the apis.Anchored capability; the anchor's once-assigned token is the
// type's identity. This keeps identity under the type author's control,
// for builds where reflect.Type identity cannot be trusted across module
// boundaries.
//
// Types without the capability still get a Static token (a unique integer
// assigned at first use), but their Dynamic identity cannot be recovered
// from a value: Dynamic reports false and the domain resolves the static
// base type instead. That degradation is a documented limitation, not an
// error.
func NewAnchor(cfg apis.Config) apis.Strategy {
	return &anchorStrategy{cfg: cfg}
}

// anchoredType is the capability interface probed on static lookups.
var anchoredType = reflect.TypeOf((*apis.Anchored)(nil)).Elem()

type anchorStrategy struct {
	cfg apis.Config

	// mu guards token assignment for anchorless types.
	mu sync.Mutex
	// tokens maps reflect.Type to apis.Token for types without anchors.
	tokens sync.Map
}

// Ensure anchorStrategy implements apis.Strategy.
var _ apis.Strategy = (*anchorStrategy)(nil)

// Name returns the strategy identifier used in domain keys.
func (*anchorStrategy) Name() string { return "anchor" }

// Static returns the token for t. A type carrying an anchor answers with
// the anchor's token, so Static and Dynamic agree for anchored types.
func (s *anchorStrategy) Static(t reflect.Type) apis.Token {
	if t == nil {
		return apis.NoToken
	}
	nt, err := uref.Normalize(t, s.cfg.MaxUnwrap)
	if err != nil {
		return apis.NoToken
	}
	if a, ok := probeAnchor(nt); ok {
		return a.Token()
	}
	return s.intern(nt)
}

// Dynamic returns the token of v's concrete type via its anchor.
// Values without the Anchored capability are not identifiable.
func (s *anchorStrategy) Dynamic(v any) (apis.Token, bool) {
	if v == nil {
		return apis.NoToken, false
	}
	if a, ok := v.(apis.Anchored); ok {
		return a.TypeAnchor().Token(), true
	}
	return apis.NoToken, false
}

// intern assigns a unique token to an anchorless type at first use.
func (s *anchorStrategy) intern(t reflect.Type) apis.Token {
	if v, ok := s.tokens.Load(t); ok {
		return v.(apis.Token)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.tokens.Load(t); ok {
		return v.(apis.Token)
	}

	tok := apis.NextToken()
	s.tokens.Store(t, tok)
	return tok
}

// probeAnchor recovers a type's anchor without an instance. It constructs
// a zero value (or addressable zero for pointer-receiver methods) and asks
// it for the anchor. Interface types have no instances and never match.
func probeAnchor(t reflect.Type) (*apis.Anchor, bool) {
	if t.Kind() == reflect.Interface {
		return nil, false
	}
	if t.Implements(anchoredType) {
		a := reflect.Zero(t).Interface().(apis.Anchored).TypeAnchor()
		return a, a != nil
	}
	if reflect.PointerTo(t).Implements(anchoredType) {
		a := reflect.New(t).Interface().(apis.Anchored).TypeAnchor()
		return a, a != nil
	}
	return nil, false
}

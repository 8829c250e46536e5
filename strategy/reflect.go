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

// NewReflect creates an apis.Strategy backed by the runtime's own type
// identity. Types are normalized (pointer chains unwrapped per
// cfg.MaxUnwrap) and interned: the first sighting of a type assigns its
// token, every later sighting returns the same one.
//
// This is the default strategy. Its identity is as stable as reflect.Type
// identity itself, which in a single statically-linked binary is always
// stable.
func NewReflect(cfg apis.Config) apis.Strategy {
	return &reflectStrategy{cfg: cfg}
}

// reflectStrategy interns normalized reflect.Types into the process-wide
// token space.
type reflectStrategy struct {
	cfg apis.Config

	// mu guards token assignment so a type is interned at most once.
	mu sync.Mutex
	// tokens maps reflect.Type to its assigned apis.Token.
	tokens sync.Map
}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// Name returns the strategy identifier used in domain keys.
func (*reflectStrategy) Name() string { return "reflect" }

// Static returns the token for t, interning it on first use.
// A nil or non-normalizable type yields apis.NoToken.
func (s *reflectStrategy) Static(t reflect.Type) apis.Token {
	if t == nil {
		return apis.NoToken
	}
	nt, err := uref.Normalize(t, s.cfg.MaxUnwrap)
	if err != nil {
		return apis.NoToken
	}
	return s.intern(nt)
}

// Dynamic returns the token for v's concrete type.
func (s *reflectStrategy) Dynamic(v any) (apis.Token, bool) {
	if v == nil {
		return apis.NoToken, false
	}
	tok := s.Static(reflect.TypeOf(v))
	return tok, tok != apis.NoToken
}

// intern returns the token for an already-normalized type, assigning one
// the first time the type is seen.
func (s *reflectStrategy) intern(t reflect.Type) apis.Token {
	// Fast read path: no locking once a type is known.
	if v, ok := s.tokens.Load(t); ok {
		return v.(apis.Token)
	}

	// Write path: guard with a mutex so each type gets exactly one token.
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if v, ok := s.tokens.Load(t); ok {
		return v.(apis.Token)
	}

	tok := apis.NextToken()
	s.tokens.Store(t, tok)
	return tok
}

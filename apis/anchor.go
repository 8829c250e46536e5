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

package apis

import "sync"

// Anchor is a per-type identity marker for the anchor strategy.
//
// A type opts into anchor-based identity by owning exactly one package-level
// Anchor and exposing it through Anchored. The anchor's token is assigned
// once, on first use, and never changes for the process lifetime:
//
//	var circleAnchor apis.Anchor
//
//	type Circle struct{ R float64 }
//
//	func (Circle) TypeAnchor() *apis.Anchor { return &circleAnchor }
//
// The zero Anchor is ready to use. An Anchor must not be copied after its
// token has been read; share the one package-level instance by pointer.
type Anchor struct {
	once sync.Once
	tok  Token
}

// Token returns the anchor's identity token, assigning it on first call.
// Safe for concurrent use.
func (a *Anchor) Token() Token {
	a.once.Do(func() { a.tok = NextToken() })
	return a.tok
}

// Anchored is the capability a type implements to carry its own identity
// marker. It exists because a base-typed reference alone cannot reach a
// derived type's private anchor; the virtual accessor hands it out.
//
// # Contract
//
//   - TypeAnchor MUST return the same *Anchor for every value of the type.
//   - The returned pointer MUST NOT be nil.
//   - The method MUST be safe for concurrent calls and MUST NOT perform
//     blocking operations or I/O.
type Anchored interface {
	// TypeAnchor returns the type's one shared identity anchor.
	TypeAnchor() *Anchor
}

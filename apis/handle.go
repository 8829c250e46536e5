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

import "reflect"

// DomainKey identifies one domain: the (base type, enum type, strategy)
// triple. The registry guarantees that equal keys always resolve to the
// same domain storage instance.
//
// DomainKey is comparable and usable as a map key.
type DomainKey struct {
	// Base is the domain's base type. Type-only domains use the empty
	// interface type.
	Base reflect.Type
	// Enum is the enumeration type the domain maps into.
	Enum reflect.Type
	// Strategy is the identity strategy's Name().
	Strategy string
}

// Handle is the type-erased view of one domain storage. It is what the
// registry stores and what freeze-all and introspection operate on; typed
// registration and queries go through the concrete storage.
type Handle interface {
	// Key returns the domain's identity triple.
	Key() DomainKey
	// DomainName returns the human-readable label used in diagnostics,
	// e.g. "shapes.Shape→shapes.Kind@reflect".
	DomainName() string
	// Freeze transitions the domain to its frozen phase. Idempotent.
	Freeze()
	// IsFrozen reports whether the domain has frozen.
	IsFrozen() bool
	// Len returns the number of registered entries.
	Len() int
}

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

package reflect

import (
	"errors"
	"reflect"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectDepthExceeded indicates a pointer chain deeper than the
	// configured unwrap limit.
	ErrReflectDepthExceeded = errors.New("reflect: pointer chain exceeds unwrap limit")
)

// Normalize unwraps pointer chains and returns the pointed-to type, so a
// type and pointers to it intern to the same identity token: *Circle,
// **Circle and Circle all normalize to Circle.
//
// Other kinds pass through unchanged; a slice, map or interface type is its
// own identity. maxUnwrap caps the pointer depth; a non-positive value
// applies a depth of one (the common single-pointer case).
func Normalize(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = 1
	}
	for i := 0; i < maxUnwrap; i++ {
		if t.Kind() != reflect.Pointer {
			return t, nil
		}
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer {
		return nil, ErrReflectDepthExceeded
	}
	return t, nil
}

// Label renders a short human-readable identifier for a type, used in
// domain names and diagnostics: "shapes.Shape", "kind.Kind", "int".
// Generic instantiation parameters are kept; they are part of identity.
func Label(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 && t.Name() == "" {
		return "any"
	}
	if s := t.String(); s != "" {
		return s
	}
	return t.Kind().String()
}

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

// Config carries read-only knobs that influence domain behavior.
// It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// MaxUnwrap limits pointer-chain unwrapping depth when normalizing a
	// type before identity interning. Acts as a safety guard against
	// pathological nesting.
	MaxUnwrap int

	// AutoFreeze makes a domain freeze itself on its first query instead of
	// waiting for an explicit Freeze call. After the implicit freeze,
	// registration attempts fail exactly as after an explicit one.
	AutoFreeze bool
}

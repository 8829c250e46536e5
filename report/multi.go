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

package report

import "dirpx.dev/kdx/apis"

// Multi returns a Reporter that forwards every diagnostic to each of rs in
// order. Nil reporters are ignored; with zero usable reporters the result
// is equivalent to Nop.
func Multi(rs ...apis.Reporter) apis.Reporter {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Reporter, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return multi{reps: out}
}

// multi is an immutable, order-preserving fan-out over reporters.
type multi struct {
	reps []apis.Reporter
}

func (m multi) DuplicateRegistration(domain string, tok apis.Token) {
	for _, r := range m.reps {
		r.DuplicateRegistration(domain, tok)
	}
}

func (m multi) LookupMiss(domain string, tok apis.Token) {
	for _, r := range m.reps {
		r.LookupMiss(domain, tok)
	}
}

func (m multi) FreezeAfterQuery(domain string) {
	for _, r := range m.reps {
		r.FreezeAfterQuery(domain)
	}
}

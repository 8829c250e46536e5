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

// Reporter receives diagnostic notifications from domains.
//
// Every call is fire-and-forget: no return value, and nothing a Reporter
// does may influence registration or query outcomes. Implementations may
// log, count, or drop the events.
//
// # Contract
//
//   - Implementations MUST be safe for concurrent calls from multiple
//     goroutines.
//   - Calls may happen while a domain's internal mutex is held; Reporters
//     MUST NOT call back into the domain or registry and SHOULD return
//     quickly.
type Reporter interface {
	// DuplicateRegistration fires when a token already registered in the
	// named domain is registered again. The later value wins; this is an
	// anomaly, not a failure.
	DuplicateRegistration(domain string, tok Token)

	// LookupMiss fires when a query in the named domain resolved to its
	// effective fallback value. A query whose real answer equals the
	// fallback is indistinguishable from a miss; that imprecision is
	// deliberate and documented.
	LookupMiss(domain string, tok Token)

	// FreezeAfterQuery fires when a domain freezes after having served at
	// least one query while still building. Registrations added between the
	// query and the freeze were invisible to that earlier caller.
	FreezeAfterQuery(domain string)
}

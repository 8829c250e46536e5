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

import "sync/atomic"

// Token is an opaque identity for a concrete type within one process run.
//
// Tokens are totally ordered and equality-comparable. Two tokens are equal
// iff they denote the same concrete type under the strategy that produced
// them. Tokens are not stable across process restarts and must never be
// persisted or sent over a wire.
//
// All tokens in a process are allocated from a single sequence (NextToken),
// so tokens minted by different sources (intern tables, anchors) never
// collide.
type Token uint64

// NoToken is the zero Token. It is never allocated by NextToken and marks
// "no identity" in strategy results.
const NoToken Token = 0

// tokenSeq is the process-wide token sequence. Starts handing out at 1 so
// NoToken stays unallocated.
var tokenSeq atomic.Uint64

// NextToken allocates a fresh, process-unique Token.
// Safe for concurrent use.
func NextToken() Token {
	return Token(tokenSeq.Add(1))
}

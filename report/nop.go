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

// Package report provides apis.Reporter implementations: a no-op default,
// a fan-out combinator, a slog-backed logger and a Prometheus collector.
// Reporters only observe; none of them influences registration or query
// outcomes.
package report

import "dirpx.dev/kdx/apis"

// Nop returns a Reporter that drops every diagnostic. It is the default
// when nothing is configured.
func Nop() apis.Reporter { return nop{} }

type nop struct{}

func (nop) DuplicateRegistration(string, apis.Token) {}
func (nop) LookupMiss(string, apis.Token)            {}
func (nop) FreezeAfterQuery(string)                  {}

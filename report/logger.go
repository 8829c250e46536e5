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

import (
	"log/slog"

	"dirpx.dev/kdx/apis"
)

// NewLogger returns a Reporter that writes structured log lines through l.
// A nil l uses slog.Default().
//
// Duplicate registrations and late freezes are correctness smells and log
// at warn level; misses are routine (every fallback resolution is one) and
// log at debug level.
func NewLogger(l *slog.Logger) apis.Reporter {
	if l == nil {
		l = slog.Default()
	}
	return logger{l: l}
}

type logger struct {
	l *slog.Logger
}

func (r logger) DuplicateRegistration(domain string, tok apis.Token) {
	r.l.Warn("kdx: duplicate registration, later value wins",
		"domain", domain,
		"token", uint64(tok),
	)
}

func (r logger) LookupMiss(domain string, tok apis.Token) {
	r.l.Debug("kdx: lookup resolved to fallback",
		"domain", domain,
		"token", uint64(tok),
	)
}

func (r logger) FreezeAfterQuery(domain string) {
	r.l.Warn("kdx: domain froze after serving queries while building",
		"domain", domain,
	)
}

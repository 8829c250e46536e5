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

package report_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"dirpx.dev/kdx/apis"
	"dirpx.dev/kdx/report"
)

// counting is a minimal recording reporter.
type counting struct {
	dups, misses, late int
}

func (c *counting) DuplicateRegistration(string, apis.Token) { c.dups++ }
func (c *counting) LookupMiss(string, apis.Token)            { c.misses++ }
func (c *counting) FreezeAfterQuery(string)                  { c.late++ }

func TestNop_DoesNothing(t *testing.T) {
	r := report.Nop()
	require.NotPanics(t, func() {
		r.DuplicateRegistration("d", 1)
		r.LookupMiss("d", 2)
		r.FreezeAfterQuery("d")
	})
}

func TestMulti_FansOutInOrder(t *testing.T) {
	a := &counting{}
	b := &counting{}
	m := report.Multi(a, nil, b)

	m.DuplicateRegistration("d", 1)
	m.LookupMiss("d", 2)
	m.LookupMiss("d", 3)
	m.FreezeAfterQuery("d")

	for _, c := range []*counting{a, b} {
		require.Equal(t, 1, c.dups)
		require.Equal(t, 2, c.misses)
		require.Equal(t, 1, c.late)
	}
}

func TestMulti_AllNilIsNop(t *testing.T) {
	m := report.Multi(nil, nil)
	require.NotPanics(t, func() {
		m.DuplicateRegistration("d", 1)
	})
}

func TestLogger_WritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := report.NewLogger(l)

	r.DuplicateRegistration("shapes", 7)
	r.LookupMiss("shapes", 9)
	r.FreezeAfterQuery("shapes")

	out := buf.String()
	require.Contains(t, out, "duplicate registration")
	require.Contains(t, out, "fallback")
	require.Contains(t, out, "froze after serving queries")
	require.Contains(t, out, "domain=shapes")
}

func TestLogger_NilUsesDefault(t *testing.T) {
	r := report.NewLogger(nil)
	require.NotPanics(t, func() {
		r.FreezeAfterQuery("d")
	})
}

func TestMetrics_CountsPerDomain(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := report.NewMetrics(reg)

	m.DuplicateRegistration("a", 1)
	m.DuplicateRegistration("a", 2)
	m.LookupMiss("b", 3)
	m.FreezeAfterQuery("a")

	require.Equal(t, 2.0, testutil.ToFloat64(m.Duplicates.WithLabelValues("a")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Misses.WithLabelValues("b")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.LateFreezes.WithLabelValues("a")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.Duplicates.WithLabelValues("b")))
}

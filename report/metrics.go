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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/kdx/apis"
)

// Metrics is a Reporter that counts diagnostics per domain in Prometheus
// counters.
type Metrics struct {
	Duplicates  *prometheus.CounterVec
	Misses      *prometheus.CounterVec
	LateFreezes *prometheus.CounterVec
}

// NewMetrics registers the counters with reg and returns the Reporter.
// A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Duplicates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kdx_duplicate_registrations_total",
			Help: "Total number of type registrations that overwrote an existing entry",
		}, []string{"domain"}),
		Misses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kdx_lookup_misses_total",
			Help: "Total number of queries resolved to their fallback value",
		}, []string{"domain"}),
		LateFreezes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kdx_late_freezes_total",
			Help: "Total number of domains frozen after serving queries while still building",
		}, []string{"domain"}),
	}
}

// Ensure Metrics implements apis.Reporter.
var _ apis.Reporter = (*Metrics)(nil)

func (m *Metrics) DuplicateRegistration(domain string, _ apis.Token) {
	m.Duplicates.WithLabelValues(domain).Inc()
}

func (m *Metrics) LookupMiss(domain string, _ apis.Token) {
	m.Misses.WithLabelValues(domain).Inc()
}

func (m *Metrics) FreezeAfterQuery(domain string) {
	m.LateFreezes.WithLabelValues(domain).Inc()
}

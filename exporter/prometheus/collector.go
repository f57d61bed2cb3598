// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prometheus exposes the reallocation statistics of deque.RingBuffer instances to Prometheus.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maypok86/deque/stats"
)

// StatsProvider provides ring buffer statistics.
//
// *stats.Counter implements it.
type StatsProvider interface {
	Snapshot() stats.Stats
}

// Collector collects statistics from a stats provider and exposes them to Prometheus.
type Collector struct {
	provider               StatsProvider
	growsDesc              *prometheus.Desc
	shrinksDesc            *prometheus.Desc
	copiedElementsDesc     *prometheus.Desc
	allocationFailuresDesc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - grows
// - shrinks
// - copied_elements
// - allocation_failures
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		growsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "grows"),
			"Number of times the backing block was replaced by a larger one.",
			nil, nil,
		),
		shrinksDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "shrinks"),
			"Number of times the backing block was replaced by a smaller one.",
			nil, nil,
		),
		copiedElementsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "copied_elements"),
			"Number of elements moved by reallocations.",
			nil, nil,
		),
		allocationFailuresDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "allocation_failures"),
			"Number of failed attempts to obtain a backing block.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.growsDesc
	descs <- c.shrinksDesc
	descs <- c.copiedElementsDesc
	descs <- c.allocationFailuresDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Snapshot()
	metrics <- prometheus.MustNewConstMetric(
		c.growsDesc, prometheus.CounterValue, float64(s.Grows()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.shrinksDesc, prometheus.CounterValue, float64(s.Shrinks()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.copiedElementsDesc, prometheus.CounterValue, float64(s.CopiedElements()),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.allocationFailuresDesc, prometheus.CounterValue, float64(s.AllocationFailures()),
	)
}

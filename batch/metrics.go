/*
 * metrics.go, part of cavity.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * cavity is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsPrefix = "cavity_"

// Job outcomes, used as the status label.
const (
	statusOK      = "ok"
	statusSkipped = "skipped"
)

var volumeBuckets = []float64{0, 2.5, 5, 7.5, 10, 15, 20, 25, 30, 35}

// Metrics collects Prometheus metrics for batch runs. The collectors are registered
// in their own registry, not the global one, so several Metrics can coexist.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry  *prometheus.Registry
	molecules *prometheus.CounterVec
	seconds   prometheus.Histogram
	volume    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them in a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		molecules: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricsPrefix + "molecules_total",
			Help: "Molecules processed, by outcome.",
		}, []string{"status"}),
		seconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricsPrefix + "molecule_seconds",
			Help:    "Time spent processing one molecule.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		volume: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricsPrefix + "void_volume",
			Help:    "Void volumes around markers, in cubic angstrom.",
			Buckets: volumeBuckets,
		}),
	}
	m.Registry.MustRegister(m.molecules, m.seconds, m.volume)
	return m
}

func (m *Metrics) done(d time.Duration) {
	if m == nil {
		return
	}
	m.molecules.WithLabelValues(statusOK).Inc()
	m.seconds.Observe(d.Seconds())
}

func (m *Metrics) skipped() {
	if m == nil {
		return
	}
	m.molecules.WithLabelValues(statusSkipped).Inc()
}

func (m *Metrics) observeVolume(v float64) {
	if m == nil {
		return
	}
	m.volume.Observe(v)
}

// WriteToTextfile writes the metrics to filename in the text exposition format, as
// expected by the node exporter's textfile collector.
func (m *Metrics) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.Registry)
}

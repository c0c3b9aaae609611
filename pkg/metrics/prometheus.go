// Copyright 2026 Radial Networks
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewPromCounter wraps a prometheus counter vec with no labels as a Counter.
func NewPromCounter(cv *prometheus.CounterVec) Counter {
	return promCounter{counter: cv.WithLabelValues()}
}

// NewPromCounterFrom creates a new prometheus counter vec registered with the
// default registry and wraps the label combination as a Counter.
func NewPromCounterFrom(opts prometheus.CounterOpts, labels []string) func(...string) Counter {
	cv := promauto.NewCounterVec(opts, labels)
	return func(labelValues ...string) Counter {
		return promCounter{counter: cv.WithLabelValues(labelValues...)}
	}
}

// NewPromGauge wraps a prometheus gauge vec with no labels as a Gauge.
func NewPromGauge(gv *prometheus.GaugeVec) Gauge {
	return promGauge{gauge: gv.WithLabelValues()}
}

type promCounter struct {
	counter prometheus.Counter
}

func (c promCounter) Add(delta float64) {
	c.counter.Add(delta)
}

type promGauge struct {
	gauge prometheus.Gauge
}

func (g promGauge) Set(value float64) {
	g.gauge.Set(value)
}

func (g promGauge) Add(delta float64) {
	g.gauge.Add(delta)
}

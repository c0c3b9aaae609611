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

package topology

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/radialnet/radial/pkg/metrics"
)

// ControllerMetrics reports what a controller does. Any field may be nil, in
// which case the respective metric is not reported.
type ControllerMetrics struct {
	// HubsAdded counts successfully created hubs.
	HubsAdded metrics.Counter
	// SpokesAdded counts successfully created spokes.
	SpokesAdded metrics.Counter
	// RangesReserved counts manually registered address ranges.
	RangesReserved metrics.Counter
	// AllocationErrors counts failed allocator calls.
	AllocationErrors metrics.Counter
}

// NewMetrics creates controller metrics registered with the default
// prometheus registry.
func NewMetrics() ControllerMetrics {
	return ControllerMetrics{
		HubsAdded: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: "radial",
			Subsystem: "topology",
			Name:      "hubs_added_total",
			Help:      "Number of hub networks created.",
		}, nil)(),
		SpokesAdded: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: "radial",
			Subsystem: "topology",
			Name:      "spokes_added_total",
			Help:      "Number of spoke networks created.",
		}, nil)(),
		RangesReserved: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: "radial",
			Subsystem: "topology",
			Name:      "ranges_reserved_total",
			Help:      "Number of manually registered address ranges.",
		}, nil)(),
		AllocationErrors: metrics.NewPromCounterFrom(prometheus.CounterOpts{
			Namespace: "radial",
			Subsystem: "topology",
			Name:      "allocation_errors_total",
			Help:      "Number of failed address allocations.",
		}, nil)(),
	}
}

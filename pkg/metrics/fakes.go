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
	"fmt"
	"sync"
)

// TestCounter is a counter for use in tests. Updates and reads are safe for
// concurrent use.
type TestCounter struct {
	mu    sync.Mutex
	value float64
}

// NewTestCounter returns a new counter for use in tests.
func NewTestCounter() *TestCounter {
	return &TestCounter{}
}

// Add increases the counter by delta. Negative deltas panic.
func (c *TestCounter) Add(delta float64) {
	if delta < 0 {
		panic(fmt.Sprintf("counter cannot decrease, delta: %f", delta))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += delta
}

// TestGauge is a gauge for use in tests. Updates and reads are safe for
// concurrent use.
type TestGauge struct {
	mu    sync.Mutex
	value float64
}

// NewTestGauge returns a new gauge for use in tests.
func NewTestGauge() *TestGauge {
	return &TestGauge{}
}

// Set sets the gauge to value.
func (g *TestGauge) Set(value float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = value
}

// Add increases the gauge by delta.
func (g *TestGauge) Add(delta float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value += delta
}

// CounterValue reads the current value of the counter. The counter must be a
// *TestCounter, other implementations panic.
func CounterValue(c Counter) float64 {
	tc := c.(*TestCounter)
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.value
}

// GaugeValue reads the current value of the gauge. The gauge must be a
// *TestGauge, other implementations panic.
func GaugeValue(g Gauge) float64 {
	tg := g.(*TestGauge)
	tg.mu.Lock()
	defer tg.mu.Unlock()
	return tg.value
}

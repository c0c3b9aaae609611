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

// Package topology implements the hub and spoke topology controller.
//
// A Controller tracks the networks of one deployment unit across cloud
// accounts and regions. It enforces the structural invariants of the
// topology: at most one hub network per region, spokes only in regions that
// already have a hub, and mutually non-overlapping address ranges for
// everything created through the same controller. The controller also
// tracks every account and region it touches, excluding its own, so that
// downstream sharing and peering setup knows the full blast radius of a
// definition.
//
// All decisions are made once, at topology definition time. A controller is
// built, fed the complete definition in a single pass on one goroutine, and
// then read. There is no deletion API and no concurrency safety beyond that
// single definition pass.
package topology

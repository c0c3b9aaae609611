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
	"net/netip"

	"github.com/radialnet/radial/pkg/cloud"
)

// CidrAllocator hands out the address ranges for the networks a controller
// creates. Implementations must guarantee that ranges bound to distinct keys
// never overlap, and that a key is bound at most once.
//
// The default binding is *ipam.Space.
type CidrAllocator interface {
	// Allocate carves out a free prefix of the given length and binds it
	// to key.
	Allocate(key string, bits int) (netip.Prefix, error)
	// Reserve records an externally managed prefix under key so that
	// future allocations avoid it.
	Reserve(key string, prefix netip.Prefix) error
}

// allocationKey derives the allocator ledger key for a named construct. Keys
// combine the construct name with the scope path, so equally named constructs
// in different scopes stay distinct.
func allocationKey(name string, scope cloud.Scope) string {
	if scope == nil || scope.Path() == "" {
		return name
	}
	return name + "@" + scope.Path()
}

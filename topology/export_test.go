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

import "github.com/radialnet/radial/pkg/cloud"

// WithAllocator replaces the owned allocator. Tests only.
func WithAllocator(alloc CidrAllocator) Option {
	return allocatorOption{alloc}
}

// RegisterAccount exposes account registration. Tests only.
func (c *Controller) RegisterAccount(account cloud.Account) error {
	return c.tracker.registerAccount(account)
}

// RegisterRegion exposes region registration. Tests only.
func (c *Controller) RegisterRegion(region cloud.Region) error {
	return c.tracker.registerRegion(region)
}

// DeriveSinkName exposes the default sink name derivation. Tests only.
func DeriveSinkName(path string) string {
	return defaultSinkName(path)
}

// AllocationKey exposes the ledger key derivation. Tests only.
func AllocationKey(name string, scope cloud.Scope) string {
	return allocationKey(name, scope)
}

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
	"slices"

	"github.com/radialnet/radial/pkg/cloud"
)

// AZConstraint limits the availability zones a network spans. An explicit
// zone list takes precedence over MaxZones.
type AZConstraint struct {
	// Zones lists the zones explicitly.
	Zones []string `json:"zones,omitempty"`
	// MaxZones caps the number of zones. Zero means provider default.
	MaxZones int `json:"max_zones,omitempty"`
}

// clone returns a copy that shares no memory with the receiver.
func (c AZConstraint) clone() AZConstraint {
	return AZConstraint{Zones: slices.Clone(c.Zones), MaxZones: c.MaxZones}
}

// HubOptions are the per-hub settings of AddHub.
type HubOptions struct {
	// AvailabilityZones restricts the hub to the listed zones.
	AvailabilityZones []string
	// MaxAZs caps the number of zones when no explicit list is given.
	MaxAZs int
	// Netmask is the prefix length to allocate. Zero selects the
	// controller default.
	Netmask int
	// DefaultRouteTable names the route table spokes attach their routes
	// to. Empty selects "main".
	DefaultRouteTable string
}

// SpokeOptions are the per-spoke settings of AddSpoke.
type SpokeOptions struct {
	// AvailabilityZones restricts the spoke to the listed zones.
	AvailabilityZones []string
	// MaxAZs caps the number of zones when no explicit list is given.
	MaxAZs int
	// Netmask is the prefix length to allocate. Zero selects the
	// controller default.
	Netmask int
}

// Hub is the central network of a region. All spokes of the region hang off
// it; the hub owns them.
type Hub struct {
	name       string
	account    cloud.Account
	region     cloud.Region
	prefix     netip.Prefix
	zones      AZConstraint
	routeTable string
	logRoute   LogRoute
	spokes     []*Spoke
}

// Name returns the hub's name within its scope.
func (h *Hub) Name() string {
	return h.name
}

// Account returns the account the hub lives in.
func (h *Hub) Account() cloud.Account {
	return h.account
}

// Region returns the region the hub serves. It is the hub's registry key.
func (h *Hub) Region() cloud.Region {
	return h.region
}

// Prefix returns the address range allocated to the hub.
func (h *Hub) Prefix() netip.Prefix {
	return h.prefix
}

// Zones returns the availability zone constraint. The zone list is a copy.
func (h *Hub) Zones() AZConstraint {
	return h.zones.clone()
}

// DefaultRouteTable returns the name of the route table spoke routes attach
// to.
func (h *Hub) DefaultRouteTable() string {
	return h.routeTable
}

// LogRoute returns the traffic log route of the hub.
func (h *Hub) LogRoute() LogRoute {
	return h.logRoute
}

// Spokes returns the spokes attached to the hub, in creation order. The
// returned slice is a copy.
func (h *Hub) Spokes() []*Spoke {
	return slices.Clone(h.spokes)
}

// addSpoke attaches a new spoke to the hub. The spoke inherits the hub's
// region.
func (h *Hub) addSpoke(
	name string,
	account cloud.Account,
	prefix netip.Prefix,
	zones AZConstraint,
	route LogRoute,
) *Spoke {

	spoke := &Spoke{
		name:     name,
		account:  account,
		region:   h.region,
		prefix:   prefix,
		zones:    zones,
		logRoute: route,
	}
	h.spokes = append(h.spokes, spoke)
	return spoke
}

// Spoke is a leaf network attached to the hub of its region. The spoke does
// not hold a reference to the hub; the region is the key to the controller's
// registry.
type Spoke struct {
	name     string
	account  cloud.Account
	region   cloud.Region
	prefix   netip.Prefix
	zones    AZConstraint
	logRoute LogRoute
}

// Name returns the spoke's name within its scope.
func (s *Spoke) Name() string {
	return s.name
}

// Account returns the account the spoke lives in.
func (s *Spoke) Account() cloud.Account {
	return s.account
}

// Region returns the spoke's region. It equals the region of the hub the
// spoke is attached to.
func (s *Spoke) Region() cloud.Region {
	return s.region
}

// HubRegion returns the registry key of the hub the spoke is attached to.
func (s *Spoke) HubRegion() cloud.Region {
	return s.region
}

// Prefix returns the address range allocated to the spoke.
func (s *Spoke) Prefix() netip.Prefix {
	return s.prefix
}

// Zones returns the availability zone constraint. The zone list is a copy.
func (s *Spoke) Zones() AZConstraint {
	return s.zones.clone()
}

// LogRoute returns the traffic log route of the spoke.
func (s *Spoke) LogRoute() LogRoute {
	return s.logRoute
}

func azConstraint(zones []string, maxZones int) AZConstraint {
	return AZConstraint{Zones: slices.Clone(zones), MaxZones: maxZones}
}

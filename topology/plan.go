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

// Plan is an immutable snapshot of a built topology for rendering and
// export. All identifiers in a plan are concrete, so a plan always marshals
// cleanly to JSON.
type Plan struct {
	Scope          string          `json:"scope"`
	Account        cloud.Account   `json:"account"`
	Region         cloud.Region    `json:"region"`
	DefaultNetmask int             `json:"default_netmask"`
	LogDestination string          `json:"log_destination"`
	LogFormat      LogFormat       `json:"log_format"`
	Hubs           []HubPlan       `json:"hubs"`
	Reserved       []ReservedRange `json:"reserved,omitempty"`
	Accounts       []cloud.Account `json:"accounts,omitempty"`
	Regions        []cloud.Region  `json:"regions,omitempty"`
}

// HubPlan is the plan entry of a hub and its spokes.
type HubPlan struct {
	Name       string        `json:"name"`
	Account    cloud.Account `json:"account"`
	Region     cloud.Region  `json:"region"`
	Prefix     netip.Prefix  `json:"prefix"`
	Zones      AZConstraint  `json:"zones"`
	RouteTable string        `json:"route_table"`
	LogRoute   LogRoute      `json:"log_route"`
	Spokes     []SpokePlan   `json:"spokes,omitempty"`
}

// SpokePlan is the plan entry of a spoke.
type SpokePlan struct {
	Name     string        `json:"name"`
	Account  cloud.Account `json:"account"`
	Prefix   netip.Prefix  `json:"prefix"`
	Zones    AZConstraint  `json:"zones"`
	LogRoute LogRoute      `json:"log_route"`
}

// Plan returns a snapshot of the topology built so far. Mutating the
// controller afterwards does not change the snapshot.
func (c *Controller) Plan() Plan {
	hubs := c.hubs.list()
	hubPlans := make([]HubPlan, 0, len(hubs))
	for _, hub := range hubs {
		spokes := hub.Spokes()
		spokePlans := make([]SpokePlan, 0, len(spokes))
		for _, spoke := range spokes {
			spokePlans = append(spokePlans, SpokePlan{
				Name:     spoke.Name(),
				Account:  spoke.Account(),
				Prefix:   spoke.Prefix(),
				Zones:    spoke.Zones(),
				LogRoute: spoke.LogRoute(),
			})
		}
		hubPlans = append(hubPlans, HubPlan{
			Name:       hub.Name(),
			Account:    hub.Account(),
			Region:     hub.Region(),
			Prefix:     hub.Prefix(),
			Zones:      hub.Zones(),
			RouteTable: hub.DefaultRouteTable(),
			LogRoute:   hub.LogRoute(),
			Spokes:     spokePlans,
		})
	}
	return Plan{
		Scope:          c.scope.Path(),
		Account:        c.env.Account,
		Region:         c.env.Region,
		DefaultNetmask: c.netmask,
		LogDestination: c.sink.Destination(),
		LogFormat:      c.format,
		Hubs:           hubPlans,
		Reserved:       slices.Clone(c.reserved),
		Accounts:       c.RegisteredAccounts(),
		Regions:        c.RegisteredRegions(),
	}
}

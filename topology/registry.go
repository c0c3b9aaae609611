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
	"sort"

	"github.com/radialnet/radial/pkg/cloud"
	"github.com/radialnet/radial/pkg/private/serrors"
)

// hubRegistry keys the hubs of a controller by region.
type hubRegistry struct {
	hubs map[cloud.Region]*Hub
}

func newHubRegistry() hubRegistry {
	return hubRegistry{hubs: make(map[cloud.Region]*Hub)}
}

func (r hubRegistry) lookup(region cloud.Region) (*Hub, bool) {
	hub, ok := r.hubs[region]
	return hub, ok
}

// insert stores the hub under its region. The caller must have checked that
// the region is free.
func (r hubRegistry) insert(hub *Hub) {
	r.hubs[hub.Region()] = hub
}

func (r hubRegistry) list() []*Hub {
	hubs := make([]*Hub, 0, len(r.hubs))
	for _, hub := range r.hubs {
		hubs = append(hubs, hub)
	}
	sort.Slice(hubs, func(i, j int) bool {
		return hubs[i].Region().Value() < hubs[j].Region().Value()
	})
	return hubs
}

// envTracker records the accounts and regions a controller touched. The
// controller's own account and region are never recorded, and unresolved
// identifiers are rejected.
type envTracker struct {
	own      cloud.Environment
	accounts map[cloud.Account]struct{}
	regions  map[cloud.Region]struct{}
}

func newEnvTracker(own cloud.Environment) envTracker {
	return envTracker{
		own:      own,
		accounts: make(map[cloud.Account]struct{}),
		regions:  make(map[cloud.Region]struct{}),
	}
}

// registerAccount records the account. Registration is idempotent and skips
// the controller's own account.
func (t envTracker) registerAccount(account cloud.Account) error {
	if account.IsUnresolved() {
		return serrors.JoinNoStack(ErrSymbolicIdentifier, nil, "type", "account")
	}
	if account == t.own.Account {
		return nil
	}
	t.accounts[account] = struct{}{}
	return nil
}

// registerRegion records the region. Registration is idempotent and skips
// the controller's own region.
func (t envTracker) registerRegion(region cloud.Region) error {
	if region.IsUnresolved() {
		return serrors.JoinNoStack(ErrSymbolicIdentifier, nil, "type", "region")
	}
	if region == t.own.Region {
		return nil
	}
	t.regions[region] = struct{}{}
	return nil
}

func (t envTracker) accountList() []cloud.Account {
	accounts := make([]cloud.Account, 0, len(t.accounts))
	for account := range t.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Value() < accounts[j].Value()
	})
	return accounts
}

func (t envTracker) regionList() []cloud.Region {
	regions := make([]cloud.Region, 0, len(t.regions))
	for region := range t.regions {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Value() < regions[j].Value()
	})
	return regions
}

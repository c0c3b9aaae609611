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

// Package config describes the topology definition file. The file is TOML;
// unknown keys are rejected so typos do not silently change a topology.
package config

import (
	"bytes"
	"net/netip"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/radialnet/radial/pkg/cloud"
	"github.com/radialnet/radial/pkg/private/serrors"
	"github.com/radialnet/radial/topology"
)

// Definition is the top level topology definition.
type Definition struct {
	Controller   Controller    `toml:"controller"`
	Hubs         []Hub         `toml:"hubs"`
	Spokes       []Spoke       `toml:"spokes"`
	Reservations []Reservation `toml:"reservations"`
}

// Controller configures the controller of the definition.
type Controller struct {
	// Scope is the unique path of the deployment unit.
	Scope string `toml:"scope"`
	// Account the controller is deployed in.
	Account cloud.Account `toml:"account"`
	// Region the controller is deployed in.
	Region cloud.Region `toml:"region"`
	// DefaultNetmask is the prefix length allocated when a hub or spoke
	// does not specify one.
	DefaultNetmask int `toml:"default_netmask"`
	// LogFormat is the traffic log record format.
	LogFormat topology.LogFormat `toml:"log_format"`
	// AddressPool is the pool automatic allocations are carved from.
	AddressPool netip.Prefix `toml:"address_pool"`
	// LogDestination overrides the derived traffic log destination.
	LogDestination string `toml:"log_destination"`
}

// Hub configures one hub network.
type Hub struct {
	Name string `toml:"name"`
	// Scope overrides the derived path <controller scope>/<name>.
	Scope string `toml:"scope"`
	// Account of the hub. Defaults to the controller account.
	Account cloud.Account `toml:"account"`
	// Region of the hub. At most one hub per region.
	Region            cloud.Region `toml:"region"`
	AvailabilityZones []string     `toml:"availability_zones"`
	MaxAZs            int          `toml:"max_azs"`
	Netmask           int          `toml:"netmask"`
	DefaultRouteTable string       `toml:"default_route_table"`
}

// Spoke configures one spoke network.
type Spoke struct {
	Name string `toml:"name"`
	// Scope overrides the derived path <controller scope>/<name>.
	Scope string `toml:"scope"`
	// Account of the spoke. Defaults to the controller account.
	Account cloud.Account `toml:"account"`
	// Region of the spoke. The region must already have a hub.
	Region            cloud.Region `toml:"region"`
	AvailabilityZones []string     `toml:"availability_zones"`
	MaxAZs            int          `toml:"max_azs"`
	Netmask           int          `toml:"netmask"`
}

// Reservation is an externally managed range automatic allocation must
// avoid.
type Reservation struct {
	Key    string       `toml:"key"`
	Prefix netip.Prefix `toml:"prefix"`
}

// Load reads, parses and validates a definition file.
func Load(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.Wrap("reading definition file", err, "file", path)
	}
	var d Definition
	decoder := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields()
	if err := decoder.Decode(&d); err != nil {
		return nil, serrors.Wrap("parsing definition file", err, "file", path)
	}
	d.InitDefaults()
	if err := d.Validate(); err != nil {
		return nil, serrors.Wrap("validating definition file", err, "file", path)
	}
	return &d, nil
}

// InitDefaults initializes the unset fields to default values.
func (d *Definition) InitDefaults() {
	if d.Controller.DefaultNetmask == 0 {
		d.Controller.DefaultNetmask = topology.DefaultNetmask
	}
	if !d.Controller.AddressPool.IsValid() {
		d.Controller.AddressPool = topology.DefaultPool
	}
}

// Validate checks the definition syntactically. Structural rules, like one
// hub per region, are enforced by the controller when the definition is
// built.
func (d *Definition) Validate() error {
	if d.Controller.Scope == "" {
		return serrors.New("controller scope not set")
	}
	if d.Controller.Account == (cloud.Account{}) {
		return serrors.New("controller account not set")
	}
	if d.Controller.Region == (cloud.Region{}) {
		return serrors.New("controller region not set")
	}
	if d.Controller.DefaultNetmask < 0 {
		return serrors.New("negative default netmask",
			"default_netmask", d.Controller.DefaultNetmask)
	}
	for i, hub := range d.Hubs {
		if hub.Name == "" {
			return serrors.New("hub name not set", "index", i)
		}
		if hub.Region == (cloud.Region{}) {
			return serrors.New("hub region not set", "hub", hub.Name)
		}
	}
	for i, spoke := range d.Spokes {
		if spoke.Name == "" {
			return serrors.New("spoke name not set", "index", i)
		}
		if spoke.Region == (cloud.Region{}) {
			return serrors.New("spoke region not set", "spoke", spoke.Name)
		}
	}
	for i, res := range d.Reservations {
		if res.Key == "" {
			return serrors.New("reservation key not set", "index", i)
		}
		if !res.Prefix.IsValid() {
			return serrors.New("reservation prefix not set", "key", res.Key)
		}
	}
	return nil
}

// Build constructs the topology the definition describes: reservations
// first, then hubs, then spokes. Construction stops at the first error.
func (d *Definition) Build(extra ...topology.Option) (*topology.Controller, error) {
	d.InitDefaults()
	if err := d.Validate(); err != nil {
		return nil, err
	}
	root := cloud.NewScope(d.Controller.Scope, cloud.Environment{
		Account: d.Controller.Account,
		Region:  d.Controller.Region,
	})
	opts := []topology.Option{
		topology.WithDefaultNetmask(d.Controller.DefaultNetmask),
		topology.WithLogFormat(d.Controller.LogFormat),
		topology.WithAddressPool(d.Controller.AddressPool),
	}
	if d.Controller.LogDestination != "" {
		opts = append(opts, topology.WithLogSink(topology.StaticSink(d.Controller.LogDestination)))
	}
	opts = append(opts, extra...)

	c, err := topology.NewController(root, opts...)
	if err != nil {
		return nil, err
	}
	for _, res := range d.Reservations {
		if err := c.RegisterCidr(root, res.Key, res.Prefix); err != nil {
			return nil, err
		}
	}
	for _, hub := range d.Hubs {
		scope := networkScope(root, hub.Scope, hub.Name, hub.Account, hub.Region)
		_, err := c.AddHub(scope, hub.Name, topology.HubOptions{
			AvailabilityZones: hub.AvailabilityZones,
			MaxAZs:            hub.MaxAZs,
			Netmask:           hub.Netmask,
			DefaultRouteTable: hub.DefaultRouteTable,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, spoke := range d.Spokes {
		scope := networkScope(root, spoke.Scope, spoke.Name, spoke.Account, spoke.Region)
		_, err := c.AddSpoke(scope, spoke.Name, topology.SpokeOptions{
			AvailabilityZones: spoke.AvailabilityZones,
			MaxAZs:            spoke.MaxAZs,
			Netmask:           spoke.Netmask,
		})
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// networkScope derives the scope of a hub or spoke entry. An unset account
// inherits the controller account; an explicit symbolic account is passed
// through unchanged.
func networkScope(
	root cloud.Scope,
	path string,
	name string,
	account cloud.Account,
	region cloud.Region,
) cloud.Scope {

	if account == (cloud.Account{}) {
		account = root.Environment().Account
	}
	if path == "" {
		path = root.Path() + "/" + name
	}
	return cloud.NewScope(path, cloud.Environment{Account: account, Region: region})
}

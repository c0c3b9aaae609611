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
	"github.com/radialnet/radial/pkg/ipam"
	"github.com/radialnet/radial/pkg/log"
	"github.com/radialnet/radial/pkg/metrics"
	"github.com/radialnet/radial/pkg/private/serrors"
)

// Errors returned by the controller.
var (
	// ErrUnboundEnvironment indicates a scope whose account or region is
	// not concrete.
	ErrUnboundEnvironment = serrors.New("environment not bound to concrete account and region")
	// ErrDuplicateHub indicates an attempt to create a second hub for a
	// region.
	ErrDuplicateHub = serrors.New("hub already exists for region")
	// ErrMissingHub indicates an attempt to create a spoke in a region
	// that has no hub.
	ErrMissingHub = serrors.New("no hub for region")
	// ErrSymbolicIdentifier indicates an unresolved identifier where a
	// concrete one is required.
	ErrSymbolicIdentifier = serrors.New("identifier is not concrete")
)

const (
	// DefaultNetmask is the prefix length used when neither the operation
	// nor the controller configuration specifies one.
	DefaultNetmask = 16
	// DefaultRouteTableName is used when HubOptions does not name a route
	// table.
	DefaultRouteTableName = "main"
)

// DefaultPool is the address pool of the owned allocator when none is
// configured.
var DefaultPool = netip.MustParsePrefix("10.0.0.0/8")

type options struct {
	netmask int
	format  LogFormat
	sink    LogSink
	pool    netip.Prefix
	alloc   CidrAllocator
	metrics ControllerMetrics
}

// Option configures the controller.
type Option interface {
	apply(o *options)
}

type netmaskOption int

func (m netmaskOption) apply(o *options) {
	o.netmask = int(m)
}

// WithDefaultNetmask sets the prefix length allocated when an operation does
// not specify one.
func WithDefaultNetmask(bits int) Option {
	return netmaskOption(bits)
}

type formatOption LogFormat

func (f formatOption) apply(o *options) {
	o.format = LogFormat(f)
}

// WithLogFormat sets the traffic log record format applied to every network
// the controller creates.
func WithLogFormat(format LogFormat) Option {
	return formatOption(format)
}

type sinkOption struct{ LogSink }

func (s sinkOption) apply(o *options) {
	o.sink = s.LogSink
}

// WithLogSink sets the traffic log destination. Without this option the
// controller derives a static destination name from its scope path.
func WithLogSink(sink LogSink) Option {
	return sinkOption{sink}
}

type poolOption netip.Prefix

func (p poolOption) apply(o *options) {
	o.pool = netip.Prefix(p)
}

// WithAddressPool sets the pool the owned allocator carves ranges out of.
func WithAddressPool(pool netip.Prefix) Option {
	return poolOption(pool)
}

type metricsOption ControllerMetrics

func (m metricsOption) apply(o *options) {
	o.metrics = ControllerMetrics(m)
}

// WithMetrics sets the metrics the controller reports to.
func WithMetrics(m ControllerMetrics) Option {
	return metricsOption(m)
}

type allocatorOption struct{ CidrAllocator }

func (a allocatorOption) apply(o *options) {
	o.alloc = a.CidrAllocator
}

func applyOptions(opts []Option) options {
	o := options{
		netmask: DefaultNetmask,
		pool:    DefaultPool,
	}
	for _, f := range opts {
		f.apply(&o)
	}
	return o
}

// ReservedRange is a manually registered address range.
type ReservedRange struct {
	Key    string       `json:"key"`
	Prefix netip.Prefix `json:"prefix"`
}

// Controller builds and tracks the hub and spoke topology of one deployment
// unit. It enforces one hub per region, spokes only where a hub exists, and
// non-overlapping address ranges across everything it creates.
//
// A controller is constructed once per definition pass and must only be used
// from a single goroutine.
type Controller struct {
	scope    cloud.Scope
	env      cloud.Environment
	netmask  int
	format   LogFormat
	sink     LogSink
	alloc    CidrAllocator
	hubs     hubRegistry
	tracker  envTracker
	reserved []ReservedRange
	metrics  ControllerMetrics
	logger   log.Logger
}

// NewController creates a controller bound to the scope's environment. The
// scope must resolve to a concrete account and region.
func NewController(scope cloud.Scope, opts ...Option) (*Controller, error) {
	env := cloud.Resolve(scope)
	if !env.IsConcrete() {
		return nil, serrors.JoinNoStack(ErrUnboundEnvironment, nil,
			"scope", scopePath(scope), "environment", env)
	}
	o := applyOptions(opts)
	if o.netmask < 0 {
		return nil, serrors.New("negative default netmask", "netmask", o.netmask)
	}
	alloc := o.alloc
	if alloc == nil {
		space, err := ipam.NewSpace(o.pool)
		if err != nil {
			return nil, serrors.Wrap("creating address space", err)
		}
		alloc = space
	}
	sink := o.sink
	if sink == nil {
		sink = StaticSink(defaultSinkName(scope.Path()))
	}
	return &Controller{
		scope:   scope,
		env:     env,
		netmask: o.netmask,
		format:  o.format,
		sink:    sink,
		alloc:   alloc,
		hubs:    newHubRegistry(),
		tracker: newEnvTracker(env),
		metrics: o.metrics,
		logger:  log.New("component", "topology", "scope", scope.Path()),
	}, nil
}

// AddHub creates the hub network of the scope's region. At most one hub can
// exist per region; a failed call leaves the controller unchanged.
func (c *Controller) AddHub(scope cloud.Scope, name string, opts HubOptions) (*Hub, error) {
	env := cloud.Resolve(scope)
	if !env.IsConcrete() {
		return nil, serrors.JoinNoStack(ErrUnboundEnvironment, nil,
			"name", name, "scope", scopePath(scope), "environment", env)
	}
	if existing, ok := c.hubs.lookup(env.Region); ok {
		return nil, serrors.JoinNoStack(ErrDuplicateHub, nil,
			"region", env.Region, "name", name, "existing", existing.Name())
	}
	if err := c.track(env); err != nil {
		return nil, err
	}
	prefix, err := c.allocate(name, scope, opts.Netmask)
	if err != nil {
		return nil, serrors.Wrap("allocating hub range", err,
			"name", name, "region", env.Region)
	}
	routeTable := opts.DefaultRouteTable
	if routeTable == "" {
		routeTable = DefaultRouteTableName
	}
	hub := &Hub{
		name:       name,
		account:    env.Account,
		region:     env.Region,
		prefix:     prefix,
		zones:      azConstraint(opts.AvailabilityZones, opts.MaxAZs),
		routeTable: routeTable,
		logRoute:   c.logRoute(),
	}
	c.hubs.insert(hub)
	metrics.CounterInc(c.metrics.HubsAdded)
	c.logger.Debug("Hub added", "name", name, "region", env.Region, "prefix", prefix)
	return hub, nil
}

// AddSpoke creates a spoke network attached to the hub of the scope's
// region. The hub must already exist; a failed call allocates nothing.
func (c *Controller) AddSpoke(scope cloud.Scope, name string, opts SpokeOptions) (*Spoke, error) {
	env := cloud.Resolve(scope)
	if !env.IsConcrete() {
		return nil, serrors.JoinNoStack(ErrUnboundEnvironment, nil,
			"name", name, "scope", scopePath(scope), "environment", env)
	}
	hub, ok := c.hubs.lookup(env.Region)
	if !ok {
		return nil, serrors.JoinNoStack(ErrMissingHub, nil,
			"region", env.Region, "name", name)
	}
	if err := c.track(env); err != nil {
		return nil, err
	}
	prefix, err := c.allocate(name, scope, opts.Netmask)
	if err != nil {
		return nil, serrors.Wrap("allocating spoke range", err,
			"name", name, "region", env.Region)
	}
	spoke := hub.addSpoke(
		name,
		env.Account,
		prefix,
		azConstraint(opts.AvailabilityZones, opts.MaxAZs),
		c.logRoute(),
	)
	metrics.CounterInc(c.metrics.SpokesAdded)
	c.logger.Debug("Spoke added",
		"name", name, "region", env.Region, "prefix", prefix, "hub", hub.Name())
	return spoke, nil
}

// RegisterCidr records an externally managed address range under a key
// derived from key and the scope path, so that automatic allocations avoid
// it. The range must lie in the allocator's pool and must not overlap any
// earlier allocation.
func (c *Controller) RegisterCidr(scope cloud.Scope, key string, prefix netip.Prefix) error {
	ledgerKey := allocationKey(key, scope)
	if err := c.alloc.Reserve(ledgerKey, prefix); err != nil {
		metrics.CounterInc(c.metrics.AllocationErrors)
		return serrors.Wrap("registering range", err, "key", ledgerKey, "prefix", prefix)
	}
	c.reserved = append(c.reserved, ReservedRange{Key: ledgerKey, Prefix: prefix})
	metrics.CounterInc(c.metrics.RangesReserved)
	c.logger.Debug("Range registered", "key", ledgerKey, "prefix", prefix)
	return nil
}

// Hub returns the hub of the region, if the region has one.
func (c *Controller) Hub(region cloud.Region) (*Hub, bool) {
	return c.hubs.lookup(region)
}

// Hubs returns all hubs, sorted by region.
func (c *Controller) Hubs() []*Hub {
	return c.hubs.list()
}

// Environment returns the environment the controller itself is bound to.
func (c *Controller) Environment() cloud.Environment {
	return c.env
}

// RegisteredAccounts returns the accounts the topology touched, sorted. The
// controller's own account is never included.
func (c *Controller) RegisteredAccounts() []cloud.Account {
	return c.tracker.accountList()
}

// RegisteredRegions returns the regions the topology touched, sorted. The
// controller's own region is never included.
func (c *Controller) RegisteredRegions() []cloud.Region {
	return c.tracker.regionList()
}

func (c *Controller) track(env cloud.Environment) error {
	if err := c.tracker.registerAccount(env.Account); err != nil {
		return err
	}
	return c.tracker.registerRegion(env.Region)
}

func (c *Controller) allocate(name string, scope cloud.Scope, bits int) (netip.Prefix, error) {
	if bits == 0 {
		bits = c.netmask
	}
	prefix, err := c.alloc.Allocate(allocationKey(name, scope), bits)
	if err != nil {
		metrics.CounterInc(c.metrics.AllocationErrors)
		return netip.Prefix{}, err
	}
	return prefix, nil
}

func (c *Controller) logRoute() LogRoute {
	return LogRoute{Destination: c.sink.Destination(), Format: c.format}
}

func scopePath(scope cloud.Scope) string {
	if scope == nil {
		return ""
	}
	return scope.Path()
}

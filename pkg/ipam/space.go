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

// Package ipam implements address space management for topology definitions.
// A Space hands out non-overlapping prefixes from a root pool and keeps a
// per-key ledger of everything it gave out or was told to avoid.
package ipam

import (
	"net/netip"

	"go4.org/netipx"

	"github.com/radialnet/radial/pkg/private/serrors"
)

// Errors returned by Space.
var (
	ErrPoolExhausted       = serrors.New("address pool exhausted")
	ErrDuplicateKey        = serrors.New("duplicate allocation key")
	ErrOverlap             = serrors.New("range overlaps previous allocation")
	ErrOutsidePool         = serrors.New("range outside address pool")
	ErrInvalidPrefixLength = serrors.New("invalid prefix length")
)

// Allocation is a single entry of the allocation ledger.
type Allocation struct {
	// Key is the caller supplied allocation key.
	Key string `json:"key"`
	// Prefix is the allocated or reserved range.
	Prefix netip.Prefix `json:"prefix"`
	// Reserved is set if the range was registered manually rather than
	// carved out of the pool.
	Reserved bool `json:"reserved,omitempty"`
}

// Space carves non-overlapping prefixes out of a root pool. Allocations are
// keyed; a key is bound to exactly one range for the lifetime of the space.
// A Space must only be used from a single goroutine.
type Space struct {
	pool  netip.Prefix
	free  *netipx.IPSet
	taken map[string]netip.Prefix
	order []Allocation
}

// NewSpace creates a space over the given pool. The pool is canonicalized to
// its masked form.
func NewSpace(pool netip.Prefix) (*Space, error) {
	if !pool.IsValid() {
		return nil, serrors.New("invalid pool", "pool", pool)
	}
	pool = pool.Masked()
	var b netipx.IPSetBuilder
	b.AddPrefix(pool)
	free, err := b.IPSet()
	if err != nil {
		return nil, serrors.Wrap("building pool set", err, "pool", pool)
	}
	return &Space{
		pool:  pool,
		free:  free,
		taken: make(map[string]netip.Prefix),
	}, nil
}

// Pool returns the root pool of the space.
func (s *Space) Pool() netip.Prefix {
	return s.pool
}

// Allocate carves a free prefix of the given length out of the pool and
// binds it to key. The returned prefix does not overlap any prior allocation
// or reservation. Placement is best-fit: the prefix comes from the smallest
// free block that can hold it, so callers must not rely on address order.
func (s *Space) Allocate(key string, bits int) (netip.Prefix, error) {
	if bits < s.pool.Bits() || bits > s.pool.Addr().BitLen() {
		return netip.Prefix{}, serrors.JoinNoStack(ErrInvalidPrefixLength, nil,
			"key", key, "bits", bits, "pool", s.pool)
	}
	if prev, ok := s.taken[key]; ok {
		return netip.Prefix{}, serrors.JoinNoStack(ErrDuplicateKey, nil,
			"key", key, "previous", prev)
	}
	prefix, free, ok := s.free.RemoveFreePrefix(uint8(bits))
	if !ok {
		return netip.Prefix{}, serrors.JoinNoStack(ErrPoolExhausted, nil,
			"key", key, "bits", bits, "pool", s.pool)
	}
	s.free = free
	s.record(key, prefix, false)
	return prefix, nil
}

// Reserve registers an externally managed range under key so that future
// allocations avoid it. The range must lie inside the pool and must not
// overlap any prior allocation or reservation.
func (s *Space) Reserve(key string, prefix netip.Prefix) error {
	if !prefix.IsValid() {
		return serrors.New("invalid prefix", "key", key, "prefix", prefix)
	}
	prefix = prefix.Masked()
	if prev, ok := s.taken[key]; ok {
		return serrors.JoinNoStack(ErrDuplicateKey, nil, "key", key, "previous", prev)
	}
	if !contains(s.pool, prefix) {
		return serrors.JoinNoStack(ErrOutsidePool, nil,
			"key", key, "prefix", prefix, "pool", s.pool)
	}
	// The free set still containing the whole range means no prior
	// allocation touches it.
	if !s.free.ContainsPrefix(prefix) {
		return serrors.JoinNoStack(ErrOverlap, nil, "key", key, "prefix", prefix)
	}
	var b netipx.IPSetBuilder
	b.AddSet(s.free)
	b.RemovePrefix(prefix)
	free, err := b.IPSet()
	if err != nil {
		return serrors.Wrap("updating free set", err, "key", key, "prefix", prefix)
	}
	s.free = free
	s.record(key, prefix, true)
	return nil
}

// Allocations returns the ledger in the order the entries were created. The
// returned slice is a copy.
func (s *Space) Allocations() []Allocation {
	allocs := make([]Allocation, len(s.order))
	copy(allocs, s.order)
	return allocs
}

func (s *Space) record(key string, prefix netip.Prefix, reserved bool) {
	s.taken[key] = prefix
	s.order = append(s.order, Allocation{Key: key, Prefix: prefix, Reserved: reserved})
}

// contains reports whether the prefix lies fully inside the pool. Two
// prefixes overlap exactly if one contains the other.
func contains(pool, prefix netip.Prefix) bool {
	return pool.Overlaps(prefix) && pool.Bits() <= prefix.Bits()
}

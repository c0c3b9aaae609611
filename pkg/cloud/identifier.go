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

package cloud

import (
	"strings"

	"github.com/radialnet/radial/pkg/private/serrors"
)

// form is the discriminator of a tagged identifier value.
type form uint8

const (
	// formUnresolved is the zero value, so zero identifiers are unresolved.
	formUnresolved form = iota
	formConcrete
)

// Unresolved is the string representation of unresolved identifiers.
const Unresolved = "<unresolved>"

// ErrEmptyIdentifier indicates an empty identifier string.
var ErrEmptyIdentifier = serrors.New("empty identifier")

// Account identifies a cloud account. The zero value is unresolved.
type Account struct {
	v    string
	form form
}

// ParseAccount parses s into an account identifier. Strings containing a
// ${...} placeholder denote symbolic references and parse to an unresolved
// account.
func ParseAccount(s string) (Account, error) {
	if s == "" {
		return Account{}, serrors.JoinNoStack(ErrEmptyIdentifier, nil, "type", "account")
	}
	if symbolic(s) {
		return Account{v: s}, nil
	}
	return Account{v: s, form: formConcrete}, nil
}

// MustParseAccount parses s and panics on failure. Intended for tests and
// constant initialization.
func MustParseAccount(s string) Account {
	a, err := ParseAccount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// DeferredAccount returns an unresolved account, standing for a value that is
// bound only at deployment time.
func DeferredAccount() Account {
	return Account{}
}

// IsConcrete reports whether the account has a usable value.
func (a Account) IsConcrete() bool {
	return a.form == formConcrete
}

// IsUnresolved reports whether the account is a symbolic reference.
func (a Account) IsUnresolved() bool {
	return a.form == formUnresolved
}

// Value returns the concrete account identifier. It panics if the account is
// unresolved.
func (a Account) Value() string {
	if !a.IsConcrete() {
		panic("account is unresolved")
	}
	return a.v
}

func (a Account) String() string {
	if !a.IsConcrete() {
		return Unresolved
	}
	return a.v
}

// Set implements flag.Value.
func (a *Account) Set(s string) error {
	parsed, err := ParseAccount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Unresolved accounts cannot
// be marshaled.
func (a Account) MarshalText() ([]byte, error) {
	if !a.IsConcrete() {
		return nil, serrors.New("marshaling unresolved account")
	}
	return []byte(a.v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Account) UnmarshalText(b []byte) error {
	return a.Set(string(b))
}

// Region identifies a cloud region. The zero value is unresolved.
type Region struct {
	v    string
	form form
}

// ParseRegion parses s into a region identifier. Strings containing a ${...}
// placeholder denote symbolic references and parse to an unresolved region.
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return Region{}, serrors.JoinNoStack(ErrEmptyIdentifier, nil, "type", "region")
	}
	if symbolic(s) {
		return Region{v: s}, nil
	}
	return Region{v: s, form: formConcrete}, nil
}

// MustParseRegion parses s and panics on failure. Intended for tests and
// constant initialization.
func MustParseRegion(s string) Region {
	r, err := ParseRegion(s)
	if err != nil {
		panic(err)
	}
	return r
}

// DeferredRegion returns an unresolved region, standing for a value that is
// bound only at deployment time.
func DeferredRegion() Region {
	return Region{}
}

// IsConcrete reports whether the region has a usable value.
func (r Region) IsConcrete() bool {
	return r.form == formConcrete
}

// IsUnresolved reports whether the region is a symbolic reference.
func (r Region) IsUnresolved() bool {
	return r.form == formUnresolved
}

// Value returns the concrete region identifier. It panics if the region is
// unresolved.
func (r Region) Value() string {
	if !r.IsConcrete() {
		panic("region is unresolved")
	}
	return r.v
}

func (r Region) String() string {
	if !r.IsConcrete() {
		return Unresolved
	}
	return r.v
}

// Set implements flag.Value.
func (r *Region) Set(s string) error {
	parsed, err := ParseRegion(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler. Unresolved regions cannot
// be marshaled.
func (r Region) MarshalText() ([]byte, error) {
	if !r.IsConcrete() {
		return nil, serrors.New("marshaling unresolved region")
	}
	return []byte(r.v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(b []byte) error {
	return r.Set(string(b))
}

// symbolic reports whether s contains a deploy-time placeholder.
func symbolic(s string) bool {
	return strings.Contains(s, "${")
}

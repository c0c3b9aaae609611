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

import "strings"

// Environment is the account and region a scope is bound to. Either may be
// unresolved.
type Environment struct {
	Account Account
	Region  Region
}

// IsConcrete reports whether both the account and the region are concrete.
func (e Environment) IsConcrete() bool {
	return e.Account.IsConcrete() && e.Region.IsConcrete()
}

func (e Environment) String() string {
	return e.Account.String() + "/" + e.Region.String()
}

// Scope is a node in the definition tree. Every construct the topology layer
// creates hangs off a scope; the path is unique within a definition and the
// environment states where the construct is deployed.
type Scope interface {
	// Path returns the slash separated path of the node, e.g. "net/prod".
	Path() string
	// Environment returns the environment the node is bound to.
	Environment() Environment
}

// Resolve returns the environment of the scope. It is nil-safe: a nil scope
// yields the zero environment, which is unresolved.
func Resolve(s Scope) Environment {
	if s == nil {
		return Environment{}
	}
	return s.Environment()
}

type scope struct {
	path string
	env  Environment
}

// NewScope returns a scope rooted at path and bound to env.
func NewScope(path string, env Environment) Scope {
	return &scope{path: strings.Trim(path, "/"), env: env}
}

func (s *scope) Path() string {
	return s.path
}

func (s *scope) Environment() Environment {
	return s.env
}

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

// Package cloud provides the identifier types for cloud accounts and regions,
// and the scope abstraction the topology layer operates on.
//
// Account and Region are tagged values: an identifier is either concrete or
// unresolved. Unresolved identifiers stand for symbolic references, written
// as ${...} placeholders in definition files, whose value is bound only at
// deployment time. Code must check IsConcrete before trusting a value; the
// Value accessors panic on unresolved identifiers.
package cloud

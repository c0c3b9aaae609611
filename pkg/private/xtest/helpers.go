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

// Package xtest contains helpers for testing.
package xtest

import (
	"flag"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var updateGoldenFiles = flag.Bool("update", false, "set to regenerate the golden files")

// UpdateGoldenFiles returns true if golden files should be updated instead of
// checked. Tests that use golden files should regenerate them when this is
// set, via "go test -update ./...".
func UpdateGoldenFiles() bool {
	return *updateGoldenFiles
}

// MustParsePrefix parses s as a CIDR prefix, failing the test on error.
func MustParsePrefix(t testing.TB, s string) netip.Prefix {
	t.Helper()
	prefix, err := netip.ParsePrefix(s)
	require.NoError(t, err)
	return prefix
}

// MustReadFromFile reads the file from the test data folder, failing the test
// on error.
func MustReadFromFile(t testing.TB, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return raw
}

// MustWriteToFile writes the content to the file in the test data folder,
// failing the test on error.
func MustWriteToFile(t testing.TB, content []byte, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join("testdata", name), content, 0644))
}

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

package main

import (
	"bytes"
	"encoding/json"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radialnet/radial/topology"
)

type testPather string

func (p testPather) CommandPath() string { return string(p) }

func TestPlanCommandJSON(t *testing.T) {
	cmd := newPlan(testPather("radial"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--json", "testdata/topology.toml"})
	require.NoError(t, cmd.Execute())

	var plan topology.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))

	assert.Equal(t, "net/test", plan.Scope)
	assert.Equal(t, "111111111111", plan.Account.Value())
	assert.Equal(t, 16, plan.DefaultNetmask)
	assert.Equal(t, "net-test-traffic-logs", plan.LogDestination)
	assert.Equal(t, topology.FormatDefault, plan.LogFormat)

	// Hubs come out sorted by region. The legacy reservation is registered
	// before any hub and fragments the pool, so the best-fit allocator
	// carves the networks from the fragment above it.
	require.Len(t, plan.Hubs, 2)
	assert.Equal(t, "hub-euc1", plan.Hubs[0].Name)
	assert.Equal(t, netip.MustParsePrefix("10.202.0.0/18"), plan.Hubs[0].Prefix)
	assert.Empty(t, plan.Hubs[0].Spokes)

	assert.Equal(t, "hub-use1", plan.Hubs[1].Name)
	assert.Equal(t, netip.MustParsePrefix("10.201.0.0/16"), plan.Hubs[1].Prefix)
	require.Len(t, plan.Hubs[1].Spokes, 1)
	assert.Equal(t, "workload-a", plan.Hubs[1].Spokes[0].Name)
	assert.Equal(t, "333333333333", plan.Hubs[1].Spokes[0].Account.Value())
	assert.Equal(t, netip.MustParsePrefix("10.203.0.0/16"), plan.Hubs[1].Spokes[0].Prefix)

	require.Len(t, plan.Reserved, 1)
	assert.Equal(t, "legacy@net/test", plan.Reserved[0].Key)
	assert.Equal(t, netip.MustParsePrefix("10.200.0.0/16"), plan.Reserved[0].Prefix)

	require.Len(t, plan.Accounts, 2)
	assert.Equal(t, "222222222222", plan.Accounts[0].Value())
	assert.Equal(t, "333333333333", plan.Accounts[1].Value())
	require.Len(t, plan.Regions, 1)
	assert.Equal(t, "eu-central-1", plan.Regions[0].Value())
}

func TestPlanCommandTable(t *testing.T) {
	cmd := newPlan(testPather("radial"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"testdata/topology.toml"})
	require.NoError(t, cmd.Execute())

	rendered := out.String()
	assert.Contains(t, rendered, "Scope:           net/test")
	assert.Contains(t, rendered, "Environment:     111111111111/us-east-1")
	assert.Contains(t, rendered, "Log destination: net-test-traffic-logs (default format)")
	for _, cell := range []string{
		"hub-euc1", "hub-use1", "workload-a",
		"10.201.0.0/16", "10.202.0.0/18", "10.203.0.0/16",
		"legacy@net/test", "10.200.0.0/16",
		"main",
	} {
		assert.Contains(t, rendered, cell)
	}
	assert.Contains(t, rendered, "Shared with accounts: 222222222222, 333333333333")
	assert.Contains(t, rendered, "Peered regions:       eu-central-1")

	// Spokes render under their hub.
	hubLine := strings.Index(rendered, "hub-use1")
	spokeLine := strings.Index(rendered, "workload-a")
	require.NotEqual(t, -1, hubLine)
	require.NotEqual(t, -1, spokeLine)
	assert.Less(t, hubLine, spokeLine)
}

func TestPlanCommandErrors(t *testing.T) {
	testCases := map[string]string{
		"missing file": filepath.Join(t.TempDir(), "nope.toml"),
		"spoke without hub": writeDefinition(t, `
[controller]
scope = "net/test"
account = "111111111111"
region = "us-east-1"

[[spokes]]
name = "workload-a"
region = "us-east-1"
`),
		"duplicate hub region": writeDefinition(t, `
[controller]
scope = "net/test"
account = "111111111111"
region = "us-east-1"

[[hubs]]
name = "hub-a"
region = "us-east-1"

[[hubs]]
name = "hub-b"
region = "us-east-1"
`),
	}
	for name, file := range testCases {
		t.Run(name, func(t *testing.T) {
			cmd := newPlan(testPather("radial"))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{file})
			assert.Error(t, cmd.Execute())
		})
	}
}

func writeDefinition(t *testing.T, contents string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "topology.toml")
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o644))
	return file
}

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

package topology_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radialnet/radial/pkg/cloud"
	"github.com/radialnet/radial/pkg/private/xtest"
	"github.com/radialnet/radial/topology"
)

func TestPlan(t *testing.T) {
	t.Parallel()
	c := newController(t)

	scope := concreteScope("net/prod", ownAccount, ownRegion)
	require.NoError(t, c.RegisterCidr(scope, "legacy", xtest.MustParsePrefix(t, "10.0.0.0/16")))

	hub, err := c.AddHub(
		concreteScope("net/prod/use1", hubAccount, "us-east-1"),
		"hub",
		topology.HubOptions{},
	)
	require.NoError(t, err)
	spoke, err := c.AddSpoke(
		concreteScope("net/prod/use1/a", spokeAccount, "us-east-1"),
		"workload-a",
		topology.SpokeOptions{},
	)
	require.NoError(t, err)

	plan := c.Plan()
	assert.Equal(t, "net/prod", plan.Scope)
	assert.Equal(t, cloud.MustParseAccount(ownAccount), plan.Account)
	assert.Equal(t, cloud.MustParseRegion(ownRegion), plan.Region)
	assert.Equal(t, 16, plan.DefaultNetmask)
	assert.Equal(t, "net-prod-traffic-logs", plan.LogDestination)

	require.Len(t, plan.Hubs, 1)
	assert.Equal(t, "hub", plan.Hubs[0].Name)
	assert.Equal(t, hub.Prefix(), plan.Hubs[0].Prefix)
	require.Len(t, plan.Hubs[0].Spokes, 1)
	assert.Equal(t, "workload-a", plan.Hubs[0].Spokes[0].Name)
	assert.Equal(t, spoke.Prefix(), plan.Hubs[0].Spokes[0].Prefix)

	require.Len(t, plan.Reserved, 1)
	assert.Equal(t, "legacy@net/prod", plan.Reserved[0].Key)

	// The snapshot does not follow later mutations.
	_, err = c.AddSpoke(
		concreteScope("net/prod/use1/b", spokeAccount, "us-east-1"),
		"workload-b",
		topology.SpokeOptions{},
	)
	require.NoError(t, err)
	assert.Len(t, plan.Hubs[0].Spokes, 1)
}

func TestPlanJSON(t *testing.T) {
	t.Parallel()
	c := newController(t)
	_, err := c.AddHub(
		concreteScope("net/prod/use1", hubAccount, "us-east-1"),
		"hub",
		topology.HubOptions{},
	)
	require.NoError(t, err)

	raw, err := json.Marshal(c.Plan())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, ownAccount, decoded["account"])
	assert.Equal(t, "default", decoded["log_format"])
	hubs, ok := decoded["hubs"].([]any)
	require.True(t, ok)
	require.Len(t, hubs, 1)
	hubObj, ok := hubs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.0/16", hubObj["prefix"])
}

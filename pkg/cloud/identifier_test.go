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

package cloud_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radialnet/radial/pkg/cloud"
)

func TestParseAccount(t *testing.T) {
	testCases := map[string]struct {
		input        string
		wantConcrete bool
		wantStr      string
		assertErr    assert.ErrorAssertionFunc
	}{
		"concrete": {
			input:        "123456789012",
			wantConcrete: true,
			wantStr:      "123456789012",
			assertErr:    assert.NoError,
		},
		"symbolic": {
			input:        "${Deferred.AccountId}",
			wantConcrete: false,
			wantStr:      cloud.Unresolved,
			assertErr:    assert.NoError,
		},
		"symbolic embedded": {
			input:        "prefix-${Deferred.AccountId}",
			wantConcrete: false,
			wantStr:      cloud.Unresolved,
			assertErr:    assert.NoError,
		},
		"empty": {
			input:     "",
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a, err := cloud.ParseAccount(tc.input)
			tc.assertErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, cloud.ErrEmptyIdentifier)
				return
			}
			assert.Equal(t, tc.wantConcrete, a.IsConcrete())
			assert.Equal(t, !tc.wantConcrete, a.IsUnresolved())
			assert.Equal(t, tc.wantStr, a.String())
		})
	}
}

func TestParseRegion(t *testing.T) {
	testCases := map[string]struct {
		input        string
		wantConcrete bool
		wantStr      string
		assertErr    assert.ErrorAssertionFunc
	}{
		"concrete": {
			input:        "us-east-1",
			wantConcrete: true,
			wantStr:      "us-east-1",
			assertErr:    assert.NoError,
		},
		"symbolic": {
			input:        "${Deferred.Region}",
			wantConcrete: false,
			wantStr:      cloud.Unresolved,
			assertErr:    assert.NoError,
		},
		"empty": {
			input:     "",
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, err := cloud.ParseRegion(tc.input)
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantConcrete, r.IsConcrete())
			assert.Equal(t, tc.wantStr, r.String())
		})
	}
}

func TestValuePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cloud.DeferredAccount().Value() })
	assert.Panics(t, func() { cloud.DeferredRegion().Value() })
	assert.NotPanics(t, func() { cloud.MustParseAccount("123456789012").Value() })
	assert.NotPanics(t, func() { cloud.MustParseRegion("eu-west-1").Value() })
}

func TestZeroValueUnresolved(t *testing.T) {
	t.Parallel()
	var a cloud.Account
	var r cloud.Region
	assert.True(t, a.IsUnresolved())
	assert.True(t, r.IsUnresolved())
	assert.Equal(t, cloud.DeferredAccount(), a)
	assert.Equal(t, cloud.DeferredRegion(), r)
}

func TestAccountSet(t *testing.T) {
	t.Parallel()
	var a cloud.Account
	require.NoError(t, a.Set("123456789012"))
	assert.Equal(t, cloud.MustParseAccount("123456789012"), a)
	assert.Error(t, a.Set(""))
}

func TestRegionSet(t *testing.T) {
	t.Parallel()
	var r cloud.Region
	require.NoError(t, r.Set("us-east-1"))
	assert.Equal(t, cloud.MustParseRegion("us-east-1"), r)
	assert.Error(t, r.Set(""))
}

func TestMarshalText(t *testing.T) {
	t.Parallel()
	raw, err := cloud.MustParseAccount("123456789012").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "123456789012", string(raw))

	var a cloud.Account
	require.NoError(t, a.UnmarshalText(raw))
	assert.Equal(t, cloud.MustParseAccount("123456789012"), a)

	_, err = cloud.DeferredAccount().MarshalText()
	assert.Error(t, err)
	_, err = cloud.DeferredRegion().MarshalText()
	assert.Error(t, err)
}

func TestRegionMapKey(t *testing.T) {
	t.Parallel()
	m := map[cloud.Region]int{
		cloud.MustParseRegion("us-east-1"): 1,
	}
	m[cloud.MustParseRegion("us-east-1")]++
	assert.Equal(t, 2, m[cloud.MustParseRegion("us-east-1")])
	assert.Len(t, m, 1)
}

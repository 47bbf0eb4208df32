//
// Copyright (c) 2019-2022 flash-rover contributors
// All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) {
	t.Helper()
	old := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", old) })
}

func TestLoadMissingFile(t *testing.T) {
	withTempHome(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestSetLoadRoundTrip(t *testing.T) {
	withTempHome(t)
	require.NoError(t, Set("device", "cc1352r1"))
	require.NoError(t, Set("spi-pins", "8,9,10,20"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"device":   "cc1352r1",
		"spi-pins": "8,9,10,20",
	}, cfg)

	// Empty value clears the key.
	require.NoError(t, Set("spi-pins", ""))
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"device": "cc1352r1"}, cfg)
}

func TestSetUnknownKey(t *testing.T) {
	withTempHome(t)
	err := Set("bogus", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

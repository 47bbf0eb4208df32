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

package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplelink-tools/flash-rover/cli/flags"
)

func withInputFile(t *testing.T, data []byte) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, ioutil.WriteFile(path, data, 0644))
	old := *flags.Input
	*flags.Input = path
	t.Cleanup(func() { *flags.Input = old })
}

func TestParseOffsetLength(t *testing.T) {
	offset, length, err := parseOffsetLength([]string{"0x1000", "4096"})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1000), offset)
	assert.Equal(t, uint32(0x1000), length)

	for _, args := range [][]string{
		{"0x1000"},
		{"0x1000", "x"},
		{"-1", "16"},
		{"0xfffff000", "0x2000"}, // past the end of the address space
	} {
		if _, _, err := parseOffsetLength(args); err == nil {
			t.Errorf("parseOffsetLength(%v): expected error", args)
		}
	}
}

func TestReadInputWholeFile(t *testing.T) {
	payload := bytes.Repeat([]byte{0x5a}, 100)
	withInputFile(t, payload)

	offset, data, err := readInput([]string{"0x2000"})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2000), offset)
	assert.Equal(t, payload, data)
}

func TestReadInputTruncated(t *testing.T) {
	withInputFile(t, make([]byte, 10))

	_, _, err := readInput([]string{"0", "100"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shorter than the requested")
}

// An offset-only write must get the same address space guard as the
// explicit-length form: a high offset plus the input size must not wrap.
func TestReadInputOffsetOverflow(t *testing.T) {
	withInputFile(t, make([]byte, 16))

	_, _, err := readInput([]string{"0xfffffff8"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflows")
}

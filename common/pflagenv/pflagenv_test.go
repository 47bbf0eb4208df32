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

package pflagenv

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
)

func TestParseFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("pflagenv-test", pflag.ContinueOnError)

	var fromCL, emptyCL, fromEnv, untouched string
	fs.StringVar(&fromCL, "from-cl", "def1", "")
	fs.StringVar(&emptyCL, "empty-cl", "def2", "")
	fs.StringVar(&fromEnv, "from-env", "def3", "")
	fs.StringVar(&untouched, "untouched", "def4", "")
	fs.Parse([]string{"--from-cl=cl1", "--empty-cl="})

	os.Setenv("TEST_FROM_CL", "env1")
	os.Setenv("TEST_EMPTY_CL", "env2")
	os.Setenv("TEST_FROM_ENV", "env3")
	defer func() {
		os.Unsetenv("TEST_FROM_CL")
		os.Unsetenv("TEST_EMPTY_CL")
		os.Unsetenv("TEST_FROM_ENV")
	}()
	ParseFlagSet(fs, "TEST_")

	// Command line values win, even explicitly empty ones.
	if got, want := fromCL, "cl1"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
	if got, want := emptyCL, ""; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
	if got, want := fromEnv, "env3"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
	if got, want := untouched, "def4"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}

func TestEnvName(t *testing.T) {
	if got, want := envName("spi-pins", "FLASH_ROVER_"), "FLASH_ROVER_SPI_PINS"; got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}

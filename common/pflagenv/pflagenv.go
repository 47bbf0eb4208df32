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

// Package pflagenv lets environment variables stand in for flags that
// were not given on the command line.
package pflagenv

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ParseFlagSet sets every flag in fs that was not given on the command
// line from the environment variable envPrefix + the uppercased flag
// name ("-" becomes "_"). Empty environment variables are ignored.
// Must be called after fs.Parse.
func ParseFlagSet(fs *pflag.FlagSet, envPrefix string) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			// Explicit command line value wins.
			return
		}
		if v := os.Getenv(envName(f.Name, envPrefix)); v != "" {
			f.Value.Set(v)
			f.Changed = true
		}
	})
}

// Parse is ParseFlagSet on pflag.CommandLine.
func Parse(envPrefix string) {
	ParseFlagSet(pflag.CommandLine, envPrefix)
}

func envName(flagName, envPrefix string) string {
	return envPrefix + strings.Replace(strings.ToUpper(flagName), "-", "_", -1)
}

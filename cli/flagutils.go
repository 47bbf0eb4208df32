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
	goflag "flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/simplelink-tools/flash-rover/cli/config"
	"github.com/simplelink-tools/flash-rover/common/multierror"
	"github.com/simplelink-tools/flash-rover/version"
)

// glog's flags and the protocol tunables are useful for debugging but
// noise for everyone else.
var hiddenFlags = []string{
	"alsologtostderr",
	"log_backtrace_at",
	"log_dir",
	"logbufsecs",
	"logtostderr",
	"stderrthreshold",
	"v",
	"vmodule",
	"poll-interval",
}

func initFlags() {
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	hideFlags()
	flag.Usage = usage
}

func hideFlags() {
	for _, f := range hiddenFlags {
		flag.CommandLine.MarkHidden(f)
	}
}

func unhideFlags() {
	for _, f := range hiddenFlags {
		f := flag.Lookup(f)
		if f != nil {
			f.Hidden = false
		}
	}
}

// applyConfigDefaults fills in unset flags from the saved defaults file.
// Flags given on the command line or via the environment win.
func applyConfigDefaults() {
	defaults, err := config.Load()
	if err != nil {
		// A broken defaults file must not block explicit flags.
		fmt.Fprintf(os.Stderr, "Warning: ignoring defaults: %s\n", err)
		return
	}
	for key, value := range defaults {
		f := flag.Lookup(key)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: bad saved default %s=%q: %s\n", key, value, err)
		}
	}
}

func checkFlags(fs []string) error {
	var errs error
	for _, req := range fs {
		f := flag.Lookup(req)
		if f == nil {
			errs = multierror.Append(errs, errors.Errorf("--%s is required", req))
		} else if f.Value.String() == "" {
			errs = multierror.Append(errs, errors.Errorf("--%s is required\t\t%s", req, f.Usage))
		}
	}
	return errors.Trace(errs)
}

func printFlag(w io.Writer, opt string, name string) {
	f := flag.Lookup(name)
	arg := "<string>"
	if f.Value.Type() == "bool" {
		arg = ""
	}
	fmt.Fprintf(w, "  --%s %s\t%s. %s, default value: %q\n", name, arg, f.Usage, opt, f.DefValue)
}

func usage() {
	w := tabwriter.NewWriter(os.Stderr, 0, 0, 1, ' ', 0)

	if len(os.Args) == 3 && os.Args[1] == "help" {
		for _, c := range commands {
			if c.name == os.Args[2] {
				fmt.Fprintf(w, "%s %s FLAGS\n", os.Args[0], os.Args[2])
				fmt.Fprintf(w, "\nFlags:\n")
				for _, name := range c.required {
					printFlag(w, "Required", name)
				}
				for _, name := range c.optional {
					printFlag(w, "Optional", name)
				}
				w.Flush()
				os.Exit(1)
			}
		}
	}

	fmt.Fprintf(w, "External SPI flash programmer for TI CC13xx/CC26xx devices, version %s.\n", version.Version)
	fmt.Fprintf(w, "\nUsage:\n")
	fmt.Fprintf(w, "  %s <command>\n", os.Args[0])
	fmt.Fprintf(w, "\nCommands:\n")

	for _, c := range commands {
		fmt.Fprintf(w, "  %s\t\t%s\n", c.name, c.short)
	}

	fmt.Fprintf(w, "\nGlobal Flags:\n")
	if *helpFull {
		fmt.Fprint(w, flag.CommandLine.FlagUsages())
	} else {
		printFlag(w, "Optional", "device")
		printFlag(w, "Optional", "serial")
		printFlag(w, "Optional", "timeout")
	}

	w.Flush()
}

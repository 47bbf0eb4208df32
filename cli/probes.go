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
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/simplelink-tools/flash-rover/cli/config"
	"github.com/simplelink-tools/flash-rover/cli/flash/cc26xx"
	"github.com/simplelink-tools/flash-rover/cli/flash/probe"
	"github.com/simplelink-tools/flash-rover/cli/ourutil"
)

func listProbes(ctx context.Context) error {
	devs, err := probe.List()
	if err != nil {
		return errors.Trace(err)
	}
	if len(devs) == 0 {
		ourutil.Reportf("No debug probes found")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "BUS\tADDR\tVID:PID\tSERIAL\tPRODUCT\n")
	for _, d := range devs {
		fmt.Fprintf(w, "%d\t%d\t%s:%s\t%s\t%s\n",
			d.Bus, d.Address, d.ID.VID, d.ID.PID, d.Serial, d.Product)
	}
	return errors.Trace(w.Flush())
}

func listDevices(ctx context.Context) error {
	for _, name := range cc26xx.DeviceNames() {
		d, err := cc26xx.ParseDevice(name)
		if err != nil {
			return errors.Trace(err)
		}
		fmt.Printf("%-10s %s (%s firmware)\n", name, d.Name, d.Family)
	}
	return nil
}

func configGet(ctx context.Context) error {
	defaults, err := config.Load()
	if err != nil {
		return errors.Trace(err)
	}
	for _, key := range config.Keys() {
		if value, ok := defaults[key]; ok {
			fmt.Printf("%s=%s\n", key, value)
		}
	}
	return nil
}

func configSet(ctx context.Context) error {
	args := flag.Args()[1:]
	if len(args) != 2 {
		return errors.Errorf("expected KEY and VALUE arguments, e.g. \"config-set device cc1352r\"")
	}
	if err := config.Set(args[0], args[1]); err != nil {
		return errors.Trace(err)
	}
	ourutil.Reportf("Saved %s=%s", args[0], args[1])
	return nil
}

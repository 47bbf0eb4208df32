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

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/simplelink-tools/flash-rover/common/pflagenv"
	"github.com/simplelink-tools/flash-rover/version"
)

const (
	envPrefix = "FLASH_ROVER_"
)

var (
	versionFlag = flag.Bool("version", false, "Print version and exit")
	helpFull    = flag.Bool("helpfull", false, "Show full help, including advanced flags")
)

type handler func(ctx context.Context) error

type command struct {
	name     string
	handler  handler
	short    string
	required []string
	optional []string
}

var commands = []command{
	{"info", xfInfo, `Identify the external flash chip`, []string{"device"}, []string{"serial", "spi-pins", "timeout"}},
	{"erase", xfErase, `Erase an offset range, or the whole chip with --mass-erase`, []string{"device"}, []string{"mass-erase", "serial", "spi-pins", "timeout"}},
	{"read", xfRead, `Read an address range from the external flash`, []string{"device"}, []string{"output", "serial", "spi-pins", "timeout"}},
	{"write", xfWrite, `Write data to an address range on the external flash`, []string{"device"}, []string{"input", "verify", "in-place", "serial", "spi-pins", "timeout"}},
	{"devices", listDevices, `List supported target devices`, nil, nil},
	{"probes", listProbes, `List attached debug probes`, nil, nil},
	{"config-get", configGet, `Print saved defaults`, nil, nil},
	{"config-set", configSet, `Save a default, e.g. "config-set device cc1352r"`, nil, nil},
}

func run() error {
	if flag.NArg() < 1 {
		usage()
		return nil
	}
	for _, c := range commands {
		if c.name != flag.Arg(0) {
			continue
		}
		if err := checkFlags(c.required); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(c.handler(context.Background()))
	}
	usage()
	return errors.Errorf("unknown command %q", flag.Arg(0))
}

func main() {
	initFlags()
	flag.Parse()
	pflagenv.Parse(envPrefix)
	applyConfigDefaults()

	if *helpFull {
		unhideFlags()
		usage()
		return
	}
	if *versionFlag {
		fmt.Printf("flash-rover %s (build %s)\n", version.Version, version.BuildId)
		return
	}

	if err := run(); err != nil {
		glog.Infof("error: %+v", err)
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

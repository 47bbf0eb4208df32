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

// Package flags holds the global command line flags shared by the
// subcommand handlers.
package flags

import (
	"time"

	flag "github.com/spf13/pflag"
)

var (
	Device = flag.String("device", "", "Target device name, e.g. cc1352r. Run \"flash-rover devices\" for the full list.")
	Serial = flag.String("serial", "", "Serial number of the debug probe to use. "+
		"Only needed with more than one probe attached.")
	SPIPins = flag.String("spi-pins", "", "DIOs of the external flash SPI bus as miso,mosi,clk,csn. "+
		"Omit to use the firmware's LaunchPad defaults.")
	Timeout      = flag.Duration("timeout", 5*time.Second, "Timeout for each firmware transaction")
	PollInterval = flag.Duration("poll-interval", 0, "Interval between doorbell mailbox polls, 0 for the default")
	ClockHz      = flag.Uint32("swd-clock", 0, "SWD clock frequency in Hz, 0 for the default")

	MassErase = flag.BoolP("mass-erase", "m", false, "Erase the entire flash chip instead of an offset range")
	Output    = flag.StringP("output", "o", "", "File to store read data in. \"-\" or empty writes to stdout.")
	Input     = flag.StringP("input", "i", "", "File with the data to write. \"-\" or empty reads from stdin.")
	Verify    = flag.Bool("verify", false, "Read written data back and compare")
	InPlace   = flag.BoolP("in-place", "p", false, "Write without erasing touched sectors first. "+
		"Only the written range is touched, but over un-erased data bits can only go from 1 to 0, "+
		"so the result depends on what the sectors already hold.")
)

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

// Package cc26xx flashes external SPI flash chips hanging off TI
// CC13xx/CC26xx wireless MCUs. The MCU cannot expose its SPI bus to the
// debug probe directly, so a resident firmware is loaded into SRAM and
// driven through a shared-memory mailbox (see the xflash subpackage).
package cc26xx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// Family selects the resident firmware build. One firmware image covers
// all devices with the same SRAM layout and powertrain.
type Family int

const (
	FamilyCC13x0 Family = iota
	FamilyCC26x0
	FamilyCC26x0R2
	FamilyCC13x2CC26x2
	FamilyCC13x2x7CC26x2x7
	FamilyCC13x4CC26x4
)

func (f Family) String() string {
	switch f {
	case FamilyCC13x0:
		return "cc13x0"
	case FamilyCC26x0:
		return "cc26x0"
	case FamilyCC26x0R2:
		return "cc26x0r2"
	case FamilyCC13x2CC26x2:
		return "cc13x2_cc26x2"
	case FamilyCC13x2x7CC26x2x7:
		return "cc13x2x7_cc26x2x7"
	case FamilyCC13x4CC26x4:
		return "cc13x4_cc26x4"
	}
	return fmt.Sprintf("family%d", int(f))
}

// Device is a supported target part.
type Device struct {
	Name   string
	Family Family
}

var devices = map[string]Device{
	"cc1310":    {"CC1310F128", FamilyCC13x0},
	"cc1350":    {"CC1350F128", FamilyCC13x0},
	"cc2640":    {"CC2640F128", FamilyCC26x0},
	"cc2650":    {"CC2650F128", FamilyCC26x0},
	"cc2640r2f": {"CC2640R2F", FamilyCC26x0R2},
	"cc1312r":   {"CC1312R1F3", FamilyCC13x2CC26x2},
	"cc1352p":   {"CC1352P1F3", FamilyCC13x2CC26x2},
	"cc1352r":   {"CC1352R1F3", FamilyCC13x2CC26x2},
	"cc2642r":   {"CC2642R1F", FamilyCC13x2CC26x2},
	"cc2652p":   {"CC2652P1F", FamilyCC13x2CC26x2},
	"cc2652r":   {"CC2652R1F", FamilyCC13x2CC26x2},
	"cc2652rb":  {"CC2652RB1F", FamilyCC13x2CC26x2},
	"cc1312r7":  {"CC1312R7", FamilyCC13x2x7CC26x2x7},
	"cc1352p7":  {"CC1352P7", FamilyCC13x2x7CC26x2x7},
	"cc2652p7":  {"CC2652P7", FamilyCC13x2x7CC26x2x7},
	"cc2652r7":  {"CC2652R7", FamilyCC13x2x7CC26x2x7},
	"cc1314r10": {"CC1314R10", FamilyCC13x4CC26x4},
	"cc1354p10": {"CC1354P10", FamilyCC13x4CC26x4},
}

// ParseDevice resolves a user-supplied device name, case-insensitively.
func ParseDevice(name string) (Device, error) {
	d, ok := devices[strings.ToLower(name)]
	if !ok {
		return Device{}, errors.Errorf("unknown device %q, supported devices: %s",
			name, strings.Join(DeviceNames(), " "))
	}
	return d, nil
}

// DeviceNames returns the supported device names, sorted.
func DeviceNames() []string {
	names := make([]string, 0, len(devices))
	for name := range devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SPIPins is the DIO assignment of the external flash SPI bus, in
// MISO, MOSI, CLK, CSN order.
type SPIPins [4]uint8

// DefaultSPIPins is the LaunchPad wiring, used by the firmware when no
// override is given.
var DefaultSPIPins = SPIPins{8, 9, 10, 20}

// ParseSPIPins parses a "miso,mosi,clk,csn" DIO list.
func ParseSPIPins(s string) (SPIPins, error) {
	var pins SPIPins
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return pins, errors.Errorf("SPI pins must be 4 comma-separated DIO values (miso,mosi,clk,csn), got %d", len(parts))
	}
	for i, p := range parts {
		dio, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return pins, errors.Errorf("invalid DIO value %q, must be an unsigned 8-bit integer", p)
		}
		pins[i] = uint8(dio)
	}
	return pins, nil
}

func (p SPIPins) String() string {
	return fmt.Sprintf("MISO=DIO%d MOSI=DIO%d CLK=DIO%d CSN=DIO%d", p[0], p[1], p[2], p[3])
}

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

package xflash

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Part is a known SPI flash chip, keyed by the JEDEC identity pair.
type Part struct {
	ManufacturerID uint32
	DeviceID       uint32
	Size           uint32
	Name           string
}

// Chips found on TI LaunchPads and SensorTags.
var knownParts = []Part{
	{0xc2, 0x15, 0x200000, "Macronix MX25R1635F"},
	{0xc2, 0x14, 0x100000, "Macronix MX25R8035F"},
	{0xef, 0x12, 0x80000, "WinBond W25X40CL"},
	{0xef, 0x11, 0x40000, "WinBond W25X20CL"},
}

// FindPart looks up the identity pair. Unknown chips return nil, they
// are reported as unrecognized but still usable.
func FindPart(mid, did uint32) *Part {
	for i := range knownParts {
		if knownParts[i].ManufacturerID == mid && knownParts[i].DeviceID == did {
			return &knownParts[i]
		}
	}
	return nil
}

// Info is the identity of the attached flash chip, resolved against the
// known part table when possible.
type Info struct {
	ManufacturerID uint32
	DeviceID       uint32
	Part           *Part
}

func (i Info) String() string {
	if i.Part != nil {
		return fmt.Sprintf("%s (MID: 0x%X, DID: 0x%X, size: %s)",
			i.Part.Name, i.ManufacturerID, i.DeviceID, humanize.IBytes(uint64(i.Part.Size)))
	}
	return fmt.Sprintf("Unknown and possibly unsupported external flash (MID: 0x%X, DID: 0x%X)",
		i.ManufacturerID, i.DeviceID)
}

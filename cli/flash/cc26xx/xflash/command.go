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

// Command kinds understood by the resident firmware. A nonzero kind word
// in the command mailbox means "command pending"; the firmware clears it
// on acceptance.
const (
	cmdGetInfo     uint32 = 0xc0
	cmdSectorErase uint32 = 0xc1
	cmdMassErase   uint32 = 0xc2
	cmdReadBlock   uint32 = 0xc3
	cmdWriteBlock  uint32 = 0xc4
)

// Response kinds posted by the firmware.
const (
	rspOk   uint32 = 0xd0
	rspInfo uint32 = 0xd1

	// Firmware-side failures. Anything in [rspError, rspErrorBufOverflow]
	// is a structured error report rather than a protocol violation.
	rspError            uint32 = 0x80
	rspErrorSPI         uint32 = 0x81
	rspErrorXflash      uint32 = 0x82
	rspErrorBufOverflow uint32 = 0x83
)

// command is one mailbox request: a kind and up to two arguments. The
// fourth mailbox word is always zero in requests.
type command struct {
	kind uint32
	arg0 uint32
	arg1 uint32
}

func (c command) encode() [4]uint32 {
	return [4]uint32{c.kind, c.arg0, c.arg1, 0}
}

// response is a decoded firmware reply.
type response struct {
	kind uint32
	// Identity pair, set for rspInfo only.
	mid uint32
	did uint32
}

// decodeResponse validates the raw mailbox words. The firmware never
// uses the fourth word, so a nonzero value there means the mailbox is
// corrupt and the whole pattern is rejected, as is any unknown kind.
func decodeResponse(words [4]uint32) (response, error) {
	switch {
	case words == [4]uint32{rspOk, 0, 0, 0}:
		return response{kind: rspOk}, nil
	case words[0] == rspInfo && words[3] == 0:
		return response{kind: rspInfo, mid: words[1], did: words[2]}, nil
	case words[0] >= rspError && words[0] <= rspErrorBufOverflow && words[3] == 0:
		return response{}, &FirmwareError{Kind: words[0]}
	}
	return response{}, &InvalidResponseError{Words: words}
}

func kindName(kind uint32) string {
	switch kind {
	case cmdGetInfo:
		return "get-info"
	case cmdSectorErase:
		return "sector-erase"
	case cmdMassErase:
		return "mass-erase"
	case cmdReadBlock:
		return "read-block"
	case cmdWriteBlock:
		return "write-block"
	case rspOk:
		return "ok"
	case rspInfo:
		return "info"
	}
	return "unknown"
}

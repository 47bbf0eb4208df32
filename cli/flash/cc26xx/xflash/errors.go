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
)

// InvalidResponseError is a mailbox bit pattern that matches no known
// response shape. It indicates a host/firmware protocol mismatch or
// memory corruption: the raw words are carried for diagnostics.
type InvalidResponseError struct {
	Words [4]uint32
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid firmware response [0x%08x 0x%08x 0x%08x 0x%08x]",
		e.Words[0], e.Words[1], e.Words[2], e.Words[3])
}

// FirmwareError is a structured failure reported by the firmware itself.
type FirmwareError struct {
	Kind uint32
}

func (e *FirmwareError) Error() string {
	var what string
	switch e.Kind {
	case rspErrorSPI:
		what = "SPI bus error"
	case rspErrorXflash:
		what = "external flash error"
	case rspErrorBufOverflow:
		what = "buffer overflow"
	default:
		what = "generic error"
	}
	return fmt.Sprintf("firmware reported %s (kind 0x%02x)", what, e.Kind)
}

// UnexpectedResponseError is a well-formed response of the wrong variant
// for the operation that was issued.
type UnexpectedResponseError struct {
	Op   string
	Kind uint32
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected %s response to %s command", kindName(e.Kind), e.Op)
}

// VerificationError is a readback mismatch after a verified write. It is
// a boolean failure, no partial-success information is available.
type VerificationError struct {
	Offset uint32
	Length int
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for %d bytes at offset 0x%x", e.Length, e.Offset)
}

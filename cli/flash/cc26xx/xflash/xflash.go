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

// Package xflash talks to the resident firmware over the shared-memory
// doorbell mailbox and implements the user-visible external flash
// operations on top of it: identify, erase, read and write.
package xflash

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/simplelink-tools/flash-rover/cli/flash/common"
)

// SectorSize is the erase granularity of all supported flash chips.
const SectorSize = 0x1000

// DefaultTimeout bounds each mailbox poll loop. Mass erase of a full
// chip stays well under this per poll, the firmware acks commands
// before starting the slow work.
const DefaultTimeout = 5 * time.Second

// XFlash drives the external flash through the doorbell protocol. It is
// not safe for concurrent use: the mailbox supports exactly one
// outstanding transaction.
type XFlash struct {
	mem     common.MemoryPort
	timeout time.Duration
	dwell   time.Duration
}

// New wraps mem in the doorbell protocol. timeout bounds each
// transaction, pollInterval the dwell between mailbox polls; zero
// values pick the defaults.
func New(mem common.MemoryPort, timeout, pollInterval time.Duration) *XFlash {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if pollInterval <= 0 {
		pollInterval = pollDwell
	}
	return &XFlash{mem: mem, timeout: timeout, dwell: pollInterval}
}

// GetInfo queries the flash chip identity and resolves it against the
// known part table. Unknown chips are not an error.
func (x *XFlash) GetInfo(ctx context.Context) (Info, error) {
	rsp, err := x.transact(ctx, command{kind: cmdGetInfo})
	if err != nil {
		return Info{}, errors.Trace(err)
	}
	if rsp.kind != rspInfo {
		return Info{}, &UnexpectedResponseError{Op: "get-info", Kind: rsp.kind}
	}
	return Info{
		ManufacturerID: rsp.mid,
		DeviceID:       rsp.did,
		Part:           FindPart(rsp.mid, rsp.did),
	}, nil
}

// SectorErase erases all sectors overlapping [offset, offset+length).
func (x *XFlash) SectorErase(ctx context.Context, offset, length uint32) error {
	glog.V(1).Infof("erasing %d bytes at 0x%x", length, offset)
	return errors.Trace(x.transactOk(ctx, "sector-erase",
		command{kind: cmdSectorErase, arg0: offset, arg1: length}))
}

// MassErase erases the entire chip. Long-running and not cancelable on
// the firmware side once started.
func (x *XFlash) MassErase(ctx context.Context) error {
	return errors.Trace(x.transactOk(ctx, "mass-erase", command{kind: cmdMassErase}))
}

// Read streams length bytes starting at offset into out, one buffer
// block at a time. A zero length reads nothing and issues no commands.
func (x *XFlash) Read(ctx context.Context, offset, length uint32, out io.Writer) error {
	for length > 0 {
		chunk := length
		if chunk > BufSize {
			chunk = BufSize
		}
		if err := x.transactOk(ctx, "read-block",
			command{kind: cmdReadBlock, arg0: offset, arg1: chunk}); err != nil {
			return errors.Trace(err)
		}
		data, err := x.mem.ReadBytes(ctx, bufStart, int(chunk))
		if err != nil {
			return errors.Annotatef(err, "failed to fetch read buffer")
		}
		if _, err := out.Write(data); err != nil {
			return errors.Annotatef(err, "failed to write output")
		}
		offset += chunk
		length -= chunk
	}
	return nil
}

func (x *XFlash) readBytes(ctx context.Context, offset, length uint32) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(int(length))
	if err := x.Read(ctx, offset, length, &buf); err != nil {
		return nil, errors.Trace(err)
	}
	return buf.Bytes(), nil
}

// writeBlocks feeds data to the firmware through the shared buffer, one
// block per transaction. It performs no erase: un-erased bits can only
// go from 1 to 0.
func (x *XFlash) writeBlocks(ctx context.Context, offset uint32, data []byte) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > BufSize {
			chunk = chunk[:BufSize]
		}
		if err := x.mem.WriteBytes(ctx, bufStart, chunk); err != nil {
			return errors.Annotatef(err, "failed to fill write buffer")
		}
		if err := x.transactOk(ctx, "write-block",
			command{kind: cmdWriteBlock, arg0: offset, arg1: uint32(len(chunk))}); err != nil {
			return errors.Trace(err)
		}
		offset += uint32(len(chunk))
		data = data[len(chunk):]
	}
	return nil
}

// WriteOptions control Write behavior.
type WriteOptions struct {
	// Verify reads the written range back and compares byte for byte.
	Verify bool
	// InPlace skips the erase and sector preservation: bytes are written
	// over whatever is there, with raw flash 1-to-0 semantics.
	InPlace bool
	// Reboot restarts the resident firmware. Used before verification in
	// the default mode so readback goes through freshly-booted firmware
	// state. Optional.
	Reboot func(ctx context.Context) error
}

// Write programs data at offset.
//
// In the default mode, bytes in partially-touched boundary sectors that
// lie outside [offset, offset+len(data)) are preserved: the prefix and
// suffix are read back first, the sector-aligned range is erased, and
// prefix+data+suffix written as one unit. InPlace skips all of that.
func (x *XFlash) Write(ctx context.Context, offset uint32, data []byte, opts WriteOptions) error {
	if len(data) == 0 {
		return nil
	}

	if opts.InPlace {
		if err := x.writeBlocks(ctx, offset, data); err != nil {
			return errors.Trace(err)
		}
		if opts.Verify {
			// No reboot here: in-place writes make no coherency promise,
			// the readback checks exactly what was sent.
			return errors.Trace(x.verify(ctx, offset, data, WriteOptions{}))
		}
		return nil
	}

	firstAddr := offset &^ (SectorSize - 1)
	firstPad := offset - firstAddr
	lastAddr := offset + uint32(len(data))
	lastPad := (SectorSize - lastAddr%SectorSize) % SectorSize

	total := make([]byte, 0, uint32(len(data))+firstPad+lastPad)
	if firstPad > 0 {
		prefix, err := x.readBytes(ctx, firstAddr, firstPad)
		if err != nil {
			return errors.Annotatef(err, "failed to read leading sector remainder")
		}
		total = append(total, prefix...)
	}
	total = append(total, data...)
	if lastPad > 0 {
		suffix, err := x.readBytes(ctx, lastAddr, lastPad)
		if err != nil {
			return errors.Annotatef(err, "failed to read trailing sector remainder")
		}
		total = append(total, suffix...)
	}

	if err := x.SectorErase(ctx, firstAddr, uint32(len(total))); err != nil {
		return errors.Trace(err)
	}
	if err := x.writeBlocks(ctx, firstAddr, total); err != nil {
		return errors.Trace(err)
	}
	if opts.Verify {
		return errors.Trace(x.verify(ctx, firstAddr, total, opts))
	}
	return nil
}

// verify compares want against a fresh readback at offset. The firmware
// is rebooted first when a Reboot hook is provided, readback must not
// trust state left behind by the write itself.
func (x *XFlash) verify(ctx context.Context, offset uint32, want []byte, opts WriteOptions) error {
	if opts.Reboot != nil {
		if err := opts.Reboot(ctx); err != nil {
			return errors.Annotatef(err, "failed to restart firmware for verification")
		}
	}
	glog.V(1).Infof("verifying %d bytes at 0x%x", len(want), offset)
	got, err := x.readBytes(ctx, offset, uint32(len(want)))
	if err != nil {
		return errors.Annotatef(err, "failed to read back for verification")
	}
	if !bytes.Equal(got, want) {
		return &VerificationError{Offset: offset, Length: len(want)}
	}
	return nil
}

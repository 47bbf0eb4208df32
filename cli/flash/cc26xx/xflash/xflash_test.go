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
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplelink-tools/flash-rover/cli/flash/common"
)

const fakeFlashSize = 0x40000

// fakeFirmware emulates the resident firmware behind a MemoryPort: it
// executes a command synchronously when the command kind word is rung,
// against an in-memory flash model with real erase/write semantics.
type fakeFirmware struct {
	flash   []byte
	buf     [BufSize]byte
	mailbox map[uint32]uint32

	// cmdWrites records mailbox command-word writes, in order.
	cmdWrites []uint32
	// commands records every executed command as [kind, arg0, arg1].
	commands [][3]uint32

	// infoRsp overrides the get-info response words when non-nil.
	infoRsp *[4]uint32
	// stuck makes the firmware never accept any command.
	stuck bool
	// corruptAt flips one flash byte after each write-block, emulating
	// a failing chip for verification tests.
	corruptAt int
}

var _ common.MemoryPort = (*fakeFirmware)(nil)

func newFakeFirmware() *fakeFirmware {
	f := &fakeFirmware{
		flash:     make([]byte, fakeFlashSize),
		mailbox:   map[uint32]uint32{},
		corruptAt: -1,
	}
	for i := range f.flash {
		f.flash[i] = 0xff
	}
	return f
}

func (f *fakeFirmware) ReadWord(ctx context.Context, addr uint32) (uint32, error) {
	return f.mailbox[addr], nil
}

func (f *fakeFirmware) WriteWord(ctx context.Context, addr uint32, value uint32) error {
	if addr >= cmdKindAddr && addr <= cmdArg2Addr {
		f.cmdWrites = append(f.cmdWrites, addr)
	}
	f.mailbox[addr] = value
	if addr == cmdKindAddr && value != 0 && !f.stuck {
		f.execute()
	}
	return nil
}

func (f *fakeFirmware) ReadBytes(ctx context.Context, addr uint32, length int) ([]byte, error) {
	off := addr - bufStart
	return append([]byte(nil), f.buf[off:int(off)+length]...), nil
}

func (f *fakeFirmware) WriteBytes(ctx context.Context, addr uint32, data []byte) error {
	copy(f.buf[addr-bufStart:], data)
	return nil
}

func (f *fakeFirmware) respond(words [4]uint32) {
	f.mailbox[rspKindAddr] = words[0]
	f.mailbox[rspVal0Addr] = words[1]
	f.mailbox[rspVal1Addr] = words[2]
	f.mailbox[rspVal2Addr] = words[3]
}

func (f *fakeFirmware) execute() {
	kind := f.mailbox[cmdKindAddr]
	arg0 := f.mailbox[cmdArg0Addr]
	arg1 := f.mailbox[cmdArg1Addr]
	f.commands = append(f.commands, [3]uint32{kind, arg0, arg1})
	f.mailbox[cmdKindAddr] = 0

	switch kind {
	case cmdGetInfo:
		if f.infoRsp != nil {
			f.respond(*f.infoRsp)
		} else {
			f.respond([4]uint32{rspInfo, 0xc2, 0x15, 0})
		}
	case cmdSectorErase:
		first := arg0 &^ (SectorSize - 1)
		last := (arg0 + arg1 + SectorSize - 1) &^ (SectorSize - 1)
		for i := first; i < last; i++ {
			f.flash[i] = 0xff
		}
		f.respond([4]uint32{rspOk, 0, 0, 0})
	case cmdMassErase:
		for i := range f.flash {
			f.flash[i] = 0xff
		}
		f.respond([4]uint32{rspOk, 0, 0, 0})
	case cmdReadBlock:
		copy(f.buf[:arg1], f.flash[arg0:arg0+arg1])
		f.respond([4]uint32{rspOk, 0, 0, 0})
	case cmdWriteBlock:
		if arg1 > BufSize {
			f.respond([4]uint32{rspErrorBufOverflow, 0, 0, 0})
			return
		}
		// NOR semantics: writes can only clear bits.
		for i := uint32(0); i < arg1; i++ {
			f.flash[arg0+i] &= f.buf[i]
		}
		if f.corruptAt >= 0 {
			f.flash[f.corruptAt] ^= 0x01
		}
		f.respond([4]uint32{rspOk, 0, 0, 0})
	default:
		f.respond([4]uint32{0xdeadbeef, 0, 0, 0})
	}
}

func newTestXFlash(f *fakeFirmware) *XFlash {
	return New(f, time.Second, time.Millisecond)
}

func TestDecodeResponse(t *testing.T) {
	cases := []struct {
		name  string
		words [4]uint32
		kind  uint32
		err   interface{}
	}{
		{"ok", [4]uint32{rspOk, 0, 0, 0}, rspOk, nil},
		{"ok with trailing garbage", [4]uint32{rspOk, 1, 0, 0}, 0, &InvalidResponseError{}},
		{"info", [4]uint32{rspInfo, 0xc2, 0x15, 0}, rspInfo, nil},
		{"info nonzero trailer", [4]uint32{rspInfo, 0xc2, 0x15, 7}, 0, &InvalidResponseError{}},
		{"firmware spi error", [4]uint32{rspErrorSPI, 0, 0, 0}, 0, &FirmwareError{}},
		{"junk", [4]uint32{0x12345678, 0, 0, 0}, 0, &InvalidResponseError{}},
		{"zero", [4]uint32{0, 0, 0, 0}, 0, &InvalidResponseError{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rsp, err := decodeResponse(tc.words)
			if tc.err == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.kind, rsp.kind)
				return
			}
			require.Error(t, err)
			assert.IsType(t, tc.err, err)
		})
	}
}

func TestCommandWordOrder(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	_, err := x.GetInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, x.SectorErase(ctx, 0, SectorSize))
	require.NoError(t, x.MassErase(ctx))
	require.NoError(t, x.Read(ctx, 0, 16, &bytes.Buffer{}))
	require.NoError(t, x.Write(ctx, 0, []byte{1, 2, 3}, WriteOptions{InPlace: true}))

	require.NotEmpty(t, f.cmdWrites)
	require.Zero(t, len(f.cmdWrites)%4)
	for i := 0; i < len(f.cmdWrites); i += 4 {
		group := f.cmdWrites[i : i+4]
		// The kind word must come strictly last within each command.
		assert.Equal(t, uint32(cmdKindAddr), group[3])
		for _, addr := range group[:3] {
			assert.NotEqual(t, uint32(cmdKindAddr), addr)
		}
	}
}

func TestGetInfo(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	info, err := x.GetInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.Part)
	assert.Contains(t, info.String(), "Macronix MX25R1635F")
	assert.Equal(t, uint32(0x200000), info.Part.Size)

	// Unregistered ids resolve to an unknown part, not an error.
	f.infoRsp = &[4]uint32{rspInfo, 0x01, 0x02, 0}
	info, err = x.GetInfo(ctx)
	require.NoError(t, err)
	assert.Nil(t, info.Part)
	assert.Equal(t, uint32(0x01), info.ManufacturerID)
	assert.Equal(t, uint32(0x02), info.DeviceID)
	assert.Contains(t, info.String(), "Unknown")
}

func TestGetInfoUnexpectedResponse(t *testing.T) {
	f := newFakeFirmware()
	f.infoRsp = &[4]uint32{rspOk, 0, 0, 0}
	x := newTestXFlash(f)

	_, err := x.GetInfo(context.Background())
	require.Error(t, err)
	assert.IsType(t, &UnexpectedResponseError{}, errors.Cause(err))
}

func TestSectorErase(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	f.flash[0x1234] = 0x00
	require.NoError(t, x.SectorErase(ctx, 0x1000, 0x1000))
	assert.Equal(t, [3]uint32{cmdSectorErase, 0x1000, 0x1000}, f.commands[0])
	assert.Equal(t, byte(0xff), f.flash[0x1234])
}

func TestReadChunking(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	for i := range f.flash {
		f.flash[i] = byte(i * 7)
	}

	const length = 10000 // 2 full blocks plus a remainder
	var out bytes.Buffer
	require.NoError(t, x.Read(ctx, 0x100, length, &out))
	assert.Equal(t, f.flash[0x100:0x100+length], out.Bytes())

	require.Len(t, f.commands, 3)
	assert.Equal(t, [3]uint32{cmdReadBlock, 0x100, BufSize}, f.commands[0])
	assert.Equal(t, [3]uint32{cmdReadBlock, 0x100 + BufSize, BufSize}, f.commands[1])
	assert.Equal(t, [3]uint32{cmdReadBlock, 0x100 + 2*BufSize, length - 2*BufSize}, f.commands[2])
}

func TestReadZeroLength(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)

	var out bytes.Buffer
	require.NoError(t, x.Read(context.Background(), 0, 0, &out))
	assert.Zero(t, out.Len())
	assert.Empty(t, f.commands)
}

func TestWriteZeroLength(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)

	require.NoError(t, x.Write(context.Background(), 0x1000, nil, WriteOptions{}))
	assert.Empty(t, f.commands)
}

func TestWriteInPlace(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	data := make([]byte, 5000)
	for i := range data {
		data[i] = byte(i)
	}
	require.NoError(t, x.Write(ctx, 0x2000, data, WriteOptions{InPlace: true}))
	assert.Equal(t, data, f.flash[0x2000:0x2000+len(data)])

	// No erase was issued.
	for _, cmd := range f.commands {
		assert.NotEqual(t, cmdSectorErase, cmd[0])
		assert.NotEqual(t, cmdMassErase, cmd[0])
	}
}

func TestShadowWriteCoherency(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	// Pre-existing content in the sectors the write will touch.
	for i := range f.flash {
		f.flash[i] = byte(0xa0 ^ i)
	}
	pre := append([]byte(nil), f.flash...)

	// Deliberately unaligned on both ends.
	const offset, length = 0x1234, 0x1801
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(0x5a ^ i)
	}
	require.NoError(t, x.Write(ctx, offset, data, WriteOptions{}))

	const firstAddr = offset &^ (SectorSize - 1)
	const lastAddr = offset + length
	const alignedEnd = (lastAddr + SectorSize - 1) &^ (SectorSize - 1)

	// Inside the logical range: the payload.
	assert.Equal(t, data, f.flash[offset:offset+length])
	// Boundary sector bytes outside the range: preserved.
	assert.Equal(t, pre[firstAddr:offset], f.flash[firstAddr:offset])
	assert.Equal(t, pre[lastAddr:alignedEnd], f.flash[lastAddr:alignedEnd])
	// Untouched sectors: untouched.
	assert.Equal(t, pre[:firstAddr], f.flash[:firstAddr])
	assert.Equal(t, pre[alignedEnd:], f.flash[alignedEnd:])
}

func TestWriteVerify(t *testing.T) {
	f := newFakeFirmware()
	x := newTestXFlash(f)
	ctx := context.Background()

	rebooted := false
	opts := WriteOptions{
		Verify: true,
		Reboot: func(ctx context.Context) error {
			rebooted = true
			return nil
		},
	}
	data := bytes.Repeat([]byte{0x42}, 100)
	require.NoError(t, x.Write(ctx, 0x3010, data, opts))
	assert.True(t, rebooted)
}

func TestWriteVerifyMismatch(t *testing.T) {
	f := newFakeFirmware()
	f.corruptAt = 0x3020
	x := newTestXFlash(f)

	data := bytes.Repeat([]byte{0x42}, 100)
	err := x.Write(context.Background(), 0x3010, data, WriteOptions{Verify: true})
	require.Error(t, err)
	assert.IsType(t, &VerificationError{}, errors.Cause(err))
}

func TestTransactionTimeout(t *testing.T) {
	f := newFakeFirmware()
	f.stuck = true
	x := New(f, 20*time.Millisecond, time.Millisecond)

	_, err := x.GetInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsTimeout(errors.Cause(err)), "want timeout, got %v", err)
}

func TestFirmwareErrorResponse(t *testing.T) {
	f := newFakeFirmware()
	f.infoRsp = &[4]uint32{rspErrorXflash, 0, 0, 0}
	x := newTestXFlash(f)

	_, err := x.GetInfo(context.Background())
	require.Error(t, err)
	fe, ok := errors.Cause(err).(*FirmwareError)
	require.True(t, ok, "want FirmwareError, got %v", err)
	assert.Equal(t, rspErrorXflash, fe.Kind)
	assert.Contains(t, fe.Error(), "external flash")
}

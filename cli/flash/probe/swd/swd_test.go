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

package swd

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplelink-tools/flash-rover/cli/flash/probe/dap"
)

// fakeDAP models a DP with one MEM-AP behind it: SELECT routing, the
// power-up handshake and TAR/DRW auto-increment over a word-addressed
// memory map.
type fakeDAP struct {
	t *testing.T

	mem      map[uint32]uint32
	tar      uint32
	csw      uint32
	ctrlstat uint32

	selectValue  uint32
	selectWrites int
	maxWords     int

	// Dead debug domain: power-up requests are never acked.
	noPowerAck bool
}

var _ Transferer = (*fakeDAP)(nil)

func newFakeDAP(t *testing.T) *fakeDAP {
	return &fakeDAP{t: t, mem: map[uint32]uint32{}, csw: cswDeviceEn, maxWords: 15}
}

func (f *fakeDAP) dpAccess(req dap.TransferRequest) uint32 {
	switch req.Reg {
	case regDPIDR:
		return 0x2ba01477
	case regCTRLSTAT:
		if req.Op == dap.OpWrite {
			f.ctrlstat = req.Data
			return 0
		}
		if f.noPowerAck {
			return f.ctrlstat
		}
		// Requested power-ups are acked immediately.
		return f.ctrlstat | (f.ctrlstat&0x50000000)<<1
	case regDPSELECT:
		if req.Op == dap.OpWrite {
			f.selectValue = req.Data
			f.selectWrites++
		}
		return 0
	}
	f.t.Fatalf("unexpected DP access: %+v", req)
	return 0
}

func (f *fakeDAP) apAccess(req dap.TransferRequest) uint32 {
	require.Zero(f.t, f.selectValue>>24, "wrong APSEL")
	reg := uint8(f.selectValue>>4&0xf)*16 + req.Reg
	switch reg {
	case regCSW:
		if req.Op == dap.OpWrite {
			f.csw = req.Data | cswDeviceEn
			return 0
		}
		return f.csw
	case regTAR:
		if req.Op == dap.OpWrite {
			f.tar = req.Data
			return 0
		}
		return f.tar
	case regDRW:
		addr := f.tar
		f.tar += 4
		if req.Op == dap.OpWrite {
			f.mem[addr] = req.Data
			return 0
		}
		return f.mem[addr]
	}
	f.t.Fatalf("unexpected AP access: reg 0x%x", reg)
	return 0
}

func (f *fakeDAP) Transfer(ctx context.Context, reqs []dap.TransferRequest) ([]uint32, error) {
	res := make([]uint32, 0, len(reqs))
	for _, req := range reqs {
		var v uint32
		if req.AP {
			v = f.apAccess(req)
		} else {
			v = f.dpAccess(req)
		}
		if req.Op == dap.OpRead {
			res = append(res, v)
		}
	}
	return res, nil
}

func (f *fakeDAP) BlockMaxWords() int { return f.maxWords }

func (f *fakeDAP) checkBlock(reg uint8, length int) {
	require.Equal(f.t, regDRW, reg, "block transfers must target DRW")
	require.LessOrEqual(f.t, length, f.maxWords, "block exceeds packet capacity")
	end := f.tar + 4*uint32(length)
	require.LessOrEqual(f.t, end, f.tar&^uint32(tarWrap-1)+tarWrap,
		"block crosses the TAR auto-increment boundary")
}

func (f *fakeDAP) TransferBlockRead(ctx context.Context, ap bool, reg uint8, length int) ([]uint32, error) {
	f.checkBlock(reg, length)
	res := make([]uint32, 0, length)
	for i := 0; i < length; i++ {
		res = append(res, f.mem[f.tar])
		f.tar += 4
	}
	return res, nil
}

func (f *fakeDAP) TransferBlockWrite(ctx context.Context, ap bool, reg uint8, data []uint32) error {
	f.checkBlock(reg, len(data))
	for _, v := range data {
		f.mem[f.tar] = v
		f.tar += 4
	}
	return nil
}

func (f *fakeDAP) SWJSequence(ctx context.Context, numBits int, data []byte) error {
	return nil
}

func newAttachedPort(t *testing.T) (*Port, *fakeDAP) {
	f := newFakeDAP(t)
	p := NewPort(f, 0)
	require.NoError(t, p.Attach(context.Background()))
	return p, f
}

func TestAttach(t *testing.T) {
	_, f := newAttachedPort(t)
	assert.Equal(t, uint32(cswWordAutoInc|cswDeviceEn), f.csw)
	assert.Equal(t, uint32(0x50000000), f.ctrlstat&0x50000000, "debug power-up not requested")
}

func TestSelectCaching(t *testing.T) {
	p, f := newAttachedPort(t)
	ctx := context.Background()

	before := f.selectWrites
	for i := 0; i < 5; i++ {
		require.NoError(t, p.WriteWord(ctx, 0x20000000+uint32(i*4), uint32(i)))
		_, err := p.ReadWord(ctx, 0x20000000+uint32(i*4))
		require.NoError(t, err)
	}
	// All of CSW/TAR/DRW live in bank 0, already selected during attach.
	assert.Equal(t, before, f.selectWrites)
}

func TestReadWriteWordsAcrossWrap(t *testing.T) {
	p, _ := newAttachedPort(t)
	ctx := context.Background()

	// Spans two auto-increment regions and many block transfers; the fake
	// fails the test if any block crosses the 1 KiB boundary.
	const base = 0x20000300
	data := make([]uint32, 0x200)
	for i := range data {
		data[i] = uint32(i) * 0x01010101
	}
	require.NoError(t, p.WriteWords(ctx, base, data))

	got, err := p.ReadWords(ctx, base, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadBytesTruncation(t *testing.T) {
	p, _ := newAttachedPort(t)
	ctx := context.Background()

	require.NoError(t, p.WriteWord(ctx, 0x20000000, 0x04030201))
	require.NoError(t, p.WriteWord(ctx, 0x20000004, 0x08070605))

	got, err := p.ReadBytes(ctx, 0x20000000, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, got)
}

// Attach on a background context must still fail in bounded time when
// the debug domain never powers up.
func TestAttachPowerUpTimesOut(t *testing.T) {
	f := newFakeDAP(t)
	f.noPowerAck = true
	p := NewPort(f, 0)
	p.powerUpWait = 20 * time.Millisecond

	start := time.Now()
	err := p.Attach(context.Background())
	require.Error(t, err)
	require.True(t, errors.IsTimeout(err), "want timeout, got %v", err)
	require.Less(t, time.Since(start), time.Second)
}

func TestBytesToWords(t *testing.T) {
	assert.Equal(t, []uint32{0x04030201}, BytesToWords([]byte{1, 2, 3, 4}))
	// A trailing partial word is padded with 0xFF.
	assert.Equal(t, []uint32{0x04030201, 0xffffff05}, BytesToWords([]byte{1, 2, 3, 4, 5}))
}

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

package cc26xx

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplelink-tools/flash-rover/cli/flash/common"
)

// fakeSRAM models target memory as a sparse byte store.
type fakeSRAM struct {
	mem    map[uint32]byte
	events []string
}

var _ common.MemoryPort = (*fakeSRAM)(nil)

func newFakeSRAM() *fakeSRAM {
	return &fakeSRAM{mem: map[uint32]byte{}}
}

func (s *fakeSRAM) ReadWord(ctx context.Context, addr uint32) (uint32, error) {
	var w [4]byte
	for i := range w {
		w[i] = s.mem[addr+uint32(i)]
	}
	return binary.LittleEndian.Uint32(w[:]), nil
}

func (s *fakeSRAM) WriteWord(ctx context.Context, addr uint32, value uint32) error {
	s.events = append(s.events, "write-word")
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], value)
	for i, b := range w {
		s.mem[addr+uint32(i)] = b
	}
	return nil
}

func (s *fakeSRAM) ReadBytes(ctx context.Context, addr uint32, length int) ([]byte, error) {
	data := make([]byte, length)
	for i := range data {
		data[i] = s.mem[addr+uint32(i)]
	}
	return data, nil
}

func (s *fakeSRAM) WriteBytes(ctx context.Context, addr uint32, data []byte) error {
	s.events = append(s.events, "write-bytes")
	for i, b := range data {
		s.mem[addr+uint32(i)] = b
	}
	return nil
}

// fakeTarget records run-control calls and register writes.
type fakeTarget struct {
	events []string
	regs   map[int]uint32
}

var _ common.Target = (*fakeTarget)(nil)

func newFakeTarget() *fakeTarget {
	return &fakeTarget{regs: map[int]uint32{}}
}

func (t *fakeTarget) ResetHalt(ctx context.Context) error {
	t.events = append(t.events, "reset-halt")
	return nil
}

func (t *fakeTarget) ResetRun(ctx context.Context) error {
	t.events = append(t.events, "reset-run")
	return nil
}

func (t *fakeTarget) Halt(ctx context.Context) error {
	t.events = append(t.events, "halt")
	return nil
}

func (t *fakeTarget) Run(ctx context.Context) error {
	t.events = append(t.events, "run")
	return nil
}

func (t *fakeTarget) GetReg(ctx context.Context, reg int) (uint32, error) {
	return t.regs[reg], nil
}

func (t *fakeTarget) SetReg(ctx context.Context, reg int, value uint32) error {
	t.regs[reg] = value
	return nil
}

func TestLoaderBoot(t *testing.T) {
	ctx := context.Background()
	mem := newFakeSRAM()
	target := newFakeTarget()
	dev, err := ParseDevice("cc1352r")
	require.NoError(t, err)

	l := NewLoader(mem, target, dev, nil)
	require.NoError(t, l.Boot(ctx))

	// Reset first, run last, exactly once each.
	require.NotEmpty(t, target.events)
	assert.Equal(t, "reset-halt", target.events[0])
	assert.Equal(t, "run", target.events[len(target.events)-1])

	// SP and PC come from the loaded image's first two words, read back
	// from SRAM. LR is the sentinel.
	sp, err := mem.ReadWord(ctx, stackAddr)
	require.NoError(t, err)
	entry, err := mem.ReadWord(ctx, resetISR)
	require.NoError(t, err)
	assert.Equal(t, sp, target.regs[common.RegSP])
	assert.Equal(t, entry, target.regs[common.RegPC])
	assert.Equal(t, uint32(0xffffffff), target.regs[common.RegLR])

	// No pin override: the config valid word stays untouched (zero).
	valid, err := mem.ReadWord(ctx, confValid)
	require.NoError(t, err)
	assert.Zero(t, valid)
}

func TestLoaderBootWithSPIPins(t *testing.T) {
	ctx := context.Background()
	mem := newFakeSRAM()
	target := newFakeTarget()
	dev, err := ParseDevice("cc2652r")
	require.NoError(t, err)

	pins := SPIPins{11, 12, 13, 14}
	l := NewLoader(mem, target, dev, &pins)
	require.NoError(t, l.Boot(ctx))

	for i, addr := range []uint32{confSPIMiso, confSPIMosi, confSPIClk, confSPICsn} {
		v, err := mem.ReadWord(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, uint32(pins[i]), v)
	}
	valid, err := mem.ReadWord(ctx, confValid)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), valid)
}

func TestLoaderFirmwareSelection(t *testing.T) {
	for _, name := range DeviceNames() {
		dev, err := ParseDevice(name)
		require.NoError(t, err)
		l := NewLoader(newFakeSRAM(), newFakeTarget(), dev, nil)
		img, err := l.firmwareImage()
		require.NoError(t, err, "device %s", name)
		// Word 0 must point into SRAM (initial stack pointer).
		sp := binary.LittleEndian.Uint32(img[:4])
		assert.Equal(t, uint32(0x20000000), sp&0xfff00000, "device %s", name)
	}
}

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

package cortex

import (
	"context"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/require"

	"github.com/simplelink-tools/flash-rover/cli/flash/common"
)

// fakeMem is an SCS register model just rich enough for run control.
type fakeMem struct {
	regs   map[uint32]uint32
	writes []uint32 // addresses, in order
	halted bool
}

var _ common.MemoryPort = (*fakeMem)(nil)

func newFakeMem() *fakeMem {
	return &fakeMem{regs: map[uint32]uint32{
		regCPUID: 0x410fc241, // Cortex-M4 r0p1
	}}
}

func (m *fakeMem) ReadWord(ctx context.Context, addr uint32) (uint32, error) {
	v := m.regs[addr]
	if addr == regDHCSR {
		// Register transfers complete instantly.
		v |= dhcsrSRegRdy
		if m.halted {
			v |= dhcsrSHalt
		}
	}
	return v, nil
}

func (m *fakeMem) WriteWord(ctx context.Context, addr uint32, value uint32) error {
	m.writes = append(m.writes, addr)
	m.regs[addr] = value
	switch addr {
	case regDHCSR:
		m.halted = value&dhcsrCHalt != 0
	case regAIRCR:
		if value&aircrSysResetReq != 0 && m.regs[regDEMCR]&demcrVCCoreReset != 0 {
			m.halted = true
		}
	}
	return nil
}

func (m *fakeMem) ReadBytes(ctx context.Context, addr uint32, length int) ([]byte, error) {
	return make([]byte, length), nil
}

func (m *fakeMem) WriteBytes(ctx context.Context, addr uint32, data []byte) error {
	return nil
}

func TestNewIdentifiesCore(t *testing.T) {
	ctx := context.Background()
	m := newFakeMem()
	c, err := New(ctx, m)
	require.NoError(t, err)
	require.Equal(t, "Cortex-M4", c.Name())
	require.Equal(t, uint32(dhcsrDbgKey|dhcsrCDebugEn), m.regs[regDHCSR])
}

func TestHaltRun(t *testing.T) {
	ctx := context.Background()
	m := newFakeMem()
	c, err := New(ctx, m)
	require.NoError(t, err)

	require.NoError(t, c.Halt(ctx))
	require.True(t, m.halted)

	require.NoError(t, c.Run(ctx))
	require.False(t, m.halted)
}

func TestResetHaltArmsVectorCatch(t *testing.T) {
	ctx := context.Background()
	m := newFakeMem()
	c, err := New(ctx, m)
	require.NoError(t, err)

	require.NoError(t, c.ResetHalt(ctx))
	require.True(t, m.halted)
	// Vector catch must be disarmed again after the reset completed.
	require.Zero(t, m.regs[regDEMCR]&demcrVCCoreReset)
	require.Contains(t, m.writes, uint32(regAIRCR))
}

func TestRegisterAccess(t *testing.T) {
	ctx := context.Background()
	m := newFakeMem()
	c, err := New(ctx, m)
	require.NoError(t, err)

	require.NoError(t, c.SetReg(ctx, common.RegPC, 0x20000101))
	require.Equal(t, uint32(dcrsrRegWnR|common.RegPC), m.regs[regDCRSR])
	require.Equal(t, uint32(0x20000101), m.regs[regDCRDR])

	v, err := c.GetReg(ctx, common.RegSP)
	require.NoError(t, err)
	require.Equal(t, uint32(0x20000101), v) // DCRDR still holds last value

	_, err = c.GetReg(ctx, 99)
	require.Error(t, err)
}

func TestHaltTimesOut(t *testing.T) {
	m := newFakeMem()
	ctx := context.Background()
	c, err := New(ctx, m)
	require.NoError(t, err)

	// A core that refuses to halt: DHCSR writes are dropped.
	stuck := &stuckMem{fakeMem: m}
	c.mem = stuck

	tctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	require.Error(t, c.Halt(tctx))
}

type stuckMem struct {
	*fakeMem
}

func (m *stuckMem) WriteWord(ctx context.Context, addr uint32, value uint32) error {
	if addr == regDHCSR {
		return nil
	}
	return m.fakeMem.WriteWord(ctx, addr, value)
}

// A plain background context must not mean waiting forever: the status
// poll carries its own wall-clock deadline.
func TestHaltTimesOutWithoutContextDeadline(t *testing.T) {
	m := newFakeMem()
	ctx := context.Background()
	c, err := New(ctx, m)
	require.NoError(t, err)

	c.mem = &stuckMem{fakeMem: m}
	c.timeout = 20 * time.Millisecond

	start := time.Now()
	err = c.Halt(ctx)
	require.Error(t, err)
	require.True(t, errors.IsTimeout(err), "want timeout, got %v", err)
	require.Less(t, time.Since(start), time.Second)
}

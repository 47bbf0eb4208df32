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

// Package cortex implements run control for ARM Cortex-M cores through
// the SCS debug registers (ARM DDI0403, C1).
package cortex

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/simplelink-tools/flash-rover/cli/flash/common"
)

const (
	regCPUID = 0xe000ed00
	regAIRCR = 0xe000ed0c
	regDHCSR = 0xe000edf0
	regDCRSR = 0xe000edf4
	regDCRDR = 0xe000edf8
	regDEMCR = 0xe000edfc

	dhcsrDbgKey   = 0xa05f0000
	dhcsrCDebugEn = 1 << 0
	dhcsrCHalt    = 1 << 1
	dhcsrSRegRdy  = 1 << 16
	dhcsrSHalt    = 1 << 17

	demcrVCCoreReset = 1 << 0
	demcrVCHardErr   = 1 << 10
	demcrTrcEna      = 1 << 24

	aircrVectKey     = 0x05fa0000
	aircrSysResetReq = 1 << 2

	dcrsrRegWnR = 1 << 16

	pollInterval = 2 * time.Millisecond
	// waitTimeout bounds every status poll loop. Halt, reset and register
	// transfers complete within microseconds on working silicon, so a
	// miss here means the core is wedged (e.g. held in reset), not slow.
	waitTimeout = time.Second
)

// Core register indices for DCRSR (common.RegSP etc. map directly).
const maxRegIndex = 20

type Core struct {
	mem     common.MemoryPort
	name    string
	timeout time.Duration
}

// knownCores maps CPUID PARTNO values to core names. Anything else is
// reported but still driven, the debug registers are architectural.
var knownCores = map[uint32]string{
	0xc23: "Cortex-M3",
	0xc24: "Cortex-M4",
	0xd21: "Cortex-M33",
}

// New probes CPUID and enables halting debug on the core.
func New(ctx context.Context, mem common.MemoryPort) (*Core, error) {
	cpuid, err := mem.ReadWord(ctx, regCPUID)
	if err != nil {
		return nil, errors.Annotatef(err, "failed to read CPUID")
	}
	partNo := (cpuid >> 4) & 0xfff
	name, ok := knownCores[partNo]
	if !ok {
		name = "unknown Cortex-M"
	}
	glog.V(1).Infof("CPUID 0x%08x (%s r%dp%d)", cpuid, name, (cpuid>>20)&0xf, cpuid&0xf)
	c := &Core{mem: mem, name: name, timeout: waitTimeout}
	if err := c.writeDHCSR(ctx, dhcsrCDebugEn); err != nil {
		return nil, errors.Annotatef(err, "failed to enable halting debug")
	}
	return c, nil
}

func (c *Core) Name() string {
	return c.name
}

func (c *Core) writeDHCSR(ctx context.Context, bits uint32) error {
	return errors.Trace(c.mem.WriteWord(ctx, regDHCSR, dhcsrDbgKey|bits))
}

func (c *Core) waitDHCSR(ctx context.Context, mask uint32, what string) error {
	deadline := time.Now().Add(c.timeout)
	for {
		v, err := c.mem.ReadWord(ctx, regDHCSR)
		if err != nil {
			return errors.Annotatef(err, "failed to read DHCSR")
		}
		if v&mask != 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.Timeoutf("core did not signal %s within %s (DHCSR 0x%08x)", what, c.timeout, v)
		}
		select {
		case <-ctx.Done():
			return errors.Annotatef(ctx.Err(), "waiting for %s (DHCSR 0x%08x)", what, v)
		case <-time.After(pollInterval):
		}
	}
}

// Halt stops the core and waits until it is actually halted.
func (c *Core) Halt(ctx context.Context) error {
	glog.V(2).Infof("%s: halt", c.name)
	if err := c.writeDHCSR(ctx, dhcsrCDebugEn|dhcsrCHalt); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.waitDHCSR(ctx, dhcsrSHalt, "core halt"))
}

// Run resumes the core. It does not wait: the core may be running
// indefinitely from here on.
func (c *Core) Run(ctx context.Context) error {
	glog.V(2).Infof("%s: run", c.name)
	return errors.Trace(c.writeDHCSR(ctx, dhcsrCDebugEn))
}

// ResetHalt resets the core via SYSRESETREQ with the reset vector catch
// armed, leaving the core halted at the reset handler.
func (c *Core) ResetHalt(ctx context.Context) error {
	glog.V(2).Infof("%s: reset-halt", c.name)
	if err := c.writeDHCSR(ctx, dhcsrCDebugEn|dhcsrCHalt); err != nil {
		return errors.Trace(err)
	}
	if err := c.mem.WriteWord(ctx, regDEMCR, demcrTrcEna|demcrVCHardErr|demcrVCCoreReset); err != nil {
		return errors.Annotatef(err, "failed to arm reset vector catch")
	}
	if err := c.sysReset(ctx); err != nil {
		return errors.Trace(err)
	}
	if err := c.waitDHCSR(ctx, dhcsrSHalt, "halt after reset"); err != nil {
		return errors.Trace(err)
	}
	// Disarm the vector catch so later resets run freely.
	return errors.Trace(c.mem.WriteWord(ctx, regDEMCR, demcrTrcEna))
}

// ResetRun resets the core and lets it boot normally.
func (c *Core) ResetRun(ctx context.Context) error {
	glog.V(2).Infof("%s: reset-run", c.name)
	if err := c.mem.WriteWord(ctx, regDEMCR, 0); err != nil {
		return errors.Trace(err)
	}
	if err := c.writeDHCSR(ctx, 0); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(c.sysReset(ctx))
}

func (c *Core) sysReset(ctx context.Context) error {
	if err := c.mem.WriteWord(ctx, regAIRCR, aircrVectKey|aircrSysResetReq); err != nil {
		return errors.Annotatef(err, "failed to request system reset")
	}
	// Give the reset line time to settle before poking debug regs again.
	select {
	case <-ctx.Done():
		return errors.Trace(ctx.Err())
	case <-time.After(10 * time.Millisecond):
	}
	return nil
}

func (c *Core) waitRegRdy(ctx context.Context) error {
	return errors.Trace(c.waitDHCSR(ctx, dhcsrSRegRdy, "register transfer"))
}

// GetReg reads a core register. The core must be halted.
func (c *Core) GetReg(ctx context.Context, reg int) (uint32, error) {
	if reg < 0 || reg > maxRegIndex {
		return 0, errors.Errorf("invalid register index %d", reg)
	}
	if err := c.mem.WriteWord(ctx, regDCRSR, uint32(reg)); err != nil {
		return 0, errors.Annotatef(err, "failed to request read of r%d", reg)
	}
	if err := c.waitRegRdy(ctx); err != nil {
		return 0, errors.Trace(err)
	}
	value, err := c.mem.ReadWord(ctx, regDCRDR)
	glog.V(3).Infof("%s: r%d == 0x%08x", c.name, reg, value)
	return value, errors.Trace(err)
}

// SetReg writes a core register. The core must be halted.
func (c *Core) SetReg(ctx context.Context, reg int, value uint32) error {
	if reg < 0 || reg > maxRegIndex {
		return errors.Errorf("invalid register index %d", reg)
	}
	glog.V(3).Infof("%s: r%d = 0x%08x", c.name, reg, value)
	if err := c.mem.WriteWord(ctx, regDCRDR, value); err != nil {
		return errors.Annotatef(err, "failed to write DCRDR")
	}
	if err := c.mem.WriteWord(ctx, regDCRSR, dcrsrRegWnR|uint32(reg)); err != nil {
		return errors.Annotatef(err, "failed to request write of r%d", reg)
	}
	return errors.Trace(c.waitRegRdy(ctx))
}

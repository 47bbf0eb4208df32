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

// Package swd drives an ARM ADI debug port over a CMSIS-DAP probe:
// line reset and JTAG-to-SWD switching, DP power-up, and memory access
// through a MEM-AP. Doc: ARM IHI0031 (ADIv5).
package swd

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/simplelink-tools/flash-rover/cli/flash/probe/dap"
)

// DP register addresses.
const (
	regDPIDR    uint8 = 0x00
	regCTRLSTAT uint8 = 0x04
	regDPSELECT uint8 = 0x08
)

// MEM-AP register addresses.
const (
	regCSW uint8 = 0x00
	regTAR uint8 = 0x04
	regDRW uint8 = 0x0c
)

const (
	cswDeviceEn = 0x40
	// Basic mode, 32-bit access, auto-increment single.
	cswWordAutoInc = 0x23000052
	// TAR auto-increment is only guaranteed within a 1 KiB region.
	tarWrap = 0x400
)

// powerUpTimeout bounds the CTRL/STAT ack poll during attach. Power-up
// acks arrive within a few transactions on working silicon.
const powerUpTimeout = time.Second

// Transferer is the slice of the DAP client the port needs.
type Transferer interface {
	Transfer(ctx context.Context, reqs []dap.TransferRequest) ([]uint32, error)
	BlockMaxWords() int
	TransferBlockRead(ctx context.Context, ap bool, reg uint8, length int) ([]uint32, error)
	TransferBlockWrite(ctx context.Context, ap bool, reg uint8, data []uint32) error
	SWJSequence(ctx context.Context, numBits int, data []byte) error
}

// Port is a memory access port on one target. It implements
// common.MemoryPort on top of the MEM-AP TAR/DRW registers.
type Port struct {
	dapc  Transferer
	apSel uint8

	powerUpWait time.Duration
	selectValue uint32
	selectKnown bool
}

func NewPort(dapc Transferer, apSel uint8) *Port {
	return &Port{dapc: dapc, apSel: apSel, powerUpWait: powerUpTimeout}
}

// LineReset puts the SWD link into a known state: 50+ cycles with SWDIO
// high, the 16-bit JTAG-to-SWD switch sequence, then another line reset and
// idle cycles per ADIv5 B4.3.3.
func (p *Port) LineReset(ctx context.Context) error {
	ones := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	if err := p.dapc.SWJSequence(ctx, 64, ones); err != nil {
		return errors.Annotatef(err, "SWD line reset failed")
	}
	if err := p.dapc.SWJSequence(ctx, 16, []byte{0x9e, 0xe7}); err != nil {
		return errors.Annotatef(err, "JTAG-to-SWD switch failed")
	}
	if err := p.dapc.SWJSequence(ctx, 64, ones); err != nil {
		return errors.Annotatef(err, "SWD line reset failed")
	}
	if err := p.dapc.SWJSequence(ctx, 16, []byte{0, 0}); err != nil {
		return errors.Annotatef(err, "SWD idle cycles failed")
	}
	return nil
}

func (p *Port) readReg(ctx context.Context, ap bool, reg uint8) (uint32, error) {
	data, err := p.dapc.Transfer(ctx, []dap.TransferRequest{
		{Op: dap.OpRead, AP: ap, Reg: reg},
	})
	if err != nil {
		return 0, errors.Annotatef(err, "failed to read %s reg 0x%x", apdp(ap), reg)
	}
	return data[0], nil
}

func (p *Port) writeReg(ctx context.Context, ap bool, reg uint8, value uint32) error {
	_, err := p.dapc.Transfer(ctx, []dap.TransferRequest{
		{Op: dap.OpWrite, AP: ap, Reg: reg, Data: value},
	})
	return errors.Annotatef(err, "failed to write %s reg 0x%x", apdp(ap), reg)
}

func apdp(ap bool) string {
	if ap {
		return "AP"
	}
	return "DP"
}

func (p *Port) readDP(ctx context.Context, reg uint8) (uint32, error) {
	value, err := p.readReg(ctx, false, reg)
	glog.V(4).Infof("DP[0x%x] == 0x%08x", reg, value)
	return value, err
}

func (p *Port) writeDP(ctx context.Context, reg uint8, value uint32) error {
	glog.V(4).Infof("DP[0x%x] = 0x%08x", reg, value)
	return errors.Trace(p.writeReg(ctx, false, reg, value))
}

// selectAP routes subsequent AP accesses to the port's AP and the bank
// containing apReg. The SELECT write is skipped when already current.
func (p *Port) selectAP(ctx context.Context, apReg uint8) (uint8, error) {
	bank := apReg / 16
	sv := (uint32(p.apSel) << 24) | ((uint32(bank) & 0xf) << 4)
	if !p.selectKnown || sv != p.selectValue {
		if err := p.writeDP(ctx, regDPSELECT, sv); err != nil {
			return 0, errors.Annotatef(err, "failed to select AP %d bank %d", p.apSel, bank)
		}
		p.selectValue = sv
		p.selectKnown = true
	}
	return apReg % 16, nil
}

func (p *Port) readAP(ctx context.Context, apReg uint8) (uint32, error) {
	reg, err := p.selectAP(ctx, apReg)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return p.readReg(ctx, true, reg)
}

func (p *Port) writeAP(ctx context.Context, apReg uint8, value uint32) error {
	reg, err := p.selectAP(ctx, apReg)
	if err != nil {
		return errors.Trace(err)
	}
	return p.writeReg(ctx, true, reg, value)
}

func (p *Port) readAPMulti(ctx context.Context, apReg uint8, length int) ([]uint32, error) {
	reg, err := p.selectAP(ctx, apReg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	res := make([]uint32, 0, length)
	max := p.dapc.BlockMaxWords()
	for length > 0 {
		n := length
		if n > max {
			n = max
		}
		chunk, err := p.dapc.TransferBlockRead(ctx, true, reg, n)
		if err != nil {
			return nil, errors.Trace(err)
		}
		res = append(res, chunk...)
		length -= n
	}
	return res, nil
}

func (p *Port) writeAPMulti(ctx context.Context, apReg uint8, values []uint32) error {
	reg, err := p.selectAP(ctx, apReg)
	if err != nil {
		return errors.Trace(err)
	}
	max := p.dapc.BlockMaxWords()
	for len(values) > 0 {
		chunk := values
		if len(chunk) > max {
			chunk = chunk[:max]
		}
		if err := p.dapc.TransferBlockWrite(ctx, true, reg, chunk); err != nil {
			return errors.Trace(err)
		}
		values = values[len(chunk):]
	}
	return nil
}

// Attach powers up the debug domain and configures the MEM-AP for
// word access. Must be called once after LineReset.
func (p *Port) Attach(ctx context.Context) error {
	idr, err := p.readDP(ctx, regDPIDR)
	if err != nil {
		return errors.Annotatef(err, "failed to read DPIDR, is the target connected and powered?")
	}
	glog.V(1).Infof("DPIDR: 0x%08x (designer 0x%03x v%d)", idr, idr&0xfff, (idr>>12)&0xf)
	if err := p.writeDP(ctx, regDPSELECT, 0); err != nil {
		return errors.Trace(err)
	}
	p.selectValue = 0
	p.selectKnown = true
	if err := p.powerUp(ctx); err != nil {
		return errors.Trace(err)
	}
	// Clear sticky errors, if any.
	if err := p.writeDP(ctx, regCTRLSTAT, 0x50000f00); err != nil {
		return errors.Trace(err)
	}
	csw, err := p.readAP(ctx, regCSW)
	if err != nil {
		return errors.Trace(err)
	}
	if csw&cswDeviceEn == 0 {
		return errors.Errorf("MEM-AP is disabled (CSW 0x%08x)", csw)
	}
	return errors.Trace(p.writeAP(ctx, regCSW, cswWordAutoInc))
}

// powerUp requests CDBGPWRUPREQ and CSYSPWRUPREQ and waits for both
// acks, bounded by a wall-clock deadline so a dead debug domain cannot
// stall attach forever.
func (p *Port) powerUp(ctx context.Context) error {
	const reqMask, ackMask = 0x50000000, 0xa0000000
	deadline := time.Now().Add(p.powerUpWait)
	for {
		if err := ctx.Err(); err != nil {
			return errors.Annotatef(err, "debug power-up")
		}
		stat, err := p.readDP(ctx, regCTRLSTAT)
		if err != nil {
			return errors.Annotatef(err, "failed to read CTRL/STAT")
		}
		if stat&0xf0000000 == reqMask|ackMask {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.Timeoutf("debug power-up not acked within %s (CTRL/STAT 0x%08x)", p.powerUpWait, stat)
		}
		if err := p.writeDP(ctx, regCTRLSTAT, (stat&0x07ffffff)|reqMask); err != nil {
			return errors.Annotatef(err, "failed to write CTRL/STAT")
		}
	}
}

// ReadWord implements common.MemoryPort.
func (p *Port) ReadWord(ctx context.Context, addr uint32) (uint32, error) {
	if err := p.writeAP(ctx, regTAR, addr); err != nil {
		return 0, errors.Trace(err)
	}
	value, err := p.readAP(ctx, regDRW)
	glog.V(4).Infof("ReadWord(0x%08x) == 0x%08x", addr, value)
	return value, errors.Trace(err)
}

// WriteWord implements common.MemoryPort.
func (p *Port) WriteWord(ctx context.Context, addr uint32, value uint32) error {
	glog.V(4).Infof("WriteWord(0x%08x, 0x%08x)", addr, value)
	if err := p.writeAP(ctx, regTAR, addr); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(p.writeAP(ctx, regDRW, value))
}

// ReadWords reads length words starting at addr, chunked on the TAR
// auto-increment wrap boundary.
func (p *Port) ReadWords(ctx context.Context, addr uint32, length int) ([]uint32, error) {
	glog.V(4).Infof("ReadWords(0x%08x, %d)", addr, length)
	if addr%4 != 0 {
		return nil, errors.Errorf("addr must be word-aligned, got 0x%x", addr)
	}
	res := make([]uint32, 0, length)
	for length > 0 {
		if err := p.writeAP(ctx, regTAR, addr); err != nil {
			return nil, errors.Trace(err)
		}
		n := int((tarWrap - addr&(tarWrap-1)) / 4)
		if n > length {
			n = length
		}
		values, err := p.readAPMulti(ctx, regDRW, n)
		if err != nil {
			return nil, errors.Trace(err)
		}
		res = append(res, values...)
		addr += uint32(n * 4)
		length -= n
	}
	return res, nil
}

// WriteWords writes data words starting at addr, chunked on the TAR
// auto-increment wrap boundary.
func (p *Port) WriteWords(ctx context.Context, addr uint32, data []uint32) error {
	glog.V(4).Infof("WriteWords(0x%08x, %d)", addr, len(data))
	if addr%4 != 0 {
		return errors.Errorf("addr must be word-aligned, got 0x%x", addr)
	}
	for len(data) > 0 {
		if err := p.writeAP(ctx, regTAR, addr); err != nil {
			return errors.Trace(err)
		}
		n := int((tarWrap - addr&(tarWrap-1)) / 4)
		if n > len(data) {
			n = len(data)
		}
		if err := p.writeAPMulti(ctx, regDRW, data[:n]); err != nil {
			return errors.Trace(err)
		}
		addr += uint32(n * 4)
		data = data[n:]
	}
	return nil
}

// ReadBytes implements common.MemoryPort. Reads are rounded up to whole
// words and truncated to length.
func (p *Port) ReadBytes(ctx context.Context, addr uint32, length int) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	words, err := p.ReadWords(ctx, addr, (length+3)/4)
	if err != nil {
		return nil, errors.Trace(err)
	}
	buf := make([]byte, 0, len(words)*4)
	var w [4]byte
	for _, v := range words {
		binary.LittleEndian.PutUint32(w[:], v)
		buf = append(buf, w[:]...)
	}
	return buf[:length], nil
}

// WriteBytes implements common.MemoryPort. A trailing partial word is
// padded with 0xFF.
func (p *Port) WriteBytes(ctx context.Context, addr uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return errors.Trace(p.WriteWords(ctx, addr, BytesToWords(data)))
}

// BytesToWords packs data into little-endian words, padding the tail
// with 0xFF.
func BytesToWords(data []byte) []uint32 {
	if len(data)%4 != 0 {
		padded := make([]byte, (len(data)+3) & ^3)
		copy(padded, data)
		for i := len(data); i < len(padded); i++ {
			padded[i] = 0xff
		}
		data = padded
	}
	words := make([]uint32, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		words = append(words, binary.LittleEndian.Uint32(data[i:]))
	}
	return words
}

func (p *Port) String() string {
	return fmt.Sprintf("MEM-AP %d", p.apSel)
}

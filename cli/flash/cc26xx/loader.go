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
	"bytes"
	"context"
	"fmt"

	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/simplelink-tools/flash-rover/cli/flash/cc26xx/fw"
	"github.com/simplelink-tools/flash-rover/cli/flash/common"
)

// SRAM layout expected by the resident firmware. The firmware image is a
// flat binary: word 0 is the initial stack pointer, word 1 the reset
// handler, both read back from SRAM after loading.
const (
	sramStart = 0x20000000
	stackAddr = sramStart
	resetISR  = sramStart + 0x04

	confStart   = 0x20003000
	confValid   = confStart
	confSPIMiso = confStart + 0x04
	confSPIMosi = confStart + 0x08
	confSPIClk  = confStart + 0x0c
	confSPICsn  = confStart + 0x10
)

// Loader gets the resident firmware running on the target: reset, load
// image into SRAM, optional SPI pin config, set core registers, run.
type Loader struct {
	mem    common.MemoryPort
	target common.Target
	dev    Device
	pins   *SPIPins
}

func NewLoader(mem common.MemoryPort, target common.Target, dev Device, pins *SPIPins) *Loader {
	return &Loader{mem: mem, target: target, dev: dev, pins: pins}
}

// firmwareImage returns the resident firmware build for the device's family.
func (l *Loader) firmwareImage() ([]byte, error) {
	name := fmt.Sprintf("fw/%s.bin", l.dev.Family)
	img, err := fw.Asset(name)
	if err != nil {
		return nil, errors.Annotatef(err, "no firmware for device family %s", l.dev.Family)
	}
	if len(img) < 8 {
		return nil, errors.Errorf("firmware image %s is truncated (%d bytes)", name, len(img))
	}
	return img, nil
}

// Boot performs the full bootstrap sequence. On return the firmware is
// running and its doorbell will become responsive shortly; callers rely
// on the transaction poll timeout to absorb the startup delay.
func (l *Loader) Boot(ctx context.Context) error {
	img, err := l.firmwareImage()
	if err != nil {
		return errors.Trace(err)
	}

	glog.V(1).Infof("resetting %s...", l.dev.Name)
	if err := l.target.ResetHalt(ctx); err != nil {
		return errors.Annotatef(err, "failed to reset the target")
	}

	glog.V(1).Infof("loading firmware (%d bytes) into SRAM...", len(img))
	if err := l.mem.WriteBytes(ctx, sramStart, img); err != nil {
		return errors.Annotatef(err, "failed to load firmware into SRAM")
	}
	back, err := l.mem.ReadBytes(ctx, sramStart, len(img))
	if err != nil {
		return errors.Annotatef(err, "failed to read back the loaded firmware")
	}
	if !bytes.Equal(img, back) {
		return errors.Errorf("firmware load verification failed, SRAM contents differ")
	}

	if l.pins != nil {
		glog.V(1).Infof("overriding SPI pins: %s", l.pins)
		for _, cw := range []struct {
			addr  uint32
			value uint32
		}{
			{confValid, 1},
			{confSPIMiso, uint32(l.pins[0])},
			{confSPIMosi, uint32(l.pins[1])},
			{confSPIClk, uint32(l.pins[2])},
			{confSPICsn, uint32(l.pins[3])},
		} {
			if err := l.mem.WriteWord(ctx, cw.addr, cw.value); err != nil {
				return errors.Annotatef(err, "failed to write SPI pin config")
			}
		}
	}

	// Read SP and entry point back from SRAM rather than trusting the
	// image, the loaded copy is what the core will execute.
	sp, err := l.mem.ReadWord(ctx, stackAddr)
	if err != nil {
		return errors.Annotatef(err, "failed to read back stack pointer")
	}
	entry, err := l.mem.ReadWord(ctx, resetISR)
	if err != nil {
		return errors.Annotatef(err, "failed to read back entry point")
	}
	glog.V(2).Infof("sp=0x%08x entry=0x%08x", sp, entry)

	if err := l.target.SetReg(ctx, common.RegSP, sp); err != nil {
		return errors.Annotatef(err, "failed to set SP")
	}
	if err := l.target.SetReg(ctx, common.RegPC, entry); err != nil {
		return errors.Annotatef(err, "failed to set PC")
	}
	// The firmware never returns; a sentinel LR makes it obvious if it does.
	if err := l.target.SetReg(ctx, common.RegLR, 0xffffffff); err != nil {
		return errors.Annotatef(err, "failed to set LR")
	}

	glog.V(1).Infof("starting firmware")
	return errors.Annotatef(l.target.Run(ctx), "failed to start the firmware")
}

// Reboot re-runs the bootstrap sequence. Write verification uses this to
// read back through freshly-booted firmware instead of trusting whatever
// state the previous commands left behind.
func (l *Loader) Reboot(ctx context.Context) error {
	return errors.Trace(l.Boot(ctx))
}

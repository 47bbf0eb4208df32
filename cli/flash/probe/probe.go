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

// Package probe opens a debug session on a target behind a CMSIS-DAP
// probe: USB/HID discovery, SWD attach and core run control, bundled
// into one Session.
package probe

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/gousb"
	"github.com/juju/errors"

	"github.com/simplelink-tools/flash-rover/cli/flash/common"
	"github.com/simplelink-tools/flash-rover/cli/flash/probe/cortex"
	"github.com/simplelink-tools/flash-rover/cli/flash/probe/dap"
	"github.com/simplelink-tools/flash-rover/cli/flash/probe/swd"
)

// Known CMSIS-DAP capable probes. The XDS110 on SimpleLink LaunchPads
// exposes CMSIS-DAP on its HID interface since firmware 2.3.
var knownProbes = []dap.ProbeID{
	{VID: 0x0451, PID: 0xbef3}, // TI XDS110
	{VID: 0x0451, PID: 0xbef4}, // TI XDS110, alternate config
	{VID: 0x0d28, PID: 0x0204}, // mbed DAPLink
}

const defaultClockHz = 10000000

// Options select and configure the probe to attach through.
type Options struct {
	// Serial of the probe to use; empty picks the first one found.
	Serial string
	// SWD clock in Hz. 0 means the 10 MHz default.
	ClockHz uint32
}

// Session is an attached target: an open probe, a powered-up memory
// port and a halted-capable core.
type Session struct {
	dapc *dap.Client
	Port *swd.Port
	Core *cortex.Core
}

// List enumerates attached debug probes by USB descriptor, which is
// where serial numbers are reliably available.
func List() ([]common.USBDeviceInfo, error) {
	ids := make([]common.USBID, 0, len(knownProbes))
	for _, p := range knownProbes {
		ids = append(ids, common.USBID{VID: gousb.ID(p.VID), PID: gousb.ID(p.PID)})
	}
	return common.ListUSBDevices(ids)
}

// Open attaches to the target: opens the probe, switches the link to
// SWD, powers up the debug domain and identifies the core.
func Open(ctx context.Context, opts Options) (*Session, error) {
	dapc, err := dap.Open(ctx, knownProbes, opts.Serial)
	if err != nil {
		return nil, errors.Trace(err)
	}
	s := &Session{dapc: dapc}
	if err := s.attach(ctx, opts); err != nil {
		s.Close()
		return nil, errors.Trace(err)
	}
	return s, nil
}

func (s *Session) attach(ctx context.Context, opts Options) error {
	if fv, err := s.dapc.GetFirmwareVersion(ctx); err == nil {
		glog.V(1).Infof("probe firmware: %s", fv)
	}
	_ = s.dapc.SetHostStatus(ctx, dap.StatusConnected, true)
	if err := s.dapc.Connect(ctx, dap.ConnectModeSWD); err != nil {
		return errors.Annotatef(err, "probe does not support SWD")
	}
	clock := opts.ClockHz
	if clock == 0 {
		clock = defaultClockHz
	}
	if err := s.dapc.SWJClock(ctx, clock); err != nil {
		return errors.Annotatef(err, "failed to set SWD clock")
	}
	if err := s.dapc.SWDConfigure(ctx, 0); err != nil {
		return errors.Annotatef(err, "failed to configure SWD")
	}
	if err := s.dapc.TransferConfigure(ctx, 0, 100, 100); err != nil {
		return errors.Annotatef(err, "failed to configure transfers")
	}
	s.Port = swd.NewPort(s.dapc, 0)
	if err := s.Port.LineReset(ctx); err != nil {
		return errors.Trace(err)
	}
	if err := s.Port.Attach(ctx); err != nil {
		return errors.Annotatef(err, "failed to attach to the target, check connections and power")
	}
	core, err := cortex.New(ctx, s.Port)
	if err != nil {
		return errors.Trace(err)
	}
	s.Core = core
	return nil
}

// Serial returns the probe's serial number, best effort.
func (s *Session) Serial(ctx context.Context) string {
	sn, err := s.dapc.GetSerialNumber(ctx)
	if err != nil {
		return ""
	}
	return sn
}

// Close detaches from the target and releases the probe. Errors are
// logged but not returned, there is nothing useful a caller can do
// with a failed detach.
func (s *Session) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if s.Core != nil {
		if err := s.Core.ResetRun(ctx); err != nil {
			glog.Errorf("failed to reset the target on detach: %v", err)
		}
	}
	_ = s.dapc.SetHostStatus(ctx, dap.StatusConnected, false)
	if err := s.dapc.Disconnect(ctx); err != nil {
		glog.Errorf("failed to disconnect the probe: %v", err)
	}
	s.dapc.Close()
}

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
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/juju/errors"
)

// Mailbox and buffer addresses, fixed by the firmware's linker script.
const (
	doorbellStart = 0x20003100

	cmdKindAddr = doorbellStart
	cmdArg0Addr = doorbellStart + 0x04
	cmdArg1Addr = doorbellStart + 0x08
	cmdArg2Addr = doorbellStart + 0x0c

	rspKindAddr = doorbellStart + 0x10
	rspVal0Addr = doorbellStart + 0x14
	rspVal1Addr = doorbellStart + 0x18
	rspVal2Addr = doorbellStart + 0x1c

	bufStart = 0x20004000
	// BufSize caps a single read/write block transfer.
	BufSize = 0x1000
)

// pollDwell is how long the host sleeps between mailbox polls. The
// dominant cost is the probe round-trip, polling faster only burns
// probe bandwidth.
const pollDwell = 100 * time.Millisecond

// transact drives one command to completion: post it, wait for the
// firmware to accept it and respond, collect and decode the response.
// Strictly one transaction at a time, the mailbox has no transaction id.
func (x *XFlash) transact(ctx context.Context, cmd command) (response, error) {
	words := cmd.encode()
	glog.V(3).Infof("doorbell: %s [0x%08x 0x%08x 0x%08x 0x%08x]",
		kindName(words[0]), words[0], words[1], words[2], words[3])

	// The kind word goes last: writing it is what rings the doorbell,
	// and the firmware must never observe a half-written command.
	for _, w := range []struct {
		addr  uint32
		value uint32
	}{
		{cmdArg2Addr, words[3]},
		{cmdArg1Addr, words[2]},
		{cmdArg0Addr, words[1]},
		{cmdKindAddr, words[0]},
	} {
		if err := x.mem.WriteWord(ctx, w.addr, w.value); err != nil {
			return response{}, errors.Annotatef(err, "failed to post command")
		}
	}

	if err := x.pollWord(ctx, cmdKindAddr, func(v uint32) bool { return v == 0 }, "command acceptance"); err != nil {
		return response{}, errors.Trace(err)
	}
	if err := x.pollWord(ctx, rspKindAddr, func(v uint32) bool { return v != 0 }, "firmware response"); err != nil {
		return response{}, errors.Trace(err)
	}

	var raw [4]uint32
	for i, addr := range []uint32{rspKindAddr, rspVal0Addr, rspVal1Addr, rspVal2Addr} {
		v, err := x.mem.ReadWord(ctx, addr)
		if err != nil {
			return response{}, errors.Annotatef(err, "failed to read response")
		}
		raw[i] = v
	}

	// Clearing the response kind hands the mailbox back to the firmware.
	// Skipping this corrupts completion detection of the next transaction.
	if err := x.mem.WriteWord(ctx, rspKindAddr, 0); err != nil {
		return response{}, errors.Annotatef(err, "failed to clear response")
	}

	rsp, err := decodeResponse(raw)
	if err != nil {
		return response{}, errors.Trace(err)
	}
	glog.V(3).Infof("doorbell: %s response", kindName(rsp.kind))
	return rsp, nil
}

// pollWord reads addr every dwell interval until done(value) holds, the
// per-transaction timeout expires, or ctx is canceled.
func (x *XFlash) pollWord(ctx context.Context, addr uint32, done func(uint32) bool, what string) error {
	deadline := time.Now().Add(x.timeout)
	for {
		v, err := x.mem.ReadWord(ctx, addr)
		if err != nil {
			return errors.Annotatef(err, "failed to poll for %s", what)
		}
		if done(v) {
			return nil
		}
		if time.Now().After(deadline) {
			return errors.Timeoutf("firmware did not signal %s within %s", what, x.timeout)
		}
		select {
		case <-ctx.Done():
			return errors.Annotatef(ctx.Err(), "while waiting for %s", what)
		case <-time.After(x.dwell):
		}
	}
}

// transactOk runs cmd and requires a plain Ok response.
func (x *XFlash) transactOk(ctx context.Context, op string, cmd command) error {
	rsp, err := x.transact(ctx, cmd)
	if err != nil {
		return errors.Trace(err)
	}
	if rsp.kind != rspOk {
		return &UnexpectedResponseError{Op: op, Kind: rsp.kind}
	}
	return nil
}

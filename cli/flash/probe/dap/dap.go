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

// Package dap implements the subset of the CMSIS-DAP probe commands needed
// to drive an SWD connection:
// https://arm-software.github.io/CMSIS_5/DAP/html/group__DAP__Commands__gr.html
//
// XDS110 probes (firmware 2.3 and later) and mbed DAPLink probes both expose
// this interface over HID.
package dap

import (
	"context"
	"encoding/binary"
	"encoding/hex"

	"github.com/cesanta/hid"
	"github.com/golang/glog"
	"github.com/juju/errors"
)

type command uint8

const (
	cmdInfo              command = 0x00
	cmdSetHostStatus     command = 0x01
	cmdConnect           command = 0x02
	cmdDisconnect        command = 0x03
	cmdTransferConfigure command = 0x04
	cmdTransfer          command = 0x05
	cmdTransferBlock     command = 0x06
	cmdSWJClock          command = 0x11
	cmdSWJSequence       command = 0x12
	cmdSWDConfigure      command = 0x13
)

// Info string identifiers (DAP_Info).
const (
	infoVendorID        = 0x01
	infoProductID       = 0x02
	infoSerialNumber    = 0x03
	infoFirmwareVersion = 0x04
	infoCapabilities    = 0xf0
	infoMaxPacketSize   = 0xff
)

type ConnectMode uint8

const (
	ConnectModeAuto ConnectMode = 0x00
	ConnectModeSWD  ConnectMode = 0x01
	ConnectModeJTAG ConnectMode = 0x02
)

type StatusType uint8

const (
	StatusConnected StatusType = 0x00
	StatusRunning   StatusType = 0x01
)

type TransferOp uint8

const (
	OpRead  TransferOp = 0
	OpWrite TransferOp = 1
)

// TransferRequest is a single DP/AP register access within a DAP_Transfer.
type TransferRequest struct {
	Op   TransferOp
	AP   bool
	Reg  uint8 // register address, must be word-aligned
	Data uint32
}

// TransferStatus is the ACK/error byte returned by transfer commands.
type TransferStatus uint8

const transferStatusWait TransferStatus = 2

func (ts TransferStatus) AckValue() uint8 {
	return uint8(ts & 7)
}

func (ts TransferStatus) SWDError() bool {
	return ts&0x08 != 0
}

func (ts TransferStatus) Ok() bool {
	return ts.AckValue() == 1 && !ts.SWDError()
}

// Client talks to one CMSIS-DAP probe over HID.
type Client struct {
	dev        hid.Device
	info       *hid.DeviceInfo
	packetSize int
}

// ProbeID is a USB VID:PID pair of a known probe.
type ProbeID struct {
	VID uint16
	PID uint16
}

// Open finds and opens a HID device matching any of the given probe ids.
// HID enumeration does not expose serial numbers everywhere, so when serial
// is non-empty each candidate is opened and asked for its serial over the
// DAP protocol itself.
func Open(ctx context.Context, ids []ProbeID, serial string) (*Client, error) {
	devs, err := hid.Devices()
	if err != nil {
		return nil, errors.Annotatef(err, "failed to enumerate HID devices")
	}
	for i, di := range devs {
		glog.V(1).Infof("%d: %04x:%04x %s", i, di.VendorID, di.ProductID, di.Path)
		if !matches(di, ids) {
			continue
		}
		d, err := di.Open()
		if err != nil {
			return nil, errors.Annotatef(err, "failed to open %04x:%04x (%s)", di.VendorID, di.ProductID, di.Path)
		}
		c := &Client{
			dev:  d,
			info: di,
			// Conservative until the probe tells us otherwise.
			packetSize: 8,
		}
		mps, err := c.maxPacketSize(ctx)
		if err != nil {
			c.Close()
			return nil, errors.Annotatef(err, "failed to get max packet size")
		}
		c.packetSize = mps
		glog.V(2).Infof("max packet size: %d", c.packetSize)
		if serial != "" {
			sn, err := c.GetSerialNumber(ctx)
			if err != nil {
				c.Close()
				return nil, errors.Annotatef(err, "failed to get probe serial")
			}
			if sn != serial {
				glog.V(1).Infof("skipping probe with serial %q", sn)
				c.Close()
				continue
			}
		}
		glog.Infof("opened probe %04x:%04x (%s)", di.VendorID, di.ProductID, di.Path)
		return c, nil
	}
	if serial != "" {
		return nil, errors.NotFoundf("CMSIS-DAP probe with serial %q", serial)
	}
	return nil, errors.NotFoundf("CMSIS-DAP probe")
}

func matches(di *hid.DeviceInfo, ids []ProbeID) bool {
	for _, id := range ids {
		if di.VendorID == id.VID && di.ProductID == id.PID {
			return true
		}
	}
	return false
}

// newReq starts a request packet: HID report number (unused) plus the
// command byte.
func newReq(cmd command) []byte {
	return []byte{0, byte(cmd)}
}

func le16(b []byte, v uint16) []byte {
	var w [2]byte
	binary.LittleEndian.PutUint16(w[:], v)
	return append(b, w[:]...)
}

func le32(b []byte, v uint32) []byte {
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], v)
	return append(b, w[:]...)
}

// exec sends one request packet and waits for the matching response packet.
func (c *Client) exec(ctx context.Context, req []byte) ([]byte, error) {
	glog.V(4).Infof(" => %s", hex.EncodeToString(req[1:]))
	if len(req) > c.packetSize {
		return nil, errors.Errorf("packet too long (max %d, got %d)", c.packetSize, len(req))
	}
	if err := c.dev.Write(req); err != nil {
		return nil, errors.Annotatef(err, "probe write failed")
	}
	select {
	case <-ctx.Done():
		return nil, errors.Annotatef(ctx.Err(), "DAP exec")
	case resp, ok := <-c.dev.ReadCh():
		if !ok {
			return nil, errors.Annotatef(c.dev.ReadError(), "probe read failed")
		}
		glog.V(4).Infof("<=  %s", hex.EncodeToString(resp))
		if len(resp) == 0 || resp[0] != req[1] {
			return nil, errors.Errorf("response to wrong command (want 0x%02x)", req[1])
		}
		return resp[1:], nil
	}
}

// execStatus runs a command whose response is a single status byte.
func (c *Client) execStatus(ctx context.Context, req []byte) error {
	resp, err := c.exec(ctx, req)
	if err != nil {
		return errors.Trace(err)
	}
	if len(resp) < 1 || resp[0] != 0 {
		return errors.Errorf("command 0x%02x failed", req[1])
	}
	return nil
}

func (c *Client) getInfo(ctx context.Context, id uint8) ([]byte, error) {
	resp, err := c.exec(ctx, append(newReq(cmdInfo), id))
	if err != nil {
		return nil, errors.Annotatef(err, "failed to get info 0x%02x", id)
	}
	if len(resp) < 1 || int(resp[0]) > len(resp)-1 {
		return nil, errors.Errorf("truncated info response")
	}
	return resp[1 : 1+int(resp[0])], nil
}

func (c *Client) maxPacketSize(ctx context.Context) (int, error) {
	v, err := c.getInfo(ctx, infoMaxPacketSize)
	if err != nil {
		return 0, errors.Trace(err)
	}
	if len(v) < 2 {
		return 0, errors.Errorf("short packet size value")
	}
	return int(binary.LittleEndian.Uint16(v)), nil
}

func (c *Client) getInfoString(ctx context.Context, id uint8) (string, error) {
	v, err := c.getInfo(ctx, id)
	if err != nil {
		return "", errors.Trace(err)
	}
	// Strings are NUL-terminated.
	for i, b := range v {
		if b == 0 {
			v = v[:i]
			break
		}
	}
	return string(v), nil
}

func (c *Client) GetVendorID(ctx context.Context) (string, error) {
	return c.getInfoString(ctx, infoVendorID)
}

func (c *Client) GetProductID(ctx context.Context) (string, error) {
	return c.getInfoString(ctx, infoProductID)
}

func (c *Client) GetSerialNumber(ctx context.Context) (string, error) {
	return c.getInfoString(ctx, infoSerialNumber)
}

func (c *Client) GetFirmwareVersion(ctx context.Context) (string, error) {
	return c.getInfoString(ctx, infoFirmwareVersion)
}

func (c *Client) SetHostStatus(ctx context.Context, st StatusType, on bool) error {
	req := append(newReq(cmdSetHostStatus), byte(st))
	if on {
		req = append(req, 1)
	} else {
		req = append(req, 0)
	}
	return errors.Trace(c.execStatus(ctx, req))
}

func (c *Client) Connect(ctx context.Context, mode ConnectMode) error {
	glog.V(3).Infof("Connect(%d)", mode)
	resp, err := c.exec(ctx, append(newReq(cmdConnect), byte(mode)))
	if err != nil {
		return errors.Trace(err)
	}
	// Response is the actually selected mode, 0 means failure.
	if len(resp) < 1 || resp[0] == 0 {
		return errors.Errorf("probe failed to connect to the target")
	}
	return nil
}

func (c *Client) Disconnect(ctx context.Context) error {
	return errors.Trace(c.execStatus(ctx, newReq(cmdDisconnect)))
}

func (c *Client) TransferConfigure(ctx context.Context, idleCycles uint8, waitRetry, matchRetry uint16) error {
	glog.V(3).Infof("TransferConfigure(%d, %d, %d)", idleCycles, waitRetry, matchRetry)
	req := append(newReq(cmdTransferConfigure), idleCycles)
	req = le16(req, waitRetry)
	req = le16(req, matchRetry)
	return errors.Trace(c.execStatus(ctx, req))
}

func treqByte(op TransferOp, ap bool, reg uint8) (uint8, error) {
	if reg&3 != 0 {
		return 0, errors.Errorf("invalid reg 0x%x", reg)
	}
	treq := reg & 0xc
	if ap {
		treq |= 1 << 0
	}
	if op == OpRead {
		treq |= 1 << 1
	}
	return treq, nil
}

func (c *Client) doTransfer(ctx context.Context, reqs []TransferRequest) (TransferStatus, []uint32, error) {
	req := append(newReq(cmdTransfer), 0 /* DAP index */, byte(len(reqs)))
	numReads := 0
	for _, r := range reqs {
		treq, err := treqByte(r.Op, r.AP, r.Reg)
		if err != nil {
			return 0, nil, errors.Trace(err)
		}
		req = append(req, treq)
		if r.Op == OpRead {
			numReads++
		} else {
			req = le32(req, r.Data)
		}
	}
	resp, err := c.exec(ctx, req)
	if err != nil {
		return 0, nil, errors.Trace(err)
	}
	if len(resp) < 2 {
		return 0, nil, errors.Errorf("response is too short")
	}
	tc, st := int(resp[0]), TransferStatus(resp[1])
	if !st.Ok() {
		return st, nil, errors.Errorf("transfer failed (tc %d/%d st 0x%02x)", tc, len(reqs), uint8(st))
	}
	if tc != len(reqs) {
		return st, nil, errors.Errorf("not all transfers completed (%d/%d)", tc, len(reqs))
	}
	if len(resp) < 2+4*numReads {
		return st, nil, errors.Errorf("response is too short")
	}
	data := make([]uint32, 0, numReads)
	for i := 0; i < numReads; i++ {
		data = append(data, binary.LittleEndian.Uint32(resp[2+4*i:]))
	}
	return st, data, nil
}

// Transfer performs a sequence of individual DP/AP register reads and
// writes, retrying on WAIT acks.
func (c *Client) Transfer(ctx context.Context, reqs []TransferRequest) ([]uint32, error) {
	for i := 0; i < 5; i++ {
		st, res, err := c.doTransfer(ctx, reqs)
		if err != nil && st == transferStatusWait {
			continue
		}
		return res, errors.Trace(err)
	}
	return nil, errors.Errorf("transfer timeout (target keeps responding WAIT)")
}

// BlockMaxWords is how many words fit in one DAP_TransferBlock packet.
func (c *Client) BlockMaxWords() int {
	headerLen := 1 /* cmd */ + 1 /* DAP index */ + 2 /* count */ + 1 /* request */
	return (c.packetSize - headerLen) / 4
}

// TransferBlockRead reads length words from a single DP/AP register.
func (c *Client) TransferBlockRead(ctx context.Context, ap bool, reg uint8, length int) ([]uint32, error) {
	glog.V(3).Infof("TransferBlockRead(%t, 0x%x, %d)", ap, reg, length)
	if length > c.BlockMaxWords() {
		return nil, errors.Errorf("request too big (max %d, got %d)", c.BlockMaxWords(), length)
	}
	treq, err := treqByte(OpRead, ap, reg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	req := append(newReq(cmdTransferBlock), 0 /* DAP index */)
	req = le16(req, uint16(length))
	req = append(req, treq)
	resp, err := c.exec(ctx, req)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err := checkBlockResp(resp, length); err != nil {
		return nil, errors.Trace(err)
	}
	if len(resp) < 3+4*length {
		return nil, errors.Errorf("response is too short")
	}
	res := make([]uint32, 0, length)
	for i := 0; i < length; i++ {
		res = append(res, binary.LittleEndian.Uint32(resp[3+4*i:]))
	}
	return res, nil
}

// TransferBlockWrite writes data words to a single DP/AP register.
func (c *Client) TransferBlockWrite(ctx context.Context, ap bool, reg uint8, data []uint32) error {
	glog.V(3).Infof("TransferBlockWrite(%t, 0x%x, %d)", ap, reg, len(data))
	treq, err := treqByte(OpWrite, ap, reg)
	if err != nil {
		return errors.Trace(err)
	}
	req := append(newReq(cmdTransferBlock), 0 /* DAP index */)
	req = le16(req, uint16(len(data)))
	req = append(req, treq)
	for _, w := range data {
		req = le32(req, w)
	}
	resp, err := c.exec(ctx, req)
	if err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(checkBlockResp(resp, len(data)))
}

func checkBlockResp(resp []byte, want int) error {
	if len(resp) < 3 {
		return errors.Errorf("response is too short")
	}
	tc, st := int(binary.LittleEndian.Uint16(resp)), TransferStatus(resp[2])
	if !st.Ok() {
		return errors.Errorf("transfer failed (tc %d/%d st 0x%02x)", tc, want, uint8(st))
	}
	if tc != want {
		return errors.Errorf("not all transfers completed (%d/%d)", tc, want)
	}
	return nil
}

func (c *Client) SWJClock(ctx context.Context, clockHz uint32) error {
	glog.V(3).Infof("SWJClock(%d)", clockHz)
	return errors.Trace(c.execStatus(ctx, le32(newReq(cmdSWJClock), clockHz)))
}

// SWJSequence clocks out up to 256 bits on SWDIO/TMS.
func (c *Client) SWJSequence(ctx context.Context, numBits int, data []byte) error {
	glog.V(3).Infof("SWJSequence(%d, %v)", numBits, data)
	if numBits < 1 || numBits > 256 {
		return errors.Errorf("bit count must be between 1 and 256 (got %d)", numBits)
	}
	req := append(newReq(cmdSWJSequence), uint8(numBits))
	req = append(req, data...)
	return errors.Trace(c.execStatus(ctx, req))
}

func (c *Client) SWDConfigure(ctx context.Context, config uint8) error {
	glog.V(3).Infof("SWDConfigure(0x%02x)", config)
	return errors.Trace(c.execStatus(ctx, append(newReq(cmdSWDConfigure), config)))
}

func (c *Client) Close() {
	if c.dev != nil {
		c.dev.Close()
		c.dev = nil
	}
}

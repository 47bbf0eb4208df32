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

package common

import (
	"github.com/golang/glog"
	"github.com/google/gousb"
	"github.com/juju/errors"
)

// USBID is a VID:PID pair.
type USBID struct {
	VID gousb.ID
	PID gousb.ID
}

// USBDeviceInfo describes one enumerated USB device.
type USBDeviceInfo struct {
	ID      USBID
	Bus     int
	Address int
	Serial  string
	Product string
}

// ListUSBDevices enumerates attached USB devices matching any of the given
// VID:PID pairs, resolving serial number and product strings. The HID layer
// does not reliably expose serial numbers on all platforms, gousb does.
func ListUSBDevices(ids []USBID) ([]USBDeviceInfo, error) {
	uctx := gousb.NewContext()
	defer uctx.Close()
	devs, err := uctx.OpenDevices(func(dd *gousb.DeviceDesc) bool {
		for _, id := range ids {
			if dd.Vendor == id.VID && dd.Product == id.PID {
				return true
			}
		}
		return false
	})
	// OpenDevices may fail overall but still return results.
	// Only fail if no devices were returned.
	if err != nil && len(devs) == 0 {
		return nil, errors.Annotatef(err, "failed to enumerate USB devices")
	}
	var res []USBDeviceInfo
	for _, dev := range devs {
		di := USBDeviceInfo{
			ID:      USBID{VID: dev.Desc.Vendor, PID: dev.Desc.Product},
			Bus:     dev.Desc.Bus,
			Address: dev.Desc.Address,
		}
		di.Serial, _ = dev.SerialNumber()
		di.Product, _ = dev.Product()
		glog.V(1).Infof("dev %s sn %q", dev, di.Serial)
		res = append(res, di)
		dev.Close()
	}
	return res, nil
}

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

package main

import (
	"context"

	"github.com/juju/errors"

	"github.com/simplelink-tools/flash-rover/cli/flags"
	"github.com/simplelink-tools/flash-rover/cli/flash/cc26xx"
	"github.com/simplelink-tools/flash-rover/cli/flash/cc26xx/xflash"
	"github.com/simplelink-tools/flash-rover/cli/flash/probe"
	"github.com/simplelink-tools/flash-rover/cli/ourutil"
)

// xfSession is everything a flash subcommand needs: an attached probe,
// a booted resident firmware and the operation layer on top.
type xfSession struct {
	sess   *probe.Session
	loader *cc26xx.Loader
	xf     *xflash.XFlash
}

// openXFSession parses the target flags, attaches to the probe and
// boots the resident firmware. Callers must Close().
func openXFSession(ctx context.Context) (*xfSession, error) {
	dev, err := cc26xx.ParseDevice(*flags.Device)
	if err != nil {
		return nil, errors.Trace(err)
	}

	var pins *cc26xx.SPIPins
	if *flags.SPIPins != "" {
		p, err := cc26xx.ParseSPIPins(*flags.SPIPins)
		if err != nil {
			return nil, errors.Trace(err)
		}
		pins = &p
	}

	sess, err := probe.Open(ctx, probe.Options{
		Serial:  *flags.Serial,
		ClockHz: *flags.ClockHz,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}

	if sn := sess.Serial(ctx); sn != "" {
		ourutil.Reportf("Connected to %s (%s) via probe %s", dev.Name, sess.Core.Name(), sn)
	} else {
		ourutil.Reportf("Connected to %s (%s)", dev.Name, sess.Core.Name())
	}

	loader := cc26xx.NewLoader(sess.Port, sess.Core, dev, pins)
	if err := loader.Boot(ctx); err != nil {
		sess.Close()
		return nil, errors.Trace(err)
	}

	return &xfSession{
		sess:   sess,
		loader: loader,
		xf:     xflash.New(sess.Port, *flags.Timeout, *flags.PollInterval),
	}, nil
}

// Close tears the session down, best-effort: the target is reset to
// normal boot and the probe released. Errors here never override the
// operation's own result.
func (s *xfSession) Close() {
	s.sess.Close()
}

func xflashWriteOptions(s *xfSession) xflash.WriteOptions {
	return xflash.WriteOptions{
		Verify:  *flags.Verify,
		InPlace: *flags.InPlace,
		Reboot:  s.loader.Reboot,
	}
}

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
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/juju/errors"
	flag "github.com/spf13/pflag"

	"github.com/simplelink-tools/flash-rover/cli/flags"
	"github.com/simplelink-tools/flash-rover/cli/ourutil"
)

// parseOffsetLength interprets positional args[0] and args[1] as offset
// and length. Both accept decimal, 0x hex and octal forms.
func parseOffsetLength(args []string) (uint32, uint32, error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("expected OFFSET and LENGTH arguments")
	}
	offset, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		return 0, 0, errors.Annotatef(err, "invalid offset %q", args[0])
	}
	length, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return 0, 0, errors.Annotatef(err, "invalid length %q", args[1])
	}
	if offset+length > 1<<32-1 {
		return 0, 0, errors.Errorf("offset+length overflows the 32-bit address space")
	}
	return uint32(offset), uint32(length), nil
}

func xfInfo(ctx context.Context) error {
	s, err := openXFSession(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	defer s.Close()

	info, err := s.xf.GetInfo(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Println(info)
	return nil
}

func xfErase(ctx context.Context) error {
	args := flag.Args()[1:]
	if *flags.MassErase && len(args) > 0 {
		return errors.Errorf("--mass-erase does not take OFFSET or LENGTH")
	}

	var offset, length uint32
	if !*flags.MassErase {
		var err error
		if offset, length, err = parseOffsetLength(args); err != nil {
			return errors.Trace(err)
		}
	}

	s, err := openXFSession(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	defer s.Close()

	if *flags.MassErase {
		ourutil.Reportf("Starting mass erase, this may take a while...")
		if err := s.xf.MassErase(ctx); err != nil {
			return errors.Trace(err)
		}
		ourutil.Reportf("Mass erase done")
		return nil
	}
	if err := s.xf.SectorErase(ctx, offset, length); err != nil {
		return errors.Trace(err)
	}
	ourutil.Reportf("Erased %d bytes at 0x%x", length, offset)
	return nil
}

func xfRead(ctx context.Context) error {
	offset, length, err := parseOffsetLength(flag.Args()[1:])
	if err != nil {
		return errors.Trace(err)
	}

	var out io.Writer = os.Stdout
	if *flags.Output != "" && *flags.Output != "-" {
		f, err := os.Create(*flags.Output)
		if err != nil {
			return errors.Annotatef(err, "failed to create output file")
		}
		defer f.Close()
		out = f
	}

	s, err := openXFSession(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	defer s.Close()

	if err := s.xf.Read(ctx, offset, length, out); err != nil {
		return errors.Trace(err)
	}
	if *flags.Output != "" && *flags.Output != "-" {
		ourutil.Reportf("Read %d bytes at 0x%x into %s", length, offset, *flags.Output)
	}
	return nil
}

// readInput slurps the write payload. With an explicit length, getting
// fewer bytes than requested is an error, caught before the device is
// touched at all.
func readInput(args []string) (uint32, []byte, error) {
	var in io.Reader = os.Stdin
	if *flags.Input != "" && *flags.Input != "-" {
		f, err := os.Open(*flags.Input)
		if err != nil {
			return 0, nil, errors.Annotatef(err, "failed to open input file")
		}
		defer f.Close()
		in = f
	}

	var offset uint32
	switch len(args) {
	case 1:
		v, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return 0, nil, errors.Annotatef(err, "invalid offset %q", args[0])
		}
		offset = uint32(v)
		data, err := ioutil.ReadAll(in)
		if err != nil {
			return 0, nil, errors.Annotatef(err, "failed to read input")
		}
		if v+uint64(len(data)) > 1<<32-1 {
			return 0, nil, errors.Errorf("offset+input size overflows the 32-bit address space")
		}
		return offset, data, nil
	case 2:
		var length uint32
		var err error
		if offset, length, err = parseOffsetLength(args); err != nil {
			return 0, nil, errors.Trace(err)
		}
		data := make([]byte, length)
		if _, err := io.ReadFull(in, data); err != nil {
			return 0, nil, errors.Annotatef(err, "input is shorter than the requested %d bytes", length)
		}
		return offset, data, nil
	}
	return 0, nil, errors.Errorf("expected OFFSET and optional LENGTH arguments")
}

func xfWrite(ctx context.Context) error {
	offset, data, err := readInput(flag.Args()[1:])
	if err != nil {
		return errors.Trace(err)
	}

	s, err := openXFSession(ctx)
	if err != nil {
		return errors.Trace(err)
	}
	defer s.Close()

	opts := xflashWriteOptions(s)
	if err := s.xf.Write(ctx, offset, data, opts); err != nil {
		return errors.Trace(err)
	}
	if opts.Verify {
		ourutil.Reportf("Wrote and verified %d bytes at 0x%x", len(data), offset)
	} else {
		ourutil.Reportf("Wrote %d bytes at 0x%x", len(data), offset)
	}
	return nil
}

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

// Package common holds the target access interfaces shared by the probe
// backends and the device-specific flashing code.
package common

import (
	"context"
)

// Core register indices for Target.GetReg/SetReg, as encoded by the
// ARMv7-M DCRSR REGSEL field.
const (
	RegSP = 13
	RegLR = 14
	RegPC = 15
)

// MemoryPort is byte- and word-addressable access to the target's memory.
// The protocol and loader layers only ever see this interface, so the
// backend (SWD probe, simulator, test fake) can be swapped freely.
type MemoryPort interface {
	// ReadWord reads a single 32-bit word. addr must be word-aligned.
	ReadWord(ctx context.Context, addr uint32) (uint32, error)
	// WriteWord writes a single 32-bit word. addr must be word-aligned.
	WriteWord(ctx context.Context, addr uint32, value uint32) error
	// ReadBytes reads length bytes starting at addr. addr must be
	// word-aligned; length need not be a multiple of 4.
	ReadBytes(ctx context.Context, addr uint32, length int) ([]byte, error)
	// WriteBytes writes data starting at addr. addr must be word-aligned.
	// If len(data) is not a multiple of 4 the last word is padded with 0xFF,
	// so up to 3 bytes past the end of data are clobbered.
	WriteBytes(ctx context.Context, addr uint32, data []byte) error
}

// Target is run control of the target core.
type Target interface {
	// ResetHalt resets the system and catches the core at the reset vector.
	ResetHalt(ctx context.Context) error
	// ResetRun resets the system and lets it run without debug.
	ResetRun(ctx context.Context) error
	// Halt stops the core and waits for it to actually halt.
	Halt(ctx context.Context) error
	// Run releases the core from halt (from the current PC) and returns
	// immediately, it does not wait for anything.
	Run(ctx context.Context) error
	// GetReg retrieves the current value of a core register.
	GetReg(ctx context.Context, reg int) (uint32, error)
	// SetReg sets the value of a core register.
	SetReg(ctx context.Context, reg int, value uint32) error
}

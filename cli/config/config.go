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

// Package config persists per-user defaults (device name, SPI pins,
// probe serial) so they don't have to be repeated on every invocation.
package config

import (
	"os"
	"path/filepath"
	"sort"

	ini "github.com/go-ini/ini"
	"github.com/juju/errors"
)

// Keys recognized in the defaults file. Every key mirrors a global flag.
var knownKeys = []string{"device", "serial", "spi-pins"}

func configFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Annotatef(err, "cannot determine home directory")
	}
	return filepath.Join(home, ".flash-rover", "config"), nil
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Load reads the defaults file. A missing file is an empty config.
func Load() (map[string]string, error) {
	path, err := configFile()
	if err != nil {
		return nil, errors.Trace(err)
	}
	cf, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return map[string]string{}, nil
		}
		return nil, errors.Annotatef(err, "failed to read %s", path)
	}
	res := map[string]string{}
	for _, key := range cf.Section("defaults").Keys() {
		if isKnownKey(key.Name()) {
			res[key.Name()] = key.Value()
		}
	}
	return res, nil
}

// Set stores or clears (empty value) one default and saves the file.
func Set(key, value string) error {
	if !isKnownKey(key) {
		return errors.Errorf("unknown config key %q, known keys: %v", key, knownKeys)
	}
	path, err := configFile()
	if err != nil {
		return errors.Trace(err)
	}
	cf, err := ini.Load(path)
	if err != nil {
		cf = ini.Empty()
	}
	sec := cf.Section("defaults")
	if value == "" {
		sec.DeleteKey(key)
	} else {
		if _, err := sec.NewKey(key, value); err != nil {
			return errors.Trace(err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Trace(err)
	}
	if err := cf.SaveTo(path); err != nil {
		return errors.Annotatef(err, "failed to save %s", path)
	}
	return nil
}

// Keys returns the recognized keys, sorted, for help output.
func Keys() []string {
	res := append([]string(nil), knownKeys...)
	sort.Strings(res)
	return res
}

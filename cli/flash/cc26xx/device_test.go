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
	"testing"
)

func TestParseDevice(t *testing.T) {
	cases := []struct {
		in     string
		name   string
		family Family
		ok     bool
	}{
		{"cc1310", "CC1310F128", FamilyCC13x0, true},
		{"CC1310", "CC1310F128", FamilyCC13x0, true},
		{"cc2640r2f", "CC2640R2F", FamilyCC26x0R2, true},
		{"cc2652rb", "CC2652RB1F", FamilyCC13x2CC26x2, true},
		{"cc1352p7", "CC1352P7", FamilyCC13x2x7CC26x2x7, true},
		{"cc1354p10", "CC1354P10", FamilyCC13x4CC26x4, true},
		{"cc9999", "", 0, false},
		{"", "", 0, false},
	}
	for _, tc := range cases {
		d, err := ParseDevice(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseDevice(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if !tc.ok {
			continue
		}
		if d.Name != tc.name || d.Family != tc.family {
			t.Errorf("ParseDevice(%q) = {%s %s}, want {%s %s}", tc.in, d.Name, d.Family, tc.name, tc.family)
		}
	}
}

func TestParseSPIPins(t *testing.T) {
	pins, err := ParseSPIPins("8, 9,10,20")
	if err != nil {
		t.Fatalf("ParseSPIPins: %v", err)
	}
	if pins != DefaultSPIPins {
		t.Errorf("got %v, want %v", pins, DefaultSPIPins)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "1,2,3,x", "1,2,3,300", "1,2,3,-4"} {
		if _, err := ParseSPIPins(bad); err == nil {
			t.Errorf("ParseSPIPins(%q): expected error", bad)
		}
	}
}

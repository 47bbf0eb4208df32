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

package multierror

import (
	"errors"
	"strings"
	"testing"
)

func TestAppend(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	err := Append(nil, e1)
	if got := err.Error(); got != "first" {
		t.Errorf("single error: got %q", got)
	}

	err = Append(err, e2)
	me, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(me.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(me.Errors()))
	}
	if got := err.Error(); !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("combined message missing parts: %q", got)
	}

	// Appending to a plain error wraps it.
	err = Append(e1, e2)
	if me, ok := err.(*Error); !ok || len(me.Errors()) != 2 {
		t.Errorf("wrapping a plain error failed: %#v", err)
	}
}

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

// Package multierror collects several errors into one error value.
package multierror

import (
	"strings"
)

// Error is a list of errors presented as one.
type Error struct {
	errs []error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	sb.WriteString("multiple errors:")
	for _, err := range e.errs {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Errors returns the individual errors.
func (e *Error) Errors() []error {
	return e.errs
}

// Append adds errs to err. err may be nil or a plain error, in which
// case a new Error is started around it.
func Append(err error, errs ...error) error {
	switch err := err.(type) {
	case nil:
		return &Error{errs}
	case *Error:
		err.errs = append(err.errs, errs...)
		return err
	default:
		return &Error{append([]error{err}, errs...)}
	}
}

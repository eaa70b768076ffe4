/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package result

import (
	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
)

// Action is the outcome of an operation that produces no value.
//
// An Action is successful iff it carries no error. The zero value is a
// successful Action.
type Action struct {
	err *dcore.Error
}

// OK returns a successful Action.
func OK() Action {
	return Action{}
}

// Error returns a failed Action carrying err.
//
// Passing a nil error is a programmer error: Error panics with a
// KindResultEmpty *dcore.Error instead of producing a successful Action.
func Error(err *dcore.Error) Action {
	if err == nil {
		panic(dcore.ResultEmpty(code.DomInvalidState, "Error must not be nil for a failed result."))
	}
	return Action{err: err}
}

// IsSuccess reports whether the operation succeeded.
func (a Action) IsSuccess() bool {
	return a.err == nil
}

// Message returns the message of the carried error, or "" on success.
func (a Action) Message() string {
	if a.err == nil {
		return ""
	}
	return a.err.Message()
}

// Failure returns the carried error.
//
// Asking a successful Action for its error is a reportable failure: the
// second return value is a KindResultEmpty *dcore.Error (DOM_INVALID_STATE).
func (a Action) Failure() (*dcore.Error, error) {
	if a.err == nil {
		return nil, errNoError()
	}
	return a.err, nil
}

// MustFailure is the panic-on-absence variant of Failure.
func (a Action) MustFailure() *dcore.Error {
	e, err := a.Failure()
	if err != nil {
		panic(err)
	}
	return e
}

// Err converts the Action into a plain Go error return: nil on success,
// the carried *dcore.Error otherwise.
func (a Action) Err() error {
	if a.err == nil {
		return nil
	}
	return a.err
}

func errNoError() *dcore.Error {
	return dcore.ResultEmpty(code.DomInvalidState, "Error property for this Result not set.")
}

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

package middleware

import (
	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
)

// Outcome is the classification of a single dispatch.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeError   Outcome = "error"
)

// settled is implemented by result.Action and every result.Result[T].
type settled interface {
	IsSuccess() bool
	Failure() (*dcore.Error, error)
}

// Classify returns the outcome of a dispatch and the *dcore.Error behind a
// failure or error, if any. A foreign error yields OutcomeError and a nil
// *dcore.Error.
func Classify(resp any, err error) (Outcome, *dcore.Error) {
	if err != nil {
		e, _ := dcore.As(err)
		return OutcomeError, e
	}
	s, ok := resp.(settled)
	if !ok || s.IsSuccess() {
		return OutcomeSuccess, nil
	}
	e, ferr := s.Failure()
	if ferr != nil {
		// Empty Result: the accessor error describes it.
		e, _ = dcore.As(ferr)
	}
	return OutcomeFailure, e
}

// familyLabel returns the family of e, or OTHER for foreign errors.
func familyLabel(o Outcome, e *dcore.Error) string {
	switch {
	case o == OutcomeSuccess:
		return "none"
	case e == nil:
		return code.FamilyOther.String()
	default:
		return e.Code().Family().String()
	}
}

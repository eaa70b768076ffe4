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

// ToFailed re-types a failed Action as a failed Result[U], keeping the same
// error instance.
//
// Calling it on a successful Action is a reportable failure: it returns a
// KindResultEmpty *dcore.Error (DOM_INVALID_STATE) instead of panicking.
func ToFailed[U any](a Action) (Result[U], error) {
	if a.err == nil {
		return Result[U]{}, dcore.ResultEmpty(code.DomInvalidState, "Cannot convert a successful result into a failed one.")
	}
	return Result[U]{Action: a}, nil
}

// Of translates a conventional (value, error) pair into a Result.
//
// It is meant for boundaries where a lower layer raises errors: a *dcore.Error
// anywhere in err's chain is kept as is, any other error becomes an
// OTH_UNKNOWN error with err as its cause. A nil err with an absent value is
// reported as a KindResultEmpty failure.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](capture(err))
	}
	r, emptyErr := TryOk(v)
	if emptyErr != nil {
		return Fail[T](emptyErr.(*dcore.Error))
	}
	return r
}

// ActionOf translates a conventional error return into an Action.
func ActionOf(err error) Action {
	if err == nil {
		return OK()
	}
	return Error(capture(err))
}

// Map applies fn to the payload of a successful Result. Failures are
// propagated unchanged and fn is not called. An absent value returned by fn
// yields a KindResultEmpty failure.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	v, err := r.Payload()
	if err != nil {
		return Fail[U](failureOf(r))
	}
	return Of(fn(v), nil)
}

// Then chains a fallible step onto a successful Result. Failures are
// propagated unchanged; fn is not called.
func Then[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	v, err := r.Payload()
	if err != nil {
		return Fail[U](failureOf(r))
	}
	return fn(v)
}

// failureOf returns the error a non-successful Result should propagate.
func failureOf[T any](r Result[T]) *dcore.Error {
	if r.err != nil {
		return r.err
	}
	return errNoPayload()
}

func capture(err error) *dcore.Error {
	if e, ok := dcore.As(err); ok {
		return e
	}
	return dcore.E(code.OthUnknown, err.Error(), dcore.WithCauseOption(err))
}

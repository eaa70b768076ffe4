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
	"reflect"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
)

// Result is the outcome of an operation that produces a value of type T.
//
// A Result is successful iff it holds a payload and no error, and failed iff
// it holds an error and no payload. Use Ok, TryOk and Fail to build one; the
// zero value is the empty state, which is neither successful nor carrying an
// error, and every accessor reports it as KindResultEmpty.
type Result[T any] struct {
	Action

	payload T
	set     bool
}

// Ok returns a successful Result holding payload.
//
// An absent payload (nil pointer, map, slice, channel, func or interface)
// is rejected: Ok panics with a KindResultEmpty *dcore.Error rather than
// producing a successful empty result. Use TryOk to get the error instead.
func Ok[T any](payload T) Result[T] {
	r, err := TryOk(payload)
	if err != nil {
		panic(err)
	}
	return r
}

// TryOk is like Ok but reports an absent payload as an error.
func TryOk[T any](payload T) (Result[T], error) {
	if absent(payload) {
		return Result[T]{}, dcore.ResultEmpty(code.DomInvalidState, "Payload must not be nil for a successful result.")
	}
	return Result[T]{payload: payload, set: true}, nil
}

// Fail returns a failed Result carrying err. It panics on a nil err.
func Fail[T any](err *dcore.Error) Result[T] {
	return Result[T]{Action: Error(err)}
}

// IsSuccess reports whether the Result holds a payload and no error.
func (r Result[T]) IsSuccess() bool {
	return r.Action.IsSuccess() && r.set
}

// Payload returns the held value.
//
// Both failure conditions are checked independently: the Result not being
// successful, and the payload not being set. Either one yields a
// KindResultEmpty *dcore.Error (DOM_INVALID_STATE).
func (r Result[T]) Payload() (T, error) {
	var zero T
	if r.err != nil {
		return zero, dcore.ResultEmpty(code.DomInvalidState, "The operation was not successful.",
			dcore.WithCauseOption(r.err))
	}
	if !r.set {
		return zero, errNoPayload()
	}
	return r.payload, nil
}

// MustPayload is the panic-on-absence variant of Payload.
func (r Result[T]) MustPayload() T {
	v, err := r.Payload()
	if err != nil {
		panic(err)
	}
	return v
}

// OrElse returns the payload on success and fallback otherwise.
func (r Result[T]) OrElse(fallback T) T {
	if v, err := r.Payload(); err == nil {
		return v
	}
	return fallback
}

// Err converts the Result into a plain Go error return: nil on success, the
// carried error on failure, and a KindResultEmpty error for the empty state.
func (r Result[T]) Err() error {
	if r.err != nil {
		return r.err
	}
	if !r.set {
		return errNoPayload()
	}
	return nil
}

// ToAction drops the payload and keeps the outcome.
func (r Result[T]) ToAction() Action {
	if r.err == nil && !r.set {
		return Action{err: errNoPayload()}
	}
	return r.Action
}

func errNoPayload() *dcore.Error {
	return dcore.ResultEmpty(code.DomInvalidState, "The payload was not set.")
}

// absent reports whether v is a nil-equivalent value.
func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

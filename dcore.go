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

// Package dcore defines the failure carrier shared by every layer of a dcore
// application (api, business, infrastructure).
//
// An *Error attaches a registry code (dirpx.dev/dcore/code), a short
// correlation id and a capture timestamp to a failure. Errors are created
// where the failure is detected, are immutable afterwards, and travel up the
// call stack until a boundary converts them into a result (dirpx.dev/dcore/result)
// or a transport response (dirpx.dev/dcore/httpx, dirpx.dev/dcore/grpcx).
package dcore

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"dirpx.dev/dcore/code"
	"github.com/google/uuid"
)

// Error is the canonical failure type for dcore.
//
// It carries:
//   - Kind: the variant tag (not found, result empty, invalid, generic);
//   - Code: the registry code classifying the failure;
//   - ID: a short correlation token for matching user reports with logs;
//   - Date: the wall-clock capture time;
//   - Message: human-oriented description of what went wrong;
//   - Details: optional key/value payload for logs and response bodies;
//   - Cause: optional wrapped error for errors.Is / errors.As.
//
// All fields are read-only. The With* helpers return a shallow copy that
// keeps the same ID and Date, because the copy still describes the same
// event.
type Error struct {
	kind    Kind
	code    code.Code
	id      string
	date    time.Time
	message string
	details map[string]any
	cause   error
}

// Indirections for tests; production code never reassigns them.
var (
	newUUID = uuid.NewString
	now     = time.Now
)

// New constructs an Error of the given kind and applies all options in order.
//
// The correlation id is the last dash-separated segment of a freshly
// generated random UUID (12 hex characters). It is not globally unique; the
// collision risk is accepted in exchange for a token short enough to read
// out over the phone.
func New(k Kind, c code.Code, msg string, opts ...Option) *Error {
	e := &Error{
		kind:    k,
		code:    c,
		id:      shortID(newUUID()),
		date:    now(),
		message: msg,
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// E constructs a generic (KindDomain) Error.
//
// Usage:
//
//	return dcore.E(code.InfDBTimeout, "appointment store timed out",
//	    dcore.WithDetailOption("store", "memory"),
//	    dcore.WithCauseOption(ctx.Err()),
//	)
func E(c code.Code, msg string, opts ...Option) *Error {
	return New(KindDomain, c, msg, opts...)
}

// NotFound constructs a KindNotFound Error.
func NotFound(c code.Code, msg string, opts ...Option) *Error {
	return New(KindNotFound, c, msg, opts...)
}

// ResultEmpty constructs a KindResultEmpty Error.
func ResultEmpty(c code.Code, msg string, opts ...Option) *Error {
	return New(KindResultEmpty, c, msg, opts...)
}

// Invalid constructs a KindInvalid Error.
func Invalid(c code.Code, msg string, opts ...Option) *Error {
	return New(KindInvalid, c, msg, opts...)
}

func shortID(s string) string {
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Kind returns the variant tag.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the registry code.
func (e *Error) Code() code.Code { return e.code }

// ID returns the short correlation token.
func (e *Error) ID() string { return e.id }

// Date returns the capture time.
func (e *Error) Date() time.Time { return e.date }

// Message returns the human-readable message.
func (e *Error) Message() string { return e.message }

// Details returns a copy of the attached details, or nil.
func (e *Error) Details() map[string]any {
	if len(e.details) == 0 {
		return nil
	}
	return maps.Clone(e.details)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<CODE>(<number>): <message>
//
// which keeps the stable identifier and the public number next to each other
// in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%d): %s", e.code, e.code.Number(), e.message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.cause }

// WithDetail returns a shallow copy of e with one extra key/value in Details.
//
// The map is always copied so that errors shared across goroutines never
// observe each other's details.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	m := make(map[string]any, len(e.details)+1)
	maps.Copy(m, e.details)
	m[k] = v
	cp.details = m
	return &cp
}

// WithDetails returns a shallow copy of e with kv merged into Details.
// kv takes precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(e.details)+len(kv))
	maps.Copy(m, e.details)
	maps.Copy(m, kv)
	cp.details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.cause = err
	return &cp
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err's chain contains an *Error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.kind == k
}

// CodeOf returns the code of the first *Error in err's chain.
//
// Foreign errors report code.OthUnknown and nil reports 0; CodeOf never
// panics.
func CodeOf(err error) code.Code {
	if err == nil {
		return 0
	}
	if e, ok := As(err); ok {
		return e.code
	}
	return code.OthUnknown
}

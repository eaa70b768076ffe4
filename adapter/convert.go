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

// Package adapter converts errors into the transport-friendly shapes
// declared in dirpx.dev/dcore/apis.
//
// Conversion goes through the apis contracts (CodedError, MessagedError,
// CorrelatedError, DetailedError, ViewProvider), so errors from other
// packages that implement them are rendered the same way as *dcore.Error.
package adapter

import (
	"errors"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/apis"
	"dirpx.dev/dcore/code"
)

// MaskedMessage is the message exposed for errors that are not *dcore.Error.
const MaskedMessage = "An unknown exception occurred."

// Capture returns the *dcore.Error found in err's chain.
//
// Any other error is masked: it becomes an OTH_UNKNOWN error with a generic
// message, keeping err as the cause so that logs still see it. Capture
// returns nil for a nil err.
func Capture(err error) *dcore.Error {
	if err == nil {
		return nil
	}
	if e, ok := dcore.As(err); ok {
		return e
	}
	return dcore.E(code.OthUnknown, MaskedMessage, dcore.WithCauseOption(err))
}

// PublicCode returns c if it is registered and OTH_UNKNOWN otherwise.
// Transports classify and map errors on the public code only.
func PublicCode(c code.Code) code.Code {
	if c.Known() {
		return c
	}
	return code.OthUnknown
}

// ToDescriptor converts a dcore error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the public code and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(e *dcore.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	c := PublicCode(e.Code())
	return apis.ErrorDescriptor{
		Code:       c.String(),
		Number:     c.Number(),
		Family:     c.Family().String(),
		Kind:       e.Kind().String(),
		ErrorID:    e.ID(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message(),
	}
}

// ToView converts a dcore error into a public ErrorView. It exposes what the
// error instance contains, minus its cause; an unregistered code is shown as
// OTH_UNKNOWN. A nil error gives the zero view.
func ToView(e *dcore.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return fromCoded(e)
}

// View renders any error for a client.
//
// The first apis.ViewProvider in err's chain renders itself; otherwise the
// first apis.CodedError is rendered through the optional contracts it
// implements. Anything else is masked as by Capture. A nil err gives the
// zero view.
func View(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		v := vp.ErrorView()
		if !code.Code(v.Number).Known() {
			number, description, family := code.Describe(code.OthUnknown)
			v.Number, v.Code, v.Family, v.Description = number, code.OthUnknown.String(), family.String(), description
		}
		return v
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		return fromCoded(ce)
	}
	return fromCoded(Capture(err))
}

func fromCoded(ce apis.CodedError) apis.ErrorView {
	c := PublicCode(ce.Code())
	number, description, family := code.Describe(c)
	v := apis.ErrorView{
		Number:      number,
		Code:        c.String(),
		Family:      family.String(),
		Description: description,
		Message:     ce.Error(),
	}
	if me, ok := ce.(apis.MessagedError); ok {
		v.Message = me.Message()
	}
	if co, ok := ce.(apis.CorrelatedError); ok {
		v.ErrorID = co.ID()
		if d := co.Date(); !d.IsZero() {
			v.ErrorDate = &d
		}
	}
	if de, ok := ce.(apis.DetailedError); ok {
		v.Details = de.Details()
	}
	return v
}

var (
	_ apis.CodedError      = (*dcore.Error)(nil)
	_ apis.CorrelatedError = (*dcore.Error)(nil)
	_ apis.DetailedError   = (*dcore.Error)(nil)
	_ apis.MessagedError   = (*dcore.Error)(nil)
)

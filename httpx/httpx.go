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

// Package httpx writes dcore errors and results as JSON HTTP responses.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/adapter"
	"dirpx.dev/dcore/apis"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/result"
)

// maskedBody is written when even the reduced error view cannot be encoded.
const maskedBody = `{"number":400,"code":"OTH_UNKNOWN","family":"OTHER","message":"` + adapter.MaskedMessage + `"}`

// Meta carries extra context that the HTTP layer can add on top of a
// dcore error. All fields are optional and typically come from request
// context, headers, rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// OnEncodeError, if set, receives every JSON encoding failure. The
	// response is still written, in a reduced form.
	OnEncodeError func(error)
}

// Write serializes an apis.ErrorView and writes it to the response writer.
// The HTTP status is resolved via the Mapper from the public error code.
//
// The view is built by adapter.View: a *dcore.Error anywhere in err's chain
// is exposed as-is, with no automatic redaction of its message or details.
// Unregistered codes are shown as OTH_UNKNOWN, and any other error is masked
// as OTH_UNKNOWN so that internal messages never reach the client.
// If the details cannot be encoded the view is written without them.
// A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	view := adapter.View(err)
	view.Correlation = meta.Correlation
	view.TraceID = meta.TraceID

	body, merr := json.Marshal(view)
	if merr != nil {
		w.encodeFailed(fmt.Errorf("httpx: encode error view %s: %w", view.ErrorID, merr))
		view.Details = nil
		if body, merr = json.Marshal(view); merr != nil {
			body = []byte(maskedBody)
		}
	}

	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	send(rw, w.Mapper.HTTPStatus(code.Code(view.Number)), body)
}

// WriteAction writes 204 No Content for a successful action and the failure
// otherwise.
func (w Writer) WriteAction(rw http.ResponseWriter, a result.Action, meta Meta) {
	if err := a.Err(); err != nil {
		w.Write(rw, err, meta)
		return
	}
	rw.WriteHeader(http.StatusNoContent)
}

// WriteResult writes the payload of a successful result as JSON with the
// given status, and the failure otherwise. An empty result is written as its
// DOM_INVALID_STATE error. A payload that cannot be encoded is written as an
// OTH_UNKNOWN error.
func WriteResult[T any](w Writer, rw http.ResponseWriter, status int, r result.Result[T], meta Meta) {
	if err := r.Err(); err != nil {
		w.Write(rw, err, meta)
		return
	}
	body, err := json.Marshal(r.MustPayload())
	if err != nil {
		w.encodeFailed(fmt.Errorf("httpx: encode payload: %w", err))
		w.Write(rw, dcore.E(code.OthUnknown, "The response could not be encoded.", dcore.WithCauseOption(err)), meta)
		return
	}
	send(rw, status, body)
}

func (w Writer) encodeFailed(err error) {
	if w.OnEncodeError != nil {
		w.OnEncodeError(err)
	}
}

func send(rw http.ResponseWriter, status int, body []byte) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, _ = rw.Write(append(body, '\n'))
}

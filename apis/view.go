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

package apis

import "time"

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is the JSON body written for a failed request.
//
// It carries everything a client needs to classify the failure and to quote
// it in a support request, and nothing more: causes and stack traces stay in
// the logs.
type ErrorView struct {
	// Number is the stable public code number, e.g. 304.
	Number int `json:"number"`

	// Code is the stable identifier, e.g. "DOM_NOT_FOUND".
	Code string `json:"code"`

	// Family is the range family, e.g. "DOMAIN_ERROR".
	Family string `json:"family"`

	// Description is the registry description of the code.
	Description string `json:"description,omitempty"`

	// Message is the message of the error instance.
	Message string `json:"message,omitempty"`

	// ErrorID is the short correlation token of the error instance.
	ErrorID string `json:"error_id,omitempty"`

	// ErrorDate is the capture time of the error instance.
	ErrorDate *time.Time `json:"error_date,omitempty"`

	// Details is the optional key/value payload of the error instance.
	Details map[string]any `json:"details,omitempty"`

	// Correlation is the request id assigned by the transport, if any.
	Correlation string `json:"correlation,omitempty"`

	// TraceID is the distributed trace id, if any.
	TraceID string `json:"trace_id,omitempty"`
}

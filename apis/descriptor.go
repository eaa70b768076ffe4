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

// ErrorDescriptor is a flat description of one error instance together
// with the transport statuses resolved for it.
//
// It uses plain strings and ints (not the code.Code value type) so that it
// can be logged or serialized without importing the registry.
type ErrorDescriptor struct {
	// Code is the stable identifier, e.g. "INF_DB_TIMEOUT".
	Code string `json:"code"`

	// Number is the stable public number, e.g. 205.
	Number int `json:"number"`

	// Family is the range family, e.g. "INFRASTRUCTURE_ERROR".
	Family string `json:"family"`

	// Kind is the variant tag, e.g. "not_found".
	Kind string `json:"kind,omitempty"`

	// ErrorID is the short correlation token.
	ErrorID string `json:"error_id,omitempty"`

	// HTTPStatus is the HTTP status resolved for the code.
	// A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for the code.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the message of the error instance.
	Message string `json:"message,omitempty"`
}

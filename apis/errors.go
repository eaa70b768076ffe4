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

import (
	"time"

	"dirpx.dev/dcore/code"
)

// CodedError is an error classified by a registry code.
//
// The code is the primary value adapters use to choose a transport status.
// Codes outside the registry are rendered and mapped as OTH_UNKNOWN at the
// boundary (see adapter.PublicCode).
type CodedError interface {
	error

	// Code returns the registry code of the failure.
	Code() code.Code
}

// CorrelatedError is an error that carries a correlation token and the time
// it was captured, so that a user report can be matched with a log line.
type CorrelatedError interface {
	error

	// ID returns the short correlation token.
	ID() string

	// Date returns the capture time.
	Date() time.Time
}

// DetailedError exposes an optional key/value payload.
//
// Implementations return a map the caller may keep; nil means no details.
type DetailedError interface {
	error

	Details() map[string]any
}

// MessagedError exposes the human-oriented message without the code prefix
// that Error() adds.
type MessagedError interface {
	error

	Message() string
}

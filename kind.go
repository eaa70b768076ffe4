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

package dcore

// Kind is the variant tag of an Error.
//
// Variants add no fields; they carry semantic intent for callers that branch
// on the kind of failure:
//
//	switch e.Kind() {
//	case dcore.KindNotFound:
//	    ...
//	case dcore.KindInvalid:
//	    ...
//	}
type Kind uint8

const (
	// KindDomain is the generic variant for failures with no more specific
	// intent.
	KindDomain Kind = iota

	// KindNotFound marks a lookup that found nothing.
	KindNotFound

	// KindResultEmpty marks access to a result value (payload or error)
	// that is absent. It signals a programmer error, not a business outcome.
	KindResultEmpty

	// KindInvalid marks rejected input, typically raised by command
	// validation.
	KindInvalid
)

// String returns a short, log-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindResultEmpty:
		return "result_empty"
	case KindInvalid:
		return "invalid"
	default:
		return "domain"
	}
}

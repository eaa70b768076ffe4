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

package code

// API layer error codes (1xx).
//
// These codes describe caller-facing, expected failures detected before any
// business logic runs.
const (
	// APIUnknown indicates an unclassified failure while processing the
	// request in the API layer.
	//
	// Can be mapped to an HTTP 500.
	APIUnknown Code = 100

	// APIInvalidInput indicates that the request carries invalid input
	// parameters. Validate the request payload and parameters.
	//
	// Can be mapped to an HTTP 400.
	APIInvalidInput Code = 101

	// APIMissingInput indicates that required input parameters are absent.
	//
	// Can be mapped to an HTTP 400.
	APIMissingInput Code = 102

	// APIUnauthorized indicates that the caller could not be authenticated.
	// Ensure valid authentication credentials are provided.
	//
	// Can be mapped to an HTTP 401.
	APIUnauthorized Code = 103

	// APIForbidden indicates that the caller is authenticated but lacks the
	// permissions or roles for the resource.
	//
	// Can be mapped to an HTTP 403.
	APIForbidden Code = 104

	// APIPayloadTooLarge indicates that the request entity (e.g. an attached
	// file) exceeds the accepted size.
	//
	// Can be mapped to an HTTP 413.
	APIPayloadTooLarge Code = 105

	// APITooManyRequests indicates that the caller sent too many requests in
	// a short period. Wait and try again later.
	//
	// Can be mapped to an HTTP 429.
	APITooManyRequests Code = 106
)

// Infrastructure layer error codes (2xx).
//
// These codes describe database and external-system failures. They are
// expected but depend on the environment.
const (
	InfUnknown               Code = 200
	InfDBConnection          Code = 201
	InfDBNotFound            Code = 202
	InfDuplicateEntity       Code = 203
	InfDBSyntaxError         Code = 204
	InfDBTimeout             Code = 205
	InfDBInsufficientData    Code = 206
	InfDBConstraintViolation Code = 207
	InfDBUnauthorizedAccess  Code = 208
	InfDBDiskSpaceExhausted  Code = 209
	InfDBUnknown             Code = 210
	InfAPIOperationFailed    Code = 211
	InfUnauthorized          Code = 212
)

// Domain / business layer error codes (3xx).
//
// These codes are raised deliberately by business logic when a rule or an
// invariant does not hold.
const (
	// DomUnknown indicates an unclassified internal failure.
	DomUnknown Code = 300

	// DomInvalidArguments indicates that parameter validation failed.
	DomInvalidArguments Code = 301

	// DomDataIntegrityViolation indicates that data integrity constraints
	// are not met.
	DomDataIntegrityViolation Code = 302

	// DomInvalidState indicates that an object is not in the state the
	// operation requires. The result package also uses it to report access
	// to a value that is absent by construction, which is a programmer error.
	DomInvalidState Code = 303

	// DomNotFound indicates that the requested object does not exist.
	DomNotFound Code = 304
)

// Other error codes (everything outside 1xx-3xx).
const (
	// OthUnknown is the catch-all for failures nobody classified. Foreign
	// (non-dcore) errors crossing a boundary are reported with this code.
	OthUnknown Code = 400
)

// entry is the registry record behind a Code.
type entry struct {
	name        string
	description string
}

// registry is the closed set of known codes. It is never written after
// package initialization.
var registry = map[Code]entry{
	APIUnknown:         {"API_UNKNOWN", "An unknown exception occurred, while processing the request."},
	APIInvalidInput:    {"API_INVALID_INPUT", "The request is invalid due to invalid input parameters."},
	APIMissingInput:    {"API_MISSING_INPUT", "The request is invalid due to missing input parameters."},
	APIUnauthorized:    {"API_UNAUTHORIZED", "Unauthorized access to the resource."},
	APIForbidden:       {"API_FORBIDDEN", "Access to the resource is forbidden."},
	APIPayloadTooLarge: {"API_PAYLOAD_TOO_LARGE", "The request entity is too large."},
	APITooManyRequests: {"API_TOO_MANY_REQUESTS", "Too many requests have been made in a short period."},

	InfUnknown:               {"INF_UNKNOWN", "An unknown exception occurred, while processing an external API."},
	InfDBConnection:          {"INF_DB_CONNECTION", "Database connectivity issues."},
	InfDBNotFound:            {"INF_DB_NOTFOUND", "No entry found in database."},
	InfDuplicateEntity:       {"INF_DUPLICATE_ENTITY", "Duplicate entity detected."},
	InfDBSyntaxError:         {"INF_DB_SYNTAX_ERROR", "Database query syntax error."},
	InfDBTimeout:             {"INF_DB_TIMEOUT", "Database timeout occurred."},
	InfDBInsufficientData:    {"INF_DB_INSUFFICIENT_DATA", "Insufficient object data for database entry."},
	InfDBConstraintViolation: {"INF_DB_CONSTRAINT_VIOLATION", "Database constraint violation."},
	InfDBUnauthorizedAccess:  {"INF_DB_UNAUTHORIZED_ACCESS", "Unauthorized access to the database."},
	InfDBDiskSpaceExhausted:  {"INF_DB_DISK_SPACE_EXHAUSTED", "Database disk space exhausted."},
	InfDBUnknown:             {"INF_DB_UNKNOWN", "Unknown database error."},
	InfAPIOperationFailed:    {"INF_API_OPERATION_FAILED", "External API operation failed."},
	InfUnauthorized:          {"INF_UNAUTHORIZED", "Internal auth exception."},

	DomUnknown:                {"DOM_UNKNOWN", "An unknown exception occurred internally."},
	DomInvalidArguments:       {"DOM_INVALID_ARGUMENTS", "Parameter validation failed."},
	DomDataIntegrityViolation: {"DOM_DATA_INTEGRITY_VIOLATION", "Data integrity violation."},
	DomInvalidState:           {"DOM_INVALID_STATE", "Object has an invalid state."},
	DomNotFound:               {"DOM_NOT_FOUND", "Object was not found."},

	OthUnknown: {"OTH_UNKNOWN", "An unknown exception occurred."},
}

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

package mapper

import (
	"net/http"

	"dirpx.dev/dcore/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for every
// registered code. These are only defaults: callers adjust them at the
// boundary where HTTP is actually produced.
var defaultHTTP = map[code.Code]int{
	// API: the request itself is at fault.
	code.APIUnknown:         http.StatusInternalServerError,
	code.APIInvalidInput:    http.StatusBadRequest,
	code.APIMissingInput:    http.StatusBadRequest,
	code.APIUnauthorized:    http.StatusUnauthorized,
	code.APIForbidden:       http.StatusForbidden,
	code.APIPayloadTooLarge: http.StatusRequestEntityTooLarge,
	code.APITooManyRequests: http.StatusTooManyRequests,

	// Infrastructure: a dependency failed. Lookups that found nothing and
	// uniqueness clashes are still reported with their client-facing status.
	code.InfUnknown:               http.StatusBadGateway,
	code.InfDBConnection:          http.StatusServiceUnavailable,
	code.InfDBNotFound:            http.StatusNotFound,
	code.InfDuplicateEntity:       http.StatusConflict,
	code.InfDBSyntaxError:         http.StatusInternalServerError,
	code.InfDBTimeout:             http.StatusGatewayTimeout,
	code.InfDBInsufficientData:    http.StatusInternalServerError,
	code.InfDBConstraintViolation: http.StatusConflict,
	code.InfDBUnauthorizedAccess:  http.StatusInternalServerError, // the service's credentials, not the caller's
	code.InfDBDiskSpaceExhausted:  http.StatusInsufficientStorage,
	code.InfDBUnknown:             http.StatusInternalServerError,
	code.InfAPIOperationFailed:    http.StatusBadGateway,
	code.InfUnauthorized:          http.StatusInternalServerError,

	// Domain: a business rule rejected the operation.
	code.DomUnknown:                http.StatusInternalServerError,
	code.DomInvalidArguments:       http.StatusBadRequest,
	code.DomDataIntegrityViolation: http.StatusConflict,
	code.DomInvalidState:           http.StatusInternalServerError,
	code.DomNotFound:               http.StatusNotFound,

	code.OthUnknown: http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings, aligned with the
// canonical status codes.
var defaultGRPC = map[code.Code]codes.Code{
	code.APIUnknown:         codes.Unknown,
	code.APIInvalidInput:    codes.InvalidArgument,
	code.APIMissingInput:    codes.InvalidArgument,
	code.APIUnauthorized:    codes.Unauthenticated,
	code.APIForbidden:       codes.PermissionDenied,
	code.APIPayloadTooLarge: codes.ResourceExhausted,
	code.APITooManyRequests: codes.ResourceExhausted,

	code.InfUnknown:               codes.Unavailable,
	code.InfDBConnection:          codes.Unavailable,
	code.InfDBNotFound:            codes.NotFound,
	code.InfDuplicateEntity:       codes.AlreadyExists,
	code.InfDBSyntaxError:         codes.Internal,
	code.InfDBTimeout:             codes.DeadlineExceeded,
	code.InfDBInsufficientData:    codes.Internal,
	code.InfDBConstraintViolation: codes.Aborted,
	code.InfDBUnauthorizedAccess:  codes.Internal,
	code.InfDBDiskSpaceExhausted:  codes.ResourceExhausted,
	code.InfDBUnknown:             codes.Internal,
	code.InfAPIOperationFailed:    codes.Unavailable,
	code.InfUnauthorized:          codes.Internal,

	code.DomUnknown:                codes.Internal,
	code.DomInvalidArguments:       codes.InvalidArgument,
	code.DomDataIntegrityViolation: codes.Aborted,
	code.DomInvalidState:           codes.FailedPrecondition,
	code.DomNotFound:               codes.NotFound,

	code.OthUnknown: codes.Unknown,
}

// familyHTTP maps codes without a per-code default (typically numbers added
// to a range after this table was written) by their family. FamilyOther is
// left to the fallback.
var familyHTTP = map[code.Family]int{
	code.FamilyAPI:            http.StatusBadRequest,
	code.FamilyInfrastructure: http.StatusServiceUnavailable,
	code.FamilyDomain:         http.StatusUnprocessableEntity,
}

// familyGRPC is the gRPC counterpart of familyHTTP.
var familyGRPC = map[code.Family]codes.Code{
	code.FamilyAPI:            codes.InvalidArgument,
	code.FamilyInfrastructure: codes.Unavailable,
	code.FamilyDomain:         codes.FailedPrecondition,
}

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

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-code HTTP defaults seeded from defaultHTTP.
	httpDefaults map[code.Code]int
	// grpcDefaults holds per-code gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[code.Code]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[code.Code]int

	// httpFamily holds per-family HTTP statuses for codes without a default.
	httpFamily map[code.Family]int
	// grpcFamily holds per-family gRPC statuses as ints.
	grpcFamily map[code.Family]int

	// global fallbacks used when neither the code nor its family is mapped.
	fallbackHTTP int
	fallbackGRPC int
}

// newBuilder creates a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),

		httpFamily: make(map[code.Family]int, len(familyHTTP)),
		grpcFamily: make(map[code.Family]int, len(familyGRPC)),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: int(codes.Internal),
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range familyHTTP {
		b.httpFamily[k] = v
	}
	for k, v := range familyGRPC {
		b.grpcFamily[k] = int(v)
	}
	return b
}

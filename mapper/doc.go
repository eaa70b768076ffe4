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

// Package mapper provides deterministic, immutable mappings from registry
// codes (dirpx.dev/dcore/code) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// Every dcore failure carries a numeric code whose hundreds digit selects its
// family (API, infrastructure, domain, other). Transport layers (HTTP
// handlers, gRPC servers) need to turn that code into concrete status codes.
// Package mapper does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per code or family;
//   - total: every int, registered or not, resolves to a status;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. per-family default (API 400, infrastructure 503, domain 422);
//  4. global fallback (500 / codes.Internal).
//
// The family tier keeps codes added to a range later on mapped sensibly
// before anyone writes a per-code rule for them.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.DomInvalidState, http.StatusConflict),
//	    mapper.WithHTTPFamily(code.FamilyDomain, http.StatusBadRequest),
//	)
//	if err != nil {
//	    // status outside 100..599, unknown gRPC code, etc.
//	}
//
//	st := m.Status(code.InfDBTimeout)
//	// st.HTTP == 504, st.GRPC == codes.DeadlineExceeded
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// which tier produced each status.
//
// This is intended for inspection and logging, not for stable machine parsing.
package mapper

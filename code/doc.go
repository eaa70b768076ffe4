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

// Package code is the closed registry of dcore error codes.
//
// A Code is a stable, numbered error classification, such as DOM_NOT_FOUND
// (304) or INF_DB_TIMEOUT (205). Codes are meant to be:
//
//   - numbered: the number is part of the public contract and is never
//     reassigned once published (additive-only evolution);
//   - named: every code has a stable upper-case identifier that can be
//     looked up by string;
//   - classified: every code belongs to exactly one Family, derived from
//     its hundred-range.
//
// Family derivation:
//
//	1xx -> FamilyAPI             (bad input, auth, rate limiting)
//	2xx -> FamilyInfrastructure  (database / external system failures)
//	3xx -> FamilyDomain          (business rule and invariant violations)
//	else -> FamilyOther          (catch-all)
//
// IMPORTANT: a new code MUST be numbered inside the hundred-range of the
// family it belongs to. The family is always recomputed from the number, so a
// code placed in the wrong range is misclassified without any other warning.
//
// The registry is built once at package initialization and is read-only
// afterwards; every function in this package is safe for concurrent use.
package code

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

// Package middleware provides the cross-cutting mediator middlewares used by
// dcore services.
//
// Each middleware classifies the outcome of a dispatch the same way:
//
//   - success: the handler returned no error and, if the response is a
//     result.Action or result.Result[T], that result is successful;
//   - failure: the handler returned an unsuccessful result (an expected
//     business failure travelling as a value);
//   - error: the handler (or an inner middleware) returned an error.
//
// The recommended registration order, outermost first, is
// Recovery, Tracing, Metrics, Logging, Validation, so that every observer
// sees recovered panics and validation rejections.
package middleware

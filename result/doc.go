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

// Package result provides the success-or-failure return contract of the
// business layer.
//
// Two shapes exist:
//
//   - Action: the operation may fail and produces no value;
//   - Result[T]: the operation may fail and produces a T.
//
// Both are immutable values. A failure always carries a *dcore.Error, a
// success never does, and a successful Result[T] always carries a non-nil
// payload. The constructors enforce this at construction time:
//
//	func (s *Service) Find(ctx context.Context, id string) result.Result[Appointment] {
//	    a, ok := s.byID[id]
//	    if !ok {
//	        return result.Fail[Appointment](dcore.NotFound(code.DomNotFound, "no such appointment"))
//	    }
//	    return result.Ok(a)
//	}
//
// Call sites branch uniformly on IsSuccess for both shapes:
//
//	r := svc.Find(ctx, id)
//	if !r.IsSuccess() {
//	    log.Warn().Stringer("code", r.MustFailure().Code()).Msg(r.Message())
//	    return
//	}
//	a := r.MustPayload()
//
// Expected business failures travel as values. Raised (returned or panicked)
// *dcore.Error values are reserved for boundary crossings and for misuse of
// this package itself: reading the error of a success or the payload of a
// failure yields a KindResultEmpty error with code DOM_INVALID_STATE. The
// Must* accessors and the Ok/Fail/Error constructors panic with that error;
// dirpx.dev/dcore/mediator/middleware.Recovery turns such panics back into
// errors at the request boundary.
package result

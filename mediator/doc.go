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

// Package mediator assembles command handlers and cross-cutting middlewares
// into a single dispatch object.
//
// A Pipeline is built once at process startup from an explicit list of
// handlers (each bound to exactly one command type) and an ordered list of
// middlewares:
//
//	p, err := mediator.New(
//	    mediator.WithHandlers(
//	        mediator.HandleFunc(svc.GetAppointment),
//	        mediator.HandleFunc(svc.CancelAppointment),
//	    ),
//	    mediator.WithMiddlewares(
//	        middleware.Recovery(log),
//	        middleware.Logging(log),
//	        middleware.Validation(),
//	    ),
//	    mediator.WithCommands(appointment.GetAppointment{}, appointment.CancelAppointment{}),
//	)
//
// Misconfiguration (no handlers, nil entries, two handlers for one command
// type, a declared command type without a handler) is reported by New, all
// problems at once, never at first dispatch.
//
// Dispatch locates the handler by the dynamic type of the command and runs
// the middlewares around it in registration order: for middlewares A and B
// the call sequence is A-pre, B-pre, handler, B-post, A-post.
//
// A Pipeline is immutable after New and safe for concurrent Send calls.
package mediator

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

package mediator

import "errors"

var (
	// ErrNoHandlers is returned by New when no handler was registered.
	ErrNoHandlers = errors.New("mediator: no handlers registered")

	// ErrNilHandler is returned by New for a nil handler entry.
	ErrNilHandler = errors.New("mediator: nil handler")

	// ErrNilMiddleware is returned by New for a nil middleware entry.
	ErrNilMiddleware = errors.New("mediator: nil middleware")

	// ErrDuplicateHandler is returned by New when two handlers are bound to
	// the same command type.
	ErrDuplicateHandler = errors.New("mediator: multiple handlers for one command type")

	// ErrNoHandler marks a command type without a handler. New reports it for
	// declared command types; Send wraps it in a DOM_INVALID_STATE error.
	ErrNoHandler = errors.New("mediator: no handler for command type")

	// ErrNilCommand is returned by Send for a nil command and by New for a
	// nil declared command.
	ErrNilCommand = errors.New("mediator: nil command")

	// ErrInterfaceCommand is returned by New for a handler bound to an
	// interface type. Send dispatches on the dynamic type of the command, so
	// such a handler could never be reached.
	ErrInterfaceCommand = errors.New("mediator: handler bound to an interface type")

	// ErrCommandType is returned when a handler receives a command of a type
	// it is not bound to.
	ErrCommandType = errors.New("mediator: unexpected command type")

	// ErrResponseType is returned by the typed Send when the handler response
	// does not have the requested type.
	ErrResponseType = errors.New("mediator: unexpected response type")
)

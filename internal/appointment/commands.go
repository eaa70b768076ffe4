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

package appointment

import (
	"strings"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
)

// GetAppointment loads one appointment. It is answered with a
// result.Result[Appointment].
type GetAppointment struct {
	ID string
}

// CommandName names the command in logs, metrics and spans.
func (GetAppointment) CommandName() string { return "GetAppointment" }

// Validate rejects an empty id.
func (c GetAppointment) Validate() error { return requireID(c.ID) }

// CancelAppointment removes one appointment. It is answered with a
// result.Action.
type CancelAppointment struct {
	ID string
}

// CommandName names the command in logs, metrics and spans.
func (CancelAppointment) CommandName() string { return "CancelAppointment" }

// Validate rejects an empty id.
func (c CancelAppointment) Validate() error { return requireID(c.ID) }

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return dcore.Invalid(code.APIMissingInput, "appointment id is required",
			dcore.WithDetailOption("field", "id"))
	}
	return nil
}

// Commands returns a zero value of every command this package handles, for
// mediator.WithCommands.
func Commands() []any {
	return []any{GetAppointment{}, CancelAppointment{}}
}

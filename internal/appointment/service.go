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

// Package appointment is a small business module dispatched through the
// mediator. It shows how store errors become expected failures or raised
// errors.
package appointment

import (
	"context"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/mediator"
	"dirpx.dev/dcore/result"
)

// Service handles the appointment commands.
type Service struct {
	store Store
}

// NewService returns a Service backed by store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get answers GetAppointment. A missing appointment is a failed result with
// DOM_NOT_FOUND; any other store error is returned.
func (s *Service) Get(ctx context.Context, cmd GetAppointment) (result.Result[Appointment], error) {
	a, err := s.store.FindByID(ctx, cmd.ID)
	if err != nil {
		if e, ok := missing(err, cmd.ID); ok {
			return result.Fail[Appointment](e), nil
		}
		return result.Result[Appointment]{}, err
	}
	return result.Ok(a), nil
}

// Cancel answers CancelAppointment with the same error policy as Get.
func (s *Service) Cancel(ctx context.Context, cmd CancelAppointment) (result.Action, error) {
	if err := s.store.Delete(ctx, cmd.ID); err != nil {
		if e, ok := missing(err, cmd.ID); ok {
			return result.Error(e), nil
		}
		return result.Action{}, err
	}
	return result.OK(), nil
}

// Handlers returns the mediator handlers of the service.
func (s *Service) Handlers() []mediator.Handler {
	return []mediator.Handler{
		mediator.HandleFunc(s.Get),
		mediator.HandleFunc(s.Cancel),
	}
}

func missing(err error, id string) (*dcore.Error, bool) {
	if !dcore.IsKind(err, dcore.KindNotFound) {
		return nil, false
	}
	return dcore.NotFound(code.DomNotFound, "appointment "+id+" does not exist",
		dcore.WithCauseOption(err),
		dcore.WithDetailOption("appointment_id", id),
	), true
}

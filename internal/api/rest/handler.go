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

// Package rest exposes the appointment commands over HTTP.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/httpx"
	"dirpx.dev/dcore/internal/appointment"
	"dirpx.dev/dcore/mediator"
	"dirpx.dev/dcore/result"
)

// RetryAfterSeconds is advertised on infrastructure failures.
const RetryAfterSeconds = 5

// Handler translates HTTP requests into mediator commands.
type Handler struct {
	pipeline *mediator.Pipeline
	writer   httpx.Writer
	log      zerolog.Logger
}

// New returns a Handler dispatching through pipeline and writing failures
// with writer.
func New(pipeline *mediator.Pipeline, writer httpx.Writer, log zerolog.Logger) *Handler {
	return &Handler{pipeline: pipeline, writer: writer, log: log}
}

// Register mounts the appointment routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/appointment/{id}", h.HandleGetAppointment)
	r.Delete("/appointment/{id}", h.HandleCancelAppointment)
}

// HandleGetAppointment answers 200 with the appointment, or the failure.
func (h *Handler) HandleGetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cmd := appointment.GetAppointment{ID: chi.URLParam(r, "id")}

	res, err := mediator.Send[result.Result[appointment.Appointment]](ctx, h.pipeline, cmd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteResult(h.writer, w, http.StatusOK, res, h.meta(r, res.Err()))
}

// HandleCancelAppointment answers 204, or the failure.
func (h *Handler) HandleCancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cmd := appointment.CancelAppointment{ID: chi.URLParam(r, "id")}

	a, err := mediator.Send[result.Action](ctx, h.pipeline, cmd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writer.WriteAction(w, a, h.meta(r, a.Err()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if _, ok := dcore.As(err); !ok {
		h.log.Error().Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("unclassified error")
	}
	h.writer.Write(w, err, h.meta(r, err))
}

func (h *Handler) meta(r *http.Request, err error) httpx.Meta {
	m := httpx.Meta{Correlation: middleware.GetReqID(r.Context())}
	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		m.TraceID = sc.TraceID().String()
	}
	if err != nil && dcore.CodeOf(err).Family() == code.FamilyInfrastructure {
		m.RetryAfterSeconds = RetryAfterSeconds
	}
	return m
}

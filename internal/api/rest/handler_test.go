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

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/apis"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/httpx"
	"dirpx.dev/dcore/internal/appointment"
	"dirpx.dev/dcore/internal/appointment/mocks"
	"dirpx.dev/dcore/mapper"
	"dirpx.dev/dcore/mediator"
	mw "dirpx.dev/dcore/mediator/middleware"
)

type fixture struct {
	router http.Handler
	spans  *tracetest.SpanRecorder
}

func newFixture(t *testing.T, store appointment.Store) fixture {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reg := prometheus.NewRegistry()
	metrics, err := mw.Metrics(reg)
	require.NoError(t, err)

	svc := appointment.NewService(store)
	p, err := mediator.New(
		mediator.WithHandlers(svc.Handlers()...),
		mediator.WithCommands(appointment.Commands()...),
		mediator.WithMiddlewares(
			mw.Recovery(zerolog.Nop()),
			mw.Tracing(tp.Tracer("test")),
			metrics,
			mw.Validation(),
		),
	)
	require.NoError(t, err)

	m, err := mapper.New()
	require.NoError(t, err)

	h := New(p, httpx.Writer{Mapper: m}, zerolog.Nop())
	return fixture{
		router: NewRouter(h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), tp.Tracer("test")),
		spans:  sr,
	}
}

func (f fixture) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) apis.ErrorView {
	t.Helper()
	var v apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestGetAppointment(t *testing.T) {
	f := newFixture(t, appointment.NewMemoryStore(appointment.Appointment{ID: "a1", Patient: "ana"}))

	rec := f.do(http.MethodGet, "/appointment/a1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got appointment.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ana", got.Patient)
}

func TestGetAppointment_NotFound(t *testing.T) {
	f := newFixture(t, appointment.NewMemoryStore())

	rec := f.do(http.MethodGet, "/appointment/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)

	v := decodeView(t, rec)
	assert.Equal(t, 304, v.Number)
	assert.Equal(t, "DOM_NOT_FOUND", v.Code)
	assert.Equal(t, "DOMAIN_ERROR", v.Family)
	assert.Equal(t, "missing", v.Details["appointment_id"])
	assert.NotEmpty(t, v.ErrorID)
	assert.NotEmpty(t, v.Correlation)
	assert.Len(t, v.TraceID, 32)
	assert.Empty(t, rec.Header().Get("Retry-After"))
}

func TestCancelAppointment(t *testing.T) {
	f := newFixture(t, appointment.NewMemoryStore(appointment.Appointment{ID: "a1"}))

	rec := f.do(http.MethodDelete, "/appointment/a1")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodDelete, "/appointment/a1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRaisedInfrastructureError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), "a1").
		Return(appointment.Appointment{}, dcore.E(code.InfDBConnection, "connection refused"))

	f := newFixture(t, store)
	rec := f.do(http.MethodGet, "/appointment/a1")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
	assert.Equal(t, "INF_DB_CONNECTION", decodeView(t, rec).Code)
}

func TestForeignErrorIsMasked(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Delete(gomock.Any(), "a1").Return(assert.AnError)

	f := newFixture(t, store)
	rec := f.do(http.MethodDelete, "/appointment/a1")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, "OTH_UNKNOWN", v.Code)
	assert.NotContains(t, v.Message, assert.AnError.Error())
}

func TestPanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), "a1").DoAndReturn(
		func(context.Context, string) (appointment.Appointment, error) { panic("store exploded") })

	f := newFixture(t, store)
	rec := f.do(http.MethodGet, "/appointment/a1")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OTH_UNKNOWN", decodeView(t, rec).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, appointment.NewMemoryStore())
	f.do(http.MethodGet, "/appointment/x")

	rec := f.do(http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(),
		`dcore_commands_total{command="GetAppointment",family="DOMAIN_ERROR",outcome="failure"} 1`))
}

func TestSpansShareTrace(t *testing.T) {
	f := newFixture(t, appointment.NewMemoryStore(appointment.Appointment{ID: "a1"}))
	f.do(http.MethodGet, "/appointment/a1")

	spans := f.spans.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "mediator.Send GetAppointment", spans[0].Name())
	assert.Equal(t, "GET /appointment/a1", spans[1].Name())
	assert.Equal(t, spans[1].SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

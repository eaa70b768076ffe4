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

package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dcore/mediator"
)

// TracerName is the instrumentation name used when Tracing gets a nil tracer.
const TracerName = "dirpx.dev/dcore/mediator"

// Tracing starts one span per dispatch named "mediator.Send <command>".
//
// The span carries the outcome and, for failures and errors, the error code
// attributes. Only returned errors set the span status to Error; expected
// failures are business outcomes and leave it unset.
// A nil tracer selects otel.Tracer(TracerName) from the global provider.
func Tracing(tracer trace.Tracer) mediator.Middleware {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return mediator.MiddlewareFunc(func(ctx context.Context, cmd any, next mediator.Next) (any, error) {
		name := mediator.CommandName(cmd)
		ctx, span := tracer.Start(ctx, "mediator.Send "+name,
			trace.WithAttributes(attribute.String("dcore.command", name)))
		defer span.End()

		resp, err := next(ctx)

		outcome, e := Classify(resp, err)
		span.SetAttributes(attribute.String("dcore.outcome", string(outcome)))
		if e != nil {
			c := e.Code()
			span.SetAttributes(
				attribute.String("dcore.error.code", c.String()),
				attribute.Int("dcore.error.number", c.Number()),
				attribute.String("dcore.error.family", c.Family().String()),
				attribute.String("dcore.error.kind", e.Kind().String()),
				attribute.String("dcore.error.id", e.ID()),
			)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
		}
		return resp, err
	})
}

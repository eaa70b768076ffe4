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
	"time"

	"github.com/rs/zerolog"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/mediator"
)

// Logging writes one log line per dispatch: debug for a success, warn for an
// expected failure, error for a returned error.
func Logging(log zerolog.Logger) mediator.Middleware {
	return mediator.MiddlewareFunc(func(ctx context.Context, cmd any, next mediator.Next) (any, error) {
		start := time.Now()
		resp, err := next(ctx)

		outcome, e := Classify(resp, err)
		var ev *zerolog.Event
		switch outcome {
		case OutcomeSuccess:
			ev = log.Debug()
		case OutcomeFailure:
			ev = log.Warn()
		default:
			ev = log.Error().Err(err)
		}
		ev = ev.Str("command", mediator.CommandName(cmd)).
			Str("outcome", string(outcome)).
			Dur("duration", time.Since(start))
		if e != nil {
			ev = ErrorFields(ev, e)
		}
		ev.Msg("command dispatched")

		return resp, err
	})
}

// ErrorFields adds the identifying fields of e to ev.
func ErrorFields(ev *zerolog.Event, e *dcore.Error) *zerolog.Event {
	c := e.Code()
	return ev.
		Str("error_code", c.String()).
		Int("error_number", c.Number()).
		Str("error_family", c.Family().String()).
		Str("error_kind", e.Kind().String()).
		Str("error_id", e.ID())
}

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
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/mediator"
)

// Recovery converts a panic further down the chain into a returned error.
//
// A *dcore.Error panic value (for example a misused result accessor) is
// returned as is. Any other value becomes an OTH_UNKNOWN error; error values
// are kept as its cause. The panic is logged at error level with its stack.
func Recovery(log zerolog.Logger) mediator.Middleware {
	return mediator.MiddlewareFunc(func(ctx context.Context, cmd any, next mediator.Next) (resp any, err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			e := recovered(v)
			log.Error().
				Str("command", mediator.CommandName(cmd)).
				Str("error_code", e.Code().String()).
				Str("error_id", e.ID()).
				Str("panic", fmt.Sprint(v)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			resp, err = nil, e
		}()
		return next(ctx)
	})
}

func recovered(v any) *dcore.Error {
	switch x := v.(type) {
	case error:
		if e, ok := dcore.As(x); ok {
			return e
		}
		return dcore.E(code.OthUnknown, x.Error(), dcore.WithCauseOption(x))
	default:
		return dcore.E(code.OthUnknown, fmt.Sprintf("panic: %v", x))
	}
}

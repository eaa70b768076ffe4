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

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/mediator"
)

// Validator is implemented by commands that can check their own fields.
type Validator interface {
	Validate() error
}

// Validation rejects commands whose Validate method fails; the handler is
// not called. A *dcore.Error from Validate is returned as is, any other
// error becomes a KindInvalid DOM_INVALID_ARGUMENTS error wrapping it.
// Commands that do not implement Validator pass through.
func Validation() mediator.Middleware {
	return mediator.MiddlewareFunc(func(ctx context.Context, cmd any, next mediator.Next) (any, error) {
		v, ok := cmd.(Validator)
		if !ok {
			return next(ctx)
		}
		if err := v.Validate(); err != nil {
			if e, ok := dcore.As(err); ok {
				return nil, e
			}
			return nil, dcore.Invalid(code.DomInvalidArguments, err.Error(),
				dcore.WithCauseOption(err),
				dcore.WithDetailOption("command", mediator.CommandName(cmd)),
			)
		}
		return next(ctx)
	})
}

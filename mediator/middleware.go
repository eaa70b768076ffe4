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

import "context"

// Next invokes the remainder of the chain: the following middleware, or the
// handler for the innermost one.
type Next func(ctx context.Context) (any, error)

// Middleware runs around every dispatch. It may act before and after calling
// next, replace the response, or short-circuit by not calling next at all.
type Middleware interface {
	Invoke(ctx context.Context, cmd any, next Next) (any, error)
}

// MiddlewareFunc adapts a plain function to Middleware.
type MiddlewareFunc func(ctx context.Context, cmd any, next Next) (any, error)

// Invoke calls f.
func (f MiddlewareFunc) Invoke(ctx context.Context, cmd any, next Next) (any, error) {
	return f(ctx, cmd, next)
}

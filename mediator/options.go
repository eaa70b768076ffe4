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

// Option configures the Pipeline at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Pipeline.
type Option func(*builder)

// WithHandlers appends handlers. Each handler must be bound to a distinct
// command type.
func WithHandlers(hs ...Handler) Option {
	return func(b *builder) { b.handlers = append(b.handlers, hs...) }
}

// WithMiddlewares appends middlewares. The first registered middleware is
// the outermost one.
func WithMiddlewares(ms ...Middleware) Option {
	return func(b *builder) { b.middlewares = append(b.middlewares, ms...) }
}

// WithCommands declares commands that must have a handler. Pass a value of
// each command type, usually the zero value.
func WithCommands(cmds ...any) Option {
	return func(b *builder) { b.commands = append(b.commands, cmds...) }
}

type builder struct {
	handlers    []Handler
	middlewares []Middleware
	commands    []any
}

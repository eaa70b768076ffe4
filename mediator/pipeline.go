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

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
)

// Pipeline routes a command to its single handler through the ordered
// middleware chain.
type Pipeline struct {
	// handlers maps a command's dynamic type to its handler.
	handlers map[reflect.Type]Handler

	// middlewares in registration order; index 0 is the outermost.
	middlewares []Middleware
}

// New assembles an immutable Pipeline.
//
// Build process overview:
//
//  1. Apply options to an empty builder.
//  2. Reject nil handlers and nil middlewares.
//  3. Index handlers by command type, rejecting duplicates.
//  4. Check that every declared command type has a handler.
//  5. Freeze the index and the middleware list into fresh allocations.
//
// Every problem found is reported; the returned error is an errors.Join of
// errors wrapping the package sentinels, so errors.Is works on the result.
func New(opts ...Option) (*Pipeline, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	var errs []error
	if len(b.handlers) == 0 {
		errs = append(errs, ErrNoHandlers)
	}

	handlers := make(map[reflect.Type]Handler, len(b.handlers))
	for i, h := range b.handlers {
		if h == nil {
			errs = append(errs, fmt.Errorf("handler #%d: %w", i, ErrNilHandler))
			continue
		}
		t := h.CommandType()
		if t == nil {
			errs = append(errs, fmt.Errorf("handler #%d: %w", i, ErrNilCommand))
			continue
		}
		if t.Kind() == reflect.Interface {
			errs = append(errs, fmt.Errorf("handler #%d (%s): %w", i, t, ErrInterfaceCommand))
			continue
		}
		if _, dup := handlers[t]; dup {
			errs = append(errs, fmt.Errorf("%s: %w", t, ErrDuplicateHandler))
			continue
		}
		handlers[t] = h
	}

	for i, m := range b.middlewares {
		if m == nil {
			errs = append(errs, fmt.Errorf("middleware #%d: %w", i, ErrNilMiddleware))
		}
	}

	for i, cmd := range b.commands {
		if cmd == nil {
			errs = append(errs, fmt.Errorf("command #%d: %w", i, ErrNilCommand))
			continue
		}
		if t := reflect.TypeOf(cmd); handlers[t] == nil {
			errs = append(errs, fmt.Errorf("%s: %w", t, ErrNoHandler))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Pipeline{
		handlers:    handlers,
		middlewares: slices.Clone(b.middlewares),
	}, nil
}

// Send dispatches cmd to its handler through the middleware chain.
//
// A nil cmd yields ErrNilCommand. A command type without a handler yields a
// DOM_INVALID_STATE *dcore.Error wrapping ErrNoHandler; middlewares are not
// run in either case.
func (p *Pipeline) Send(ctx context.Context, cmd any) (any, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}
	h, ok := p.handlers[reflect.TypeOf(cmd)]
	if !ok {
		return nil, dcore.E(code.DomInvalidState,
			fmt.Sprintf("no handler registered for %s", CommandName(cmd)),
			dcore.WithCauseOption(ErrNoHandler),
		)
	}

	next := Next(func(ctx context.Context) (any, error) {
		return h.Handle(ctx, cmd)
	})
	// Wrap innermost first so that middlewares[0] runs outermost.
	for i := len(p.middlewares) - 1; i >= 0; i-- {
		m, inner := p.middlewares[i], next
		next = func(ctx context.Context) (any, error) {
			return m.Invoke(ctx, cmd, inner)
		}
	}
	return next(ctx)
}

// Handles reports whether p has a handler for the dynamic type of cmd.
func (p *Pipeline) Handles(cmd any) bool {
	if cmd == nil {
		return false
	}
	_, ok := p.handlers[reflect.TypeOf(cmd)]
	return ok
}

// Commands returns the handled command types, sorted by name.
func (p *Pipeline) Commands() []reflect.Type {
	out := make([]reflect.Type, 0, len(p.handlers))
	for t := range p.handlers {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// Send is the typed form of Pipeline.Send.
//
// A nil response yields the zero R. A response of another type yields an
// error wrapping ErrResponseType.
func Send[R any](ctx context.Context, p *Pipeline, cmd any) (R, error) {
	var zero R
	resp, err := p.Send(ctx, cmd)
	if err != nil {
		return zero, err
	}
	if resp == nil {
		return zero, nil
	}
	r, ok := resp.(R)
	if !ok {
		return zero, fmt.Errorf("%w: want %s, got %T", ErrResponseType, reflect.TypeFor[R](), resp)
	}
	return r, nil
}

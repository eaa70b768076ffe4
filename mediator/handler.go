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
	"fmt"
	"reflect"
)

// Handler is the untyped form of a command handler as stored in a Pipeline.
//
// CommandType identifies the single command type the handler is bound to.
// Most code builds handlers with Handle or HandleFunc instead of
// implementing this interface directly.
type Handler interface {
	CommandType() reflect.Type
	Handle(ctx context.Context, cmd any) (any, error)
}

// CommandHandler handles commands of type C and responds with R.
//
// R is usually result.Result[T] or result.Action; expected failures travel
// inside R and the error return is reserved for raised failures.
type CommandHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handle binds h to the command type C.
func Handle[C, R any](h CommandHandler[C, R]) Handler {
	if h == nil {
		return nil
	}
	return HandleFunc(h.Handle)
}

// HandleFunc binds fn to the command type C.
func HandleFunc[C, R any](fn func(ctx context.Context, cmd C) (R, error)) Handler {
	if fn == nil {
		return nil
	}
	return typedHandler[C, R]{fn: fn}
}

type typedHandler[C, R any] struct {
	fn func(context.Context, C) (R, error)
}

func (h typedHandler[C, R]) CommandType() reflect.Type { return reflect.TypeFor[C]() }

func (h typedHandler[C, R]) Handle(ctx context.Context, cmd any) (any, error) {
	c, ok := cmd.(C)
	if !ok {
		return nil, fmt.Errorf("%w: handler for %s received %T", ErrCommandType, h.CommandType(), cmd)
	}
	return h.fn(ctx, c)
}

// CommandName returns a display name for cmd: the result of its
// CommandName() method when it has one, its Go type otherwise.
func CommandName(cmd any) string {
	if cmd == nil {
		return "<nil>"
	}
	if n, ok := cmd.(interface{ CommandName() string }); ok {
		return n.CommandName()
	}
	return reflect.TypeOf(cmd).String()
}

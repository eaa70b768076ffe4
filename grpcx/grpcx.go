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

// Package grpcx maps dcore errors onto gRPC statuses with standard
// google.rpc error details attached.
package grpcx

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/adapter"
	"dirpx.dev/dcore/apis"
	"dirpx.dev/dcore/code"
)

// Domain is the ErrorInfo domain of every error produced by this package.
const Domain = "dirpx.dev/dcore"

// ErrorInfo metadata keys.
const (
	MetaNumber    = "number"
	MetaFamily    = "family"
	MetaKind      = "kind"
	MetaErrorID   = "error_id"
	MetaErrorDate = "error_date"
)

// Extras holds optional request-level metadata attached next to ErrorInfo.
// All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key). It becomes RequestInfo.request_id.
	CorrelationID string

	// TraceID is the distributed trace identifier. It becomes
	// RequestInfo.serving_data.
	TraceID string

	// RetryAfter is a client backoff hint. It becomes RetryInfo.retry_delay.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from context and the dcore error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *dcore.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// errors returned by handlers into gRPC status errors.
//
// A *dcore.Error anywhere in the chain is mapped with m and described by an
// errdetails.ErrorInfo whose reason is the code name (e.g. "DOM_NOT_FOUND")
// and whose metadata carries number, family, kind, error_id and error_date.
// Errors that already are gRPC statuses pass through untouched; any other
// error is masked as OTH_UNKNOWN.
//
// The optional MetaFn adds RequestInfo and RetryInfo details. If nil, no
// extra details are added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *dcore.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := dcore.As(err); !ok {
			if _, isStatus := gstatus.FromError(err); isStatus {
				return nil, err
			}
		}
		de := adapter.Capture(err)
		return nil, Status(m, de, metaFn(ctx, de)).Err()
	}
}

// Status builds the gRPC status for e. It is what UnaryServerInterceptor
// returns, exposed for streaming handlers and tests. Unregistered codes are
// reported as OTH_UNKNOWN.
func Status(m apis.Mapper, e *dcore.Error, ex Extras) *gstatus.Status {
	c := adapter.PublicCode(e.Code())
	base := gstatus.New(m.GRPCStatus(c), e.Message())

	info := &errdetails.ErrorInfo{
		Reason: c.String(),
		Domain: Domain,
		Metadata: map[string]string{
			MetaNumber:    strconv.Itoa(c.Number()),
			MetaFamily:    c.Family().String(),
			MetaKind:      e.Kind().String(),
			MetaErrorID:   e.ID(),
			MetaErrorDate: e.Date().UTC().Format(time.RFC3339Nano),
		},
	}
	with, err := base.WithDetails(info)
	if err != nil {
		return base
	}
	if ex.CorrelationID != "" || ex.TraceID != "" {
		if s, err := with.WithDetails(&errdetails.RequestInfo{
			RequestId:   ex.CorrelationID,
			ServingData: ex.TraceID,
		}); err == nil {
			with = s
		}
	}
	if ex.RetryAfter > 0 {
		if s, err := with.WithDetails(&errdetails.RetryInfo{
			RetryDelay: durationpb.New(ex.RetryAfter),
		}); err == nil {
			with = s
		}
	}
	return with
}

// ExtractErrorInfo pulls the dcore ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// ExtractRequestInfo pulls RequestInfo out of a gRPC error, if present.
func ExtractRequestInfo(err error) (*errdetails.RequestInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RequestInfo); ok {
			return ri, true
		}
	}
	return nil, false
}

// CodeFromError recovers the registry code carried by a gRPC error.
//
// The ErrorInfo reason is looked up first, then the number metadata. Errors
// without dcore details report OTH_UNKNOWN; nil reports 0.
func CodeFromError(err error) code.Code {
	if err == nil {
		return 0
	}
	ei, ok := ExtractErrorInfo(err)
	if !ok {
		return code.OthUnknown
	}
	if c, ok := code.Lookup(ei.GetReason()); ok {
		return c
	}
	if n, err := strconv.Atoi(ei.GetMetadata()[MetaNumber]); err == nil {
		return code.Code(n)
	}
	return code.OthUnknown
}

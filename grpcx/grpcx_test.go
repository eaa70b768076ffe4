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

package grpcx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/code"
	"dirpx.dev/dcore/grpcx"
	"dirpx.dev/dcore/mapper"
)

func intercept(t *testing.T, metaFn grpcx.MetaFn, handlerErr error) error {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	icpt := grpcx.UnaryServerInterceptor(m, metaFn)
	_, err = icpt(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/dcore.Appointments/Get"},
		func(context.Context, any) (any, error) { return nil, handlerErr })
	return err
}

func TestInterceptor_Success(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)
	resp, err := grpcx.UnaryServerInterceptor(m, nil)(context.Background(), "req", &grpc.UnaryServerInfo{},
		func(context.Context, any) (any, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_DcoreError(t *testing.T) {
	e := dcore.NotFound(code.DomNotFound, "appointment 9 does not exist")
	err := intercept(t, func(context.Context, *dcore.Error) grpcx.Extras {
		return grpcx.Extras{CorrelationID: "req-1", TraceID: "trace-1", RetryAfter: 2 * time.Second}
	}, e)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "appointment 9 does not exist", st.Message())

	ei, ok := grpcx.ExtractErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, "DOM_NOT_FOUND", ei.GetReason())
	assert.Equal(t, grpcx.Domain, ei.GetDomain())
	assert.Equal(t, map[string]string{
		grpcx.MetaNumber:    "304",
		grpcx.MetaFamily:    "DOMAIN_ERROR",
		grpcx.MetaKind:      "not_found",
		grpcx.MetaErrorID:   e.ID(),
		grpcx.MetaErrorDate: e.Date().UTC().Format(time.RFC3339Nano),
	}, ei.GetMetadata())

	ri, ok := grpcx.ExtractRequestInfo(err)
	require.True(t, ok)
	assert.Equal(t, "req-1", ri.GetRequestId())
	assert.Equal(t, "trace-1", ri.GetServingData())

	var retry *errdetails.RetryInfo
	for _, d := range st.Details() {
		if r, ok := d.(*errdetails.RetryInfo); ok {
			retry = r
		}
	}
	require.NotNil(t, retry)
	assert.Equal(t, 2*time.Second, retry.GetRetryDelay().AsDuration())

	assert.Equal(t, code.DomNotFound, grpcx.CodeFromError(err))
}

func TestInterceptor_WrappedDcoreErrorWithoutExtras(t *testing.T) {
	e := dcore.E(code.InfDBTimeout, "store timed out")
	err := intercept(t, nil, errors.Join(errors.New("ctx"), e))

	assert.Equal(t, codes.DeadlineExceeded, gstatus.Code(err))
	_, ok := grpcx.ExtractRequestInfo(err)
	assert.False(t, ok)
	assert.Equal(t, code.InfDBTimeout, grpcx.CodeFromError(err))
}

func TestInterceptor_ForeignErrorIsMasked(t *testing.T) {
	err := intercept(t, nil, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unknown, st.Code())
	assert.NotContains(t, st.Message(), "10.0.0.3")
	assert.Equal(t, code.OthUnknown, grpcx.CodeFromError(err))
}

func TestInterceptor_UnregisteredCodeIsReportedAsUnknown(t *testing.T) {
	err := intercept(t, nil, dcore.E(code.Code(999), "boom"))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unknown, st.Code())

	ei, ok := grpcx.ExtractErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, "OTH_UNKNOWN", ei.GetReason())
	assert.Equal(t, "400", ei.GetMetadata()[grpcx.MetaNumber])
	assert.Equal(t, code.OthUnknown, grpcx.CodeFromError(err))
}

func TestInterceptor_StatusPassesThrough(t *testing.T) {
	in := gstatus.Error(codes.Unimplemented, "nope")
	err := intercept(t, nil, in)
	assert.Same(t, in, err)
	_, ok := grpcx.ExtractErrorInfo(err)
	assert.False(t, ok)
}

func TestCodeFromError(t *testing.T) {
	assert.Equal(t, code.Code(0), grpcx.CodeFromError(nil))
	assert.Equal(t, code.OthUnknown, grpcx.CodeFromError(errors.New("plain")))

	m, err := mapper.New()
	require.NoError(t, err)
	// An unregistered number still round-trips through the metadata.
	st := grpcx.Status(m, dcore.E(code.Code(399), "future domain code"), grpcx.Extras{})
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Equal(t, code.Code(399), grpcx.CodeFromError(st.Err()))
}

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

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dirpx.dev/dcore"
	"dirpx.dev/dcore/apis"
	"dirpx.dev/dcore/code"
	"google.golang.org/grpc/codes"
)

func TestCapture(t *testing.T) {
	if Capture(nil) != nil {
		t.Fatalf("Capture(nil) must be nil")
	}

	e := dcore.NotFound(code.DomNotFound, "gone")
	if got := Capture(fmt.Errorf("wrap: %w", e)); got != e {
		t.Fatalf("Capture must return the wrapped *dcore.Error")
	}

	root := errors.New("pq: password authentication failed")
	got := Capture(root)
	if got.Code() != code.OthUnknown {
		t.Fatalf("Code = %s; want OTH_UNKNOWN", got.Code())
	}
	if got.Message() != MaskedMessage {
		t.Fatalf("foreign message must be masked, got %q", got.Message())
	}
	if !errors.Is(got, root) {
		t.Fatalf("masked error must keep its cause")
	}
}

func TestToDescriptor(t *testing.T) {
	if (ToDescriptor(nil, apis.Status{}) != apis.ErrorDescriptor{}) {
		t.Fatalf("nil error must give the zero descriptor")
	}

	e := dcore.E(code.InfDBTimeout, "store timed out")
	d := ToDescriptor(e, apis.Status{HTTP: http.StatusGatewayTimeout, GRPC: codes.DeadlineExceeded})
	want := apis.ErrorDescriptor{
		Code:       "INF_DB_TIMEOUT",
		Number:     205,
		Family:     "INFRASTRUCTURE_ERROR",
		Kind:       "domain",
		ErrorID:    e.ID(),
		HTTPStatus: 504,
		GRPCCode:   4,
		Message:    "store timed out",
	}
	if d != want {
		t.Fatalf("ToDescriptor = %+v; want %+v", d, want)
	}
}

func TestToView(t *testing.T) {
	e := dcore.NotFound(code.DomNotFound, "appointment 7 does not exist").
		WithDetail("appointment_id", "7").
		WithCause(errors.New("internal cause"))

	v := ToView(e)
	if v.Number != 304 || v.Code != "DOM_NOT_FOUND" || v.Family != "DOMAIN_ERROR" {
		t.Fatalf("classification mismatch: %+v", v)
	}
	if v.Description != "Object was not found." {
		t.Fatalf("Description = %q", v.Description)
	}
	if v.Message != "appointment 7 does not exist" || v.ErrorID != e.ID() {
		t.Fatalf("instance fields mismatch: %+v", v)
	}
	if v.ErrorDate == nil || !v.ErrorDate.Equal(e.Date()) {
		t.Fatalf("ErrorDate = %v; want %v", v.ErrorDate, e.Date())
	}
	if v.Details["appointment_id"] != "7" {
		t.Fatalf("Details = %v", v.Details)
	}

	// The view owns its details.
	v.Details["appointment_id"] = "8"
	if e.Details()["appointment_id"] != "7" {
		t.Fatalf("mutating the view must not affect the error")
	}

	if z := ToView(nil); z.Code != "" || z.ErrorDate != nil || z.Details != nil {
		t.Fatalf("nil error must give the zero view")
	}
}

// legacyErr implements only CodedError.
type legacyErr struct{ c code.Code }

func (e legacyErr) Error() string   { return "legacy failure" }
func (e legacyErr) Code() code.Code { return e.c }

// selfViewErr renders its own view.
type selfViewErr struct{ number int }

func (e selfViewErr) Error() string { return "self view" }
func (e selfViewErr) ErrorView() apis.ErrorView {
	return apis.ErrorView{Number: e.number, Code: "custom", Family: "custom", Message: "self view"}
}

func TestPublicCode(t *testing.T) {
	if got := PublicCode(code.DomNotFound); got != code.DomNotFound {
		t.Fatalf("PublicCode(DOM_NOT_FOUND) = %s", got)
	}
	for _, c := range []code.Code{0, -1, 350, 999} {
		if got := PublicCode(c); got != code.OthUnknown {
			t.Fatalf("PublicCode(%d) = %s; want OTH_UNKNOWN", int(c), got)
		}
	}
}

func TestView(t *testing.T) {
	if v := View(nil); v.Code != "" {
		t.Fatalf("nil error must give the zero view, got %+v", v)
	}

	e := dcore.NotFound(code.DomNotFound, "gone").WithDetail("k", "v")
	v := View(fmt.Errorf("service: %w", e))
	if v.Code != "DOM_NOT_FOUND" || v.Message != "gone" || v.ErrorID != e.ID() || v.Details["k"] != "v" {
		t.Fatalf("wrapped dcore error view = %+v", v)
	}

	v = View(fmt.Errorf("client: %w", legacyErr{c: code.InfAPIOperationFailed}))
	if v.Code != "INF_API_OPERATION_FAILED" || v.Number != 211 || v.Message != "legacy failure" {
		t.Fatalf("coded error view = %+v", v)
	}
	if v.ErrorID != "" || v.ErrorDate != nil || v.Details != nil {
		t.Fatalf("optional contracts must stay empty: %+v", v)
	}

	v = View(legacyErr{c: code.Code(999)})
	if v.Code != "OTH_UNKNOWN" || v.Number != 400 || v.Family != "OTHER" {
		t.Fatalf("unregistered code must be shown as OTH_UNKNOWN: %+v", v)
	}

	v = View(selfViewErr{number: 105})
	if v.Code != "custom" || v.Message != "self view" {
		t.Fatalf("view provider must render itself: %+v", v)
	}
	v = View(selfViewErr{number: 7})
	if v.Code != "OTH_UNKNOWN" || v.Number != 400 || v.Message != "self view" {
		t.Fatalf("view provider with unregistered number = %+v", v)
	}

	v = View(errors.New("dial tcp: connection refused"))
	if v.Code != "OTH_UNKNOWN" || v.Message != MaskedMessage {
		t.Fatalf("foreign error must be masked: %+v", v)
	}
}

func TestToView_UnregisteredCode(t *testing.T) {
	e := dcore.E(code.Code(999), "boom")
	v := ToView(e)
	if v.Number != 400 || v.Code != "OTH_UNKNOWN" || v.Message != "boom" || v.ErrorID != e.ID() {
		t.Fatalf("ToView = %+v", v)
	}
	d := ToDescriptor(e, apis.Status{})
	if d.Code != "OTH_UNKNOWN" || d.Number != 400 {
		t.Fatalf("ToDescriptor = %+v", d)
	}
}

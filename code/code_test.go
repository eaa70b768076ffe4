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

package code

import (
	"encoding"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		name   string
		number int
		want   Family
	}{
		{"api lower bound", 100, FamilyAPI},
		{"api upper bound", 199, FamilyAPI},
		{"infrastructure lower bound", 200, FamilyInfrastructure},
		{"infrastructure upper bound", 299, FamilyInfrastructure},
		{"domain lower bound", 300, FamilyDomain},
		{"domain upper bound", 399, FamilyDomain},
		{"other 4xx", 400, FamilyOther},
		{"below api", 99, FamilyOther},
		{"zero", 0, FamilyOther},
		{"negative", -150, FamilyOther},
		{"large", 1000, FamilyOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FamilyOf(tt.number); got != tt.want {
				t.Fatalf("FamilyOf(%d) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestRegistry_FamilyMatchesRange(t *testing.T) {
	for _, c := range All() {
		var want Family
		switch n := c.Number(); {
		case n >= 100 && n <= 199:
			want = FamilyAPI
		case n >= 200 && n <= 299:
			want = FamilyInfrastructure
		case n >= 300 && n <= 399:
			want = FamilyDomain
		default:
			want = FamilyOther
		}
		if c.Family() != want {
			t.Fatalf("%s(%d) family = %v, want %v", c, c.Number(), c.Family(), want)
		}
	}
}

func TestRegistry_PrefixMatchesFamily(t *testing.T) {
	prefixes := map[Family]string{
		FamilyAPI:            "API_",
		FamilyInfrastructure: "INF_",
		FamilyDomain:         "DOM_",
		FamilyOther:          "OTH_",
	}
	for _, c := range All() {
		if !strings.HasPrefix(c.Name(), prefixes[c.Family()]) {
			t.Fatalf("%s is numbered %d but named for another family", c, c.Number())
		}
	}
}

func TestRegistry_Closed(t *testing.T) {
	all := All()
	if len(all) != 26 {
		t.Fatalf("registry size = %d, want 26", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("All() not strictly ordered at %d: %v >= %v", i, all[i-1], all[i])
		}
	}
	all[0] = 999
	if All()[0] == 999 {
		t.Fatal("All() must return a copy")
	}
}

func TestDescribe(t *testing.T) {
	n, d, f := Describe(DomNotFound)
	if n != 304 || d != "Object was not found." || f != FamilyDomain {
		t.Fatalf("Describe(DomNotFound) = (%d, %q, %v)", n, d, f)
	}

	n, d, f = Describe(Code(250))
	if n != 250 || d != "" || f != FamilyInfrastructure {
		t.Fatalf("Describe(Code(250)) = (%d, %q, %v)", n, d, f)
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("DOM_NOT_FOUND")
	if !ok || c != DomNotFound {
		t.Fatalf("Lookup(DOM_NOT_FOUND) = (%v, %v)", c, ok)
	}

	for _, name := range []string{"NOT_A_CODE", "", "dom_not_found", " DOM_NOT_FOUND"} {
		if c, ok := Lookup(name); ok {
			t.Fatalf("Lookup(%q) = %v, want absent", name, c)
		}
	}
}

func TestLookup_RoundTrip(t *testing.T) {
	for _, c := range All() {
		got, ok := Lookup(c.String())
		if !ok || got != c {
			t.Fatalf("Lookup(%q) = (%v, %v), want %v", c.String(), got, ok, c)
		}
	}
}

func TestLookup_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range All() {
				if got, ok := Lookup(c.Name()); !ok || got != c {
					t.Errorf("concurrent Lookup(%q) = %v", c.Name(), got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestString_Unregistered(t *testing.T) {
	c := Code(999)
	if c.Known() {
		t.Fatal("Code(999) must not be known")
	}
	if c.String() != "Code(999)" {
		t.Fatalf("String() = %q", c.String())
	}
	if c.Name() != "" {
		t.Fatalf("Name() = %q, want empty", c.Name())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  DOM_UNKNOWN  ", "DOM_UNKNOWN"},
		{"to upper", "dom_not_found", "DOM_NOT_FOUND"},
		{"dash to underscore", "inf-db-timeout", "INF_DB_TIMEOUT"},
		{"dot to underscore", "api.forbidden", "API_FORBIDDEN"},
		{"inner spaces", "oth unknown", "OTH_UNKNOWN"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"identifier", "DOM_NOT_FOUND", DomNotFound},
		{"lower with dashes", " inf-db-timeout ", InfDBTimeout},
		{"number", "101", APIInvalidInput},
		{"number with spaces", " 400 ", OthUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrCodeInvalid},
		{"blank", "   ", ErrCodeInvalid},
		{"bad charset", "DOM/NOT_FOUND", ErrCodeInvalid},
		{"unknown identifier", "NOT_A_CODE", ErrCodeUnknown},
		{"unknown number", "999", ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != 0 {
				t.Fatalf("Parse(%q) on error must return 0, got %v", tt.in, got)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse must panic on unknown input")
		}
	}()
	_ = MustParse("NOT_A_CODE")
}

func TestTextMarshaling(t *testing.T) {
	var _ encoding.TextMarshaler = DomInvalidState

	b, err := DomInvalidState.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "DOM_INVALID_STATE" {
		t.Fatalf("MarshalText = %q", b)
	}

	if _, err := Code(42).MarshalText(); !errors.Is(err, ErrCodeUnknown) {
		t.Fatalf("MarshalText(Code(42)) error = %v, want ErrCodeUnknown", err)
	}

	var c Code
	if err := c.UnmarshalText([]byte("  api-forbidden ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != APIForbidden {
		t.Fatalf("UnmarshalText = %v, want %v", c, APIForbidden)
	}

	before := c
	if err := c.UnmarshalText([]byte("nope!")); err == nil {
		t.Fatal("UnmarshalText must fail on invalid input")
	}
	if c != before {
		t.Fatal("UnmarshalText must not modify the receiver on error")
	}
}

func TestFamily_String(t *testing.T) {
	want := []string{"API_ERROR", "INFRASTRUCTURE_ERROR", "DOMAIN_ERROR", "OTHER"}
	for i, f := range Families() {
		if f.String() != want[i] {
			t.Fatalf("Families()[%d] = %q, want %q", i, f, want[i])
		}
		b, _ := f.MarshalText()
		if string(b) != want[i] {
			t.Fatalf("MarshalText = %q, want %q", b, want[i])
		}
	}
}

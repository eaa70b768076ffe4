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
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Code is a numbered error classification from the dcore registry.
//
// The underlying integer IS the public error number. It is defined as a
// separate type (not just int) so that APIs can declare that they expect a
// registry code and not an arbitrary status number.
//
// A Code value outside the registry can still be converted from an int; such
// values report Known() == false, an empty Description and a family derived
// from their number like any other code.
type Code int

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a code
	// identifier or number at all.
	ErrCodeInvalid = errors.New("dcore: invalid code")

	// ErrCodeUnknown is returned when a well-formed identifier or number is
	// not part of the registry.
	ErrCodeUnknown = errors.New("dcore: unknown code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

var (
	// byName indexes the registry by stable identifier.
	byName = make(map[string]Code, len(registry))

	// ordered lists every registered code by ascending number.
	ordered = make([]Code, 0, len(registry))
)

func init() {
	for c, e := range registry {
		if _, dup := byName[e.name]; dup {
			panic(fmt.Sprintf("dcore: duplicate code identifier %q", e.name))
		}
		byName[e.name] = c
		ordered = append(ordered, c)
	}
	slices.Sort(ordered)
}

// Number returns the public error number.
func (c Code) Number() int {
	return int(c)
}

// Name returns the stable identifier of the code, e.g. "DOM_NOT_FOUND".
// Unregistered values return an empty string.
func (c Code) Name() string {
	return registry[c].name
}

// Description returns the public, human-readable description of the code.
// Unregistered values return an empty string.
func (c Code) Description() string {
	return registry[c].description
}

// Family returns the family of the code. It is always derived from the
// number and never stored separately.
func (c Code) Family() Family {
	return FamilyOf(int(c))
}

// Known reports whether c is part of the registry.
func (c Code) Known() bool {
	_, ok := registry[c]
	return ok
}

// String returns the stable identifier of the code. Unregistered values are
// rendered as "Code(<number>)".
func (c Code) String() string {
	if e, ok := registry[c]; ok {
		return e.name
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// Describe returns the number, description and family of c.
//
// It is a pure, total function: unregistered values yield their own number,
// an empty description and the family derived from that number.
func Describe(c Code) (number int, description string, family Family) {
	return int(c), c.Description(), c.Family()
}

// Lookup returns the code whose stable identifier is exactly name.
// It never panics; the boolean is false when no code matches.
func Lookup(name string) (Code, bool) {
	c, ok := byName[name]
	return c, ok
}

// All returns every registered code, ordered by number. The returned slice
// is a copy and may be modified by the caller.
func All() []Code {
	return slices.Clone(ordered)
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical identifier form.
//
// It only performs obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - upper-cases the value;
//   - replaces '-', '.' and inner spaces with '_'.
//
// It does NOT guarantee that the result names a registered code.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(s)
}

// Parse resolves user-provided input into a registered Code.
//
// Unlike Lookup it is lenient: the input is normalized first and may also be
// the decimal error number ("304").
func Parse(s string) (Code, error) {
	n := Normalize(s)
	if n == "" {
		return 0, ErrCodeInvalid
	}
	if c, ok := byName[n]; ok {
		return c, nil
	}
	if num, err := strconv.Atoi(n); err == nil {
		if c := Code(num); c.Known() {
			return c, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrCodeUnknown, num)
	}
	for i := 0; i < len(n); i++ {
		ch := n[i]
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') && ch != '_' {
			return 0, fmt.Errorf("%w: %q", ErrCodeInvalid, s)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrCodeUnknown, n)
}

// MustParse is the panic-on-error variant of Parse. It is meant for
// package-level variables built from trusted literals.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
//
// Only registered codes can be marshaled; the output is the identifier.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Known() {
		return nil, fmt.Errorf("%w: %d", ErrCodeUnknown, int(c))
	}
	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts anything Parse accepts.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

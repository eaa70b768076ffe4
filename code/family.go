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

import "encoding"

// Family is the coarse category of a Code. "Family" is used instead of
// "class" to mirror the HTTP status family wording.
type Family uint8

const (
	// FamilyOther groups unrecognized numbers and the 4xx catch-all codes.
	// It is the zero value so that an unset Family never claims a layer.
	FamilyOther Family = iota

	// FamilyAPI groups 1xx codes raised in the API layer.
	FamilyAPI

	// FamilyInfrastructure groups 2xx codes raised in the infrastructure layer.
	FamilyInfrastructure

	// FamilyDomain groups 3xx codes raised in the business/domain layer.
	FamilyDomain
)

var _ encoding.TextMarshaler = Family(0)

// FamilyOf returns the family for an error number.
//
// The mapping is load-bearing and part of the public contract: callers build
// transport mapping tables on top of it.
func FamilyOf(number int) Family {
	switch number / 100 {
	case 1:
		return FamilyAPI
	case 2:
		return FamilyInfrastructure
	case 3:
		return FamilyDomain
	default:
		return FamilyOther
	}
}

// Families returns every family in declaration order.
func Families() []Family {
	return []Family{FamilyAPI, FamilyInfrastructure, FamilyDomain, FamilyOther}
}

// String returns the canonical family identifier, e.g. "DOMAIN_ERROR".
func (f Family) String() string {
	switch f {
	case FamilyAPI:
		return "API_ERROR"
	case FamilyInfrastructure:
		return "INFRASTRUCTURE_ERROR"
	case FamilyDomain:
		return "DOMAIN_ERROR"
	default:
		return "OTHER"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

/*
   Copyright 2025 The DIRPX Authors.

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

// Package value holds the common core of value-semantics facets: the
// traits every value type carries (immutability, equality, typical
// rendered width, default value) and the error shapes shared by their
// codecs.
package value

import (
	"reflect"

	"dirpx.dev/mfx/facets"
)

// Equality states how instances of a value type compare.
type Equality int

const (
	// EqualByValue compares by content. The usual case for values.
	EqualByValue Equality = iota
	// EqualByReference compares by identity.
	EqualByReference
)

// String implements fmt.Stringer.
func (e Equality) String() string {
	switch e {
	case EqualByValue:
		return "byValue"
	case EqualByReference:
		return "byReference"
	default:
		return "unknown"
	}
}

// Semantics is the embedded core of every value-semantics facet.
type Semantics struct {
	facets.Base
	valueType    reflect.Type
	width        int
	immutable    bool
	equality     Equality
	defaultValue any
}

// SemanticsSpec collects the traits a concrete value facet declares.
type SemanticsSpec struct {
	ValueType    reflect.Type
	Width        int
	Immutable    bool
	Equality     Equality
	DefaultValue any
}

// NewSemantics constructs the embedded core from a facet's spec.
func NewSemantics(base facets.Base, spec SemanticsSpec) Semantics {
	return Semantics{
		Base:         base,
		valueType:    spec.ValueType,
		width:        spec.Width,
		immutable:    spec.Immutable,
		equality:     spec.Equality,
		defaultValue: spec.DefaultValue,
	}
}

// ValueType returns the Go type the facet renders and parses.
func (s Semantics) ValueType() reflect.Type { return s.valueType }

// Width returns the typical rendered length, a layout hint.
func (s Semantics) Width() int { return s.width }

// Immutable reports whether instances never change after creation.
func (s Semantics) Immutable() bool { return s.immutable }

// Equality returns how instances of the value type compare.
func (s Semantics) Equality() Equality { return s.equality }

// DefaultValue returns the value used when a field needs seeding, or nil.
func (s Semantics) DefaultValue() any { return s.defaultValue }

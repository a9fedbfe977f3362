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

// Package sortedby provides the facet declaring that a modeled collection
// is kept sorted by a named comparator, together with the factories that
// discover it from layout metadata or declaration annotations.
package sortedby

import (
	"reflect"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/facets"
)

// Kind tags the sorted-by capability.
const Kind apis.Kind = "collection.sortedBy"

// PropertyKey is the metadata key naming the comparator type.
const PropertyKey = "sortedBy"

// Comparator imposes a total ordering on collection elements.
type Comparator interface {
	// Compare returns a negative value when a sorts before b, zero when
	// they sort equally, and a positive value otherwise.
	Compare(a, b any) int
}

// Facet declares that the holder's collection is sorted by Comparator.
type Facet struct {
	facets.Base
	comparator Comparator
}

// Comparator returns the ordering attached to the collection.
func (f *Facet) Comparator() Comparator {
	return f.comparator
}

// newFacet is only reachable through a factory: facets are created by the
// winning factory during metamodel build, never ad hoc.
func newFacet(h apis.Holder, c Comparator) *Facet {
	return &Facet{Base: facets.NewBase(Kind, h), comparator: c}
}

// instantiate produces a Comparator from its registered type, accepting
// both value and pointer method sets.
func instantiate(t reflect.Type) (Comparator, bool) {
	if c, ok := reflect.Zero(t).Interface().(Comparator); ok {
		return c, true
	}
	if c, ok := reflect.New(t).Interface().(Comparator); ok {
		return c, true
	}
	return nil, false
}

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

// Package facets holds the facet implementations shipped with mfx and the
// Base type they embed.
package facets

import "dirpx.dev/mfx/apis"

// Base carries the kind tag and holder back-pointer every facet needs.
// Concrete facets embed it by value; it is immutable after construction.
type Base struct {
	kind   apis.Kind
	holder apis.Holder
}

// NewBase constructs the embedded core of a facet.
func NewBase(k apis.Kind, h apis.Holder) Base {
	return Base{kind: k, holder: h}
}

// FacetKind returns the kind tag this facet is attached under.
func (b Base) FacetKind() apis.Kind {
	return b.kind
}

// FacetHolder returns the holder this facet is attached to.
func (b Base) FacetHolder() apis.Holder {
	return b.holder
}

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

package apis

// Kind identifies one category of facet capability, e.g. "collection.sortedBy"
// or "value.date". The set of kinds a process recognizes is fixed by the
// factories wired into its engine; new capabilities are added by introducing
// new kinds, never by specializing existing ones.
type Kind string

// Facet is an attached, typed capability describing one semantic aspect of a
// modeled element. A facet is immutable once attached: any state that appears
// to change after attachment (such as a display-format override) is internal
// to the facet and guarded by it.
type Facet interface {
	// FacetKind returns the kind tag this facet was attached under.
	FacetKind() Kind
	// FacetHolder returns the holder this facet is attached to.
	FacetHolder() Holder
}

// Holder is the attachment point owning one modeled element's facet set.
// Holders are populated by the resolution engine during metamodel build and
// sealed before publication; after sealing the facet set never changes and
// reads require no locking.
type Holder interface {
	// ID returns the stable identifier of the modeled element.
	ID() string
	// Get returns the facet attached under k, if any. Absence is a valid,
	// queryable state, not an error.
	Get(k Kind) (Facet, bool)
	// Has reports whether a facet of kind k is attached.
	Has(k Kind) bool
	// Put attaches f under its kind. It is used only by the resolution
	// engine; attaching a second facet of the same kind, or attaching to a
	// sealed holder, is an error.
	Put(f Facet) error
	// Seal freezes the holder's facet set. Sealing is idempotent.
	Seal()
	// Kinds returns a snapshot of the attached kinds (order unspecified).
	Kinds() []Kind
}

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

package holder_test

import (
	"testing"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/holder"
)

// stubFacet is a minimal facet for attachment tests.
type stubFacet struct {
	kind apis.Kind
	h    apis.Holder
}

func (s *stubFacet) FacetKind() apis.Kind     { return s.kind }
func (s *stubFacet) FacetHolder() apis.Holder { return s.h }

func TestPut_AttachAndGet(t *testing.T) {
	h := holder.New("orders.Order#placedOn")

	f := &stubFacet{kind: "value.date", h: h}
	if err := h.Put(f); err != nil {
		t.Fatalf("Put: unexpected error: %v", err)
	}

	got, ok := h.Get("value.date")
	if !ok || got != apis.Facet(f) {
		t.Fatalf("Get(value.date): got (%v,%v), want (facet,true)", got, ok)
	}
	if !h.Has("value.date") {
		t.Fatalf("Has(value.date) = false, want true")
	}
	if h.ID() != "orders.Order#placedOn" {
		t.Fatalf("ID() = %q", h.ID())
	}
}

func TestPut_DuplicateKind(t *testing.T) {
	h := holder.New("e1")

	if err := h.Put(&stubFacet{kind: "collection.sortedBy", h: h}); err != nil {
		t.Fatalf("Put: unexpected error: %v", err)
	}
	// A second facet of the same kind must be rejected: one live facet per
	// kind per holder.
	err := h.Put(&stubFacet{kind: "collection.sortedBy", h: h})
	if err != holder.ErrDuplicateKind {
		t.Fatalf("expected ErrDuplicateKind, got: %v", err)
	}
}

func TestPut_Errors(t *testing.T) {
	h := holder.New("e1")

	if err := h.Put(nil); err != holder.ErrNilFacet {
		t.Fatalf("nil facet: want ErrNilFacet, got %v", err)
	}
	if err := h.Put(&stubFacet{kind: "", h: h}); err != holder.ErrEmptyKind {
		t.Fatalf("empty kind: want ErrEmptyKind, got %v", err)
	}
}

func TestSeal_RejectsWrites(t *testing.T) {
	h := holder.New("e1")
	if err := h.Put(&stubFacet{kind: "value.date", h: h}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	h.Seal()
	h.Seal() // idempotent

	if err := h.Put(&stubFacet{kind: "collection.sortedBy", h: h}); err != holder.ErrSealed {
		t.Fatalf("sealed Put: want ErrSealed, got %v", err)
	}

	// Reads still work after sealing.
	if !h.Has("value.date") {
		t.Fatalf("Has(value.date) after Seal = false, want true")
	}
	// Absence stays a first-class, stable answer.
	if h.Has("collection.sortedBy") {
		t.Fatalf("Has(collection.sortedBy) after rejected Put = true, want false")
	}
}

func TestKinds_Snapshot(t *testing.T) {
	h := holder.New("e1")
	_ = h.Put(&stubFacet{kind: "value.date", h: h})
	_ = h.Put(&stubFacet{kind: "collection.sortedBy", h: h})

	kinds := h.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("Kinds() = %v, want 2 entries", kinds)
	}
	seen := map[apis.Kind]bool{}
	for _, k := range kinds {
		seen[k] = true
	}
	if !seen["value.date"] || !seen["collection.sortedBy"] {
		t.Fatalf("Kinds() missing entries: %v", kinds)
	}
}

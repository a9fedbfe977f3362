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

package holder

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/mfx/apis"
)

var (
	// ErrNilFacet is returned when a nil facet is provided.
	ErrNilFacet = errors.New("mfx(holder): nil facet provided")
	// ErrEmptyKind is returned when a facet reports an empty kind.
	ErrEmptyKind = errors.New("mfx(holder): facet has empty kind")
	// ErrDuplicateKind indicates an attempt to attach a second facet of a
	// kind already present on the holder.
	ErrDuplicateKind = errors.New("mfx(holder): facet kind already attached")
	// ErrSealed indicates an attempt to attach a facet after the holder was
	// sealed for publication.
	ErrSealed = errors.New("mfx(holder): holder is sealed")
)

// New constructs a Holder for the modeled element identified by id.
func New(id string) apis.Holder {
	return &holder{id: id}
}

// holder is a simple Holder implementation backed by sync.Map.
// Reads are lock-free; writes go through a mutex so the first attachment of
// a kind wins exactly once. Seal flips an atomic flag after which all writes
// are rejected, which is what keeps a published metamodel read-only.
type holder struct {
	// id is the stable identifier of the modeled element.
	id string
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps apis.Kind to apis.Facet.
	m sync.Map // map[apis.Kind]apis.Facet
	// count tracks the number of attached facets.
	count int
	// sealed is set once the resolution pass for this holder completed.
	sealed atomic.Bool
}

// ID returns the modeled element identifier.
func (h *holder) ID() string {
	return h.id
}

// Put attaches f under its kind. Only the resolution engine calls Put;
// downstream consumers read through Get/Has.
func (h *holder) Put(f apis.Facet) error {
	// Validate inputs early.
	if f == nil {
		return ErrNilFacet
	}
	k := f.FacetKind()
	if k == "" {
		return ErrEmptyKind
	}
	if h.sealed.Load() {
		return ErrSealed
	}

	// Fast read path: duplicate check without locking.
	if _, ok := h.m.Load(k); ok {
		return ErrDuplicateKind
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	h.mu.Lock()
	defer h.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if h.sealed.Load() {
		return ErrSealed
	}
	if _, ok := h.m.Load(k); ok {
		return ErrDuplicateKind
	}

	h.m.Store(k, f)
	h.count++
	return nil
}

// Get returns the facet attached under k, if any.
func (h *holder) Get(k apis.Kind) (apis.Facet, bool) {
	if k == "" {
		return nil, false
	}
	if v, ok := h.m.Load(k); ok {
		return v.(apis.Facet), true
	}
	return nil, false
}

// Has reports whether a facet of kind k is attached.
func (h *holder) Has(k apis.Kind) bool {
	_, ok := h.Get(k)
	return ok
}

// Kinds returns a snapshot of attached kinds (order is unspecified).
func (h *holder) Kinds() []apis.Kind {
	h.mu.Lock()
	n := h.count
	h.mu.Unlock()

	kinds := make([]apis.Kind, 0, n)
	h.m.Range(func(key, _ any) bool {
		kinds = append(kinds, key.(apis.Kind))
		return true
	})
	return kinds
}

// Seal freezes the facet set. Idempotent.
func (h *holder) Seal() {
	h.sealed.Store(true)
}

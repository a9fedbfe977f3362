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

package engine_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/engine"
	"dirpx.dev/mfx/holder"
)

type stubFacet struct {
	kind   apis.Kind
	h      apis.Holder
	origin string
}

func (s *stubFacet) FacetKind() apis.Kind     { return s.kind }
func (s *stubFacet) FacetHolder() apis.Holder { return s.h }

// stubFactory produces a stubFacet tagged with origin, declines, or fails,
// depending on how it is primed.
type stubFactory struct {
	kind   apis.Kind
	origin string
	opines bool
	err    error
	calls  int
}

func (f *stubFactory) Kind() apis.Kind { return f.kind }

func (f *stubFactory) TryBuild(h apis.Holder, _ apis.Metadata) (apis.Facet, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if !f.opines {
		return nil, nil
	}
	return &stubFacet{kind: f.kind, h: h, origin: f.origin}, nil
}

func TestResolve_FirstFactoryWins(t *testing.T) {
	layout := &stubFactory{kind: "collection.sortedBy", origin: "layout", opines: true}
	convention := &stubFactory{kind: "collection.sortedBy", origin: "convention", opines: true}

	eng := engine.New(nil, layout, convention)
	h := holder.New("e1")

	fc, ok := eng.Resolve(h, "collection.sortedBy", apis.Metadata{})
	require.True(t, ok)
	assert.Equal(t, "layout", fc.(*stubFacet).origin)
	// The chain stops at the winner.
	assert.Equal(t, 0, convention.calls)
}

func TestResolve_FallsThroughToNextSource(t *testing.T) {
	layout := &stubFactory{kind: "collection.sortedBy", origin: "layout"} // no opinion
	convention := &stubFactory{kind: "collection.sortedBy", origin: "convention", opines: true}

	eng := engine.New(nil, layout, convention)
	h := holder.New("e1")

	fc, ok := eng.Resolve(h, "collection.sortedBy", apis.Metadata{})
	require.True(t, ok)
	assert.Equal(t, "convention", fc.(*stubFacet).origin)
}

func TestResolve_MalformedSourceDegrades(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	bad := &stubFactory{kind: "collection.sortedBy", err: errors.New("comparator class not loadable")}
	fallback := &stubFactory{kind: "collection.sortedBy", origin: "convention", opines: true}

	eng := engine.New(log, bad, fallback)
	h := holder.New("e1")

	fc, ok := eng.Resolve(h, "collection.sortedBy", apis.Metadata{})
	require.True(t, ok, "a malformed source must not suppress later sources")
	assert.Equal(t, "convention", fc.(*stubFacet).origin)
	assert.Contains(t, buf.String(), "facet metadata unresolvable")
	assert.Contains(t, buf.String(), "comparator class not loadable")
}

func TestResolve_NoOpinionAnywhere(t *testing.T) {
	a := &stubFactory{kind: "value.date"}
	b := &stubFactory{kind: "value.date"}

	eng := engine.New(nil, a, b)
	h := holder.New("e1")

	fc, ok := eng.Resolve(h, "value.date", apis.Metadata{})
	assert.False(t, ok)
	assert.Nil(t, fc)
}

func TestProcess_AttachesAllKindsOnce(t *testing.T) {
	sorted := &stubFactory{kind: "collection.sortedBy", origin: "layout", opines: true}
	date := &stubFactory{kind: "value.date", origin: "intrinsic", opines: true}
	silent := &stubFactory{kind: "object.immutable"} // never opines

	eng := engine.New(nil, sorted, date, silent)
	h := holder.New("e1")

	require.NoError(t, eng.Process(h, apis.Metadata{}))

	assert.True(t, h.Has("collection.sortedBy"))
	assert.True(t, h.Has("value.date"))
	assert.False(t, h.Has("object.immutable"))

	// Re-processing leaves attached kinds untouched.
	require.NoError(t, eng.Process(h, apis.Metadata{}))
	assert.Equal(t, 1, sorted.calls)
	assert.Equal(t, 1, date.calls)

	// ... and absence stays stable too (the silent factory is re-consulted,
	// but the holder still reports no facet).
	assert.False(t, h.Has("object.immutable"))
}

func TestKinds_ResolutionOrder(t *testing.T) {
	eng := engine.New(nil,
		&stubFactory{kind: "collection.sortedBy"},
		&stubFactory{kind: "value.date"},
		&stubFactory{kind: "collection.sortedBy"}, // same kind, later position
	)
	assert.Equal(t, []apis.Kind{"collection.sortedBy", "value.date"}, eng.Kinds())
}

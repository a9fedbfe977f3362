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

package mfx_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"dirpx.dev/mfx"
	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/config"
	"dirpx.dev/mfx/facets/sortedby"
	"dirpx.dev/mfx/facets/value/date"
)

// byOrderDate orders order ids lexically; stands in for a domain comparator.
type byOrderDate struct{}

func (byOrderDate) Compare(a, b any) int {
	return strings.Compare(a.(string), b.(string))
}

// reset returns the global state to defaults between test cases.
func reset(t *testing.T) {
	t.Helper()
	if err := mfx.SetAll(nil, nil, nil, nil, nil); err != nil {
		t.Fatalf("SetAll failed: %v", err)
	}
}

func TestBuildAndLookup(t *testing.T) {
	reset(t)

	if err := mfx.RegisterType("byOrderDate", byOrderDate{}); err != nil {
		t.Fatalf("RegisterType failed: %v", err)
	}

	err := mfx.Build(
		mfx.Element{ID: "customer#orders", Meta: apis.Metadata{
			Annotations: apis.PropertyMap{"sortedBy": "byOrderDate"},
		}},
		mfx.Element{ID: "order#shipDate", Meta: apis.Metadata{
			Annotations: apis.PropertyMap{"valueType": "date"},
		}},
	)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	h, ok := mfx.Holder("customer#orders")
	if !ok {
		t.Fatal("Holder missed a built element")
	}
	if h.ID() != "customer#orders" {
		t.Fatalf("holder id = %q", h.ID())
	}
	if _, ok := h.Get(sortedby.Kind); !ok {
		t.Fatal("sorted-by facet missing")
	}

	f, ok := mfx.Facet("order#shipDate", date.Kind)
	if !ok {
		t.Fatal("date facet missing")
	}
	v := time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := f.(*date.Facet).Render(context.Background(), v, language.English); got != "Mar 10, 2014" {
		t.Fatalf("Render = %q", got)
	}
}

// TestAbsenceIsStable verifies that a missing facet is a valid, repeatable
// answer rather than an error.
func TestAbsenceIsStable(t *testing.T) {
	reset(t)

	if err := mfx.Build(mfx.Element{ID: "customer#name"}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, ok := mfx.Facet("customer#name", date.Kind); ok {
			t.Fatal("facet must be absent")
		}
	}
	if _, ok := mfx.Facet("no#such", date.Kind); ok {
		t.Fatal("unknown element must report absence")
	}
	if _, ok := mfx.Holder("no#such"); ok {
		t.Fatal("unknown element must have no holder")
	}
}

// TestMalformedMetadataDegrades verifies that a bad metadata entry costs
// the facet, not the build.
func TestMalformedMetadataDegrades(t *testing.T) {
	reset(t)

	err := mfx.Build(mfx.Element{ID: "customer#orders", Meta: apis.Metadata{
		Annotations: apis.PropertyMap{"sortedBy": "noSuchComparator"},
	}})
	if err != nil {
		t.Fatalf("Build must tolerate malformed metadata, got %v", err)
	}

	h, ok := mfx.Holder("customer#orders")
	if !ok {
		t.Fatal("holder must be published despite the bad entry")
	}
	if _, ok := h.Get(sortedby.Kind); ok {
		t.Fatal("malformed metadata must degrade to absence")
	}
}

func TestBuildErrors(t *testing.T) {
	reset(t)

	if err := mfx.Build(mfx.Element{}); !errors.Is(err, mfx.ErrEmptyElementID) {
		t.Fatalf("empty id: got %v", err)
	}

	if err := mfx.Build(mfx.Element{ID: "customer#orders"}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := mfx.Build(mfx.Element{ID: "customer#orders"}); !errors.Is(err, mfx.ErrDuplicateElement) {
		t.Fatalf("duplicate id: got %v", err)
	}
}

// TestSetConfig_RebuildsAndClearsModel verifies that reconfiguration
// affects later builds and drops stale holders, while holders already
// handed out keep working.
func TestSetConfig_RebuildsAndClearsModel(t *testing.T) {
	reset(t)

	if err := mfx.Build(mfx.Element{ID: "order#shipDate", Meta: apis.Metadata{
		Annotations: apis.PropertyMap{"valueType": "date"},
	}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	before, ok := mfx.Facet("order#shipDate", date.Kind)
	if !ok {
		t.Fatal("date facet missing")
	}

	if err := mfx.SetConfig(config.New(config.WithValue(date.CfgFormatKey, "iso"))); err != nil {
		t.Fatalf("SetConfig failed: %v", err)
	}
	if _, ok := mfx.Holder("order#shipDate"); ok {
		t.Fatal("reconfiguration must clear the built model")
	}

	if err := mfx.Build(mfx.Element{ID: "order#shipDate", Meta: apis.Metadata{
		Annotations: apis.PropertyMap{"valueType": "date"},
	}}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	after, _ := mfx.Facet("order#shipDate", date.Kind)

	v := time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()
	if got := after.(*date.Facet).Render(ctx, v, language.English); got != "2014-03-10" {
		t.Fatalf("rebuilt Render = %q, want iso form", got)
	}
	// The pre-reconfiguration holder still answers with its own format.
	if got := before.(*date.Facet).Render(ctx, v, language.English); got != "Mar 10, 2014" {
		t.Fatalf("stale Render = %q, want medium form", got)
	}
}

func TestSetConfig_BadConfigurationFails(t *testing.T) {
	reset(t)

	err := mfx.SetConfig(config.New(config.WithValue(date.CfgFormatKey, "qq-zz")))
	if err == nil {
		t.Fatal("bad configuration must fail")
	}
	// The old state stays published.
	if mfx.Engine() == nil {
		t.Fatal("engine must survive a failed reconfiguration")
	}
}

// TestRoundTrip_StoredForm checks decode(encode(v)) == v through the
// globally built facet.
func TestRoundTrip_StoredForm(t *testing.T) {
	reset(t)

	if err := mfx.Build(mfx.Element{ID: "order#shipDate", Meta: apis.Metadata{
		Annotations: apis.PropertyMap{"valueType": "date"},
	}}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	f, _ := mfx.Facet("order#shipDate", date.Kind)
	df := f.(*date.Facet)

	for _, v := range []time.Time{
		time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	} {
		got, err := df.Decode(df.Encode(v))
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !got.Equal(v) {
			t.Fatalf("round trip = %v, want %v", got, v)
		}
	}
}

func TestExt(t *testing.T) {
	reset(t)

	type policy struct{ Name string }
	if err := mfx.SetExt(policy{Name: "audit"}); err != nil {
		t.Fatalf("SetExt failed: %v", err)
	}
	got, ok := mfx.ExtAs[policy]()
	if !ok || got.Name != "audit" {
		t.Fatalf("ExtAs = %+v, %v", got, ok)
	}
}

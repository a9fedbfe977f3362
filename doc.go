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

// Package mfx provides a global, process-wide metamodel of facets.
//
// mfx is responsible for turning "some model member plus its metadata"
// into a bundle of capabilities, called facets. A facet is a single
// discovered capability of a member: "this collection is sorted by that
// comparator", "this property is a calendar date and renders like so".
// Downstream layers (renderers, persistence, validation) ask the model
// for facets instead of re-reading metadata themselves.
//
// # Design
//
// The core of mfx is a read-mostly global snapshot (state). The snapshot
// holds five things:
//
//   - Config: dotted string keys controlling discovery and rendering
//     (e.g. "mfx.value.format.date", "mfx.locale.default"). Loaded from
//     YAML files, the environment, or code; see the config package.
//
//   - Types: a process-wide mapping from configured names to Go types.
//     Metadata refers to helper types (comparators, mostly) by name;
//     the registry is how those names become instantiable types. It can
//     be written to at runtime (RegisterType).
//
//   - Engine: the resolution engine. For every facet kind it keeps an
//     ordered chain of factories; each factory inspects a member's
//     metadata and either produces the facet, abstains, or reports the
//     metadata as malformed. The first factory to produce wins, later
//     ones are not consulted. Malformed metadata is logged and treated
//     as abstention, so one bad entry costs a facet, not the build.
//
//   - Builder: a pluggable factory that knows how to construct Types
//     and Engine instances for a given Config (and optional extension
//     data). The stock builder wires the shipped factory chains; a
//     custom Builder can re-order or extend them.
//
//   - Model: the holders built so far, one per element id. A holder is
//     the per-member facet container: facets attach during build, at
//     most one per kind, and the holder is sealed before it is
//     published. A sealed holder never changes, so readers touch it
//     without locks. Absence of a facet is a valid, stable answer.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means model lookups are lock-free on the hot path:
//
//	h, ok := mfx.Holder("customer#orders")
//	f, ok := mfx.Facet("order#shipDate", date.Kind)
//
// and concurrent callers always see a consistent snapshot.
//
// # Building the model
//
// Build runs discovery over a batch of elements:
//
//	err := mfx.Build(
//	    mfx.Element{ID: "customer#orders", Meta: apis.Metadata{
//	        Annotations: apis.PropertyMap{"sortedBy": "byOrderDate"},
//	    }},
//	    mfx.Element{ID: "order#shipDate", Meta: apis.Metadata{
//	        Annotations: apis.PropertyMap{"valueType": "date"},
//	    }},
//	)
//
// Each element gets a fresh holder, every engine chain runs over its
// metadata, and the sealed holder joins the model. Two metadata sources
// feed discovery: externally maintained layout properties and
// declaration-level annotations. Where both speak for the same kind,
// the factory chain order decides; the stock chains put layout before
// annotations, so external configuration overrides code.
//
// # Value semantics
//
// Date-typed members receive the date value facet, which carries the
// member's rendering, parsing and storage behavior:
//
//   - Render formats a value for the configured or overridden format in
//     a given locale. A context carrying date.WithFormatOverride uses
//     its own format without affecting any other request.
//   - Parse interprets user text through a chain of formats, from the
//     verbose long form down to the compact encoding form, and supports
//     relative entries like "+2W" or "-10D" against an anchor value.
//   - Encode and Decode convert values to and from the fixed canonical
//     stored form, which no configuration change can affect.
//
// # Concurrency model
//
// Reads (Holder, Facet, Types, Engine, Config) are wait-free: they load
// the current *state atomically and never take locks. Sealed holders and
// their facets are concurrency-safe for reads.
//
// Writes (Build, SetConfig, SetBuilder, SetExt, SetAll) take a short
// build mutex, assemble a brand-new state struct, and then publish it
// via an atomic pointer swap. This gives the calling binary a
// predictable "last write wins" behavior without forcing per-lookup
// locking. Reconfiguration clears the built model, because published
// holders reflect the configuration they were built under; holders
// already handed out stay valid for their callers.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let mfx init with the default builder and empty configuration,
//     or install one loaded from a file:
//
//     cfg, _ := config.Load("mfx.yaml")
//     mfx.SetConfig(config.Merge(cfg, config.FromEnv()))
//
//  2. Register helper types metadata refers to by name:
//
//     mfx.RegisterType("byOrderDate", ByOrderDate{})
//
//  3. Build the model from its element metadata, once, at startup.
//
//  4. Ask for facets everywhere else, via Holder and Facet.
//
//  5. In tests, call mfx.SetAll(nil, nil, nil, nil, nil) to get a clean
//     deterministic state between test cases.
//
// # Scope
//
// mfx is intentionally small. It does not try to be a general metadata
// framework or object mapper. It only solves one job:
//
//	"Given a model member and its metadata, decide once which
//	 capabilities it has, and answer that question cheaply forever."
//
// Everything else (rendering pipelines, persistence, validation rules)
// belongs to higher layers.
package mfx

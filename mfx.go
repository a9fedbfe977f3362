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

package mfx

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/builder"
	"dirpx.dev/mfx/config"
	"dirpx.dev/mfx/holder"
)

// init initializes the global mfx state.
func init() {
	// Initialize state with default cfg, types, and eng.
	s := &state{cfg: config.New(), model: map[string]apis.Holder{}}
	b := builder.New()
	s.types = b.BuildTypes(s.cfg, nil, nil)
	eng, err := b.BuildEngine(s.cfg, s.types, nil)
	if err != nil {
		// The stock builder with an empty configuration cannot fail.
		panic(err)
	}
	s.eng = eng
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilTypes is returned when a builder returns a nil type registry.
	ErrNilTypes = errors.New("mfx: builder returned nil type registry")
	// ErrNilEngine is returned when a builder returns a nil engine.
	ErrNilEngine = errors.New("mfx: builder returned nil engine")
	// ErrEmptyElementID is returned when a model element has no identifier.
	ErrEmptyElementID = errors.New("mfx: model element requires an id")
	// ErrDuplicateElement is returned when an element id is built twice.
	ErrDuplicateElement = errors.New("mfx: model element already built")
)

// Element describes one model member to run facet discovery over.
type Element struct {
	// ID identifies the member, e.g. "customer#orders".
	ID string
	// Meta carries the member's metadata sources.
	Meta apis.Metadata
}

// Build runs facet discovery over the given elements and publishes the
// resulting sealed holders into the global model. Elements already built
// keep their holders; rebuilding an id is an error. Malformed metadata
// does not fail the build, it only costs the affected facets.
func Build(elements ...Element) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Copy-on-write: the published model map is never mutated.
	model := make(map[string]apis.Holder, len(old.model)+len(elements))
	for id, h := range old.model {
		model[id] = h
	}

	for _, el := range elements {
		if el.ID == "" {
			return ErrEmptyElementID
		}
		if _, ok := model[el.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateElement, el.ID)
		}
		h := holder.New(el.ID)
		if err := old.eng.Process(h, el.Meta); err != nil {
			return fmt.Errorf("mfx: build %s: %w", el.ID, err)
		}
		h.Seal()
		model[el.ID] = h
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			types: old.types,
			eng:   old.eng,
			bld:   old.bld,
			model: model,
		},
	)

	slog.Info("mfx: model built",
		"build", uuid.NewString(),
		"elements", len(elements),
		"model", len(model),
	)
	return nil
}

// Holder returns the sealed holder built for id, if any.
// This is a convenience wrapper around the global model.
func Holder(id string) (apis.Holder, bool) {
	h, ok := st.Load().model[id]
	return h, ok
}

// Facet returns the facet of the given kind on the holder built for id.
// Absence of the holder or of the facet both report false.
func Facet(id string, k apis.Kind) (apis.Facet, bool) {
	h, ok := st.Load().model[id]
	if !ok {
		return nil, false
	}
	return h.Get(k)
}

// RegisterType adds a name-type mapping to the global mfx types.
// This is a convenience wrapper around the global types.
func RegisterType(name string, v any) error {
	return st.Load().types.Register(name, v)
}

// SetAll explicitly sets all global mfx state components and clears the
// built model.
//
// Nil arguments leave the corresponding component to be rebuilt,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg apis.Config, ext any, types apis.TypeRegistry, eng apis.Engine, bld apis.Builder) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Types
	ntypes := types
	if ntypes == nil {
		ntypes = nbld.BuildTypes(ncfg, old.types, next)
	}
	if ntypes == nil {
		return ErrNilTypes
	}

	// Engine
	neng := eng
	if neng == nil {
		var err error
		neng, err = nbld.BuildEngine(ncfg, ntypes, next)
		if err != nil {
			return err
		}
	}
	if neng == nil {
		return ErrNilEngine
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   ncfg,
			ext:   next,
			types: ntypes,
			eng:   neng,
			bld:   nbld,
			model: map[string]apis.Holder{},
		},
	)
	return nil
}

// Config returns the global mfx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global mfx configuration to cfg.
// It rebuilds the global types and eng using the new configuration and
// clears the built model, since published holders reflect the old
// configuration. Holders of prior builds stay valid for their callers.
func SetConfig(cfg apis.Config) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new types and eng based on the new cfg and old state.
	ntypes := b.BuildTypes(cfg, old.types, old.ext)
	if ntypes == nil {
		return ErrNilTypes
	}
	neng, err := b.BuildEngine(cfg, ntypes, old.ext)
	if err != nil {
		return err
	}
	if neng == nil {
		return ErrNilEngine
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   cfg,
			ext:   old.ext,
			types: ntypes,
			eng:   neng,
			bld:   b,
			model: map[string]apis.Holder{},
		},
	)
	return nil
}

// Types returns the global mfx type registry.
func Types() apis.TypeRegistry {
	return st.Load().types
}

// Engine returns the global mfx engine.
func Engine() apis.Engine {
	return st.Load().eng
}

// Builder returns the global mfx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global mfx builder to b.
// It rebuilds the global types and eng and clears the built model.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return nil
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new types and eng based on the new bld and old state.
	ntypes := b.BuildTypes(old.cfg, old.types, old.ext)
	if ntypes == nil {
		return ErrNilTypes
	}
	neng, err := b.BuildEngine(old.cfg, ntypes, old.ext)
	if err != nil {
		return err
	}
	if neng == nil {
		return ErrNilEngine
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			types: ntypes,
			eng:   neng,
			bld:   b,
			model: map[string]apis.Holder{},
		},
	)
	return nil
}

// SetExt replaces the extension config and rebuilds the global types and
// eng via the builder.
func SetExt[T any](ext T) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new types and eng based on the new ext and old state.
	ntypes := b.BuildTypes(old.cfg, old.types, ext)
	if ntypes == nil {
		return ErrNilTypes
	}
	neng, err := b.BuildEngine(old.cfg, ntypes, ext)
	if err != nil {
		return err
	}
	if neng == nil {
		return ErrNilEngine
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   ext,
			types: ntypes,
			eng:   neng,
			bld:   b,
			model: map[string]apis.Holder{},
		},
	)
	return nil
}

// ExtAs returns the global mfx extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// buildMu serializes writers (reconfigurations/builds) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global mfx state.
var st atomic.Pointer[state]

// state is the global mfx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global mfx configuration.
	cfg apis.Config
	// ext is the global mfx extension configuration.
	ext any
	// types is the global mfx type registry.
	types apis.TypeRegistry
	// eng is the global mfx engine.
	eng apis.Engine
	// bld is the global mfx builder.
	bld apis.Builder
	// model maps element ids to their sealed holders.
	model map[string]apis.Holder
}

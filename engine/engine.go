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

package engine

import (
	"log/slog"

	"dirpx.dev/mfx/apis"
)

// New constructs an apis.Engine that tries the given factories in order.
// Factories sharing a kind form that kind's precedence chain: the position
// in the argument list is the configuration-time ordering (e.g. the
// layout-metadata factory before the convention-based default). Nil
// factories are ignored. A nil logger means slog.Default().
//
// The returned engine is safe for concurrent use provided factories
// themselves are safe for concurrent TryBuild calls.
func New(log *slog.Logger, factories ...apis.Factory) apis.Engine {
	if log == nil {
		log = slog.Default()
	}
	e := &engine{log: log, chains: map[apis.Kind][]apis.Factory{}}
	for _, f := range factories {
		if f == nil {
			continue
		}
		k := f.Kind()
		if _, ok := e.chains[k]; !ok {
			e.kinds = append(e.kinds, k)
		}
		e.chains[k] = append(e.chains[k], f)
	}
	return e
}

// engine is an immutable, order-preserving resolver over per-kind factory
// chains.
type engine struct {
	log    *slog.Logger
	kinds  []apis.Kind
	chains map[apis.Kind][]apis.Factory
}

// Resolve runs the factories for kind k in order until one produces a facet.
// A factory error means the metadata that would license a facet is
// malformed; it is logged and treated as "no opinion" so a single bad
// source degrades to "no facet" instead of aborting the build.
func (e *engine) Resolve(h apis.Holder, k apis.Kind, md apis.Metadata) (apis.Facet, bool) {
	for _, f := range e.chains[k] {
		fc, err := f.TryBuild(h, md)
		if err != nil {
			e.log.Warn("facet metadata unresolvable",
				slog.String("holder", h.ID()),
				slog.String("kind", string(k)),
				slog.String("error", err.Error()))
			continue
		}
		if fc != nil {
			return fc, true
		}
	}
	return nil, false
}

// Process resolves and attaches every kind the engine knows about for h.
// Kinds already present are left untouched, so re-processing a holder never
// redefines its semantics.
func (e *engine) Process(h apis.Holder, md apis.Metadata) error {
	for _, k := range e.kinds {
		if h.Has(k) {
			continue
		}
		fc, ok := e.Resolve(h, k, md)
		if !ok {
			// Absence is a valid, queryable state.
			continue
		}
		if err := h.Put(fc); err != nil {
			return err
		}
	}
	return nil
}

// Kinds returns the kinds this engine can resolve, in resolution order.
func (e *engine) Kinds() []apis.Kind {
	out := make([]apis.Kind, len(e.kinds))
	copy(out, e.kinds)
	return out
}

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

package types

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/mfx/apis"
	uref "dirpx.dev/mfx/utils/reflect"
)

var (
	// ErrNilValue is returned when a nil value is provided.
	ErrNilValue = errors.New("mfx(types): nil value provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("mfx(types): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different type.
	ErrConflictingRegistration = errors.New("mfx(types): conflicting type registration")
)

// New constructs a TypeRegistry that normalizes registered values to their
// nearest named type according to opts. A zero Options value means defaults.
func New(opts uref.Options) apis.TypeRegistry {
	if opts.MaxUnwrap <= 0 {
		opts = uref.Defaults()
	}
	return &registry{opts: opts}
}

// registry is a simple TypeRegistry implementation backed by sync.Map.
// It is the lookup behind factories that receive a type name as
// configuration: a name that was never registered resolves to "not found",
// which callers degrade to "no facet opinion".
type registry struct {
	// opts is used for type normalization on Register.
	opts uref.Options
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps name to reflect.Type.
	m sync.Map // map[string]reflect.Type
	// count tracks the number of registered entries.
	count int
}

// Register associates the nearest named type of v with the given name.
// It is idempotent for the same (name, type) pair.
func (r *registry) Register(name string, v any) error {
	// Validate inputs early.
	if v == nil {
		return ErrNilValue
	}
	if name == "" {
		return ErrEmptyName
	}

	// Normalize to the nearest named type according to r.opts.
	t, err := uref.Normalize(reflect.TypeOf(v), r.opts)
	if err != nil {
		return err // ErrReflectTypeNotNamed
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == t {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == t {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, t)
	r.count++
	return nil
}

// ForName returns the type registered under name, if present.
func (r *registry) ForName(name string) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(reflect.Type), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.TypeEntry {
	entries := make([]apis.TypeEntry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.TypeEntry{
			Name: key.(string),
			Type: value.(reflect.Type),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = sync.Map{}
	r.count = 0
}

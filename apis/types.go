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

import "reflect"

// TypeRegistry resolves configured type names to loadable Go types. It is
// the explicit, fallible counterpart of a class-for-name lookup: factories
// that receive a type name as configuration consult it and must treat a
// not-found result as "no opinion", never as a failure of the build.
type TypeRegistry interface {
	// Register associates the nearest named type of v with the given name.
	// Implementations should be idempotent; conflicting re-registrations
	// return an error.
	Register(name string, v any) error
	// ForName returns the type registered under name, if present.
	ForName(name string) (reflect.Type, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []TypeEntry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// TypeEntry is a single (name, type) association in a TypeRegistry snapshot.
type TypeEntry struct {
	// Name is the configured lookup name.
	Name string
	// Type is the registered reflect.Type.
	Type reflect.Type
}

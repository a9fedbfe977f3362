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

package sortedby

import (
	"fmt"

	"dirpx.dev/mfx/apis"
)

// NewLayoutFactory creates the factory that discovers the sorted-by facet
// from externally maintained layout properties. It is ordered before the
// annotation factory, so an explicit layout value overrides any
// declaration-level default.
func NewLayoutFactory(types apis.TypeRegistry) apis.Factory {
	return &layoutFactory{types: types}
}

type layoutFactory struct {
	types apis.TypeRegistry
}

var _ apis.Factory = (*layoutFactory)(nil)

// Kind implements apis.Factory.
func (*layoutFactory) Kind() apis.Kind { return Kind }

// TryBuild reads the sortedBy layout property and resolves it through the
// type registry. A name that does not resolve to a loadable Comparator is
// malformed metadata: it is reported as an error so the engine logs and
// degrades it to "no opinion" rather than failing the build.
func (f *layoutFactory) TryBuild(h apis.Holder, md apis.Metadata) (apis.Facet, error) {
	if md.Properties == nil {
		return nil, nil
	}
	name, ok := md.Properties.Property(PropertyKey)
	if !ok || name == "" {
		return nil, nil
	}
	return buildFromName(f.types, h, name)
}

// buildFromName resolves a configured comparator name to a facet.
func buildFromName(types apis.TypeRegistry, h apis.Holder, name string) (apis.Facet, error) {
	t, ok := types.ForName(name)
	if !ok {
		return nil, fmt.Errorf("sortedBy type %q is not registered", name)
	}
	c, ok := instantiate(t)
	if !ok {
		return nil, fmt.Errorf("sortedBy type %q (%v) is not a Comparator", name, t)
	}
	return newFacet(h, c), nil
}

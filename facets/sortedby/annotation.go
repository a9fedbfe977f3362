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
	"dirpx.dev/mfx/apis"
)

// NewAnnotationFactory creates the factory that discovers the sorted-by
// facet from a declaration-level annotation. It represents the
// convention-based default source and is ordered after the layout factory.
func NewAnnotationFactory(types apis.TypeRegistry) apis.Factory {
	return &annotationFactory{types: types}
}

type annotationFactory struct {
	types apis.TypeRegistry
}

var _ apis.Factory = (*annotationFactory)(nil)

// Kind implements apis.Factory.
func (*annotationFactory) Kind() apis.Kind { return Kind }

// TryBuild reads the sortedBy annotation and resolves it the same way the
// layout factory does.
func (f *annotationFactory) TryBuild(h apis.Holder, md apis.Metadata) (apis.Facet, error) {
	if md.Annotations == nil {
		return nil, nil
	}
	name, ok := md.Annotations.Property(PropertyKey)
	if !ok || name == "" {
		return nil, nil
	}
	return buildFromName(f.types, h, name)
}

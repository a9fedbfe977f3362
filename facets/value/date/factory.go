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

package date

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/format"
)

var timeType = reflect.TypeOf(time.Time{})

// TypeName is the metadata value that marks a member as a date.
const TypeName = "date"

const (
	// PropertyTypeKey is the layout metadata key carrying a member's
	// declared value type.
	PropertyTypeKey = "propertyType"

	// AnnotationTypeKey is the declaration annotation carrying it.
	AnnotationTypeKey = "valueType"
)

// NewFactory creates the factory attaching date value semantics. The
// configured format is resolved against the catalog once, up front: a
// name or mask that cannot produce a formatter is a configuration error,
// not per-holder metadata, and fails the build. The configured value is
// trimmed, and catalog names match case-insensitively; mask resolution
// keeps the original case, since mask tokens are case-sensitive.
func NewFactory(cfg apis.Config, catalog *format.Catalog) (apis.Factory, error) {
	name := strings.TrimSpace(cfg.GetString(CfgFormatKey, DefaultFormat))
	configured, ok := catalog.Title(strings.ToLower(name))
	if !ok {
		var err error
		configured, err = format.FromMask(name)
		if err != nil {
			return nil, fmt.Errorf("%s = %q: %w", CfgFormatKey, name, err)
		}
	}
	return &factory{catalog: catalog, configured: configured}, nil
}

type factory struct {
	catalog    *format.Catalog
	configured format.Formatter
}

var _ apis.Factory = (*factory)(nil)

// Kind implements apis.Factory.
func (*factory) Kind() apis.Kind { return Kind }

// TryBuild attaches the facet to members declared as dates, from either
// metadata source. All holders share the catalog and the prevalidated
// configured formatter; the override cache is per holder.
func (f *factory) TryBuild(h apis.Holder, md apis.Metadata) (apis.Facet, error) {
	if !declaresDate(md) {
		return nil, nil
	}
	return newFacet(h, f.catalog, f.configured), nil
}

func declaresDate(md apis.Metadata) bool {
	if md.Properties != nil {
		if v, ok := md.Properties.Property(PropertyTypeKey); ok && v == TypeName {
			return true
		}
	}
	if md.Annotations != nil {
		if v, ok := md.Annotations.Property(AnnotationTypeKey); ok && v == TypeName {
			return true
		}
	}
	return false
}

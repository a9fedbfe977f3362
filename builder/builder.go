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

// Package builder wires the default metamodel: the type registry and the
// engine with its factory chains in their fixed precedence order.
package builder

import (
	"fmt"
	"log/slog"
	"reflect"

	"golang.org/x/text/language"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/engine"
	"dirpx.dev/mfx/facets/sortedby"
	"dirpx.dev/mfx/facets/value/date"
	"dirpx.dev/mfx/format"
	"dirpx.dev/mfx/types"
	uref "dirpx.dev/mfx/utils/reflect"
)

const (
	// CfgLocaleKey configures the default rendering locale.
	CfgLocaleKey = "mfx.locale.default"

	// DefaultLocale applies when CfgLocaleKey is absent.
	DefaultLocale = "en"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildTypes builds and returns a new apis.TypeRegistry. If a pre-existing
// registry is provided, its entries are migrated into the new one.
func (b *builder) BuildTypes(_ apis.Config, prev apis.TypeRegistry, _ any) apis.TypeRegistry {
	reg := types.New(uref.Defaults())
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = reg.Register(e.Name, reflect.New(e.Type).Elem().Interface())
		}
	}
	return reg
}

// BuildEngine builds the resolution engine with the stock factory chains:
// for the sorted-by kind the layout source before the annotation source,
// then date value semantics. The format catalog and the configured date
// format are validated here; bad startup configuration fails the build.
// If ext carries a *slog.Logger the engine logs through it.
func (b *builder) BuildEngine(cfg apis.Config, reg apis.TypeRegistry, ext any) (apis.Engine, error) {
	locale := cfg.GetString(CfgLocaleKey, DefaultLocale)
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("mfx(builder): %s = %q: %w", CfgLocaleKey, locale, err)
	}
	catalog := format.New(format.WithDefaultLocale(tag))

	dateFactory, err := date.NewFactory(cfg, catalog)
	if err != nil {
		return nil, fmt.Errorf("mfx(builder): %w", err)
	}

	log, _ := ext.(*slog.Logger)
	return engine.New(log,
		sortedby.NewLayoutFactory(reg),
		sortedby.NewAnnotationFactory(reg),
		dateFactory,
	), nil
}

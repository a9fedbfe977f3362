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

// Package date implements value semantics for calendar dates: parsing
// user text through a chain of formats, relative entry against an anchor
// value, locale-aware rendering with a per-request format override, and a
// fixed canonical encoding for storage.
package date

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/facets"
	"dirpx.dev/mfx/facets/value"
	"dirpx.dev/mfx/format"
)

// Kind tags the date value-semantics capability.
const Kind apis.Kind = "value.date"

const (
	// CfgFormatKey configures the rendering format, by catalog name or
	// as a literal mask.
	CfgFormatKey = "mfx.value.format.date"

	// DefaultFormat applies when CfgFormatKey is absent.
	DefaultFormat = format.Medium

	// Width is the typical rendered length of a date.
	Width = 12
)

// Facet renders, parses, encodes and decodes date values for its holder.
// The configured formatter is fixed at build time; request-scoped
// overrides never touch it.
type Facet struct {
	value.Semantics
	catalog    *format.Catalog
	configured format.Formatter

	// ov* cache the most recent override formatter so repeated requests
	// with the same override name do not rebuild it.
	ovMu        sync.Mutex
	ovName      string
	ovFormatter format.Formatter
	ovValid     bool
	rebuilds    uint64
}

var _ apis.Facet = (*Facet)(nil)

func newFacet(h apis.Holder, catalog *format.Catalog, configured format.Formatter) *Facet {
	return &Facet{
		Semantics: value.NewSemantics(facets.NewBase(Kind, h), value.SemanticsSpec{
			ValueType: timeType,
			Width:     Width,
			Immutable: true,
			Equality:  value.EqualByValue,
		}),
		catalog:    catalog,
		configured: configured,
	}
}

// ConfiguredFormat returns the name of the formatter fixed at build time.
func (f *Facet) ConfiguredFormat() string {
	return f.configured.Name()
}

// Parse interprets user text as a date. Text starting with '+' or '-' is
// a relative entry offset from anchor; a zero anchor means there is no
// current value to offset from and the entry fails. Everything else runs
// through the catalog's parse chain for the given locale.
func (f *Facet) Parse(text string, anchor time.Time, tag language.Tag) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, &value.ParseError{Input: text, Err: value.ErrUnparseable}
	}
	if trimmed[0] == '+' || trimmed[0] == '-' {
		if anchor.IsZero() {
			return time.Time{}, &value.ParseError{Input: text, Err: value.ErrNoAnchor}
		}
		v, err := relative(trimmed, anchor)
		if err != nil {
			return time.Time{}, &value.ParseError{Input: text, Err: err}
		}
		return v, nil
	}
	v, err := f.catalog.Parse(trimmed, tag)
	if err != nil {
		return time.Time{}, &value.ParseError{Input: text, Err: err}
	}
	return v, nil
}

// Render produces the user-facing form of v, honoring a format override
// carried by ctx and falling back to the configured formatter. An
// undetermined tag renders in the catalog's default locale.
func (f *Facet) Render(ctx context.Context, v time.Time, tag language.Tag) string {
	return f.titleFormatter(ctx).Format(v, f.catalog.ResolveLocale(tag))
}

// RenderWithMask renders v through an explicit mask, bypassing both the
// configured formatter and any override. Locale resolution is the same as
// for Render.
func (f *Facet) RenderWithMask(v time.Time, mask string, tag language.Tag) (string, error) {
	fm, err := format.FromMask(mask)
	if err != nil {
		return "", err
	}
	return fm.Format(v, f.catalog.ResolveLocale(tag)), nil
}

// Encode produces the canonical stored form of v. The layout is fixed
// and independent of configuration and locale, so stored values survive
// any later format change.
func (f *Facet) Encode(v time.Time) string {
	return v.Format(format.EncodingLayout)
}

// Decode restores a value from its canonical stored form. The layout is
// strict; anything else indicates corruption.
func (f *Facet) Decode(s string) (time.Time, error) {
	v, err := time.ParseInLocation(format.EncodingLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &value.DecodeError{Input: s, Err: value.ErrBadEncoding}
	}
	return v, nil
}

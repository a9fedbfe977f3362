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

package format

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var (
	// ErrNoParse indicates that no format in the parse chain matched the
	// input text.
	ErrNoParse = errors.New("mfx(format): no format in the parse chain matched")
)

// Catalog names:
//
//   - iso_encoding — compact unpadded form, yyyyMMdd. This is the canonical
//     encoding grammar: stable across locale and display configuration.
//   - iso          — yyyy-MM-dd.
//   - long/medium/short — locale-dependent display forms.
//
// A configured value that is none of these names is treated as an ad hoc
// mask and synthesized on demand rather than registered.
const (
	ISOEncoding = "iso_encoding"
	ISO         = "iso"
	Long        = "long"
	Medium      = "medium"
	Short       = "short"
)

// EncodingLayout is the Go layout of the canonical encoding grammar.
const EncodingLayout = "20060102"

// New constructs an immutable Catalog seeded with the named display rules
// and the ordered parse chain: long, medium, short, iso, iso_encoding. The
// chain is deliberately more permissive than any single display rule, so
// heterogeneous user input parses while output stays predictable.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		def: language.English,
		titles: map[string]Formatter{
			ISOEncoding: {name: ISOEncoding, layout: EncodingLayout},
			ISO:         {name: ISO, layout: "2006-01-02"},
			Long: {name: Long, byLang: map[string]string{
				"en": "January 2, 2006",
				"de": "2. January 2006",
				"fr": "2 January 2006",
				"es": "2 de January de 2006",
			}},
			Medium: {name: Medium, byLang: map[string]string{
				"en": "Jan 2, 2006",
				"de": "02.01.2006",
				"fr": "2 Jan 2006",
				"es": "2 Jan 2006",
			}},
			Short: {name: Short, byLang: map[string]string{
				"en": "1/2/06",
				"de": "02.01.06",
				"fr": "02/01/2006",
				"es": "1/2/06",
			}},
		},
	}
	c.parse = []Formatter{
		c.titles[Long],
		c.titles[Medium],
		c.titles[Short],
		c.titles[ISO],
		c.titles[ISOEncoding],
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog is the process-wide set of textual formatting rules for dates:
// named display rules plus the priority-ordered list of rules attempted
// when parsing free text. It is constructed once at startup, injected into
// every codec that needs it, and never mutated afterwards.
type Catalog struct {
	def    language.Tag
	titles map[string]Formatter
	parse  []Formatter
}

// Option is a functional option that mutates a Catalog during construction.
type Option func(*Catalog)

// WithDefaultLocale sets the locale used when a caller supplies none.
func WithDefaultLocale(tag language.Tag) Option {
	return func(c *Catalog) {
		if tag != language.Und {
			c.def = tag
		}
	}
}

// DefaultLocale returns the locale used when a caller supplies none.
func (c *Catalog) DefaultLocale() language.Tag {
	return c.def
}

// ResolveLocale maps an undetermined tag to the catalog default.
func (c *Catalog) ResolveLocale(tag language.Tag) language.Tag {
	if tag == language.Und {
		return c.def
	}
	return tag
}

// Title returns the named display rule, if registered.
func (c *Catalog) Title(name string) (Formatter, bool) {
	f, ok := c.titles[name]
	return f, ok
}

// TitleOrMask resolves a configured name-or-mask value: a registered name
// returns its rule, anything else is synthesized as an ad hoc mask. An
// unusable mask is a configuration error.
func (c *Catalog) TitleOrMask(nameOrMask string) (Formatter, error) {
	if f, ok := c.titles[nameOrMask]; ok {
		return f, nil
	}
	return FromMask(nameOrMask)
}

// ParseChain returns the ordered parse rules (a copy).
func (c *Catalog) ParseChain() []Formatter {
	out := make([]Formatter, len(c.parse))
	copy(out, c.parse)
	return out
}

// Parse attempts each rule of the parse chain in order and returns the
// first successful interpretation of text. Failure identifies the input:
// callers surface it to users, never a silent zero value.
func (c *Catalog) Parse(text string, tag language.Tag) (time.Time, error) {
	tag = c.ResolveLocale(tag)
	for _, f := range c.parse {
		if t, err := f.Parse(text, tag); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrNoParse, text)
}

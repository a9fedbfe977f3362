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
	"time"

	"golang.org/x/text/language"
)

// Formatter renders a date to text and parses text back, for one formatting
// rule. A Formatter is an immutable value: catalog entries are shared
// process-wide and synthesized mask formatters are throwaway values, so no
// locking is ever needed around one.
type Formatter struct {
	// name is the catalog name ("iso", "medium", ...) or, for a synthesized
	// formatter, the mask it was built from.
	name string
	// layout is the fixed Go layout for locale-independent rules.
	layout string
	// byLang maps a base language ("en", "de", ...) to its layout for
	// locale-dependent rules; nil for fixed rules.
	byLang map[string]string
}

// Name returns the catalog name or originating mask of the formatter.
func (f Formatter) Name() string {
	return f.name
}

// IsZero reports whether f is the zero Formatter (no rule at all).
func (f Formatter) IsZero() bool {
	return f.name == "" && f.layout == "" && f.byLang == nil
}

// layoutFor picks the Go layout for the given base language, falling back
// to English for languages the rule has no specific form for.
func (f Formatter) layoutFor(lang string) string {
	if f.byLang == nil {
		return f.layout
	}
	if l, ok := f.byLang[lang]; ok {
		return l
	}
	return f.byLang["en"]
}

// Format renders t according to the rule, localizing month and weekday
// names for the matched language. An undetermined tag renders in English;
// catalog-level default-locale resolution happens in the caller.
func (f Formatter) Format(t time.Time, tag language.Tag) string {
	lang := baseLang(tag)
	out := t.Format(f.layoutFor(lang))
	if lang != "en" {
		out = localizeNames(out, lang)
	}
	return out
}

// Parse interprets text according to the rule. Month and weekday names are
// matched case-insensitively in the matched language. The returned time is a civil
// date pinned to midnight UTC.
func (f Formatter) Parse(text string, tag language.Tag) (time.Time, error) {
	lang := baseLang(tag)
	return time.ParseInLocation(f.layoutFor(lang), delocalizeNames(text, lang), time.UTC)
}

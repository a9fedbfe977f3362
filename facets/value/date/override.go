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
	"context"
	"sync/atomic"

	"dirpx.dev/mfx/format"
)

type ctxKey struct{}

// WithFormatOverride returns a context whose date renderings use the
// named catalog format or literal mask instead of the configured one.
// The override lives and dies with the context; concurrent requests
// without it are unaffected.
func WithFormatOverride(ctx context.Context, nameOrMask string) context.Context {
	return context.WithValue(ctx, ctxKey{}, nameOrMask)
}

// FormatOverride reports the format override carried by ctx, if any.
func FormatOverride(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKey{}).(string)
	return s, ok && s != ""
}

// titleFormatter picks the formatter for a rendering: the configured one
// unless ctx carries a differing override. Override formatters are built
// lazily and cached by name, so a stream of requests with the same
// override costs one build. An override that fails to resolve falls back
// to the configured formatter.
func (f *Facet) titleFormatter(ctx context.Context) format.Formatter {
	name, ok := FormatOverride(ctx)
	if !ok || name == f.configured.Name() {
		return f.configured
	}

	f.ovMu.Lock()
	defer f.ovMu.Unlock()
	if f.ovValid && f.ovName == name {
		return f.ovFormatter
	}
	fm, err := f.catalog.TitleOrMask(name)
	if err != nil {
		return f.configured
	}
	f.ovName = name
	f.ovFormatter = fm
	f.ovValid = true
	atomic.AddUint64(&f.rebuilds, 1)
	return fm
}

// Rebuilds reports how many times an override formatter has been built.
func (f *Facet) Rebuilds() uint64 {
	return atomic.LoadUint64(&f.rebuilds)
}

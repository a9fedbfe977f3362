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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"dirpx.dev/mfx/format"
	"dirpx.dev/mfx/holder"
)

func overrideFacet(t *testing.T) *Facet {
	t.Helper()
	catalog := format.New()
	configured, err := catalog.TitleOrMask(format.Medium)
	require.NoError(t, err)
	return newFacet(holder.New("order#shipDate"), catalog, configured)
}

func TestFormatOverride_Accessors(t *testing.T) {
	ctx := context.Background()

	_, ok := FormatOverride(ctx)
	assert.False(t, ok)

	name, ok := FormatOverride(WithFormatOverride(ctx, "iso"))
	assert.True(t, ok)
	assert.Equal(t, "iso", name)

	// An empty override is no override.
	_, ok = FormatOverride(WithFormatOverride(ctx, ""))
	assert.False(t, ok)
}

func TestTitleFormatter_LazyRebuild(t *testing.T) {
	f := overrideFacet(t)
	v := time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC)

	// No override: configured formatter, no build.
	require.Equal(t, "Mar 10, 2014", f.Render(context.Background(), v, language.English))
	assert.Equal(t, uint64(0), f.Rebuilds())

	// First overridden rendering builds the formatter once.
	iso := WithFormatOverride(context.Background(), "iso")
	require.Equal(t, "2014-03-10", f.Render(iso, v, language.English))
	assert.Equal(t, uint64(1), f.Rebuilds())

	// The same override again, even via a fresh context, hits the cache.
	require.Equal(t, "2014-03-10", f.Render(iso, v, language.English))
	require.Equal(t, "2014-03-10",
		f.Render(WithFormatOverride(context.Background(), "iso"), v, language.English))
	assert.Equal(t, uint64(1), f.Rebuilds())

	// A differing override rebuilds.
	long := WithFormatOverride(context.Background(), "long")
	require.Equal(t, "March 10, 2014", f.Render(long, v, language.English))
	assert.Equal(t, uint64(2), f.Rebuilds())

	// Flip-flopping rebuilds each time; the cache holds one entry.
	require.Equal(t, "2014-03-10", f.Render(iso, v, language.English))
	assert.Equal(t, uint64(3), f.Rebuilds())
}

func TestTitleFormatter_ConfiguredNameShortCircuits(t *testing.T) {
	f := overrideFacet(t)
	v := time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC)

	// Overriding with the configured name is not an override.
	ctx := WithFormatOverride(context.Background(), format.Medium)
	require.Equal(t, "Mar 10, 2014", f.Render(ctx, v, language.English))
	assert.Equal(t, uint64(0), f.Rebuilds())
}

func TestTitleFormatter_MaskOverride(t *testing.T) {
	f := overrideFacet(t)
	v := time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC)

	ctx := WithFormatOverride(context.Background(), "dd-MMM-yyyy")
	require.Equal(t, "10-Mar-2014", f.Render(ctx, v, language.English))
	assert.Equal(t, uint64(1), f.Rebuilds())
}

func TestTitleFormatter_BadOverrideFallsBack(t *testing.T) {
	f := overrideFacet(t)
	v := time.Date(2014, time.March, 10, 0, 0, 0, 0, time.UTC)

	ctx := WithFormatOverride(context.Background(), "qq-zz")
	assert.Equal(t, "Mar 10, 2014", f.Render(ctx, v, language.English))
	assert.Equal(t, uint64(0), f.Rebuilds())

	// The configured formatter is untouched afterwards.
	assert.Equal(t, "Mar 10, 2014", f.Render(context.Background(), v, language.English))
}

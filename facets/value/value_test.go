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

package value_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/mfx/apis"
	"dirpx.dev/mfx/facets"
	"dirpx.dev/mfx/facets/value"
	"dirpx.dev/mfx/holder"
)

func TestSemantics_Traits(t *testing.T) {
	h := holder.New("order#total")
	s := value.NewSemantics(facets.NewBase(apis.Kind("value.amount"), h), value.SemanticsSpec{
		ValueType:    reflect.TypeOf(0),
		Width:        10,
		Immutable:    true,
		Equality:     value.EqualByValue,
		DefaultValue: 0,
	})

	assert.Equal(t, apis.Kind("value.amount"), s.FacetKind())
	assert.Same(t, h, s.FacetHolder())
	assert.Equal(t, reflect.TypeOf(0), s.ValueType())
	assert.Equal(t, 10, s.Width())
	assert.True(t, s.Immutable())
	assert.Equal(t, value.EqualByValue, s.Equality())
	assert.Equal(t, 0, s.DefaultValue())
}

func TestEquality_String(t *testing.T) {
	assert.Equal(t, "byValue", value.EqualByValue.String())
	assert.Equal(t, "byReference", value.EqualByReference.String())
	assert.Equal(t, "unknown", value.Equality(9).String())
}

func TestErrorShapes(t *testing.T) {
	perr := &value.ParseError{Input: "next tuesday", Err: value.ErrUnparseable}
	assert.ErrorIs(t, perr, value.ErrUnparseable)
	assert.Contains(t, perr.Error(), "next tuesday")

	derr := &value.DecodeError{Input: "junk", Err: value.ErrBadEncoding}
	assert.ErrorIs(t, derr, value.ErrBadEncoding)
	assert.Contains(t, derr.Error(), "junk")

	// The two failure shapes stay distinguishable.
	var asParse *value.ParseError
	assert.False(t, errors.As(error(derr), &asParse))
}

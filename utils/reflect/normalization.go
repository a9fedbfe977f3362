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

package reflect

import (
	"errors"
	"reflect"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("mfx(reflect): type has no registered name")
)

// DefaultMaxUnwrap bounds container unwrapping depth when Options does not.
// A value of 8 is sufficient for all practical purposes.
const DefaultMaxUnwrap = 8

// Options carries the knobs that influence type normalization.
// It is passed by value and treated as immutable.
type Options struct {
	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map).
	// Acts as a safety guard against pathological nesting. Zero or negative
	// means DefaultMaxUnwrap.
	MaxUnwrap int

	// MapPreferElem controls which side of map[K]V is considered primary
	// when searching for a nearest named inner type. If true, prefer V;
	// otherwise K.
	MapPreferElem bool
}

// Defaults returns the Options used when callers have no opinion.
func Defaults() Options {
	return Options{MaxUnwrap: DefaultMaxUnwrap, MapPreferElem: true}
}

// Normalize unwraps containers according to opts (MaxUnwrap/MapPreferElem)
// and returns the nearest named inner type, or an error if none is found.
//
// Unwrapping policy:
//   - ptr/slice/array/chan  -> Elem()
//   - map[K]V: try preferred side first (Elem if MapPreferElem; otherwise Key);
//     if the preferred side is named, return it;
//     else try the other side; if still unnamed, continue unwrapping Elem().
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, opts Options) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := opts.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	preferElem := opts.MapPreferElem

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			// Try preferred side
			if preferElem {
				et := t.Elem()
				if et != nil && et.Name() != "" {
					return et, nil
				}
				// Fallback to the other side
				kt := t.Key()
				if kt != nil && kt.Name() != "" {
					return kt, nil
				}
				// Neither side named: keep unwrapping element
				t = et
			} else {
				kt := t.Key()
				if kt != nil && kt.Name() != "" {
					return kt, nil
				}
				et := t.Elem()
				if et != nil && et.Name() != "" {
					return et, nil
				}
				t = et
			}

		default:
			// Named, return; anonymous -> error
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

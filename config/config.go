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

// Package config provides the key-value configuration backing the
// metamodel: an in-memory map, YAML file loading with nested keys
// flattened to dotted form, and environment overrides.
package config

import (
	"dirpx.dev/mfx/apis"
)

// Static is an immutable set of dotted configuration keys. The zero
// value is a valid empty configuration.
type Static map[string]string

var _ apis.Config = Static(nil)

// GetString implements apis.Config. Absent keys yield def; configuration
// is read-only at resolution time, so absence is not an error.
func (s Static) GetString(key, def string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return def
}

// New constructs a Static from the given options, later options winning.
func New(opts ...Option) Static {
	s := Static{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option is a functional option that populates a Static during construction.
type Option func(Static)

// WithValue sets a single key.
func WithValue(key, value string) Option {
	return func(s Static) {
		s[key] = value
	}
}

// WithMap copies all entries of m.
func WithMap(m map[string]string) Option {
	return func(s Static) {
		for k, v := range m {
			s[k] = v
		}
	}
}

// Merge layers overlays over s, later overlays winning. s is unchanged.
func Merge(s Static, overlays ...Static) Static {
	out := Static{}
	for k, v := range s {
		out[k] = v
	}
	for _, o := range overlays {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

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

package apis

// PropertySource is an externally maintained key/value bag consulted by
// metadata-driven factories.
type PropertySource interface {
	// Property returns the value for name, if present.
	Property(name string) (string, bool)
}

// Metadata carries the raw per-element inputs a factory may consult. Each
// source may independently be nil, meaning that source is absent for the
// element; factories must treat a nil source as "no opinion" material.
type Metadata struct {
	// Properties is the external layout/properties bag, or nil.
	Properties PropertySource
	// Annotations holds declaration-level annotation values, or nil.
	Annotations PropertySource
}

// PropertyMap adapts a plain map to the PropertySource interface.
type PropertyMap map[string]string

// Property implements PropertySource for PropertyMap.
func (m PropertyMap) Property(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// PropertyFunc adapts a lookup function to the PropertySource interface.
type PropertyFunc func(name string) (string, bool)

// Property implements PropertySource for PropertyFunc.
func (f PropertyFunc) Property(name string) (string, bool) {
	return f(name)
}

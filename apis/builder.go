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

// Builder composes TypeRegistry and Engine from a Config.
// Implementations may migrate state from previous instances, or ignore them.
type Builder interface {
	// BuildTypes constructs a TypeRegistry for Config. May migrate entries
	// from a previous registry. ext is an optional extension context; its
	// meaning is implementation-defined.
	BuildTypes(cfg Config, prev TypeRegistry, ext any) TypeRegistry

	// BuildEngine constructs the resolution engine for Config, wiring the
	// per-kind factory chains in their configuration-time order. A corrupt
	// format catalog or startup configuration is fatal and surfaces here.
	BuildEngine(cfg Config, types TypeRegistry, ext any) (Engine, error)
}

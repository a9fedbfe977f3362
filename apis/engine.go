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

// Engine orchestrates the ordered factory chains that populate holders.
// Typical chain per kind: layout-metadata factory -> convention factory.
type Engine interface {
	// Resolve runs the factories registered for kind k against h in order
	// and returns the winning facet, or (nil, false) when no factory has an
	// opinion. It does not attach the facet.
	Resolve(h Holder, k Kind, md Metadata) (Facet, bool)

	// Process resolves and attaches every kind the engine knows about for
	// h. Kinds already present on h are left untouched.
	Process(h Holder, md Metadata) error

	// Kinds returns the kinds this engine can resolve, in resolution order.
	Kinds() []Kind
}

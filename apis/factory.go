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

// Factory is one source of truth for one facet kind. An engine chains the
// factories registered for a kind in configuration order (e.g. layout
// metadata before convention-based default); the first factory to produce a
// facet wins.
type Factory interface {
	// Kind returns the facet kind this factory produces.
	Kind() Kind

	// TryBuild inspects this factory's metadata source for holder h and
	// returns either a constructed facet, or (nil, nil) when the source has
	// no opinion. A non-nil error means the metadata that would license a
	// facet is malformed; engines log it and treat it as no opinion, so one
	// bad source never aborts metamodel construction.
	TryBuild(h Holder, md Metadata) (Facet, error)
}

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

// Config is the startup configuration boundary. It supplies the
// process-wide display-format name or mask and other per-kind factory
// inputs. Implementations must be safe for concurrent reads and should be
// treated as immutable after the metamodel is built.
type Config interface {
	// GetString returns the configured value for key, or def when the key
	// is absent.
	GetString(key, def string) string
}

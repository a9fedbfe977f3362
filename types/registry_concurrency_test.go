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

package types_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/mfx/types"
	uref "dirpx.dev/mfx/utils/reflect"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type C0 struct{}
type C1 struct{}
type C2 struct{}
type C3 struct{}
type C4 struct{}

// TestConcurrentRegisterAndForName verifies that Register/ForName/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentRegisterAndForName(t *testing.T) {
	reg := types.New(uref.Defaults())

	values := []any{C0{}, C1{}, C2{}, C3{}, C4{}}
	names := []string{"c0", "c1", "c2", "c3", "c4"}

	// Register once (sequential) to establish baseline.
	for i, v := range values {
		if err := reg.Register(names[i], v); err != nil {
			t.Fatalf("register %s: %v", names[i], err)
		}
	}

	// Hammer with concurrent lookups and idempotent re-registrations.
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				name := names[i%len(names)]
				if got, ok := reg.ForName(name); !ok || got == nil {
					t.Errorf("ForName failed for %q: ok=%v got=%v", name, ok, got)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	// Writers (idempotent re-register)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				j := (i + id) % len(values)
				_ = reg.Register(names[j], values[j]) // must be safe & idempotent
			}
		}(w)
	}

	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(values) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(values))
	}
	got := map[string]reflect.Type{}
	for _, e := range reg.Entries() {
		got[e.Name] = e.Type
	}
	for i, v := range values {
		if got[names[i]] != reflect.TypeOf(v) {
			t.Fatalf("entry mismatch for %q: got %v want %v", names[i], got[names[i]], reflect.TypeOf(v))
		}
	}
}

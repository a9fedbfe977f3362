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

package common

// Titler produces the user-facing title of a domain value.
//
// # Overview
//
// Titler is the primary, zero-reflection fast-path for rendering values
// inside the mfx value-semantics subsystem. When a value implements
// Titler, rendering logic MUST prefer this interface and MUST NOT consult
// any additional strategies (such as configured format rules, masks, or
// locale catalogs) for that value.
//
// Semantically, Titler is an instance-level contract: Title describes
// *this* value as a human would want to read it. Unlike canonical stored
// encodings, the returned title MAY vary with presentation concerns, but
// it MUST be derived only from the value itself.
//
// # Performance
//
// Implementations are intended to be cheap:
//
//   - SHOULD be constant-time and amortized O(1).
//   - SHOULD avoid heap allocations on the hot path.
//   - MUST NOT perform blocking operations or I/O.
//   - MUST be safe to call from multiple goroutines concurrently.
//
// # Usage
//
// Typical usage is to give a domain value direct control of its title:
//
//	type Quarter struct {
//	    Year int
//	    Q    int
//	}
//
//	func (q Quarter) Title() string {
//	    return fmt.Sprintf("Q%d %d", q.Q, q.Year)
//	}
//
// # Title guidelines
//
// In general, the Title value is expected to be:
//
//   - Non-empty for any valid value (MUST).
//   - Human-readable and display-ready (SHOULD).
//   - Short (SHOULD; one line RECOMMENDED).
//   - Free of markup or control characters (SHOULD).
type Titler interface {
	// Title returns the user-facing form of this value.
	//
	// # Contract
	//
	//   - The returned title MUST be deterministic for a given value.
	//   - The returned title MUST NOT depend on ambient state such as
	//     process-wide configuration or the system clock.
	//   - The implementation MUST be safe for concurrent calls from
	//     multiple goroutines.
	//
	// # Performance and side-effects
	//
	//   - Implementations SHOULD avoid heap allocations where feasible.
	//   - Implementations MUST NOT perform blocking operations, system
	//     calls, or I/O.
	//   - If a title needs derivation, it SHOULD be precomputed where the
	//     value is constructed rather than on every call.
	Title() string
}

// TypeTitler provides generic, type-aware titling for values of type T.
//
// # Overview
//
// TypeTitler is a generic, type-parametric titling interface. It allows
// different presentation strategies to be expressed in terms of a Go type
// parameter `T`, while still producing display titles consumable by the
// mfx value-semantics subsystem or higher rendering layers.
//
// Unlike Titler, which is implemented as a method on the value type
// itself, TypeTitler[T] separates:
//
//   - The *subject* being titled (a value of type T), and
//   - The *strategy* that decides how to present it.
//
// This is useful when:
//
//   - The same presentation strategy should be reused across multiple
//     types.
//   - Title derivation needs to be configured or injected (for example,
//     per module, per locale, or per environment).
//   - You want to experiment with different presentation policies
//     without changing the value types.
//
// # Usage
//
// A typical pattern is to define a generic struct that implements
// TypeTitler for any T:
//
//	type UpperTitler[T fmt.Stringer] struct{}
//
//	func (UpperTitler[T]) Title(v T) string {
//	    return strings.ToUpper(v.String())
//	}
type TypeTitler[T any] interface {
	// Title returns the user-facing form of a value of type T.
	//
	// # Contract
	//
	//   - The returned title MUST be deterministic for a given input v.
	//   - Implementations MUST be safe for concurrent calls from multiple
	//     goroutines.
	//
	// # Performance and side-effects
	//
	//   - Implementations SHOULD keep per-call cost low (ideally O(1)
	//     with respect to v), and SHOULD avoid unnecessary heap
	//     allocations.
	//   - Implementations MUST NOT perform blocking operations or I/O.
	Title(v T) string
}

// TitlerFunc adapts a plain function to the Titler interface.
//
// # Overview
//
// TitlerFunc is a convenience adapter that allows standalone functions
// with signature `func() string` to satisfy the Titler interface. This is
// useful when the title is naturally expressed as a function (for
// example, when it must be computed, or when you want to pass
// presentation behavior as a dependency) rather than as a method on the
// value type itself.
//
// Using TitlerFunc does not change the semantics of Titler: the function
// is still expected to return a deterministic, display-ready title
// derived only from the captured value.
//
// # Usage
//
//	var t Titler = TitlerFunc(func() string { return "Q1 2014" })
//	title := t.Title() // "Q1 2014"
//
// # Contract
//
//   - A TitlerFunc MUST return a deterministic string.
//   - TitlerFunc implementations MUST be safe to call from multiple
//     goroutines concurrently.
//   - TitlerFunc MUST NOT perform blocking operations or I/O.
type TitlerFunc func() string

// Title implements Titler for TitlerFunc.
//
// # Semantics
//
// Calling Title on a TitlerFunc is equivalent to invoking the underlying
// function value directly. All contractual requirements of Titler apply
// to the wrapped function.
func (f TitlerFunc) Title() string {
	return f()
}

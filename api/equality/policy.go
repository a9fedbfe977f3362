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

package equality

import (
	"fmt"
	"strings"
)

// Policy controls how instances of a modeled type compare for equality.
//
// # Overview
//
// Policy is a small enumerated type that describes how two instances of
// the same modeled type are to be compared. Value-semantics code uses
// this value to select the comparison behavior it applies when deciding
// whether a field changed, whether a cached title is reusable, or whether
// two stored forms denote the same value.
//
// Policy is intentionally minimal and type-agnostic: it does not define
// what "content" means for a given type, but instead selects a broad
// class of behavior (compare content vs compare identity).
//
// # Values
//
// The following policies are defined:
//
//   - ByValue      — instances compare by content.
//   - ByReference  — instances compare by identity.
//   - NotComparable — instances do not compare at all.
//
// # Contract
//
//   - Consumers MUST treat Policy as a stable, public API; adding new
//     values is allowed, but existing values MUST NOT change their
//     semantics in breaking ways.
//   - Policy values MUST be safe to use concurrently across goroutines
//     (they are plain integers).
//   - Policy SHOULD be used as an input to configuration or factory
//     code, not mutated at runtime in performance-critical paths.
type Policy int

const (
	// ByValue selects content-based comparison.
	//
	// # Semantics
	//
	// Under ByValue, two instances MUST be considered equal exactly when
	// their observable content is equal. This is the usual policy for
	// value types: dates, amounts, identifiers.
	//
	// Recommended usage:
	//
	//   - Immutable value types whose identity carries no meaning.
	//   - Types whose canonical stored forms are compared directly.
	ByValue Policy = iota

	// ByReference selects identity-based comparison.
	//
	// # Semantics
	//
	// Under ByReference, two instances MUST be considered equal exactly
	// when they are the same instance. Content plays no role; two
	// distinct instances with identical content are not equal.
	//
	// Recommended usage:
	//
	//   - Entity-like types whose identity is the point.
	//   - Types with mutable internal state.
	ByReference

	// NotComparable disables comparison for the associated type.
	//
	// # Semantics
	//
	// When NotComparable is selected, consumers MUST NOT compare
	// instances for equality at all; any operation requiring equality
	// SHOULD be reported as unsupported rather than silently guessed.
	//
	// NotComparable is primarily useful for:
	//
	//   - Opaque handles and resource wrappers.
	//   - Types whose content is unobservable or intentionally hidden.
	NotComparable
)

// String returns a human-readable representation of the Policy value.
//
// # Semantics
//
// String implements fmt.Stringer and provides short, stable identifiers
// suitable for logging, metrics labels, configuration dumps, and
// debugging. For all defined enum values, the returned strings are:
//
//   - ByValue       -> "ByValue"
//   - ByReference   -> "ByReference"
//   - NotComparable -> "NotComparable"
//
// For unknown or out-of-range values, String returns a diagnostic form
// "Unknown(<n>)", where <n> is the underlying integer value. This
// behavior is intentional and MUST NOT panic, so that corrupted or
// unexpected values can still be surfaced safely in logs.
//
// # Contract
//
//   - The mapping from known Policy values to strings MUST remain
//     stable; changing the spelling or casing is a breaking change for
//     systems that persist or parse these strings.
func (p Policy) String() string {
	switch p {
	case ByValue:
		return "ByValue"
	case ByReference:
		return "ByReference"
	case NotComparable:
		return "NotComparable"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Parse parses a textual representation of a Policy.
//
// # Overview
//
// Parse converts a string token into the corresponding Policy value. It
// accepts the same canonical tokens that are produced by Policy.String()
// for known values, with case-insensitive matching.
//
// Accepted (case-insensitive) inputs:
//
//   - "ByValue"       -> ByValue
//   - "ByReference"   -> ByReference
//   - "NotComparable" -> NotComparable
//
// Any other input results in a non-nil error.
//
// # Contract
//
//   - s MAY contain surrounding whitespace; it will be trimmed.
//   - On success, Parse returns a valid Policy and a nil error.
//   - On failure, Parse returns NotComparable and a non-nil error;
//     callers MUST NOT rely on the returned Policy in the error case.
//   - Parse MUST NOT panic for any input.
//
// # Usage
//
// Parse is suitable for parsing configuration values, environment
// variables, CLI flags, and other human-authored or external inputs. For
// hard-coded values that are expected to be valid, callers MAY prefer
// MustParse for brevity.
func Parse(s string) (Policy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return NotComparable, fmt.Errorf("equality: empty policy")
	}

	switch strings.ToUpper(trimmed) {
	case "BYVALUE":
		return ByValue, nil
	case "BYREFERENCE":
		return ByReference, nil
	case "NOTCOMPARABLE":
		return NotComparable, nil
	default:
		return NotComparable, fmt.Errorf("equality: unknown policy %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
//
// # Overview
//
// MustParse is a convenience helper for contexts where the input string
// is expected to be a valid Policy token and encountering an invalid
// value is considered a programmer error rather than a recoverable
// condition.
//
// It is intended for:
//
//   - Hard-coded configuration in Go code.
//   - Tests and examples.
//   - Initialization code where failing fast with a panic is acceptable.
//
// # Contract
//
//   - On valid input, MustParse returns the same value as Parse and
//     MUST NOT panic.
//   - On invalid input (including empty strings), MustParse panics with
//     a diagnostic message.
//   - Callers MUST NOT use MustParse on untrusted or user-supplied
//     data; they SHOULD use Parse instead and handle errors.
func MustParse(s string) Policy {
	policy, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return policy
}

// MarshalText encodes Policy as text.
//
// # Overview
//
// MarshalText implements encoding.TextMarshaler for Policy. It converts
// a Policy value into its canonical textual representation, suitable for
// use in textual encodings such as JSON, XML, YAML, configuration files
// and human-readable dumps.
//
// For all defined Policy values, MarshalText returns the same tokens as
// Policy.String().
//
// # Contract
//
//   - On success, MarshalText returns a non-nil byte slice and a nil
//     error.
//   - For unknown or out-of-range Policy values, MarshalText returns a
//     non-nil error and MUST NOT silently serialize an "Unknown(...)"
//     form; this avoids persisting potentially invalid states.
//   - MarshalText MUST NOT panic for any Policy value.
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case ByValue, ByReference, NotComparable:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("equality: cannot marshal unknown policy %d", p)
	}
}

// UnmarshalText decodes a Policy from its textual representation.
//
// # Overview
//
// UnmarshalText implements encoding.TextUnmarshaler for Policy. It
// accepts the same textual tokens as Parse, with case-insensitive
// matching. Leading and trailing whitespace are ignored. Any other value
// results in a non-nil error, and the target is left unchanged.
//
// # Contract
//
//   - text MAY contain surrounding whitespace; it will be trimmed.
//   - On success, *p is set to the parsed value and a nil error is
//     returned.
//   - On failure, *p MUST NOT be modified and a non-nil error is
//     returned.
//   - UnmarshalText MUST NOT panic for any input.
//   - Callers MUST NOT assume that an empty text slice is valid; it is
//     treated as an error.
func (p *Policy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("equality: empty policy")
	}

	value, err := Parse(trimmed)
	if err != nil {
		return err
	}

	*p = value
	return nil
}

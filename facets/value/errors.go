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

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparseable indicates user text no rule of the codec accepted.
	ErrUnparseable = errors.New("mfx(value): text is not parseable")

	// ErrNoAnchor indicates relative input arrived without a base value
	// to offset from.
	ErrNoAnchor = errors.New("mfx(value): relative entry requires a current value")

	// ErrBadEncoding indicates a stored canonical form that does not
	// match the codec's encoding layout.
	ErrBadEncoding = errors.New("mfx(value): stored form is corrupt")
)

// ParseError reports a failure to interpret user-facing text. It wraps
// the cause and preserves the offending input for the caller's message.
type ParseError struct {
	Input string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("mfx(value): cannot parse %q: %v", e.Input, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// DecodeError reports a canonical stored form that failed to decode.
// Unlike a ParseError it signals corruption, not a user mistake.
type DecodeError struct {
	Input string
	Err   error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("mfx(value): cannot decode %q: %v", e.Input, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *DecodeError) Unwrap() error { return e.Err }

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

package date

import (
	"fmt"
	"strconv"
	"strings"

	"time"

	"dirpx.dev/mfx/facets/value"
)

// relative applies an entry like "+2W" or "-10D" to anchor. The leading
// sign covers every token; tokens are separated by spaces and each is a
// count followed by a unit letter: D(ays), W(eeks), M(onths), Y(ears).
func relative(text string, anchor time.Time) (time.Time, error) {
	sign := 1
	if text[0] == '-' {
		sign = -1
	}
	body := strings.TrimSpace(text[1:])
	if body == "" {
		return time.Time{}, fmt.Errorf("%w: empty relative entry", value.ErrUnparseable)
	}

	v := anchor
	for _, tok := range strings.Fields(strings.ToUpper(body)) {
		n, unit, err := splitToken(tok)
		if err != nil {
			return time.Time{}, err
		}
		n *= sign
		switch unit {
		case 'D':
			v = v.AddDate(0, 0, n)
		case 'W':
			v = v.AddDate(0, 0, 7*n)
		case 'M':
			v = v.AddDate(0, n, 0)
		case 'Y':
			v = v.AddDate(n, 0, 0)
		default:
			return time.Time{}, fmt.Errorf("%w: unknown unit %q in %q",
				value.ErrUnparseable, string(unit), tok)
		}
	}
	return v, nil
}

func splitToken(tok string) (int, byte, error) {
	if len(tok) < 2 {
		return 0, 0, fmt.Errorf("%w: malformed token %q", value.ErrUnparseable, tok)
	}
	n, err := strconv.Atoi(tok[:len(tok)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed count in %q", value.ErrUnparseable, tok)
	}
	return n, tok[len(tok)-1], nil
}

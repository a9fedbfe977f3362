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

package format

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMask is returned when an empty mask is provided.
	ErrEmptyMask = errors.New("mfx(format): empty mask provided")
	// ErrBadMask indicates a mask token with no layout translation.
	ErrBadMask = errors.New("mfx(format): unsupported mask token")
)

// FromMask synthesizes a Formatter from a date mask such as "dd-MMM-yyyy".
// Masks use the conventional pattern letters (y year, M month, d day,
// E weekday, H/h m s time fields); runs of the same letter select padding
// and name forms. Text between single quotes is emitted verbatim.
func FromMask(mask string) (Formatter, error) {
	if strings.TrimSpace(mask) == "" {
		return Formatter{}, ErrEmptyMask
	}
	layout, err := translateMask(mask)
	if err != nil {
		return Formatter{}, err
	}
	return Formatter{name: mask, layout: layout}, nil
}

// maskRuns maps a run of pattern letters to its Go layout element.
var maskRuns = map[string]string{
	"yyyy": "2006", "yyy": "2006", "yy": "06", "y": "2006",
	"MMMM": "January", "MMM": "Jan", "MM": "01", "M": "1",
	"dd": "02", "d": "2",
	"EEEE": "Monday", "EEE": "Mon", "EE": "Mon", "E": "Mon",
	"HH": "15", "H": "15",
	"hh": "03", "h": "3",
	"mm": "04", "m": "4",
	"ss": "05", "s": "5",
	"a": "PM",
}

func isMaskLetter(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func translateMask(mask string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(mask); {
		ch := mask[i]

		// Quoted literal: copied without the quotes; '' is a single quote.
		if ch == '\'' {
			j := i + 1
			for j < len(mask) && mask[j] != '\'' {
				j++
			}
			if j == i+1 && j < len(mask) {
				b.WriteByte('\'')
			} else {
				b.WriteString(mask[i+1 : j])
			}
			if j < len(mask) {
				j++
			}
			i = j
			continue
		}

		if !isMaskLetter(ch) {
			b.WriteByte(ch)
			i++
			continue
		}

		// Collect the run of identical letters.
		j := i
		for j < len(mask) && mask[j] == ch {
			j++
		}
		run := mask[i:j]
		elem, ok := maskRuns[run]
		if !ok {
			return "", fmt.Errorf("%w: %q in mask %q", ErrBadMask, run, mask)
		}
		b.WriteString(elem)
		i = j
	}
	return b.String(), nil
}

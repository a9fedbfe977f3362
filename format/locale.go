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
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// supported lists the languages the catalog carries locale-dependent
// layouts and name tables for. English is first so it is the matcher
// fallback for undetermined or unsupported tags.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// baseLang maps an arbitrary BCP 47 tag onto the base language of the best
// supported match ("en", "de", "fr", "es"). Undetermined tags match English.
func baseLang(tag language.Tag) string {
	_, idx, _ := matcher.Match(tag)
	base, _ := supported[idx].Base()
	return base.String()
}

// english month and weekday names as produced by time.Time.Format with the
// "January", "Jan", "Monday" and "Mon" layout elements.
var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishMonthAbbrs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// weekdays are ordered like time.Weekday, Sunday first.
var englishWeekdays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var englishWeekdayAbbrs = [7]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

// localized name tables, full and abbreviated, per base language.
var monthNames = map[string][12]string{
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

var monthAbbrs = map[string][12]string{
	"de": {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
		"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	"fr": {"janv", "févr", "mars", "avr", "mai", "juin",
		"juil", "août", "sept", "oct", "nov", "déc"},
	"es": {"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sep", "oct", "nov", "dic"},
}

var weekdayNames = map[string][7]string{
	"de": {"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	"fr": {"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	"es": {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
}

var weekdayAbbrs = map[string][7]string{
	"de": {"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	"fr": {"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
	"es": {"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
}

// localizeTables maps English name words, as time.Format emits them, to
// their localized forms. delocalizeTables maps lowercased words back to the
// canonical English forms time.Parse understands; the English entries also
// canonicalize case-folded English input. Names are replaced whole-word, so
// a localized form containing an English abbreviation ("Montag" vs "Mon")
// can never be corrupted by a partial match.
var (
	localizeTables   = map[string]map[string]string{}
	delocalizeTables = map[string]map[string]string{}
)

func init() {
	for _, lang := range []string{"en", "de", "fr", "es"} {
		loc := map[string]string{}
		deloc := map[string]string{}

		// Weekdays before English before months: where a language reuses
		// one token for both (Spanish "mar"), the month reading wins.
		if wd, ok := weekdayNames[lang]; ok {
			abbr := weekdayAbbrs[lang]
			for i := range wd {
				loc[englishWeekdays[i]] = wd[i]
				loc[englishWeekdayAbbrs[i]] = abbr[i]
				deloc[strings.ToLower(wd[i])] = englishWeekdays[i]
				deloc[strings.ToLower(abbr[i])] = englishWeekdayAbbrs[i]
			}
		}
		for i := range englishMonths {
			deloc[strings.ToLower(englishMonths[i])] = englishMonths[i]
			deloc[strings.ToLower(englishMonthAbbrs[i])] = englishMonthAbbrs[i]
		}
		for i := range englishWeekdays {
			deloc[strings.ToLower(englishWeekdays[i])] = englishWeekdays[i]
			deloc[strings.ToLower(englishWeekdayAbbrs[i])] = englishWeekdayAbbrs[i]
		}
		if mn, ok := monthNames[lang]; ok {
			abbr := monthAbbrs[lang]
			for i := range mn {
				loc[englishMonths[i]] = mn[i]
				loc[englishMonthAbbrs[i]] = abbr[i]
				deloc[strings.ToLower(mn[i])] = englishMonths[i]
				deloc[strings.ToLower(abbr[i])] = englishMonthAbbrs[i]
			}
		}

		localizeTables[lang] = loc
		delocalizeTables[lang] = deloc
	}
}

// localizeNames rewrites the English month and weekday names time.Format
// produced into the target language.
func localizeNames(s string, lang string) string {
	table, ok := localizeTables[lang]
	if !ok || len(table) == 0 {
		return s
	}
	return mapWords(s, table, false)
}

// delocalizeNames rewrites localized month and weekday names back into the
// canonical English forms time.Parse understands. Matching is
// case-insensitive, which also canonicalizes English input whose case was
// folded by the caller.
func delocalizeNames(s string, lang string) string {
	table, ok := delocalizeTables[lang]
	if !ok {
		table = delocalizeTables["en"]
	}
	return mapWords(s, table, true)
}

// mapWords rewrites every letter run of s through table, leaving runs
// without an entry untouched. With fold set, lookups are case-insensitive.
func mapWords(s string, table map[string]string, fold bool) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsLetter(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		key := word
		if fold {
			key = strings.ToLower(word)
		}
		if repl, ok := table[key]; ok {
			b.WriteString(repl)
		} else {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

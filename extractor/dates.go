package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/docuscan/ocr-cin-extraction/utils"
)

// dateLayouts are the exact calendar formats tried first, in priority
// order: day-first as printed on the card, then the two locale variants
// seen on older issues.
var dateLayouts = []string{"02/01/2006", "01/02/2006", "2006/01/02"}

var (
	dateCandidate = regexp.MustCompile(`\d{1,4}/\d{1,2}/\d{1,4}`)
	digitRun      = regexp.MustCompile(`\d+`)
	sepReplacer   = strings.NewReplacer(".", "/", "-", "/")
)

// monthsByName recognizes French and English month names and their
// common abbreviations, matched on the diacritic-stripped uppercase form.
var monthsByName = map[string]time.Month{
	"JANVIER": time.January, "JANUARY": time.January, "JAN": time.January,
	"FEVRIER": time.February, "FEBRUARY": time.February, "FEV": time.February, "FEB": time.February,
	"MARS": time.March, "MARCH": time.March, "MAR": time.March,
	"AVRIL": time.April, "APRIL": time.April, "AVR": time.April, "APR": time.April,
	"MAI": time.May, "MAY": time.May,
	"JUIN": time.June, "JUNE": time.June, "JUN": time.June,
	"JUILLET": time.July, "JULY": time.July, "JUIL": time.July, "JUL": time.July,
	"AOUT": time.August, "AUGUST": time.August, "AOU": time.August, "AUG": time.August,
	"SEPTEMBRE": time.September, "SEPTEMBER": time.September, "SEP": time.September, "SEPT": time.September,
	"OCTOBRE": time.October, "OCTOBER": time.October, "OCT": time.October,
	"NOVEMBRE": time.November, "NOVEMBER": time.November, "NOV": time.November,
	"DECEMBRE": time.December, "DECEMBER": time.December, "DEC": time.December,
}

// ParseDate recovers a calendar date from noisy OCR text. Strategies are
// tried in order until one yields a real date:
//
//  1. exact layout matches on every separator-delimited candidate,
//  2. a heuristic over the digit runs when exactly three are present:
//     a leading 4-digit number above 1900 means year-month-day,
//     anything else day-month-year, with two-digit years pivoted
//     (below 30 into the 2000s, otherwise the 1900s),
//  3. a sliding three-token window recognizing a day, a month (numeric
//     or named in French or English) and a year in any order.
//
// Impossible dates such as February 31st are rejected at every step.
func ParseDate(text string) (time.Time, error) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, ErrEmptyZone
	}
	normalized := sepReplacer.Replace(text)

	for _, candidate := range dateCandidate.FindAllString(normalized, -1) {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t, nil
			}
		}
	}

	if t, ok := parseDigitGroups(digitRun.FindAllString(normalized, -1)); ok {
		return t, nil
	}

	if t, ok := parseTokenWindow(strings.Fields(text)); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDateUnrecoverable, utils.CleanValue(text))
}

// parseDigitGroups applies the three-group heuristic described above.
func parseDigitGroups(groups []string) (time.Time, bool) {
	if len(groups) != 3 {
		return time.Time{}, false
	}

	first, _ := strconv.Atoi(groups[0])
	if len(groups[0]) == 4 && first > 1900 {
		month, _ := strconv.Atoi(groups[1])
		day, _ := strconv.Atoi(groups[2])
		return makeDate(first, month, day)
	}

	day := first
	month, _ := strconv.Atoi(groups[1])
	year, ok := parseYear(groups[2])
	if !ok {
		return time.Time{}, false
	}
	return makeDate(year, month, day)
}

// parseTokenWindow slides a three-token window over the zone's words and
// accepts the first window whose tokens can be read as a day, a month
// and a year forming a valid date, trying every assignment of the three
// roles to the three tokens.
func parseTokenWindow(words []string) (time.Time, bool) {
	cleaned := make([]string, len(words))
	for i, w := range words {
		cleaned[i] = strings.Trim(w, ".,;:()")
	}

	var perms = [...][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for i := 0; i+2 < len(cleaned); i++ {
		window := cleaned[i : i+3]
		for _, p := range perms {
			day, ok := parseDay(window[p[0]])
			if !ok {
				continue
			}
			month, ok := parseMonth(window[p[1]])
			if !ok {
				continue
			}
			year, ok := parseYear(window[p[2]])
			if !ok {
				continue
			}
			if t, valid := makeDate(year, month, day); valid {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func parseDay(s string) (int, bool) {
	d, err := strconv.Atoi(s)
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

func parseMonth(s string) (int, bool) {
	if m, err := strconv.Atoi(s); err == nil {
		if m >= 1 && m <= 12 {
			return m, true
		}
		return 0, false
	}
	if m, ok := monthsByName[utils.NormalizeUpper(s)]; ok {
		return int(m), true
	}
	return 0, false
}

// parseYear accepts a four-digit year as-is and pivots two-digit years:
// values below 30 land in the 2000s, the rest in the 1900s.
func parseYear(s string) (int, bool) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	switch len(s) {
	case 4:
		return y, true
	case 2:
		if y < 30 {
			return 2000 + y, true
		}
		return 1900 + y, true
	}
	return 0, false
}

// makeDate builds a UTC midnight date and rejects values the calendar
// normalizes away, such as day 31 of February.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

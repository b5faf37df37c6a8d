package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanValue trims the string and collapses internal whitespace runs
// into single spaces.
func CleanValue(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripDiacritics removes combining marks so accented characters compare
// equal to their plain ASCII form ("né" -> "ne"). Moroccan ID cards mix
// French accents with OCR artifacts, so comparisons happen on the
// stripped form.
func StripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeUpper uppercases the input, strips diacritics and keeps only
// letters, digits, spaces and the separator characters (:/-) that appear
// around printed field values.
func NormalizeUpper(s string) string {
	s = strings.ToUpper(StripDiacritics(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == ':' || r == '/' || r == '-':
			b.WriteRune(r)
		}
	}
	return CleanValue(b.String())
}

// CompactAlnum drops everything that is not a letter or a digit.
func CompactAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}

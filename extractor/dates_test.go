package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateExactFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"day first", "01/02/1985", date(1985, time.February, 1)},
		{"dotted separators", "NE LE 01.02.1985", date(1985, time.February, 1)},
		{"dashed separators", "14-07-1990", date(1990, time.July, 14)},
		{"year first", "1985/02/01", date(1985, time.February, 1)},
		{"label noise around", "NAISSANCE 01/02/1985 MAROC", date(1985, time.February, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.text)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateDigitGroupHeuristic(t *testing.T) {
	// A leading 4-digit number above 1900 reads as year-month-day.
	got, err := ParseDate("1985 02 01")
	assert.NoError(t, err)
	assert.Equal(t, date(1985, time.February, 1), got)

	// Anything else reads as day-month-year.
	got, err = ParseDate("01 02 1985")
	assert.NoError(t, err)
	assert.Equal(t, date(1985, time.February, 1), got)
}

func TestParseDateTwoDigitYearPivot(t *testing.T) {
	got, err := ParseDate("01/02/29")
	assert.NoError(t, err)
	assert.Equal(t, date(2029, time.February, 1), got)

	got, err = ParseDate("01/02/85")
	assert.NoError(t, err)
	assert.Equal(t, date(1985, time.February, 1), got)
}

func TestParseDateTokenWindow(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"french month name", "NEE LE 1 JANVIER 1990", date(1990, time.January, 1)},
		{"english month first", "FEB 14 1991", date(1991, time.February, 14)},
		{"abbreviated with dot", "3 AOU. 1987", date(1987, time.August, 3)},
		{"two digit year in window", "5 MAI 29", date(2029, time.May, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.text)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateRejectsImpossibleDates(t *testing.T) {
	_, err := ParseDate("31/02/1990")
	assert.ErrorIs(t, err, ErrDateUnrecoverable)

	_, err = ParseDate("00/00/0000")
	assert.ErrorIs(t, err, ErrDateUnrecoverable)
}

func TestParseDateUnrecoverable(t *testing.T) {
	_, err := ParseDate("AUCUNE DATE ICI")
	assert.ErrorIs(t, err, ErrDateUnrecoverable)
	assert.Contains(t, err.Error(), "AUCUNE DATE ICI")
}

func TestParseDateEmptyZone(t *testing.T) {
	_, err := ParseDate("   ")
	assert.ErrorIs(t, err, ErrEmptyZone)
}

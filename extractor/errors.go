package extractor

import (
	"errors"
	"strings"
)

// Errors reported by the extraction pipeline. Field-level parsers fail
// with one of the sentinel values below; the pipeline is the only place
// that turns them into an aggregate FieldExtractionError.
var (
	// ErrMalformedInput means the parallel OCR columns have inconsistent lengths.
	ErrMalformedInput = errors.New("malformed OCR input: column lengths differ")

	// ErrEmptyContent means the surviving tokens carry no usable geometry.
	ErrEmptyContent = errors.New("no usable content geometry detected")

	// ErrNoTokensDetected means no token survived confidence filtering.
	ErrNoTokensDetected = errors.New("no tokens detected above the confidence threshold")

	// ErrEmptyZone means a field's calibrated region contained no qualifying tokens.
	ErrEmptyZone = errors.New("no tokens found in the field zone")

	// ErrInvalidIDFormat means the CIN zone text does not match the CIN grammar.
	ErrInvalidIDFormat = errors.New("text does not match the CIN format")

	// ErrDateUnrecoverable means every date parsing strategy failed.
	ErrDateUnrecoverable = errors.New("unable to recover a date of birth")
)

// FieldExtractionError names every mandatory field (plus the address,
// when requested) that could not be recovered from the document. It is
// produced once per extraction call; no partial result accompanies it.
type FieldExtractionError struct {
	Missing []Field
}

func (e *FieldExtractionError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return "unable to detect the following field(s) on the ID card: " + strings.Join(names, ", ")
}

package extractor

import (
	"log"

	"github.com/docuscan/ocr-cin-extraction/dto"
)

// Options configure one extraction call. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// Calibration maps fields to card regions. Nil falls back to
	// DefaultCalibration.
	Calibration Calibration

	// IncludeAddress toggles address extraction. When false the address
	// zone is never evaluated, so an illegible address cannot fail the
	// call.
	IncludeAddress bool

	// MinConfidence is the confidence floor applied during token
	// normalization. Zero keeps every detection the OCR engine did not
	// flag as uncertain.
	MinConfidence float64
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		Calibration:    DefaultCalibration(),
		IncludeAddress: true,
		MinConfidence:  DefaultMinConfidence,
	}
}

// Extract runs the full pipeline over raw OCR rows: token normalization,
// zone assignment, line reconstruction and per-field parsing. Field
// failures are accumulated rather than raised one at a time, so a single
// FieldExtractionError names every field that could not be recovered.
// The pipeline is a pure function of its inputs and safe for concurrent
// callers.
func Extract(data TokenData, opts Options) (*dto.CINFields, error) {
	cal := opts.Calibration
	if cal == nil {
		cal = DefaultCalibration()
	}

	tokens, err := NormalizeTokens(data, opts.MinConfidence)
	if err != nil {
		return nil, err
	}

	zones := assignZones(tokens, cal)
	fields := &dto.CINFields{}
	var missing []Field

	capture := func(field Field, err error) {
		log.Printf("field %s not recovered: %v", field, err)
		missing = append(missing, field)
	}

	if v, err := ParseIDNumber(reconstructLines(zones[FieldCIN])); err != nil {
		capture(FieldCIN, err)
	} else {
		fields.CIN = v
	}

	if v, err := parseFullName(reconstructLines(zones[FieldFullName])); err != nil {
		capture(FieldFullName, err)
	} else {
		fields.FullName = v
	}

	if v, err := ParseDate(reconstructLines(zones[FieldDateOfBirth])); err != nil {
		capture(FieldDateOfBirth, err)
	} else {
		fields.DateOfBirth = v
	}

	if v, err := parseCity(reconstructLines(zones[FieldCity])); err != nil {
		capture(FieldCity, err)
	} else {
		fields.City = v
	}

	if opts.IncludeAddress {
		if v, err := parseAddress(reconstructLines(zones[FieldAddress])); err != nil {
			capture(FieldAddress, err)
		} else {
			fields.Address = v
		}
	}

	if len(missing) > 0 {
		return nil, &FieldExtractionError{Missing: missing}
	}
	return fields, nil
}

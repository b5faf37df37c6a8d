package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/docuscan/ocr-cin-extraction/dto"
	"github.com/docuscan/ocr-cin-extraction/utils"
)

// Label patterns with value captures, for text that arrives without any
// geometry. Used by ExtractFromText only; the spatial pipeline strips
// labels per zone instead.
var (
	nameLine    = regexp.MustCompile(`(?i)^\s*(?:nom(?:\s+et\s+pr[ée]nom[s]?)?|pr[ée]nom[s]?)\b[:\s.-]*(.+)$`)
	birthLine   = regexp.MustCompile(`(?i)^\s*(?:date\s+de\s+naissance|naissance|n[ée]e?\s+le)\b[:\s.-]*(.*)$`)
	cityLine    = regexp.MustCompile(`(?i)^\s*(?:lieu\s+de\s+naissance|n[ée]e?\s+[àa]|[àa])\b[:\s.-]*(.+)$`)
	addressLine = regexp.MustCompile(`(?i)^\s*(?:adresse|adress|adr)\b[:\s.-]*(.*)$`)
)

// ExtractFromText recovers the card fields from plain OCR text using
// printed label keywords instead of zone geometry. It is the secondary
// strategy for inputs that carry no usable token positions, such as the
// text layer of a born-digital PDF scan bundle. Failure reporting
// matches Extract: one aggregate error naming every missing field.
func ExtractFromText(text string, includeAddress bool) (*dto.CINFields, error) {
	lines := splitLines(text)
	fields := &dto.CINFields{}
	var missing []Field

	if v, ok := findCIN(lines); ok {
		fields.CIN = v
	} else {
		missing = append(missing, FieldCIN)
	}

	if v, ok := findLabeled(lines, nameLine); ok {
		fields.FullName = v
	} else {
		missing = append(missing, FieldFullName)
	}

	if t, ok := findDate(lines); ok {
		fields.DateOfBirth = t
	} else {
		missing = append(missing, FieldDateOfBirth)
	}

	if v, ok := findLabeled(lines, cityLine); ok {
		fields.City = v
	} else {
		missing = append(missing, FieldCity)
	}

	if includeAddress {
		if v, ok := findAddress(lines); ok {
			fields.Address = v
		} else {
			missing = append(missing, FieldAddress)
		}
	}

	if len(missing) > 0 {
		return nil, &FieldExtractionError{Missing: missing}
	}
	return fields, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func findCIN(lines []string) (string, bool) {
	for _, line := range lines {
		if v, err := ParseIDNumber(line); err == nil {
			return v, true
		}
	}
	return "", false
}

func findLabeled(lines []string, pattern *regexp.Regexp) (string, bool) {
	for _, line := range lines {
		if m := pattern.FindStringSubmatch(line); m != nil {
			if v := utils.CleanValue(m[1]); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// findDate prefers birth-labeled lines and falls back to the first line
// anywhere that parses as a date.
func findDate(lines []string) (t time.Time, ok bool) {
	for _, line := range lines {
		if m := birthLine.FindStringSubmatch(line); m != nil {
			if parsed, err := ParseDate(m[1]); err == nil {
				return parsed, true
			}
		}
	}
	for _, line := range lines {
		if parsed, err := ParseDate(line); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// findAddress takes the text after the address label, continuing onto
// the next line when the label sits alone on its own line.
func findAddress(lines []string) (string, bool) {
	for i, line := range lines {
		m := addressLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if v := utils.CleanValue(m[1]); v != "" {
			return v, true
		}
		if i+1 < len(lines) {
			if v := utils.CleanValue(lines[i+1]); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docuscan/ocr-cin-extraction/utils"
)

// CIN grammar: one or two letters followed by five to seven digits.
var (
	cinExact  = regexp.MustCompile(`^[A-Z]{1,2}[0-9]{5,7}$`)
	cinSearch = regexp.MustCompile(`\b[A-Z]{1,2}[0-9]{5,7}\b`)
)

// Printed labels that precede field values on the card front. Values are
// matched after the label so "NOM ET PRENOM JOHN DOE" yields "JOHN DOE".
var (
	nameLabel    = regexp.MustCompile(`(?i)^\s*(?:nom(?:\s+et\s+pr[ée]nom[s]?)?|pr[ée]nom[s]?)\b[:\s.-]*`)
	cityLabel    = regexp.MustCompile(`(?i)^\s*(?:lieu\s+de\s+naissance|n[ée]e?\s+[àa]|[àa])\b[:\s.-]*`)
	addressLabel = regexp.MustCompile(`(?i)^\s*(?:adresse|adress|adr)\b[:\s.-]*`)
)

// ParseIDNumber normalizes zone text into a CIN. Matching is case and
// separator insensitive: the text is uppercased, diacritics removed and
// non-alphanumeric characters dropped before the grammar check. The
// whole cleaned text is tried first, then each token on its own, then a
// bounded search inside the text so a leading "CIN" label does not hide
// the number next to it.
func ParseIDNumber(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyZone
	}
	normalized := utils.NormalizeUpper(text)

	if compact := utils.CompactAlnum(normalized); cinExact.MatchString(compact) {
		return compact, nil
	}
	for _, word := range strings.Fields(normalized) {
		if w := utils.CompactAlnum(word); cinExact.MatchString(w) {
			return w, nil
		}
	}
	if m := cinSearch.FindString(normalized); m != "" {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidIDFormat, utils.CleanValue(text))
}

// parseFullName returns the name with document casing preserved and the
// printed label stripped.
func parseFullName(text string) (string, error) {
	return parseLabeled(text, nameLabel, " ")
}

// parseCity returns the birth city with the label stripped.
func parseCity(text string) (string, error) {
	return parseLabeled(text, cityLabel, " ")
}

// parseAddress keeps the address multi-line: the label is stripped from
// each line and the surviving lines are newline-joined.
func parseAddress(text string) (string, error) {
	return parseLabeled(text, addressLabel, "\n")
}

// parseLabeled strips the field label from the start of each line,
// collapses whitespace and joins the non-empty remainders. A zone that
// holds nothing besides its label is as missing as an empty one.
func parseLabeled(text string, label *regexp.Regexp, sep string) (string, error) {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = utils.CleanValue(label.ReplaceAllString(line, ""))
		if line != "" {
			parts = append(parts, line)
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyZone
	}
	return strings.Join(parts, sep), nil
}

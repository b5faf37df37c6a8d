package extractor

import (
	"sort"
	"strings"

	"github.com/docuscan/ocr-cin-extraction/utils"
)

// lineProximity is the maximum vertical distance, in normalized document
// height, between a token's top and the first token of a line for both
// to count as the same text line.
const lineProximity = 0.02

// reconstructLines rebuilds a zone's text in natural reading order:
// lines top to bottom, tokens left to right within a line, single spaces
// between tokens and a single newline between lines. The result depends
// only on token positions, never on input order.
func reconstructLines(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top != sorted[j].BBox.Top {
			return sorted[i].BBox.Top < sorted[j].BBox.Top
		}
		return sorted[i].BBox.Left < sorted[j].BBox.Left
	})

	var lines [][]Token
	current := []Token{sorted[0]}
	lineTop := sorted[0].BBox.Top
	for _, tok := range sorted[1:] {
		if tok.BBox.Top-lineTop > lineProximity {
			lines = append(lines, current)
			current = []Token{tok}
			lineTop = tok.BBox.Top
			continue
		}
		current = append(current, tok)
	}
	lines = append(lines, current)

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].BBox.Left < line[j].BBox.Left
		})
		words := make([]string, 0, len(line))
		for _, tok := range line {
			words = append(words, tok.Text)
		}
		text := utils.CleanValue(strings.Join(words, " "))
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}

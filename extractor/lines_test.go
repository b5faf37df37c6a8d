package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tok(text string, left, top float64) Token {
	return Token{
		Text:       text,
		Confidence: 95,
		BBox:       BBox{Left: left, Top: top, Right: left + 0.05, Bottom: top + 0.03},
	}
}

func TestReconstructLinesReadingOrder(t *testing.T) {
	tokens := []Token{
		tok("EXEMPLE", 0.5, 0.30),
		tok("99", 0.1, 0.31),
		tok("RABAT", 0.1, 0.50),
		tok("RUE", 0.3, 0.30),
	}

	got := reconstructLines(tokens)
	assert.Equal(t, "99 RUE EXEMPLE\nRABAT", got)
}

func TestReconstructLinesInputOrderIndependent(t *testing.T) {
	tokens := []Token{
		tok("UN", 0.1, 0.10),
		tok("DEUX", 0.3, 0.11),
		tok("TROIS", 0.1, 0.20),
		tok("QUATRE", 0.4, 0.21),
	}

	want := reconstructLines(tokens)
	reversed := []Token{tokens[3], tokens[2], tokens[1], tokens[0]}
	assert.Equal(t, want, reconstructLines(reversed))

	shuffled := []Token{tokens[2], tokens[0], tokens[3], tokens[1]}
	assert.Equal(t, want, reconstructLines(shuffled))
}

func TestReconstructLinesProximityThreshold(t *testing.T) {
	// 0.015 apart stays on one line, 0.03 starts a new one.
	sameLine := []Token{tok("A", 0.1, 0.100), tok("B", 0.3, 0.115)}
	assert.Equal(t, "A B", reconstructLines(sameLine))

	twoLines := []Token{tok("A", 0.1, 0.100), tok("B", 0.3, 0.130)}
	assert.Equal(t, "A\nB", reconstructLines(twoLines))
}

func TestReconstructLinesEmptyBucket(t *testing.T) {
	assert.Equal(t, "", reconstructLines(nil))
}

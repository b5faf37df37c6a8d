package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTokensScalesToContentBox(t *testing.T) {
	data := TokenData{
		Text:   []string{"CIN", "AB123456"},
		Conf:   []string{"95", "88.5"},
		Left:   []string{"0", "200"},
		Top:    []string{"0", "100"},
		Width:  []string{"100", "200"},
		Height: []string{"50", "100"},
	}

	tokens, err := NormalizeTokens(data, DefaultMinConfidence)
	assert.NoError(t, err)
	assert.Len(t, tokens, 2)

	// Content box is 400x200, so the second token spans [0.5,1]x[0.5,1].
	assert.Equal(t, "AB123456", tokens[1].Text)
	assert.InDelta(t, 0.5, tokens[1].BBox.Left, 1e-9)
	assert.InDelta(t, 0.5, tokens[1].BBox.Top, 1e-9)
	assert.InDelta(t, 1.0, tokens[1].BBox.Right, 1e-9)
	assert.InDelta(t, 1.0, tokens[1].BBox.Bottom, 1e-9)

	for _, tok := range tokens {
		assert.NotEmpty(t, tok.Text)
		assert.LessOrEqual(t, tok.BBox.Left, tok.BBox.Right)
		assert.LessOrEqual(t, tok.BBox.Top, tok.BBox.Bottom)
	}
}

func TestNormalizeTokensColumnLengthMismatch(t *testing.T) {
	data := TokenData{
		Text:   []string{"A", "B"},
		Conf:   []string{"95"},
		Left:   []string{"0", "10"},
		Top:    []string{"0", "10"},
		Width:  []string{"5", "5"},
		Height: []string{"5", "5"},
	}

	_, err := NormalizeTokens(data, DefaultMinConfidence)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestNormalizeTokensDropsNoise(t *testing.T) {
	data := TokenData{
		Text:   []string{"KEEP", "   ", "lowconf", "badconf"},
		Conf:   []string{"90", "95", "12", "not-a-number"},
		Left:   []string{"10", "20", "30", "40"},
		Top:    []string{"10", "20", "30", "40"},
		Width:  []string{"50", "50", "50", "50"},
		Height: []string{"20", "20", "20", "20"},
	}

	tokens, err := NormalizeTokens(data, DefaultMinConfidence)
	assert.NoError(t, err)
	assert.Len(t, tokens, 1)
	assert.Equal(t, "KEEP", tokens[0].Text)
}

func TestNormalizeTokensUnparsableCoordinatesBecomeZero(t *testing.T) {
	data := TokenData{
		Text:   []string{"GOOD", "BAD"},
		Conf:   []string{"95", "95"},
		Left:   []string{"100", "x"},
		Top:    []string{"100", "y"},
		Width:  []string{"100", "w"},
		Height: []string{"100", "h"},
	}

	tokens, err := NormalizeTokens(data, DefaultMinConfidence)
	assert.NoError(t, err)
	assert.Len(t, tokens, 2)
	assert.Equal(t, BBox{}, tokens[1].BBox)
}

func TestNormalizeTokensNoSurvivors(t *testing.T) {
	data := TokenData{
		Text:   []string{"", "faint"},
		Conf:   []string{"99", "3"},
		Left:   []string{"0", "0"},
		Top:    []string{"0", "0"},
		Width:  []string{"10", "10"},
		Height: []string{"10", "10"},
	}

	_, err := NormalizeTokens(data, DefaultMinConfidence)
	assert.ErrorIs(t, err, ErrNoTokensDetected)
}

func TestNormalizeTokensDegenerateGeometry(t *testing.T) {
	data := TokenData{
		Text:   []string{"GHOST"},
		Conf:   []string{"99"},
		Left:   []string{"0"},
		Top:    []string{"0"},
		Width:  []string{"0"},
		Height: []string{"0"},
	}

	_, err := NormalizeTokens(data, DefaultMinConfidence)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

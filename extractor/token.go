package extractor

import (
	"strconv"
	"strings"
)

// TokenData carries one OCR detection per index across parallel columns,
// in the row layout Tesseract's TSV output uses. Values are kept as
// strings because OCR engines emit them that way; parsing happens
// defensively during normalization. All columns must have equal length.
type TokenData struct {
	Text   []string
	Conf   []string
	Left   []string
	Top    []string
	Width  []string
	Height []string
}

// BBox is a normalized bounding rectangle with all coordinates in [0,1],
// relative to the detected content area. Left <= Right and Top <= Bottom
// always hold for boxes produced by NormalizeTokens.
type BBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Token is one OCR-detected text run with its confidence and normalized
// position. Tokens are immutable after normalization; downstream stages
// read them, they never write.
type Token struct {
	Text       string
	Confidence float64
	BBox       BBox
}

// DefaultMinConfidence is the confidence floor on the Tesseract 0-100
// scale below which a detection is treated as noise.
const DefaultMinConfidence = 40.0

// NormalizeTokens turns raw OCR rows into tokens with coordinates scaled
// to [0,1] against the content bounding box. Rows with blank text or a
// confidence below minConf are dropped; unparsable confidences count as
// below threshold and unparsable coordinates as zero. The content box is
// computed over the surviving rows only, so discarded detections never
// influence the geometry of the ones that remain.
func NormalizeTokens(data TokenData, minConf float64) ([]Token, error) {
	n := len(data.Text)
	if len(data.Conf) != n || len(data.Left) != n || len(data.Top) != n ||
		len(data.Width) != n || len(data.Height) != n {
		return nil, ErrMalformedInput
	}

	type rawRow struct {
		text                     string
		conf                     float64
		left, top, width, height float64
	}

	rows := make([]rawRow, 0, n)
	var maxX, maxY float64
	for i := 0; i < n; i++ {
		text := strings.TrimSpace(data.Text[i])
		if text == "" {
			continue
		}
		conf := parseFloatOr(data.Conf[i], -1)
		if conf < minConf {
			continue
		}
		row := rawRow{
			text:   text,
			conf:   conf,
			left:   parseFloatOr(data.Left[i], 0),
			top:    parseFloatOr(data.Top[i], 0),
			width:  parseFloatOr(data.Width[i], 0),
			height: parseFloatOr(data.Height[i], 0),
		}
		if right := row.left + row.width; right > maxX {
			maxX = right
		}
		if bottom := row.top + row.height; bottom > maxY {
			maxY = bottom
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoTokensDetected
	}
	if maxX <= 0 || maxY <= 0 {
		return nil, ErrEmptyContent
	}

	tokens := make([]Token, 0, len(rows))
	for _, row := range rows {
		box := BBox{
			Left:   clamp01(row.left / maxX),
			Top:    clamp01(row.top / maxY),
			Right:  clamp01((row.left + row.width) / maxX),
			Bottom: clamp01((row.top + row.height) / maxY),
		}
		if box.Right < box.Left {
			box.Right = box.Left
		}
		if box.Bottom < box.Top {
			box.Bottom = box.Top
		}
		tokens = append(tokens, Token{Text: row.text, Confidence: row.conf, BBox: box})
	}
	return tokens, nil
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

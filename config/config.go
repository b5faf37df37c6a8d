package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      string
	MinConfidence     float64
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	// The Latin side of the card is printed in French; English stays
	// loaded for the CIN number and date digits.
	languages := os.Getenv("OCR_LANGUAGES")
	if languages == "" {
		languages = "eng+fra"
	}

	minConfidence := 40.0
	if raw := os.Getenv("MIN_OCR_CONFIDENCE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			minConfidence = v
		}
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		OCRLanguages:      languages,
		MinConfidence:     minConfidence,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}

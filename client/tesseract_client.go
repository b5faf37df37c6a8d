package client

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/docuscan/ocr-cin-extraction/extractor"
)

type TesseractClient struct {
	dataPath  string
	languages []string
}

func NewTesseractClient(dataPath, languages string) *TesseractClient {
	return &TesseractClient{
		dataPath:  dataPath,
		languages: strings.Split(languages, "+"),
	}
}

// ExtractTokensFromFile runs word-level OCR on an uploaded file and
// returns the detections as raw token rows for the extraction pipeline.
func (tc *TesseractClient) ExtractTokensFromFile(fileHeader *multipart.FileHeader) (extractor.TokenData, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return extractor.TokenData{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tempFile, err := tc.CreateTempFile(file, fileHeader.Filename)
	if err != nil {
		return extractor.TokenData{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.ExtractTokens(tempFile)
}

// ExtractTokens collects every word Tesseract detects in the image along
// with its confidence and pixel bounding box. Values stay in the string
// row form the pipeline normalizes from.
func (tc *TesseractClient) ExtractTokens(filePath string) (extractor.TokenData, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)
	if err := client.SetLanguage(tc.languages...); err != nil {
		return extractor.TokenData{}, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(filePath); err != nil {
		return extractor.TokenData{}, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return extractor.TokenData{}, fmt.Errorf("failed to read word boxes: %w", err)
	}

	data := extractor.TokenData{
		Text:   make([]string, 0, len(boxes)),
		Conf:   make([]string, 0, len(boxes)),
		Left:   make([]string, 0, len(boxes)),
		Top:    make([]string, 0, len(boxes)),
		Width:  make([]string, 0, len(boxes)),
		Height: make([]string, 0, len(boxes)),
	}
	for _, box := range boxes {
		data.Text = append(data.Text, box.Word)
		data.Conf = append(data.Conf, strconv.FormatFloat(box.Confidence, 'f', 2, 64))
		data.Left = append(data.Left, strconv.Itoa(box.Box.Min.X))
		data.Top = append(data.Top, strconv.Itoa(box.Box.Min.Y))
		data.Width = append(data.Width, strconv.Itoa(box.Box.Dx()))
		data.Height = append(data.Height, strconv.Itoa(box.Box.Dy()))
	}
	return data, nil
}

// ExtractText returns the plain recognized text of the image, for the
// keyword fallback when token geometry turned out unusable.
func (tc *TesseractClient) ExtractText(filePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)
	if err := client.SetLanguage(tc.languages...); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}

// CreateTempFile creates a temporary file from uploaded content
func (tc *TesseractClient) CreateTempFile(file multipart.File, filename string) (string, error) {
	ext := filepath.Ext(filename)
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, file); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}

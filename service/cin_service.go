package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	_ "golang.org/x/image/webp"

	"github.com/docuscan/ocr-cin-extraction/client"
	"github.com/docuscan/ocr-cin-extraction/dto"
	"github.com/docuscan/ocr-cin-extraction/extractor"
	"github.com/docuscan/ocr-cin-extraction/utils"
)

// minTextLayerLength is the smallest embedded PDF text layer worth
// parsing; anything shorter is treated as a scanned document.
const minTextLayerLength = 40

// CINService extracts structured fields from an uploaded Moroccan ID
// card. Strategy order: QR code when the card carries one, the spatial
// token pipeline otherwise, and keyword matching over plain text when no
// usable geometry exists.
type CINService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
	minConfidence   float64
}

// NewCINService creates a new CINService instance
func NewCINService(tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor, minConfidence float64) *CINService {
	return &CINService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
		minConfidence:   minConfidence,
	}
}

// ExtractFromFile extracts ID card fields from a PDF or image upload.
func (s *CINService) ExtractFromFile(ctx context.Context, fileData []byte, mimeType string, includeAddress bool) (*dto.CINExtractResponse, error) {
	var img image.Image
	var err error

	if strings.Contains(mimeType, "pdf") {
		log.Println("Processing PDF file for CIN extraction")

		// A text layer means the PDF was born digital; the keyword
		// fallback reads it directly without another OCR pass.
		if text, textErr := s.pdfProcessor.ExtractText(fileData); textErr == nil &&
			len(strings.TrimSpace(text)) >= minTextLayerLength {
			if fields, parseErr := extractor.ExtractFromText(text, includeAddress); parseErr == nil {
				return response(fields, "text"), nil
			} else {
				log.Printf("PDF text layer parsing failed, trying page images: %v", parseErr)
			}
		}

		images, imgErr := s.pdfProcessor.ExtractImages(fileData)
		if imgErr != nil {
			return nil, fmt.Errorf("failed to extract images from PDF: %w", imgErr)
		}
		if len(images) == 0 {
			return nil, fmt.Errorf("no card image found in PDF")
		}
		img = images[0]
	} else {
		log.Println("Processing image file for CIN extraction")
		img, err = decodeImage(fileData)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
	}

	// Newer biometric cards carry a QR code with the printed fields;
	// decoding it beats OCR whenever it is present and legible.
	if fields, qrErr := s.extractFromQR(img, includeAddress); qrErr == nil {
		log.Println("Successfully extracted card data from QR code")
		return response(fields, "qr"), nil
	} else {
		log.Printf("QR extraction failed or no QR found: %v. Falling back to OCR...", qrErr)
	}

	tempFile, err := saveImageToTempFile(img)
	if err != nil {
		return nil, fmt.Errorf("failed to stage card image for OCR: %w", err)
	}
	defer os.Remove(tempFile)

	data, err := s.tesseractClient.ExtractTokens(tempFile)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	opts := extractor.DefaultOptions()
	opts.IncludeAddress = includeAddress
	opts.MinConfidence = s.minConfidence

	fields, err := extractor.Extract(data, opts)
	if err == nil {
		return response(fields, "ocr"), nil
	}

	// Without usable geometry the zone pipeline cannot run at all; one
	// more pass over the plain recognized text is still worth trying.
	if errors.Is(err, extractor.ErrNoTokensDetected) || errors.Is(err, extractor.ErrEmptyContent) {
		log.Printf("Token pipeline found no usable geometry (%v), trying keyword fallback", err)
		text, textErr := s.tesseractClient.ExtractText(tempFile)
		if textErr != nil {
			return nil, fmt.Errorf("OCR failed: %w", textErr)
		}
		fields, fallbackErr := extractor.ExtractFromText(text, includeAddress)
		if fallbackErr != nil {
			return nil, fallbackErr
		}
		return response(fields, "text"), nil
	}

	return nil, err
}

// extractFromQR decodes the card's QR code and parses its
// semicolon-delimited payload: CIN;NAME;DOB;CITY;ADDRESS.
func (s *CINService) extractFromQR(img image.Image, includeAddress bool) (*dto.CINFields, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR code: %w", err)
	}

	return ParseQRPayload(result.GetText(), includeAddress)
}

// ParseQRPayload validates the QR payload fields with the same grammar
// the OCR parsers enforce.
func ParseQRPayload(payload string, includeAddress bool) (*dto.CINFields, error) {
	parts := strings.Split(payload, ";")
	if len(parts) < 4 {
		return nil, fmt.Errorf("unexpected QR payload with %d fields", len(parts))
	}

	cin, err := extractor.ParseIDNumber(parts[0])
	if err != nil {
		return nil, fmt.Errorf("QR payload CIN invalid: %w", err)
	}
	dob, err := extractor.ParseDate(parts[2])
	if err != nil {
		return nil, fmt.Errorf("QR payload birth date invalid: %w", err)
	}

	fullName := utils.CleanValue(parts[1])
	city := utils.CleanValue(parts[3])
	if fullName == "" || city == "" {
		return nil, fmt.Errorf("QR payload misses name or city")
	}

	fields := &dto.CINFields{
		CIN:         cin,
		FullName:    fullName,
		DateOfBirth: dob,
		City:        city,
	}
	if includeAddress && len(parts) > 4 {
		fields.Address = utils.CleanValue(parts[4])
	}
	return fields, nil
}

func response(fields *dto.CINFields, source string) *dto.CINExtractResponse {
	return &dto.CINExtractResponse{
		Fields:  *fields,
		Source:  source,
		Message: "Extraction completed successfully.",
	}
}

// decodeImage decodes PNG, JPEG or WEBP card uploads.
func decodeImage(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	log.Printf("Decoded %s card image", format)
	return img, nil
}

// saveImageToTempFile stages an image as a temporary PNG for Tesseract.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "cin-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	return tempFile.Name(), nil
}

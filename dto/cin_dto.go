package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
	"time"
)

// CINFields is the structured data extracted from a Moroccan national ID
// card. Every field except the address is mandatory; a populated value
// is only ever returned when all mandatory fields were recovered.
type CINFields struct {
	CIN         string    `json:"cin"`
	FullName    string    `json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	City        string    `json:"city"`
	Address     string    `json:"address,omitempty"`
}

// CINExtractRequest represents an extraction request built from the
// uploaded file and query options.
type CINExtractRequest struct {
	File           *multipart.FileHeader
	IncludeAddress bool
}

// Validate checks the upload before any processing happens.
func (r *CINExtractRequest) Validate() error {
	if r.File == nil {
		return fmt.Errorf("file is required")
	}

	filename := strings.ToLower(r.File.Filename)
	validExtensions := []string{".pdf", ".png", ".jpg", ".jpeg", ".webp"}
	for _, ext := range validExtensions {
		if strings.HasSuffix(filename, ext) {
			return nil
		}
	}
	return fmt.Errorf("invalid file type. Supported: PDF, PNG, JPG, WEBP")
}

// CINExtractResponse is the envelope returned by the extraction endpoint.
// Source records which strategy produced the fields: "qr" for the card's
// QR code, "ocr" for the spatial token pipeline, "text" for the
// keyword fallback over a PDF text layer.
type CINExtractResponse struct {
	Fields  CINFields `json:"fields"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

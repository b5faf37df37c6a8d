package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/docuscan/ocr-cin-extraction/dto"
	"github.com/docuscan/ocr-cin-extraction/extractor"
	"github.com/docuscan/ocr-cin-extraction/service"
)

// CINHandler handles ID card extraction requests
type CINHandler struct {
	cinService *service.CINService
}

// NewCINHandler creates a new CINHandler instance
func NewCINHandler(cinService *service.CINService) *CINHandler {
	return &CINHandler{
		cinService: cinService,
	}
}

// ExtractCIN handles the POST /cin/extract endpoint. The card image (or
// PDF scan) arrives as the "image" multipart field; the include_address
// query parameter defaults to true and lets callers skip the address
// zone when its legibility is known to be poor.
func (h *CINHandler) ExtractCIN(c *gin.Context) {
	log.Println("Received CIN extraction request")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "An ID card image is required", err)
		return
	}

	includeAddress := true
	if raw := c.Query("include_address"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "include_address must be a boolean", err)
			return
		}
		includeAddress = parsed
	}

	request := &dto.CINExtractRequest{
		File:           fileHeader,
		IncludeAddress: includeAddress,
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	if len(fileData) == 0 {
		h.sendError(c, http.StatusBadRequest, "The uploaded file appears to be empty", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	response, err := h.cinService.ExtractFromFile(c.Request.Context(), fileData, mimeType, includeAddress)
	if err != nil {
		status := http.StatusInternalServerError
		var fieldErr *extractor.FieldExtractionError
		if errors.As(err, &fieldErr) ||
			errors.Is(err, extractor.ErrNoTokensDetected) ||
			errors.Is(err, extractor.ErrEmptyContent) ||
			errors.Is(err, extractor.ErrMalformedInput) {
			status = http.StatusUnprocessableEntity
		}
		h.sendError(c, status, "Failed to extract ID card data", err)
		return
	}

	log.Printf("CIN extraction completed successfully (source=%s)", response.Source)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *CINHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/docuscan/ocr-cin-extraction/client"
	"github.com/docuscan/ocr-cin-extraction/config"
	"github.com/docuscan/ocr-cin-extraction/handler"
	"github.com/docuscan/ocr-cin-extraction/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	cinService := service.NewCINService(tesseractClient, pdfProcessor, cfg.MinConfidence)

	// Initialize handler layer
	cinHandler := handler.NewCINHandler(cinService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "CIN Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		cin := api.Group("/cin")
		{
			cin.POST("/extract", cinHandler.ExtractCIN)
		}
	}

	// Start server
	log.Printf("Starting CIN Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

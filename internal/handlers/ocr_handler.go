package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vesoapp/veso-backend/internal/services"
)

// OCRHandler handles ticket-photo recognition requests
type OCRHandler struct {
	ocrService services.OCRService
}

// NewOCRHandler creates a new OCRHandler
func NewOCRHandler(ocrService services.OCRService) *OCRHandler {
	return &OCRHandler{ocrService: ocrService}
}

type ocrRequest struct {
	Image  string `json:"image" binding:"required"`
	Engine string `json:"engine"`
}

// Recognize handles POST /ocr
func (h *OCRHandler) Recognize(c *gin.Context) {
	var req ocrRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image is required"})
		return
	}

	result, err := h.ocrService.Recognize(c.Request.Context(), req.Image, req.Engine)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, services.ErrNoEngine) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"numbers":   result.Numbers,
		"date":      result.Date,
		"province":  result.Province,
		"rawText":   result.RawText,
		"modelUsed": result.ModelUsed,
	})
}

// Engines handles GET /ocr/engines
func (h *OCRHandler) Engines(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"engines": h.ocrService.Engines(),
	})
}

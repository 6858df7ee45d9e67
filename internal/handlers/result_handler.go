package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vesoapp/veso-backend/internal/models"
	"github.com/vesoapp/veso-backend/internal/services"
)

const maxPrefetchDays = 30

// ResultHandler handles result-related HTTP requests
type ResultHandler struct {
	resultService services.ResultService
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// GetResults handles GET /results?date=DD-MM-YYYY&region=
func (h *ResultHandler) GetResults(c *gin.Context) {
	date := c.DefaultQuery("date", models.FormatDate(time.Now()))
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be DD-MM-YYYY"})
		return
	}

	region, ok := parseRegion(c.Query("region"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "region must be bac, trung or nam"})
		return
	}

	set, fromCache := h.resultService.Fetch(c.Request.Context(), date, region)
	source := "fresh"
	if fromCache {
		source = "cache"
	}

	// An empty set is a valid answer: the draw may simply not have
	// happened yet.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    set,
		"date":    date,
		"source":  source,
	})
}

// Prefetch handles GET /results/prefetch?days=N&region=
func (h *ResultHandler) Prefetch(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "days must be a positive integer"})
		return
	}
	if days > maxPrefetchDays {
		days = maxPrefetchDays
	}

	region, ok := parseRegion(c.Query("region"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "region must be bac, trung or nam"})
		return
	}

	rows, summary := h.resultService.Prefetch(c.Request.Context(), days, region)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"days":    rows,
		"summary": summary,
	})
}

// parseRegion validates the optional region query parameter. Empty means all
// regions.
func parseRegion(raw string) (models.Region, bool) {
	switch models.Region(raw) {
	case "", models.RegionNorth, models.RegionCentral, models.RegionSouth:
		return models.Region(raw), true
	default:
		return "", false
	}
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vesoapp/veso-backend/internal/models"
	"github.com/vesoapp/veso-backend/internal/services"
)

// TicketHandler composes the fetch pipeline and the prize matcher into one
// server-side check call.
type TicketHandler struct {
	resultService services.ResultService
	ticketService services.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(resultService services.ResultService, ticketService services.TicketService) *TicketHandler {
	return &TicketHandler{resultService: resultService, ticketService: ticketService}
}

type checkRequest struct {
	Numbers  []string `json:"numbers" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Province string   `json:"province"`
}

type checkRow struct {
	Number string                `json:"number"`
	Wins   []models.WinningMatch `json:"wins"`
}

// Check handles POST /tickets/check
func (h *TicketHandler) Check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "numbers and date are required"})
		return
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be DD-MM-YYYY"})
		return
	}

	// A known province narrows the fetch to its region; the matcher still
	// checks the whole set, so a mislabeled ticket loses nothing.
	var region models.Region
	if p, ok := models.ProvinceBySlug(req.Province); ok {
		region = p.Region
	}

	results, fromCache := h.resultService.Fetch(c.Request.Context(), req.Date, region)

	rows := make([]checkRow, 0, len(req.Numbers))
	for _, number := range req.Numbers {
		rows = append(rows, checkRow{
			Number: number,
			Wins:   h.ticketService.Check(number, results),
		})
	}

	source := "fresh"
	if fromCache {
		source = "cache"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"date":       req.Date,
		"source":     source,
		"hasResults": len(results) > 0,
		"tickets":    rows,
	})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vesoapp/veso-backend/internal/services"
)

// ScheduleHandler handles drawing-schedule HTTP requests
type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// GetSchedule handles GET /schedule?date=YYYY-MM-DD&region=
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	region, ok := parseRegion(c.Query("region"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "region must be bac, trung or nam"})
		return
	}

	provinces := h.scheduleService.ProvincesForDate(date, region)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"date":      date.Format("2006-01-02"),
		"weekday":   date.Weekday().String(),
		"provinces": provinces,
	})
}

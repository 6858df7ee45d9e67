package services

import (
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
)

// Compile-time check to ensure ScheduleServiceImpl implements ScheduleService
var _ ScheduleService = (*ScheduleServiceImpl)(nil)

// ScheduleServiceImpl resolves the drawing schedule from the static
// province table.
type ScheduleServiceImpl struct{}

// NewScheduleService creates a new ScheduleServiceImpl.
func NewScheduleService() *ScheduleServiceImpl {
	return &ScheduleServiceImpl{}
}

// ProvincesForDate returns the provinces drawing on the date's weekday,
// optionally filtered by region, in table order.
func (s *ScheduleServiceImpl) ProvincesForDate(date time.Time, region models.Region) []models.Province {
	day := date.Weekday()
	provinces := make([]models.Province, 0, 8)
	for _, p := range models.Provinces {
		if !p.DrawsOn(day) {
			continue
		}
		if region != "" && p.Region != region {
			continue
		}
		provinces = append(provinces, p)
	}
	return provinces
}

package services

import (
	"context"
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
)

// ResultService resolves drawing results for a date+region query.
type ResultService interface {
	// Fetch returns the result set for a DD-MM-YYYY date and optional
	// region. It never errors: total failure is an empty set. fromCache
	// reports whether any cache tier served the query.
	Fetch(ctx context.Context, date string, region models.Region) (set models.ResultSet, fromCache bool)

	// Prefetch walks backward from today populating the caches for the
	// given number of days.
	Prefetch(ctx context.Context, days int, region models.Region) ([]models.PrefetchDay, models.PrefetchSummary)
}

// ScheduleService resolves which provinces draw on a date.
type ScheduleService interface {
	ProvincesForDate(date time.Time, region models.Region) []models.Province
}

// TicketService checks ticket numbers against resolved results.
type TicketService interface {
	// Check computes every winning match for one ticket number. Pure, no I/O.
	Check(ticketNumber string, results models.ResultSet) []models.WinningMatch
}

// OCRService turns a ticket photo into a structured candidate.
type OCRService interface {
	// Recognize runs the requested engine (or the best available one when
	// engine is empty) over a base64 or data-URL encoded image.
	Recognize(ctx context.Context, image string, engine string) (*models.OCRResult, error)

	// Engines lists the names of the available engines, preferred first.
	Engines() []string
}

package services

import (
	"testing"
	"time"

	"github.com/vesoapp/veso-backend/internal/models"
)

func TestProvincesForDate(t *testing.T) {
	svc := NewScheduleService()
	// 2024-01-15 was a Monday.
	monday := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("monday without region filter", func(t *testing.T) {
		got := svc.ProvincesForDate(monday, "")
		want := []string{"mien-bac", "phu-yen", "tphcm", "dong-thap", "ca-mau"}
		if len(got) != len(want) {
			t.Fatalf("got %d provinces, want %d: %+v", len(got), len(want), got)
		}
		for i, slug := range want {
			if got[i].Slug != slug {
				t.Errorf("position %d: got %s, want %s", i, got[i].Slug, slug)
			}
		}
	})

	t.Run("monday southern region only", func(t *testing.T) {
		got := svc.ProvincesForDate(monday, models.RegionSouth)
		want := []string{"tphcm", "dong-thap", "ca-mau"}
		if len(got) != len(want) {
			t.Fatalf("got %d provinces, want %d: %+v", len(got), len(want), got)
		}
		for i, slug := range want {
			if got[i].Slug != slug {
				t.Errorf("position %d: got %s, want %s", i, got[i].Slug, slug)
			}
		}
	})

	t.Run("northern pool draws every day", func(t *testing.T) {
		for d := 0; d < 7; d++ {
			date := monday.AddDate(0, 0, d)
			got := svc.ProvincesForDate(date, models.RegionNorth)
			if len(got) != 1 || got[0].Slug != "mien-bac" {
				t.Errorf("%s: got %+v", date.Weekday(), got)
			}
		}
	})
}

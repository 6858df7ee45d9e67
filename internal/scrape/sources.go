// Package scrape turns third-party result pages into typed result sets.
// None of the upstream sites offers a stable contract; the source list and
// the parser are best-effort by design.
package scrape

import (
	"fmt"

	"github.com/vesoapp/veso-backend/internal/models"
)

// Source is one external result site. URL builds the page address for a
// given day-month-year and region; the page is always fetched through the
// CORS relay.
type Source struct {
	Name string
	URL  func(day, month, year string, region models.Region) string
}

func regionPath(region models.Region) string {
	switch region {
	case models.RegionNorth:
		return "mien-bac"
	case models.RegionCentral:
		return "mien-trung"
	default:
		return "mien-nam"
	}
}

// Sources returns the fallback chain, tried strictly in order. The first
// source whose page parses into at least one result wins.
func Sources() []Source {
	return []Source{
		{
			Name: "xoso.me",
			URL: func(day, month, year string, _ models.Region) string {
				return fmt.Sprintf("https://xoso.me/xskt/ngay-%s-%s-%s.html", day, month, year)
			},
		},
		{
			Name: "xskt.com.vn",
			URL: func(day, month, year string, _ models.Region) string {
				return fmt.Sprintf("https://xskt.com.vn/xskq-xo-so-ket-qua/xsmb-%s-%s-%s.html", day, month, year)
			},
		},
		{
			Name: "minhngoc.net.vn",
			URL: func(day, month, year string, region models.Region) string {
				return fmt.Sprintf("https://www.minhngoc.net.vn/ket-qua-xo-so/%s/%s-%s-%s.html", regionPath(region), day, month, year)
			},
		},
		{
			Name: "kqxs.vn",
			URL: func(day, month, year string, region models.Region) string {
				return fmt.Sprintf("https://kqxs.vn/xo-so-%s/%s-%s-%s", regionPath(region), day, month, year)
			},
		},
		{
			Name: "ketqua.net",
			URL: func(day, month, year string, region models.Region) string {
				return fmt.Sprintf("https://ketqua.net/xo-so-%s-%s-%s-%s.html", regionPath(region), day, month, year)
			},
		},
	}
}

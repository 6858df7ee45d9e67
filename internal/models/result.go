package models

import "time"

// DateLayout is the day-month-year format used by the result sources and by
// the public results endpoint.
const DateLayout = "02-01-2006"

// FormatDate renders a time as DD-MM-YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LotteryResult is one province's (or one whole region's) outcome for a
// single date. Prize lists are ordered and keyed by tier key ("DB", "G1"...).
// A tier list may be shorter than the structure's slot count when the source
// published partial data, but every entry has the tier's digit length.
type LotteryResult struct {
	Name   string              `json:"name" bson:"name"`
	Region Region              `json:"region" bson:"region"`
	Date   string              `json:"date" bson:"date"`
	Prizes map[string][]string `json:"prizes" bson:"prizes"`
}

// ResultSet maps province (or region) key to its result for one date+region
// query. It is the unit the caches store and the fetch pipeline returns.
type ResultSet map[string]LotteryResult

// WinningMatch is one (province, tier, winning number) hit for a checked
// ticket. Amount may be zero for combinations the payout table does not
// list; that still counts as a match.
type WinningMatch struct {
	Province      string `json:"province"`
	Prize         string `json:"prize"`
	PrizeNumber   string `json:"prizeNumber"`
	YourNumber    string `json:"yourNumber"`
	MatchedDigits int    `json:"matchedDigits"`
	Amount        int64  `json:"prizeAmount"`
}

// PrefetchDay is the per-day outcome row of a prefetch run.
type PrefetchDay struct {
	Date   string `json:"date"`
	Status string `json:"status"` // cached, fetched, no_data or error
	Count  int    `json:"count"`
}

// PrefetchSummary aggregates a prefetch run.
type PrefetchSummary struct {
	Total   int `json:"total"`
	Cached  int `json:"cached"`
	Fetched int `json:"fetched"`
	NoData  int `json:"noData"`
	Errors  int `json:"errors"`
}

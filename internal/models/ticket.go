package models

// TicketCandidate is what the info extractor could read off a ticket photo.
// Any field may be empty; partial recognition is the normal case.
type TicketCandidate struct {
	Numbers  []string `json:"numbers"`
	Date     string   `json:"date,omitempty"`     // YYYY-MM-DD
	Province string   `json:"province,omitempty"` // province slug
}

// OCRResult is the outcome of one recognition pass, candidate fields plus
// the raw model/engine text for user review.
type OCRResult struct {
	Numbers   []string `json:"numbers"`
	Date      string   `json:"date,omitempty"`
	Province  string   `json:"province,omitempty"`
	RawText   string   `json:"rawText,omitempty"`
	ModelUsed string   `json:"modelUsed,omitempty"`
}

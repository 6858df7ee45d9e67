package scrape

import (
	"regexp"
	"strings"

	"github.com/vesoapp/veso-backend/internal/models"
)

// tokenPattern matches a 2-6 digit run sitting alone between two tag
// boundaries, which is how every known source renders winning numbers.
var tokenPattern = regexp.MustCompile(`>\s*(\d{2,6})\s*<`)

// minUniqueTokens is the floor below which a page is assumed to be an error
// or placeholder rather than a published drawing. A full southern drawing
// renders 18 numbers, a northern one 27, so 15 leaves room for partial pages
// while still rejecting navigation chrome.
const minUniqueTokens = 15

// Parse heuristically extracts one region-wide result from raw source HTML.
// The returned set is empty when the page does not look like real results.
//
// The tier assignment is bucket-and-slice: unique tokens are grouped by digit
// length and consumed by the region's tiers in table order. That assumes the
// source lays numbers out in prize order, which the known sources do most of
// the time; when one deviates the slots come out shuffled, and the only hard
// guarantee kept is that every entry has its tier's digit length.
func Parse(html, date string, region models.Region) models.ResultSet {
	if !region.Valid() {
		region = models.RegionSouth
	}

	tokens := uniqueTokens(html)
	if len(tokens) < minUniqueTokens {
		return models.ResultSet{}
	}

	buckets := make(map[int][]string)
	for _, tok := range tokens {
		buckets[len(tok)] = append(buckets[len(tok)], tok)
	}

	prizes := make(map[string][]string)
	cursors := make(map[int]int)
	for _, tier := range models.PrizeStructure(region) {
		bucket := buckets[tier.Digits]
		start := cursors[tier.Digits]

		if tier.Digits == 6 && len(bucket) == 0 {
			// Sources regularly drop the special prize's leading zero or
			// merge it into the 5-digit rows; fall back to the first 5-digit
			// token without consuming it from that bucket.
			if five := buckets[5]; len(five) > 0 {
				prizes[tier.Key] = []string{five[0]}
			} else {
				prizes[tier.Key] = []string{}
			}
			continue
		}

		end := start + tier.Count
		if end > len(bucket) {
			end = len(bucket)
		}
		if start > end {
			start = end
		}
		prizes[tier.Key] = append([]string{}, bucket[start:end]...)
		cursors[tier.Digits] = end
	}

	return models.ResultSet{
		region.Key(): {
			Name:   region.DisplayName(),
			Region: region,
			Date:   date,
			Prizes: prizes,
		},
	}
}

// uniqueTokens extracts the markup-delimited numeric tokens in first-seen
// order with duplicates dropped.
func uniqueTokens(html string) []string {
	matches := tokenPattern.FindAllStringSubmatch(html, -1)
	seen := make(map[string]struct{}, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tok := strings.TrimSpace(m[1])
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

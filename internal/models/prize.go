package models

// PrizeTier describes one prize level within a region's structure: how many
// winning numbers the tier holds and how many digits each number has.
type PrizeTier struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Digits int    `json:"digits"`
	Count  int    `json:"count"`
}

// Southern and central drawings share one structure (6-digit special prize,
// eight numbered tiers). The north has its own (5-digit special, seven tiers).
var (
	southernTiers = []PrizeTier{
		{Key: "DB", Label: "ĐB", Digits: 6, Count: 1},
		{Key: "G1", Label: "G1", Digits: 5, Count: 1},
		{Key: "G2", Label: "G2", Digits: 5, Count: 1},
		{Key: "G3", Label: "G3", Digits: 5, Count: 2},
		{Key: "G4", Label: "G4", Digits: 5, Count: 7},
		{Key: "G5", Label: "G5", Digits: 4, Count: 1},
		{Key: "G6", Label: "G6", Digits: 4, Count: 3},
		{Key: "G7", Label: "G7", Digits: 3, Count: 1},
		{Key: "G8", Label: "G8", Digits: 2, Count: 1},
	}

	northernTiers = []PrizeTier{
		{Key: "DB", Label: "ĐB", Digits: 5, Count: 1},
		{Key: "G1", Label: "G1", Digits: 5, Count: 1},
		{Key: "G2", Label: "G2", Digits: 5, Count: 2},
		{Key: "G3", Label: "G3", Digits: 5, Count: 6},
		{Key: "G4", Label: "G4", Digits: 4, Count: 4},
		{Key: "G5", Label: "G5", Digits: 4, Count: 6},
		{Key: "G6", Label: "G6", Digits: 3, Count: 3},
		{Key: "G7", Label: "G7", Digits: 2, Count: 4},
	}
)

// PrizeStructure returns the ordered tier table for a region.
func PrizeStructure(region Region) []PrizeTier {
	if region == RegionNorth {
		return northernTiers
	}
	return southernTiers
}

// payouts maps (tier key, matched trailing digits) to the claim amount in
// VND. Combinations absent from the table pay zero.
var payouts = map[string]map[int]int64{
	"DB": {6: 2_000_000_000, 5: 40_000_000, 4: 15_000_000, 3: 6_500_000, 2: 100_000},
	"G1": {5: 30_000_000, 4: 10_000_000, 3: 5_000_000, 2: 80_000},
	"G2": {5: 15_000_000, 4: 6_500_000, 3: 3_000_000, 2: 70_000},
	"G3": {5: 10_000_000, 4: 4_000_000, 2: 70_000},
	"G4": {5: 3_000_000, 4: 1_000_000, 2: 70_000},
	"G5": {4: 1_000_000, 2: 70_000},
	"G6": {4: 400_000, 3: 200_000, 2: 70_000},
	"G7": {3: 200_000, 2: 70_000},
	"G8": {2: 70_000},
}

// PrizeAmount returns the payout in VND for a match of the given trailing
// digit count on the given tier. Unlisted combinations return 0, so a
// matched-but-worthless entry is still reported as a match.
func PrizeAmount(tierKey string, matchedDigits int) int64 {
	return payouts[tierKey][matchedDigits]
}

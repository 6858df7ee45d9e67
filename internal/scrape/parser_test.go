package scrape

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vesoapp/veso-backend/internal/models"
)

// wrapTokens renders numbers the way the sources do: each alone inside a
// table cell.
func wrapTokens(tokens []string) string {
	var b strings.Builder
	b.WriteString("<html><body><table>")
	for _, tok := range tokens {
		fmt.Fprintf(&b, "<tr><td> %s </td></tr>", tok)
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

func southernPageTokens() []string {
	return []string{
		"889246",
		"12345", "23456", "34567", "45678", "56789", "67890", "78901", "89012", "90123", "11223", "22334",
		"1234", "2345", "3456", "4567",
		"246",
		"46",
	}
}

func TestParseFloor(t *testing.T) {
	t.Run("14 unique tokens is rejected", func(t *testing.T) {
		tokens := southernPageTokens()[:14]
		set := Parse(wrapTokens(tokens), "15-01-2024", models.RegionSouth)
		if len(set) != 0 {
			t.Fatalf("expected empty set below floor, got %d entries", len(set))
		}
	})

	t.Run("15 unique tokens is accepted", func(t *testing.T) {
		tokens := southernPageTokens()[:15]
		set := Parse(wrapTokens(tokens), "15-01-2024", models.RegionSouth)
		if len(set) == 0 {
			t.Fatal("expected a result at the floor")
		}
	})

	t.Run("duplicates do not count toward the floor", func(t *testing.T) {
		tokens := southernPageTokens()[:14]
		tokens = append(tokens, tokens[0], tokens[1], tokens[2])
		set := Parse(wrapTokens(tokens), "15-01-2024", models.RegionSouth)
		if len(set) != 0 {
			t.Fatal("duplicated tokens must not satisfy the floor")
		}
	})
}

func TestParseSouthernAssignment(t *testing.T) {
	set := Parse(wrapTokens(southernPageTokens()), "15-01-2024", models.RegionSouth)
	res, ok := set["mien-nam"]
	if !ok {
		t.Fatalf("missing mien-nam entry: %+v", set)
	}
	if res.Region != models.RegionSouth || res.Date != "15-01-2024" {
		t.Errorf("bad metadata: %+v", res)
	}

	want := map[string][]string{
		"DB": {"889246"},
		"G1": {"12345"},
		"G2": {"23456"},
		"G3": {"34567", "45678"},
		"G4": {"56789", "67890", "78901", "89012", "90123", "11223", "22334"},
		"G5": {"1234"},
		"G6": {"2345", "3456", "4567"},
		"G7": {"246"},
		"G8": {"46"},
	}
	for tier, nums := range want {
		got := res.Prizes[tier]
		if len(got) != len(nums) {
			t.Fatalf("tier %s: got %v want %v", tier, got, nums)
		}
		for i := range nums {
			if got[i] != nums[i] {
				t.Errorf("tier %s slot %d: got %s want %s", tier, i, got[i], nums[i])
			}
		}
	}
}

func TestParseSpecialFallback(t *testing.T) {
	// No 6-digit token on the page: the special prize falls back to the
	// first 5-digit token, which G1 still receives as well.
	tokens := southernPageTokens()[1:]
	set := Parse(wrapTokens(tokens), "15-01-2024", models.RegionSouth)
	res := set["mien-nam"]
	if len(res.Prizes["DB"]) != 1 || res.Prizes["DB"][0] != "12345" {
		t.Errorf("DB fallback: got %v", res.Prizes["DB"])
	}
	if len(res.Prizes["G1"]) != 1 || res.Prizes["G1"][0] != "12345" {
		t.Errorf("G1 after fallback: got %v", res.Prizes["G1"])
	}
}

func TestParseDigitLengthInvariant(t *testing.T) {
	// Every assigned number must have its tier's digit length even when the
	// page is short on tokens of some lengths.
	tokens := []string{
		"12345", "23456", "34567", "45678", "56789", "67890", "78901", "89012",
		"1234", "2345",
		"111", "222", "333",
		"11", "22",
	}
	set := Parse(wrapTokens(tokens), "01-02-2024", models.RegionNorth)
	res, ok := set["mien-bac"]
	if !ok {
		t.Fatalf("missing mien-bac entry: %+v", set)
	}
	for _, tier := range models.PrizeStructure(models.RegionNorth) {
		for _, num := range res.Prizes[tier.Key] {
			if len(num) != tier.Digits {
				t.Errorf("tier %s has %d-digit entry %s, want %d digits", tier.Key, len(num), num, tier.Digits)
			}
		}
		if len(res.Prizes[tier.Key]) > tier.Count {
			t.Errorf("tier %s overfilled: %v", tier.Key, res.Prizes[tier.Key])
		}
	}
}

func TestParseUnknownRegionDefaultsSouth(t *testing.T) {
	set := Parse(wrapTokens(southernPageTokens()), "15-01-2024", "")
	if _, ok := set["mien-nam"]; !ok {
		t.Fatalf("expected southern default, got %+v", set)
	}
}

// Package ocr turns raw recognized text into a structured ticket candidate.
// It does not touch any OCR engine itself; engines live in pkg/vision.
package ocr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vesoapp/veso-backend/internal/models"
)

// digitConfusions undoes the letter/digit swaps tesseract-class engines make
// on ticket print. Applied only where digits are being hunted; words such as
// "tám" or province names would be destroyed by it.
var digitConfusions = strings.NewReplacer(
	"o", "0", "O", "0",
	"l", "1", "I", "1", "|", "1",
	"z", "2", "Z", "2",
	"s", "5", "S", "5", "$", "5",
	"b", "8", "B", "8",
)

// Ticket-number detection tiers. Markers are matched on the original text so
// the marker words survive; the captured digits may still carry confusions
// and are normalized afterwards.
var (
	markedNumberPattern = regexp.MustCompile(`(?i)(?:vé\s*số|số|\b[A-Za-z])\s*:?\s*([0-9oOlI|zZsS$bB]{6})\b`)
	bareSixPattern      = regexp.MustCompile(`\b\d{6}\b`)
	splitRunPattern     = regexp.MustCompile(`\b\d{1,5}(?:[ ]\d{1,5})+\b`)
	shortNumberPattern  = regexp.MustCompile(`\b\d{2,5}\b`)
)

// datePatterns are tried in order against the original text; the first hit
// wins. Each yields day, month, year capture groups in that order.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`),
	regexp.MustCompile(`(?i)ngày\s+(\d{1,2})\s+tháng\s+(\d{1,2})\s+năm\s+(\d{2,4})`),
	regexp.MustCompile(`(?i)mở\s*thưởng\s*:?\s*(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`),
}

type provincePattern struct {
	slug    string
	pattern *regexp.Regexp
}

// provincePatterns covers accented and unaccented spellings plus each
// province's source code. Ordered; first match wins.
var provincePatterns = []provincePattern{
	{"tphcm", regexp.MustCompile(`(?i)tp\.?\s*hcm|h[ồo]\s*ch[íi]\s*minh|s[àa]i\s*g[òo]n|saigon|\bxshcm\b`)},
	{"mien-bac", regexp.MustCompile(`(?i)mi[ềe]n\s*b[ắa]c|h[àa]\s*n[ộo]i|\bxsmb\b`)},
	{"dong-nai", regexp.MustCompile(`(?i)[đd][ồo]ng\s*nai|\bxsdn\b`)},
	{"binh-duong", regexp.MustCompile(`(?i)b[ìi]nh\s*d[ươuo]+ng|\bxsbd\b`)},
	{"vung-tau", regexp.MustCompile(`(?i)v[ũu]ng\s*t[àa]u|b[àa]\s*r[ịi]a|\bxsvt\b`)},
	{"can-tho", regexp.MustCompile(`(?i)c[ầa]n\s*th[ơo]|\bxsct\b`)},
	{"da-nang", regexp.MustCompile(`(?i)[đd][àa]\s*n[ẵa]ng|\bxsdng\b`)},
	{"tien-giang", regexp.MustCompile(`(?i)ti[ềe]n\s*giang|\bxstg\b`)},
	{"ben-tre", regexp.MustCompile(`(?i)b[ếe]n\s*tre|\bxsbt\b`)},
	{"long-an", regexp.MustCompile(`(?i)long\s*an|\bxsla\b`)},
	{"dong-thap", regexp.MustCompile(`(?i)[đd][ồo]ng\s*th[áa]p|\bxsdt\b`)},
	{"ca-mau", regexp.MustCompile(`(?i)c[àa]\s*mau|\bxscm\b`)},
	{"an-giang", regexp.MustCompile(`(?i)an\s*giang|\bxsag\b`)},
	{"kien-giang", regexp.MustCompile(`(?i)ki[êe]n\s*giang|\bxskg\b`)},
	{"khanh-hoa", regexp.MustCompile(`(?i)kh[áa]nh\s*h[òo][àa]|\bxskh\b`)},
	{"vinh-long", regexp.MustCompile(`(?i)v[ĩi]nh\s*long|\bxsvl\b`)},
	{"soc-trang", regexp.MustCompile(`(?i)s[óo]c\s*tr[ăa]ng|\bxsst\b`)},
	{"tay-ninh", regexp.MustCompile(`(?i)t[âa]y\s*ninh|\bxstn\b`)},
	{"binh-thuan", regexp.MustCompile(`(?i)b[ìi]nh\s*thu[ậa]n|\bxsbth\b`)},
	{"da-lat", regexp.MustCompile(`(?i)[đd][àa]\s*l[ạa]t|l[âa]m\s*[đd][ồo]ng|\bxsdl\b`)},
	{"tra-vinh", regexp.MustCompile(`(?i)tr[àa]\s*vinh|\bxstv\b`)},
	{"bac-lieu", regexp.MustCompile(`(?i)b[ạa]c\s*li[êe]u|\bxsbl\b`)},
	{"binh-phuoc", regexp.MustCompile(`(?i)b[ìi]nh\s*ph[ướuo]+c|\bxsbp\b`)},
	{"hau-giang", regexp.MustCompile(`(?i)h[ậa]u\s*giang|\bxshg\b`)},
}

// Extract parses raw OCR text into a ticket candidate. Fields that cannot be
// recognized are simply left empty; OCR noise makes partial results the
// normal case, not an error.
func Extract(rawText string) models.TicketCandidate {
	return models.TicketCandidate{
		Numbers:  extractNumbers(rawText),
		Date:     extractDate(rawText),
		Province: extractProvince(rawText),
	}
}

// extractNumbers runs the tiered ticket-number search. All 6-digit
// candidates rank ahead of shorter runs, which are kept as secondary
// candidates for prize matching.
func extractNumbers(rawText string) []string {
	normalized := digitConfusions.Replace(rawText)

	var ordered []string
	seen := make(map[string]struct{})
	add := func(num string) {
		if _, dup := seen[num]; dup {
			return
		}
		seen[num] = struct{}{}
		ordered = append(ordered, num)
	}

	// Tier 1: six digits right after a ticket marker, scanned on the
	// original text so marker words are intact.
	for _, m := range markedNumberPattern.FindAllStringSubmatch(rawText, -1) {
		add(digitConfusions.Replace(m[1]))
	}

	// Tier 2: bare six-digit runs.
	for _, m := range bareSixPattern.FindAllString(normalized, -1) {
		add(m)
	}

	// Tier 3: whitespace-split digit groups that concatenate to six.
	for _, m := range splitRunPattern.FindAllString(normalized, -1) {
		joined := strings.ReplaceAll(m, " ", "")
		if len(joined) == 6 {
			add(joined)
		}
	}

	// Secondary candidates: 2-5 digit runs, appended after every 6-digit hit.
	for _, m := range shortNumberPattern.FindAllString(normalized, -1) {
		add(m)
	}

	return ordered
}

// extractDate tries the ordered date patterns and normalizes the first valid
// hit to YYYY-MM-DD. Two-digit years above 50 land in the 1900s.
func extractDate(rawText string) string {
	for _, pattern := range datePatterns {
		m := pattern.FindStringSubmatch(rawText)
		if m == nil {
			continue
		}
		day := atoi(m[1])
		month := atoi(m[2])
		year := atoi(m[3])
		if len(m[3]) == 2 {
			if year > 50 {
				year += 1900
			} else {
				year += 2000
			}
		}
		if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 {
			continue
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
	return ""
}

func extractProvince(rawText string) string {
	for _, p := range provincePatterns {
		if p.pattern.MatchString(rawText) {
			return p.slug
		}
	}
	return ""
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

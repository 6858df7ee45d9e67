package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/vesoapp/veso-backend/internal/models"
	"github.com/vesoapp/veso-backend/internal/ocr"
	"github.com/vesoapp/veso-backend/pkg/vision"
)

// Compile-time check to ensure OCRServiceImpl implements OCRService
var _ OCRService = (*OCRServiceImpl)(nil)

// ErrNoEngine is returned when the requested OCR engine is not configured.
var ErrNoEngine = errors.New("no such ocr engine")

var (
	dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)
	sixDigitRun   = regexp.MustCompile(`\b\d{6}\b`)
	dmyDate       = regexp.MustCompile(`^(\d{2})[-/](\d{2})[-/](\d{4})$`)
)

// modelAnswer is the JSON shape the cloud engines are prompted to return.
type modelAnswer struct {
	Numbers  []string `json:"numbers"`
	Date     string   `json:"date"`
	Province string   `json:"province"`
	RawText  string   `json:"rawText"`
}

// OCRServiceImpl routes recognition to the configured engines and structures
// whatever text comes back.
type OCRServiceImpl struct {
	engines []vision.Recognizer // preference order
}

// NewOCRService creates an OCRServiceImpl over the given engines, preferred
// first.
func NewOCRService(engines ...vision.Recognizer) *OCRServiceImpl {
	return &OCRServiceImpl{engines: engines}
}

// Engines lists the available engine names in preference order.
func (s *OCRServiceImpl) Engines() []string {
	names := make([]string, len(s.engines))
	for i, e := range s.engines {
		names[i] = e.Name()
	}
	return names
}

// Recognize decodes the image, runs the selected engine and parses its
// output. Cloud engines answer with JSON which is taken as-is; anything else
// goes through the pattern extractor.
func (s *OCRServiceImpl) Recognize(ctx context.Context, image string, engine string) (*models.OCRResult, error) {
	recognizer, err := s.pick(engine)
	if err != nil {
		return nil, err
	}

	raw := dataURLPrefix.ReplaceAllString(strings.TrimSpace(image), "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	text, err := recognizer.Recognize(ctx, data)
	if err != nil {
		slog.Warn("ocr engine failed", "engine", recognizer.Name(), "error", err)
		return nil, fmt.Errorf("engine %s: %w", recognizer.Name(), err)
	}

	result := s.structure(text)
	result.ModelUsed = recognizer.Name()
	return result, nil
}

func (s *OCRServiceImpl) pick(engine string) (vision.Recognizer, error) {
	if engine == "" {
		if len(s.engines) == 0 {
			return nil, ErrNoEngine
		}
		return s.engines[0], nil
	}
	for _, e := range s.engines {
		if e.Name() == engine {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoEngine, engine)
}

// structure parses engine output: first as the prompted JSON answer, then by
// pattern extraction over the raw text, with a bare 6-digit rescue so a
// malformed answer still yields the one field that matters.
func (s *OCRServiceImpl) structure(text string) *models.OCRResult {
	cleaned := stripFences(text)

	var answer modelAnswer
	if err := json.Unmarshal([]byte(cleaned), &answer); err == nil {
		return &models.OCRResult{
			Numbers:  answer.Numbers,
			Date:     normalizeDate(answer.Date),
			Province: answer.Province,
			RawText:  answer.RawText,
		}
	}

	candidate := ocr.Extract(text)
	result := &models.OCRResult{
		Numbers:  candidate.Numbers,
		Date:     candidate.Date,
		Province: candidate.Province,
		RawText:  text,
	}
	if len(result.Numbers) == 0 {
		result.Numbers = dedupe(sixDigitRun.FindAllString(text, -1))
	}
	return result
}

// stripFences removes a markdown code fence the model may have wrapped its
// JSON in despite instructions.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// normalizeDate converts the model's DD-MM-YYYY (or DD/MM/YYYY) answer to
// YYYY-MM-DD; anything else passes through untouched.
func normalizeDate(date string) string {
	if m := dmyDate.FindStringSubmatch(date); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	return date
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

package services

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
)

type fakeRecognizer struct {
	name string
	text string
	err  error
	seen []byte
}

func (f *fakeRecognizer) Name() string { return f.name }

func (f *fakeRecognizer) Recognize(_ context.Context, image []byte) (string, error) {
	f.seen = image
	return f.text, f.err
}

func encodeImage(data string) string {
	return base64.StdEncoding.EncodeToString([]byte(data))
}

func TestRecognizeStructuredAnswer(t *testing.T) {
	engine := &fakeRecognizer{
		name: "gemini",
		text: "```json\n{\"numbers\":[\"889246\"],\"date\":\"15-01-2024\",\"province\":\"tphcm\",\"rawText\":\"XSHCM 889246\"}\n```",
	}
	svc := NewOCRService(engine)

	result, err := svc.Recognize(context.Background(), encodeImage("jpeg-bytes"), "")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(result.Numbers) != 1 || result.Numbers[0] != "889246" {
		t.Errorf("numbers = %v", result.Numbers)
	}
	if result.Date != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", result.Date)
	}
	if result.Province != "tphcm" {
		t.Errorf("province = %q", result.Province)
	}
	if result.ModelUsed != "gemini" {
		t.Errorf("modelUsed = %q", result.ModelUsed)
	}
	if string(engine.seen) != "jpeg-bytes" {
		t.Errorf("engine saw %q", engine.seen)
	}
}

func TestRecognizeDataURLPrefix(t *testing.T) {
	engine := &fakeRecognizer{name: "tesseract", text: "no digits"}
	svc := NewOCRService(engine)

	if _, err := svc.Recognize(context.Background(), "data:image/png;base64,"+encodeImage("png-bytes"), ""); err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if string(engine.seen) != "png-bytes" {
		t.Errorf("engine saw %q, want raw bytes without prefix", engine.seen)
	}
}

func TestRecognizePlainTextFallback(t *testing.T) {
	engine := &fakeRecognizer{
		name: "tesseract",
		text: "XO SO KIEN THIET TP.HCM\nVé số: 889246\nngày 15 tháng 01 năm 2024",
	}
	svc := NewOCRService(engine)

	result, err := svc.Recognize(context.Background(), encodeImage("img"), "")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(result.Numbers) == 0 || result.Numbers[0] != "889246" {
		t.Errorf("numbers = %v, want 889246 first", result.Numbers)
	}
	if result.Date != "2024-01-15" {
		t.Errorf("date = %q, want 2024-01-15", result.Date)
	}
	if result.Province != "tphcm" {
		t.Errorf("province = %q, want tphcm", result.Province)
	}
	if result.RawText == "" {
		t.Error("rawText not carried through")
	}
}

func TestRecognizeMalformedJSON(t *testing.T) {
	// A truncated model answer falls through to pattern extraction, which
	// still recovers the bare six-digit runs.
	engine := &fakeRecognizer{name: "gemini", text: `{"numbers": [889246 and also 123456`}
	svc := NewOCRService(engine)

	result, err := svc.Recognize(context.Background(), encodeImage("img"), "")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(result.Numbers) != 2 || result.Numbers[0] != "889246" || result.Numbers[1] != "123456" {
		t.Errorf("numbers = %v, want [889246 123456]", result.Numbers)
	}
}

func TestRecognizeEngineSelection(t *testing.T) {
	first := &fakeRecognizer{name: "gemini", text: "{}"}
	second := &fakeRecognizer{name: "tesseract", text: "{}"}
	svc := NewOCRService(first, second)

	t.Run("named engine", func(t *testing.T) {
		result, err := svc.Recognize(context.Background(), encodeImage("img"), "tesseract")
		if err != nil {
			t.Fatalf("Recognize: %v", err)
		}
		if result.ModelUsed != "tesseract" {
			t.Errorf("modelUsed = %q", result.ModelUsed)
		}
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, err := svc.Recognize(context.Background(), encodeImage("img"), "tarot")
		if !errors.Is(err, ErrNoEngine) {
			t.Errorf("err = %v, want ErrNoEngine", err)
		}
	})

	t.Run("no engines configured", func(t *testing.T) {
		_, err := NewOCRService().Recognize(context.Background(), encodeImage("img"), "")
		if !errors.Is(err, ErrNoEngine) {
			t.Errorf("err = %v, want ErrNoEngine", err)
		}
	})

	t.Run("engines listed in order", func(t *testing.T) {
		names := svc.Engines()
		if len(names) != 2 || names[0] != "gemini" || names[1] != "tesseract" {
			t.Errorf("engines = %v", names)
		}
	})
}

func TestRecognizeBadImage(t *testing.T) {
	svc := NewOCRService(&fakeRecognizer{name: "gemini"})
	if _, err := svc.Recognize(context.Background(), "not base64!!!", ""); err == nil {
		t.Error("expected decode error")
	}
}

func TestRecognizeEngineError(t *testing.T) {
	svc := NewOCRService(&fakeRecognizer{name: "gemini", err: errors.New("quota exceeded")})
	if _, err := svc.Recognize(context.Background(), encodeImage("img"), ""); err == nil {
		t.Error("expected engine error to propagate")
	}
}

package vision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiModels is the fallback chain, cheapest usable model last.
var geminiModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
}

const (
	geminiAttemptsPerModel = 2
	geminiQuotaBackoff     = 4 * time.Second
)

// Gemini recognizes tickets with the Gemini vision models.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates the Gemini engine. Credentials problems surface on the
// first Recognize call, not here.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Name() string { return "gemini" }

// Recognize walks the model chain with bounded retries. Rate-limit signals
// get one backoff-and-retry per model; a missing model or any other error
// advances the chain.
func (g *Gemini) Recognize(ctx context.Context, image []byte) (string, error) {
	var lastErr error
	for _, modelName := range geminiModels {
		for attempt := 0; attempt < geminiAttemptsPerModel; attempt++ {
			text, err := g.generate(ctx, modelName, image)
			if err == nil {
				return text, nil
			}
			lastErr = err

			if isQuotaError(err) {
				slog.Warn("gemini rate limited, backing off", "model", modelName, "attempt", attempt+1)
				select {
				case <-time.After(geminiQuotaBackoff):
				case <-ctx.Done():
					return "", ctx.Err()
				}
				continue
			}

			slog.Warn("gemini model failed, advancing chain", "model", modelName, "error", err)
			break
		}
	}
	return "", fmt.Errorf("all gemini models failed: %w", lastErr)
}

func (g *Gemini) generate(ctx context.Context, modelName string, image []byte) (string, error) {
	model := g.client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData("jpeg", image),
		genai.Text(ticketPrompt),
	)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("model %s returned no text", modelName)
	}
	return b.String(), nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error { return g.client.Close() }

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "quota")
}

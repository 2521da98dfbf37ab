package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"resumatch/resume-analyzer/internal/config"
)

// ErrModelUnavailable covers every way the provider can fail: transport
// errors, bad credentials, non-2xx responses and safety refusals. Callers
// handle all of them the same way, so they are not distinguished.
var ErrModelUnavailable = errors.New("model unavailable")

// TextGenerator sends a prompt to the generative model and returns the raw
// completion text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	maxAttempts int
	sem         chan struct{}
}

// NewGeminiService builds the gateway from an explicit config. Nothing in
// the call path reads ambient state, so tests can substitute a stub.
func NewGeminiService(cfg config.GeminiConfig) (TextGenerator, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &geminiService{
		client:      client,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		maxAttempts: maxAttempts,
		sem:         make(chan struct{}, maxConcurrent),
	}, nil
}

// Generate implements TextGenerator. In-flight provider calls are bounded by
// the semaphore; each call carries its own deadline, and a deadline expiry is
// reported as ErrModelUnavailable like any other provider failure.
func (g *geminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrModelUnavailable)
	}

	select {
	case g.sem <- struct{}{}:
		defer func() { <-g.sem }()
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, ctx.Err())
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 4096,
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
		if err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrModelUnavailable, ctx.Err())
			default:
			}
			if attempt < g.maxAttempts {
				log.Printf("⚠️ Gemini attempt %d failed: %v. Retrying...\n", attempt, err)
			}
			continue
		}

		if resp == nil {
			lastErr = fmt.Errorf("nil response")
			continue
		}

		text := resp.Text()
		if text == "" {
			// Empty text usually means the provider refused the content.
			lastErr = fmt.Errorf("no text content in response")
			continue
		}

		return text, nil
	}

	return "", fmt.Errorf("%w: failed after %d attempts: %v", ErrModelUnavailable, g.maxAttempts, lastErr)
}

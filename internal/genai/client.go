// Package genai is the client for the external generation provider (Google
// Gemini). It sends one generateContent request per call and returns the raw
// response text — schema enforcement happens downstream in the itinerary
// package, never here.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotConfigured means no provider API key is configured.
	ErrNotConfigured = errors.New("generation provider is not configured")

	// ErrQuotaExceeded means the provider reported quota exhaustion. This is
	// the only provider error distinguished from generic failure.
	ErrQuotaExceeded = errors.New("generation provider quota exceeded")

	// ErrGenerationFailed is the collapse bucket for every other provider
	// failure: network errors, non-2xx responses, empty candidates.
	ErrGenerationFailed = errors.New("generation request failed")
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
)

// Client calls the Gemini generateContent REST API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a provider client. An empty apiKey is allowed at
// construction time; Generate reports ErrNotConfigured when called without one.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// generateContent request/response wire types, reduced to the fields we use.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt to the provider and returns the raw response text.
// Exactly one round-trip per call: no retry, no streaming, no caching.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	requestID := uuid.New().String()
	start := time.Now()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.8,
			MaxOutputTokens:  8192,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %s", ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		// Read a bounded slice of the error body for the log line only —
		// provider error payloads are not surfaced to callers.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		slog.Warn("provider returned error status",
			"request_id", requestID,
			"model", c.model,
			"status", resp.StatusCode,
			"detail", string(detail),
		)
		return "", fmt.Errorf("%w: provider status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %s", ErrGenerationFailed, err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: provider returned no candidates", ErrGenerationFailed)
	}

	slog.Debug("provider request completed",
		"request_id", requestID,
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return out.Candidates[0].Content.Parts[0].Text, nil
}

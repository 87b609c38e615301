package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pitchbot/internal/domain"
)

const (
	googleBaseURL    = "https://generativelanguage.googleapis.com/v1beta/models"
	googleGenModel   = "gemini-2.0-flash-lite"
	googleEmbedModel = "text-embedding-004"
)

// Google talks to the Gemini API for both generation and embeddings.
type Google struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGoogle creates a Gemini-backed provider.
func NewGoogle(apiKey string) *Google {
	return NewGoogleWithBaseURL(apiKey, googleBaseURL)
}

// NewGoogleWithBaseURL creates a provider against a custom endpoint (for
// testing).
func NewGoogleWithBaseURL(apiKey, baseURL string) *Google {
	return &Google{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *Google) Name() string { return domain.ProviderGoogle }

func (g *Google) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]interface{}{{"text": prompt}},
			},
		},
	}

	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	url := fmt.Sprintf("%s/%s:generateContent", g.baseURL, googleGenModel)
	if err := g.post(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (g *Google) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	requests := make([]map[string]interface{}, len(inputs))
	for i, text := range inputs {
		requests[i] = map[string]interface{}{
			"model":   "models/" + googleEmbedModel,
			"content": map[string]interface{}{"parts": []map[string]string{{"text": text}}},
		}
	}
	reqBody := map[string]interface{}{"requests": requests}

	var resp struct {
		Embeddings []struct {
			Values []float32 `json:"values"`
		} `json:"embeddings"`
	}
	url := fmt.Sprintf("%s/%s:batchEmbedContents", g.baseURL, googleEmbedModel)
	if err := g.post(ctx, url, reqBody, &resp); err != nil {
		return nil, err
	}
	if len(resp.Embeddings) != len(inputs) {
		return nil, fmt.Errorf("gemini returned %d embeddings for %d inputs", len(resp.Embeddings), len(inputs))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (g *Google) post(ctx context.Context, url string, reqBody, out interface{}) error {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return json.Unmarshal(respBody, out)
}

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
	openaiBaseURL    = "https://api.openai.com/v1"
	openaiGenModel   = "gpt-4o-mini"
	openaiEmbedModel = "text-embedding-3-small"
)

// OpenAI talks to the OpenAI API for both generation and embeddings.
type OpenAI struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAI creates an OpenAI-backed provider.
func NewOpenAI(apiKey string) *OpenAI {
	return NewOpenAIWithBaseURL(apiKey, openaiBaseURL)
}

// NewOpenAIWithBaseURL creates a provider against a custom endpoint (for
// testing).
func NewOpenAIWithBaseURL(apiKey, baseURL string) *OpenAI {
	return &OpenAI{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (o *OpenAI) Name() string { return domain.ProviderOpenAI }

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": openaiGenModel,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := o.post(ctx, o.baseURL+"/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	reqBody := map[string]interface{}{
		"model": openaiEmbedModel,
		"input": inputs,
	}

	var resp struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := o.post(ctx, o.baseURL+"/embeddings", reqBody, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d inputs", len(resp.Data), len(inputs))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

func (o *OpenAI) post(ctx context.Context, url string, reqBody, out interface{}) error {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return json.Unmarshal(respBody, out)
}

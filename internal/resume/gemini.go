package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pitchbot/internal/config"
	"pitchbot/internal/domain"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

const structurePrompt = `You are an expert resume parser. Analyze the following resume text and convert it into a structured JSON object.
The JSON object should have keys for sections like "EDUCATION", "PROJECTS", "SKILLS", "EXPERIENCE", "INTERNSHIPS", "HACKATHONS", "CERTIFICATIONS".
For each section, the value should be an array of objects. Each object represents an item. Combine related lines into a single item.
Each object must have "title", and can optionally have "subtitle", "date", and "description".
The final output must be only the JSON object, with no other text or markdown formatting.
Resume Text: --- %s ---`

// GeminiParser structures resume text through Google's Gemini API. It
// implements port.ResumeParser.
type GeminiParser struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGeminiParser creates a Gemini-backed resume parser.
func NewGeminiParser(cfg *config.ParserConfig) *GeminiParser {
	return NewGeminiParserWithEndpoint(cfg, "")
}

// NewGeminiParserWithEndpoint creates a parser pointing at a custom API
// endpoint (for testing).
func NewGeminiParserWithEndpoint(cfg *config.ParserConfig, endpoint string) *GeminiParser {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash-lite"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", geminiBaseURL, model)
	}
	return &GeminiParser{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *GeminiParser) Parse(ctx context.Context, rawText string) (domain.ParsedResumeData, error) {
	prompt := fmt.Sprintf(structurePrompt, rawText)

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"maxOutputTokens":  8192,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return domain.ParsedResumeData{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.ParsedResumeData{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.ParsedResumeData{}, fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ParsedResumeData{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ParsedResumeData{}, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseGeminiResponse(respBody)
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func parseGeminiResponse(body []byte) (domain.ParsedResumeData, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.ParsedResumeData{}, fmt.Errorf("decoding gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return domain.ParsedResumeData{}, fmt.Errorf("gemini response has no candidates")
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var data domain.ParsedResumeData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return domain.ParsedResumeData{}, fmt.Errorf("decoding structured resume: %w", err)
	}
	return data, nil
}

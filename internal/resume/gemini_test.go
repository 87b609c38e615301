package resume_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbot/internal/config"
	"pitchbot/internal/resume"
)

func newGeminiTestParser(serverURL string) *resume.GeminiParser {
	cfg := &config.ParserConfig{
		Mode:        "gemini",
		APIKey:      "test-gemini-key",
		Model:       "gemini-2.0-flash-lite",
		TimeoutSecs: 30,
	}
	return resume.NewGeminiParserWithEndpoint(cfg, serverURL)
}

func geminiSuccessResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestGeminiParser_Parse_Success(t *testing.T) {
	llmJSON := `{"EDUCATION":[{"title":"B.Tech AI","subtitle":"College X","date":"2022-2026"}],"PROJECTS":[{"title":"Game Solver","description":"Minimax engine"}]}`
	responseBody := geminiSuccessResponse(llmJSON)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])

		parts := msg["parts"].([]interface{})
		assert.Len(t, parts, 1)
		textPart := parts[0].(map[string]interface{})
		assert.Contains(t, textPart["text"], "EDUCATION\nB.Tech AI")

		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])
		assert.Equal(t, float64(8192), genConfig["maxOutputTokens"])

		w.WriteHeader(http.StatusOK)
		err = json.NewEncoder(w).Encode(responseBody)
		if err != nil {
			return
		}
	}))
	defer server.Close()

	p := newGeminiTestParser(server.URL)

	result, err := p.Parse(context.Background(), "EDUCATION\nB.Tech AI\nCollege X\n2022-2026")

	require.NoError(t, err)
	education := result.Sections["EDUCATION"]
	require.Len(t, education, 1)
	assert.Equal(t, "B.Tech AI", education[0].Title)
	assert.Equal(t, "College X", education[0].Subtitle)
	assert.Equal(t, "2022-2026", education[0].Date)
	projects := result.Sections["PROJECTS"]
	require.Len(t, projects, 1)
	assert.Equal(t, "Game Solver", projects[0].Title)
}

func TestGeminiParser_Parse_StripsMarkdownFences(t *testing.T) {
	llmJSON := "```json\n{\"SKILLS\":[{\"title\":\"Go\"}]}\n```"
	responseBody := geminiSuccessResponse(llmJSON)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		err := json.NewEncoder(w).Encode(responseBody)
		if err != nil {
			return
		}
	}))
	defer server.Close()

	p := newGeminiTestParser(server.URL)

	result, err := p.Parse(context.Background(), "SKILLS\nGo")

	require.NoError(t, err)
	skills := result.Sections["SKILLS"]
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].Title)
}

func TestGeminiParser_Parse_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, err := w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted","status":"RESOURCE_EXHAUSTED"}}`))
		if err != nil {
			return
		}
	}))
	defer server.Close()

	p := newGeminiTestParser(server.URL)

	_, err := p.Parse(context.Background(), "EDUCATION\nB.Tech")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gemini API error (status 429)")
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
}

func TestGeminiParser_Parse_EmptyResponse(t *testing.T) {
	responseBody := map[string]interface{}{
		"candidates": []map[string]interface{}{},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		err := json.NewEncoder(w).Encode(responseBody)
		if err != nil {
			return
		}
	}))
	defer server.Close()

	p := newGeminiTestParser(server.URL)

	_, err := p.Parse(context.Background(), "EDUCATION\nB.Tech")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiParser_Parse_InvalidJSON(t *testing.T) {
	responseBody := geminiSuccessResponse("This is not JSON at all, sorry!")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		err := json.NewEncoder(w).Encode(responseBody)
		if err != nil {
			return
		}
	}))
	defer server.Close()

	p := newGeminiTestParser(server.URL)

	_, err := p.Parse(context.Background(), "EDUCATION\nB.Tech")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decoding structured resume")
}

func TestGeminiParser_Parse_ConnectionRefused(t *testing.T) {
	p := newGeminiTestParser("http://localhost:1")

	_, err := p.Parse(context.Background(), "EDUCATION\nB.Tech")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "calling gemini API")
}

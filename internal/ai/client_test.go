package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-clinic-backend/internal/config"
)

func testConfig() config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		Timeout: 2 * time.Second,
	}
}

func TestGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "hello from the model"}},
				}},
			},
		})
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL(testConfig(), server.URL)

	text, err := client.GenerateContent(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("GenerateContent failed: %v", err)
	}
	if text != "hello from the model" {
		t.Errorf("unexpected text %q", text)
	}

	if !strings.Contains(gotPath, "gemini-1.5-flash:generateContent") {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("API key not passed, got %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 || gotBody.Contents[0].Parts[0].Text != "say hello" {
		t.Errorf("prompt not carried in request body: %+v", gotBody)
	}
}

func TestGenerateContentNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL(testConfig(), server.URL)

	_, err := client.GenerateContent(context.Background(), "say hello")
	if err == nil {
		t.Fatal("expected an error for a 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL(testConfig(), server.URL)

	if _, err := client.GenerateContent(context.Background(), "say hello"); err == nil {
		t.Fatal("expected an error when no candidates are returned")
	}
}

func TestGenerateContentContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewGeminiClientWithBaseURL(testConfig(), server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.GenerateContent(ctx, "say hello"); err == nil {
		t.Fatal("expected an error when the context expires")
	}
}

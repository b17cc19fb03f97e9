package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/genai"
)

func TestOllamaClient_GenerateText(t *testing.T) {
	t.Run("returns response text", func(t *testing.T) {
		var got generateRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/generate", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_ = json.NewEncoder(w).Encode(generateResponse{Response: `{"score": 80}`, Done: true})
		}))
		defer srv.Close()

		c := NewOllama(srv.URL+"/", "llama3.1", time.Second)
		text, err := c.GenerateText(context.Background(), "analyze this")
		require.NoError(t, err)
		assert.Equal(t, `{"score": 80}`, text)
		assert.Equal(t, generateRequest{Model: "llama3.1", Prompt: "analyze this", Stream: false}, got)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewOllama(srv.URL, "missing", time.Second).GenerateText(context.Background(), "p")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
		assert.Contains(t, err.Error(), "model not found")
	})

	t.Run("error body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"out of memory"}`))
		}))
		defer srv.Close()

		_, err := NewOllama(srv.URL, "m", time.Second).GenerateText(context.Background(), "p")
		assert.ErrorContains(t, err, "out of memory")
	})

	t.Run("respects context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := NewOllama(srv.URL, "m", time.Minute).GenerateText(ctx, "p")
		assert.Error(t, err)
	})
}

func TestGemini_ResponseText(t *testing.T) {
	text, err := responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: `{"score":`}, nil, {Text: ` 80}`},
			}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"score": 80}`, text)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	_, err = responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	})
	assert.ErrorContains(t, err, "SAFETY")
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "", 0)
	assert.EqualError(t, err, "GEMINI_API_KEY is not set in environment variables")

	c, err := NewGemini(context.Background(), "test-key", "", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, c.model)
}

func TestVertexClient_GenerateText(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\":"},{"text":" 91}"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	c, err := NewVertex(context.Background(), "priscus-dev", "europe-west4", "", time.Second,
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)

	text, err := c.GenerateText(context.Background(), "rate this pitch")
	require.NoError(t, err)
	assert.Equal(t, `{"score": 91}`, text)
	assert.Equal(t, "/v1/projects/priscus-dev/locations/europe-west4/publishers/google/models/"+DefaultGeminiModel+":generateContent", gotPath)

	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	assert.Equal(t, "rate this pitch", parts[0].(map[string]any)["text"])
}

func TestVertexClient_Errors(t *testing.T) {
	_, err := NewVertex(context.Background(), "", "", "", 0)
	assert.EqualError(t, err, "VERTEX_PROJECT is not set in environment variables")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := NewVertex(context.Background(), "p", "", "", time.Second,
		option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()), option.WithoutAuthentication())
	require.NoError(t, err)
	_, err = c.GenerateText(context.Background(), "p")
	assert.ErrorContains(t, err, "empty response")
}

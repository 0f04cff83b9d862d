package openai_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizcrawler/quizcrawler-api/internal/config"
	"github.com/quizcrawler/quizcrawler-api/internal/generation"
	"github.com/quizcrawler/quizcrawler-api/internal/platform/openai"
)

func testConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		Provider:              "openai",
		OpenAIAPIKey:          "sk-test",
		ModelName:             "gpt-4o-mini",
		OpenAIBaseURL:         baseURL,
		RequestTimeoutSeconds: 5,
	}
}

func newTestClient(t *testing.T, baseURL string) *openai.Client {
	t.Helper()
	client, err := openai.NewClient(slog.Default(), testConfig(baseURL))
	require.NoError(t, err)
	return client
}

func TestCompleteSuccess(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	got, err := client.Complete(context.Background(), "make a quiz")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.InDelta(t, 0.7, gotBody["temperature"], 0.0001)
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	first, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "make a quiz", first["content"])
}

func TestCompleteErrorBodyWinsOverStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrUpstream)
	assert.Equal(t, "API Error: Rate limit reached", err.Error())
}

func TestCompleteNonOKWithoutErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, generation.ErrUpstream)
}

func TestCompleteEmptyChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, generation.ErrEmptyCompletion)
}

func TestCompleteEmptyContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":""}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, generation.ErrEmptyCompletion)
}

func TestCompleteContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://localhost")
	cfg.OpenAIAPIKey = ""
	_, err := openai.NewClient(slog.Default(), cfg)
	assert.Error(t, err)

	cfg = testConfig("http://localhost")
	cfg.ModelName = ""
	_, err = openai.NewClient(slog.Default(), cfg)
	assert.Error(t, err)
}

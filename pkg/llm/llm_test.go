package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Đà Lạt rất đẹp vào tháng 12."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 8, "total_tokens": 18}
		}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", srv.URL+"/v1/")
	reply, err := client.Complete(context.Background(), CompletionRequest{
		Model:       "gpt-4o",
		Messages:    []Message{{Role: RoleUser, Content: "Đi Đà Lạt lúc nào?"}},
		MaxTokens:   800,
		Temperature: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "Đà Lạt rất đẹp vào tháng 12.", reply)
	assert.Equal(t, "gpt-4o", got["model"])
	assert.EqualValues(t, 800, got["max_tokens"])
	assert.Equal(t, "openai", client.Name())
}

func TestOpenAIClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", srv.URL+"/v1")
	_, err := client.Complete(context.Background(), CompletionRequest{
		Model:    "gpt-4o",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.Error(t, err)
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "x", "object": "chat.completion", "choices": []}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("sk-test", srv.URL+"/v1")
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "gpt-4o"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestTextFromResponse(t *testing.T) {
	_, err := textFromResponse(nil)
	assert.ErrorIs(t, err, ErrEmptyCompletion)

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("Xin "), genai.Text("chào")}},
		}},
	}
	text, err := textFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Xin chào", text)
}

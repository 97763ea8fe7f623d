package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient("https://api.example.com/v1/chat", "", "test-model")
	assert.Error(t, err)

	_, err = NewClient("", "key", "test-model")
	assert.Error(t, err)

	c, err := NewClient("https://api.example.com/v1/chat/", "key", "test-model")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1/chat", c.baseURL)
}

func TestChatCompletion(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "1. What is a clause?"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "secret", "test-model")
	require.NoError(t, err)

	out, err := c.ChatCompletion(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "1. What is a clause?", out)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "system prompt", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestChatCompletion_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key"},
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "bad", "test-model")
	require.NoError(t, err)

	_, err = c.ChatCompletion(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "key", "test-model")
	require.NoError(t, err)

	_, err = c.ChatCompletion(context.Background(), "s", "u")
	assert.Error(t, err)
}

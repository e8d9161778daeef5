package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOpenAIImageClient_GenerateImages(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://img.example/1.png","revised_prompt":"revised"}]}`))
	}))
	defer server.Close()

	client := NewOpenAIImageClient("sk-test", server.URL+"/v1/", 5*time.Second)
	images, err := client.GenerateImages(context.Background(), ImageGenerationParams{
		Model: "dall-e-3", Prompt: "a hoodie", N: 1, Size: "1024x1024", Quality: "standard",
	})
	require.NoError(t, err)

	require.Len(t, images, 1)
	assert.Equal(t, "https://img.example/1.png", images[0].URL)
	assert.Equal(t, "revised", images[0].RevisedPrompt)

	body := gjson.ParseBytes(gotBody)
	assert.Equal(t, "dall-e-3", body.Get("model").String())
	assert.Equal(t, "a hoodie", body.Get("prompt").String())
	assert.Equal(t, int64(1), body.Get("n").Int())
	assert.Equal(t, "1024x1024", body.Get("size").String())
	assert.Equal(t, "standard", body.Get("quality").String())
}

func TestOpenAIImageClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewOpenAIImageClient("bad", server.URL, 5*time.Second)
	_, err := client.GenerateImages(context.Background(), ImageGenerationParams{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, "401 Incorrect API key provided", err.Error())
}

func TestOpenAIImageClient_ErrorStatusWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewOpenAIImageClient("k", server.URL, 5*time.Second)
	_, err := client.GenerateImages(context.Background(), ImageGenerationParams{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, "502 status code (no body)", err.Error())
}

func TestOpenAIImageClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewOpenAIImageClient("k", server.URL, 5*time.Second)
	_, err := client.GenerateImages(ctx, ImageGenerationParams{Prompt: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

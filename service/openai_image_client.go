package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxImageResponseBytes = 1 << 20

// OpenAIImageClient calls the OpenAI images API over HTTP.
// Implements ImageGeneratorInterface
type OpenAIImageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIImageClient creates a client for baseURL (e.g. "https://api.openai.com/v1")
func NewOpenAIImageClient(apiKey, baseURL string, timeout time.Duration) *OpenAIImageClient {
	return &OpenAIImageClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure OpenAIImageClient implements ImageGeneratorInterface
var _ ImageGeneratorInterface = (*OpenAIImageClient)(nil)

type openAIImageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type openAIImageResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

type openAIErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// GenerateImages issues a single POST /images/generations call. It never retries.
func (c *OpenAIImageClient) GenerateImages(ctx context.Context, params ImageGenerationParams) ([]GeneratedImage, error) {
	payload, err := json.Marshal(openAIImageRequest{
		Model:   params.Model,
		Prompt:  params.Prompt,
		N:       params.N,
		Size:    params.Size,
		Quality: params.Quality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode image request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/generations", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr openAIErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%d %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%d status code (no body)", resp.StatusCode)
	}

	var decoded openAIImageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode image response: %w", err)
	}

	images := make([]GeneratedImage, 0, len(decoded.Data))
	for _, d := range decoded.Data {
		images = append(images, GeneratedImage{URL: d.URL, RevisedPrompt: d.RevisedPrompt})
	}
	return images, nil
}

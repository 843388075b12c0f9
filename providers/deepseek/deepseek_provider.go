// Package deepseek implements the chat provider against a DeepSeek-compatible
// chat-completions endpoint.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"sheetflow/providers/contracts"
	"sheetflow/providers/models"
)

const defaultBaseURL = "https://api.deepseek.com/v1/chat/completions"

// temperature matches the generation setting the prompt template was tuned
// against.
const temperature = 0.7

// DeepSeekConfig implements the ChatProvider interface for DeepSeek.
type DeepSeekConfig struct {
	BaseURL string
	Model   string
	ApiKey  string
	Timeout time.Duration
	client  *http.Client
}

// NewDeepSeekChatProvider initializes a new DeepSeek provider.
func NewDeepSeekChatProvider(config *DeepSeekConfig) contracts.ChatProvider {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &DeepSeekConfig{
		BaseURL: baseURL,
		Model:   config.Model,
		ApiKey:  config.ApiKey,
		Timeout: config.Timeout,
		client:  &http.Client{},
	}
}

// Complete sends the prompt as a single user message and returns the first
// choice's content. The call is bounded by the configured timeout; exceeding
// it yields a FailureTimeout, transport problems a FailureNetwork, non-2xx
// statuses a FailureRemoteError and a response without choices a
// FailureMalformedResponse.
func (provider *DeepSeekConfig) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := models.ChatCompletionRequest{
		Model: provider.Model,
		Messages: []models.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &models.GenerationFailure{Kind: models.FailureNetwork, Err: fmt.Errorf("error marshalling request body: %w", err)}
	}

	ctx, cancel := context.WithTimeout(ctx, provider.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &models.GenerationFailure{Kind: models.FailureNetwork, Err: fmt.Errorf("error creating request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+provider.ApiKey)

	resp, err := provider.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &models.GenerationFailure{Kind: models.FailureTimeout, Err: err}
		}
		return "", &models.GenerationFailure{Kind: models.FailureNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The deadline can expire after headers arrive, mid-body.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &models.GenerationFailure{Kind: models.FailureTimeout, Err: err}
		}
		return "", &models.GenerationFailure{Kind: models.FailureNetwork, Err: fmt.Errorf("error reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		detail := string(body)
		var apiError models.AIError
		if jsonErr := json.Unmarshal(body, &apiError); jsonErr == nil && apiError.Error.Message != "" {
			detail = apiError.Error.Message
		}
		return "", &models.GenerationFailure{Kind: models.FailureRemoteError, Status: resp.StatusCode, Body: detail}
	}

	var response models.ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &models.GenerationFailure{Kind: models.FailureMalformedResponse, Err: err}
	}
	if len(response.Choices) == 0 {
		return "", &models.GenerationFailure{Kind: models.FailureMalformedResponse}
	}

	return response.Choices[0].Message.Content, nil
}

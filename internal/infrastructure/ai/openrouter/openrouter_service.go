// Package openrouter implementa ports.AIProvider contra el endpoint de chat completions
// compatible con OpenAI que expone OpenRouter.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domainErrors "github.com/Tomas-vilte/MateRelay/internal/domain/errors"
	"github.com/Tomas-vilte/MateRelay/internal/domain/ports"
	"github.com/Tomas-vilte/MateRelay/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/MateRelay/internal/logger"
)

// NoResponse se devuelve cuando la respuesta no trae choices[0].message.content.
const NoResponse = "No response from AI."

const completionsPath = "/chat/completions"

var _ ports.AIProvider = (*OpenRouterService)(nil)

type OpenRouterService struct {
	baseURL string
	apiKey  string
	model   string
	client  httpclient.HTTPClient
}

func NewOpenRouterService(baseURL, apiKey, model string, client httpclient.HTTPClient) *OpenRouterService {
	return &OpenRouterService{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  client,
	}
}

type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model     string        `json:"model"`
		Messages  []chatMessage `json:"messages"`
		MaxTokens int           `json:"max_tokens,omitempty"`
	}

	chatResponse struct {
		Choices []struct {
			Message *chatMessage `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		} `json:"error,omitempty"`
	}
)

func (s *OpenRouterService) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:     s.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", s.fail(fmt.Errorf("error encoding request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", s.fail(fmt.Errorf("error creating request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", s.fail(fmt.Errorf("error making request: %w", err))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug(ctx, "error closing openrouter response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", s.fail(fmt.Errorf("error reading response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", domainErrors.ErrQuotaExceeded.
			WithContext("status", resp.StatusCode).
			WithContext("provider", s.GetProviderName())
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", s.fail(fmt.Errorf("unexpected status %s: %s", resp.Status, truncate(body, 512))).
			WithContext("status", resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", s.fail(fmt.Errorf("error decoding response: %w", err))
	}
	if out.Error != nil {
		return "", s.fail(fmt.Errorf("openrouter error %d: %s", out.Error.Code, out.Error.Message))
	}

	if len(out.Choices) == 0 || out.Choices[0].Message == nil || out.Choices[0].Message.Content == "" {
		logger.Warn(ctx, "openrouter returned no content, using fallback", "model", s.model)
		return NoResponse, nil
	}

	return out.Choices[0].Message.Content, nil
}

func (s *OpenRouterService) fail(err error) *domainErrors.AppError {
	return domainErrors.ErrAIGeneration.
		WithContext("provider", s.GetProviderName()).
		WithError(err)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func (s *OpenRouterService) GetModelName() string {
	return s.model
}

func (s *OpenRouterService) GetProviderName() string {
	return "openrouter"
}

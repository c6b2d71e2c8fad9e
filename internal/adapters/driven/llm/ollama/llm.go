// Package ollama answers with a model served by a local Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "http://localhost:11434"
	DefaultLLMModel   = "llama3.2"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the Ollama LLM service.
type LLMConfig struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the LLM model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// LLMService completes prompts with the native /api/chat endpoint.
type LLMService struct {
	client  *http.Client
	baseURL string
	model   string
}

type options struct {
	NumPredict int `json:"num_predict,omitempty"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *options      `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// Thinking carries the reasoning trace of thinking models.
	Thinking string `json:"thinking,omitempty"`
}

type chatResponse struct {
	Message    chatMessage `json:"message"`
	DoneReason string      `json:"done_reason"`
}

type tagsResponse struct {
	Models []struct {
		Name  string `json:"name"`
		Model string `json:"model"`
	} `json:"models"`
}

// NewLLMService creates a new Ollama LLM service.
func NewLLMService(cfg LLMConfig) *LLMService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	return &LLMService{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// Complete sends one non-streaming chat exchange. A reasoning trace, if the
// model emits one, is returned as a non-text segment ahead of the answer.
func (s *LLMService) Complete(ctx context.Context, in driven.CompletionRequest) (*driven.Completion, error) {
	messages := make([]chatMessage, 0, 2)
	if in.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: in.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: in.User})

	reqBody := chatRequest{
		Model:    s.model,
		Messages: messages,
	}
	if in.MaxTokens > 0 {
		reqBody.Options = &options{NumPredict: in.MaxTokens}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w: %w", domain.ErrLLMUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, s.statusError(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return toCompletion(chatResp), nil
}

func toCompletion(resp chatResponse) *driven.Completion {
	completion := &driven.Completion{StopReason: resp.DoneReason}
	if resp.Message.Thinking != "" {
		completion.Segments = append(completion.Segments,
			driven.Segment{Type: driven.SegmentOther, Text: resp.Message.Thinking})
	}
	if resp.Message.Content != "" {
		completion.Segments = append(completion.Segments,
			driven.Segment{Type: driven.SegmentText, Text: resp.Message.Content})
	}
	return completion
}

func (s *LLMService) statusError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("ollama: %w: model %q not found, run 'ollama pull %s': %s",
			domain.ErrLLMUnavailable, s.model, s.model, msg)
	case status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable:
		return fmt.Errorf("ollama: %w (status %d): %s", domain.ErrRateLimited, status, msg)
	default:
		return fmt.Errorf("ollama error (status %d): %s", status, msg)
	}
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping lists the local models and checks the configured one is pulled.
func (s *LLMService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: %w: %w", domain.ErrLLMUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return s.statusError(resp.StatusCode, body)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return fmt.Errorf("ollama: decode tags: %w", err)
	}
	for _, m := range tags.Models {
		if sameModel(m.Name, s.model) || sameModel(m.Model, s.model) {
			return nil
		}
	}
	return fmt.Errorf("ollama: %w: model %q is not pulled", domain.ErrLLMUnavailable, s.model)
}

// sameModel compares model names, treating a missing tag as ":latest".
func sameModel(a, b string) bool {
	if a == "" {
		return false
	}
	if !strings.Contains(a, ":") {
		a += ":latest"
	}
	if !strings.Contains(b, ":") {
		b += ":latest"
	}
	return a == b
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

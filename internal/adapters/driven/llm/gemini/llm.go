// Package gemini provides an LLM service adapter using the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config holds configuration for the Gemini LLM service.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// BaseURL overrides the API endpoint.
	BaseURL string

	// Model is the LLM model to use (default: DefaultModel).
	Model string
}

// LLMService provides LLM operations using Gemini.
type LLMService struct {
	client *genai.Client
	model  string
}

// NewLLMService creates a new Gemini LLM service.
func NewLLMService(cfg Config) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &LLMService{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Complete runs a single GenerateContent call.
func (s *LLMService) Complete(ctx context.Context, in driven.CompletionRequest) (*driven.Completion, error) {
	config := &genai.GenerateContentConfig{}
	if in.System != "" {
		config.SystemInstruction = genai.NewContentFromText(in.System, genai.RoleUser)
	}
	if in.MaxTokens > 0 {
		config.MaxOutputTokens = int32(in.MaxTokens)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(in.User, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	return toCompletion(resp), nil
}

// toCompletion maps the first candidate's parts onto segments.
// Thought parts and non-text parts become non-text segments.
func toCompletion(resp *genai.GenerateContentResponse) *driven.Completion {
	completion := &driven.Completion{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return completion
	}

	candidate := resp.Candidates[0]
	completion.StopReason = string(candidate.FinishReason)
	if candidate.Content == nil {
		return completion
	}

	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		if part.Text != "" && !part.Thought {
			completion.Segments = append(completion.Segments, driven.Segment{Type: driven.SegmentText, Text: part.Text})
			continue
		}
		completion.Segments = append(completion.Segments, driven.Segment{Type: driven.SegmentOther})
	}
	return completion
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping fetches the configured model's metadata.
func (s *LLMService) Ping(ctx context.Context) error {
	if _, err := s.client.Models.Get(ctx, s.model, nil); err != nil {
		return fmt.Errorf("gemini: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	return nil
}

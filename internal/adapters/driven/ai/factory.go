// Package ai builds the configured language model adapter.
package ai

import (
	"fmt"

	anthropicllm "github.com/custodia-labs/sercha-assist/internal/adapters/driven/llm/anthropic"
	geminillm "github.com/custodia-labs/sercha-assist/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/custodia-labs/sercha-assist/internal/adapters/driven/llm/ollama"
	openaillm "github.com/custodia-labs/sercha-assist/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
)

type constructor func(settings *domain.LLMSettings) (driven.LLMService, error)

var providers = map[domain.AIProvider]constructor{
	domain.AIProviderOllama: func(s *domain.LLMSettings) (driven.LLMService, error) {
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: s.BaseURL,
			Model:   s.Model,
		}), nil
	},
	domain.AIProviderOpenAI: func(s *domain.LLMSettings) (driven.LLMService, error) {
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		})
	},
	domain.AIProviderAnthropic: func(s *domain.LLMSettings) (driven.LLMService, error) {
		return anthropicllm.NewLLMService(anthropicllm.Config{
			APIKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		})
	},
	domain.AIProviderGemini: func(s *domain.LLMSettings) (driven.LLMService, error) {
		return geminillm.NewLLMService(geminillm.Config{
			APIKey:  s.APIKey,
			BaseURL: s.BaseURL,
			Model:   s.Model,
		})
	},
}

// CreateLLMService creates the adapter for the configured provider, wrapped
// with request logging. It returns nil when the settings are incomplete.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	create, ok := providers[settings.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: LLM provider %s", domain.ErrUnsupportedType, settings.Provider)
	}

	svc, err := create(settings)
	if err != nil {
		return nil, fmt.Errorf("create %s service: %w", settings.Provider, err)
	}
	return WithLogging(settings.Provider, svc), nil
}

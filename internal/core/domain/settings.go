package domain

import (
	"errors"
	"fmt"
)

const unknownDescription = "Unknown"

// AIProvider identifies a language model provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderAnthropic is Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderOpenAI is OpenAI cloud API or any OpenAI-compatible endpoint.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderGemini is Google Gemini API.
	AIProviderGemini AIProvider = "gemini"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderAnthropic, AIProviderOpenAI, AIProviderOllama, AIProviderGemini:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p != AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	default:
		return unknownDescription
	}
}

// NotionSettings holds document store configuration.
type NotionSettings struct {
	// Token is the integration secret.
	Token string

	// ScopeID restricts retrieval to documents whose parent has this ID.
	// Empty means no restriction.
	ScopeID string

	// RequestsPerSecond throttles calls to the store.
	RequestsPerSecond float64
}

// IsConfigured returns true if the store can be reached.
func (n NotionSettings) IsConfigured() bool {
	return n.Token != ""
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name. Empty selects the provider default.
	Model string

	// BaseURL is the API endpoint override.
	BaseURL string

	// APIKey is the API key.
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// AnswerSettings holds answer pipeline configuration.
type AnswerSettings struct {
	// Language is the single language answers are written in.
	Language string

	// Concurrency is the number of candidates rendered in parallel.
	// 1 renders them sequentially.
	Concurrency int
}

// SlackSettings holds chat transport credentials.
type SlackSettings struct {
	// SigningSecret verifies inbound requests.
	SigningSecret string

	// BotToken authorises outbound messages.
	BotToken string
}

// IsConfigured returns true if inbound requests can be verified.
func (s SlackSettings) IsConfigured() bool {
	return s.SigningSecret != ""
}

// ServerSettings holds HTTP listener configuration.
type ServerSettings struct {
	Port int
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Notion NotionSettings
	LLM    LLMSettings
	Answer AnswerSettings
	Slack  SlackSettings
	Server ServerSettings
}

// Defaults for AppSettings.
const (
	DefaultLanguage          = "English"
	DefaultConcurrency       = 1
	DefaultRequestsPerSecond = 3.0
	DefaultPort              = 3000
)

// DefaultAppSettings returns settings with sensible defaults.
// Credentials are left empty.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Notion: NotionSettings{
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		LLM: LLMSettings{
			Provider: AIProviderAnthropic,
		},
		Answer: AnswerSettings{
			Language:    DefaultLanguage,
			Concurrency: DefaultConcurrency,
		},
		Server: ServerSettings{
			Port: DefaultPort,
		},
	}
}

// Validate checks that the settings can drive the answer pipeline.
// All problems are reported together.
func (s AppSettings) Validate() error {
	var errs []error
	if !s.Notion.IsConfigured() {
		errs = append(errs, fmt.Errorf("%w: notion.token", ErrNotConfigured))
	}
	if !s.LLM.Provider.IsValid() {
		errs = append(errs, fmt.Errorf("%w: llm.provider %q", ErrUnsupportedType, s.LLM.Provider))
	} else if !s.LLM.IsConfigured() {
		errs = append(errs, fmt.Errorf("%w: llm.api_key", ErrNotConfigured))
	}
	if s.Answer.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("%w: answer.concurrency must be at least 1", ErrInvalidInput))
	}
	if s.Notion.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("%w: notion.requests_per_second must be positive", ErrInvalidInput))
	}
	return errors.Join(errs...)
}

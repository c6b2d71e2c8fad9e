package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyNotionToken       = "notion.token"
	keyNotionScopeID     = "notion.scope_id"
	keyNotionRPS         = "notion.requests_per_second"
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyAnswerLanguage    = "answer.language"
	keyAnswerConcurrency = "answer.concurrency"
	keySlackSecret       = "slack.signing_secret"
	keySlackBotToken     = "slack.bot_token"
	keyServerPort        = "server.port"
)

// knownKeys lists the keys accepted by Set.
var knownKeys = map[string]bool{
	keyNotionToken: true, keyNotionScopeID: true, keyNotionRPS: true,
	keyLLMProvider: true, keyLLMModel: true, keyLLMBaseURL: true, keyLLMAPIKey: true,
	keyAnswerLanguage: true, keyAnswerConcurrency: true,
	keySlackSecret: true, keySlackBotToken: true, keyServerPort: true,
}

// providerKeyEnv maps a provider to its conventional API key variable.
var providerKeyEnv = map[domain.AIProvider]string{
	domain.AIProviderAnthropic: "ANTHROPIC_API_KEY",
	domain.AIProviderOpenAI:    "OPENAI_API_KEY",
	domain.AIProviderGemini:    "GEMINI_API_KEY",
}

// SettingsService resolves application settings from defaults, the config
// store and the environment, in increasing order of precedence.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service reading the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// SetEnvLookup replaces the environment lookup. Useful for testing.
func (s *SettingsService) SetEnvLookup(fn func(string) string) {
	s.getenv = fn
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()

	if s.configStore != nil {
		s.applyConfig(&settings)
	}
	if err := s.applyEnv(&settings); err != nil {
		return domain.AppSettings{}, err
	}

	return settings, nil
}

// Set persists a single setting.
func (s *SettingsService) Set(key string, value any) error {
	if !knownKeys[key] {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if key == keyLLMProvider {
		if p, ok := value.(string); !ok || !domain.AIProvider(p).IsValid() {
			return fmt.Errorf("%w: llm provider %v", domain.ErrUnsupportedType, value)
		}
	}
	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *SettingsService) applyConfig(settings *domain.AppSettings) {
	cs := s.configStore

	settings.Notion.Token = s.getString(keyNotionToken, settings.Notion.Token)
	settings.Notion.ScopeID = s.getString(keyNotionScopeID, settings.Notion.ScopeID)
	if rps := cs.GetFloat(keyNotionRPS); rps > 0 {
		settings.Notion.RequestsPerSecond = rps
	}

	if p := domain.AIProvider(cs.GetString(keyLLMProvider)); p.IsValid() {
		settings.LLM.Provider = p
	}
	settings.LLM.Model = s.getString(keyLLMModel, settings.LLM.Model)
	settings.LLM.BaseURL = s.getString(keyLLMBaseURL, settings.LLM.BaseURL)
	settings.LLM.APIKey = s.getString(keyLLMAPIKey, settings.LLM.APIKey)

	settings.Answer.Language = s.getString(keyAnswerLanguage, settings.Answer.Language)
	if n := cs.GetInt(keyAnswerConcurrency); n > 0 {
		settings.Answer.Concurrency = n
	}

	settings.Slack.SigningSecret = s.getString(keySlackSecret, settings.Slack.SigningSecret)
	settings.Slack.BotToken = s.getString(keySlackBotToken, settings.Slack.BotToken)

	if port := cs.GetInt(keyServerPort); port > 0 {
		settings.Server.Port = port
	}
}

func (s *SettingsService) applyEnv(settings *domain.AppSettings) error {
	setString := func(name string, dst *string) {
		if v := strings.TrimSpace(s.getenv(name)); v != "" {
			*dst = v
		}
	}

	setString("NOTION_TOKEN", &settings.Notion.Token)
	setString("NOTION_DATABASE_ID", &settings.Notion.ScopeID)

	if v := s.getenv("LLM_PROVIDER"); v != "" {
		p := domain.AIProvider(strings.ToLower(strings.TrimSpace(v)))
		if !p.IsValid() {
			return fmt.Errorf("%w: LLM_PROVIDER %q", domain.ErrUnsupportedType, v)
		}
		settings.LLM.Provider = p
	}
	setString("LLM_MODEL", &settings.LLM.Model)
	setString("LLM_BASE_URL", &settings.LLM.BaseURL)
	if name, ok := providerKeyEnv[settings.LLM.Provider]; ok {
		setString(name, &settings.LLM.APIKey)
	}
	setString("LLM_API_KEY", &settings.LLM.APIKey)

	setString("ANSWER_LANGUAGE", &settings.Answer.Language)
	setString("SLACK_SIGNING_SECRET", &settings.Slack.SigningSecret)
	setString("SLACK_BOT_TOKEN", &settings.Slack.BotToken)

	if err := s.envInt("ANSWER_CONCURRENCY", &settings.Answer.Concurrency); err != nil {
		return err
	}
	if err := s.envInt("PORT", &settings.Server.Port); err != nil {
		return err
	}
	if v := strings.TrimSpace(s.getenv("NOTION_REQUESTS_PER_SECOND")); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: NOTION_REQUESTS_PER_SECOND %q", domain.ErrInvalidInput, v)
		}
		settings.Notion.RequestsPerSecond = rps
	}
	return nil
}

func (s *SettingsService) envInt(name string, dst *int) error {
	v := strings.TrimSpace(s.getenv(name))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, name, v)
	}
	*dst = n
	return nil
}

// getString returns the stored value for key, or fallback if unset.
func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

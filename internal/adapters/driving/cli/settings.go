package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
)

const notSet = "(not set)"

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Notion workspace, the LLM provider and the Slack bot.

Settings are read from the config file and overridden by environment
variables such as NOTION_TOKEN, LLM_PROVIDER and SLACK_SIGNING_SECRET.
A .env file in the working directory or the config directory is loaded
first and never overrides variables that are already set.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Save a setting to the config file",
	Long: `Save a setting to the config file.

Available keys:
  notion.token                 integration secret
  notion.scope_id              only answer from pages in this database
  notion.requests_per_second   API throttle
  llm.provider                 anthropic, openai, ollama or gemini
  llm.model                    model name (empty = provider default)
  llm.base_url                 API endpoint override
  llm.api_key                  provider API key
  answer.language              language answers are written in
  answer.concurrency           pages read in parallel
  slack.signing_secret         verifies Slack requests
  slack.bot_token              posts replies to mentions
  server.port                  Slack bot HTTP port`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsService() (driving.SettingsService, error) {
	s, err := loadServices()
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return s.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Notion]")
	cmd.Printf("  Token: %s\n", maskSecret(settings.Notion.Token))
	cmd.Printf("  Scope: %s\n", orNotSet(settings.Notion.ScopeID))
	cmd.Printf("  Requests per second: %g\n", settings.Notion.RequestsPerSecond)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", orDefault(settings.LLM.Model))
	if settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		cmd.Printf("  API Key: %s\n", maskSecret(settings.LLM.APIKey))
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Answer]")
	cmd.Printf("  Language: %s\n", settings.Answer.Language)
	cmd.Printf("  Concurrency: %d\n", settings.Answer.Concurrency)
	cmd.Println()

	cmd.Println("[Slack]")
	cmd.Printf("  Signing secret: %s\n", maskSecret(settings.Slack.SigningSecret))
	cmd.Printf("  Bot token: %s\n", maskSecret(settings.Slack.BotToken))
	cmd.Printf("  Port: %d\n", settings.Server.Port)
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %s\n", strings.ReplaceAll(err.Error(), "\n", "; "))
		cmd.Println("Run 'sercha-assist settings set' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], parseValue(args[0], args[1])
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	display := args[1]
	if isSecretKey(key) {
		display = maskSecret(args[1])
	}
	cmd.Printf("Set %s = %s\n", key, display)
	return nil
}

// parseValue converts values of numeric keys so they are stored as TOML
// numbers. Unparseable numbers are kept as strings and ignored on load.
func parseValue(key, raw string) any {
	switch key {
	case "answer.concurrency", "server.port":
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case "notion.requests_per_second":
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}

func isSecretKey(key string) bool {
	switch key {
	case "notion.token", "llm.api_key", "slack.signing_secret", "slack.bot_token":
		return true
	default:
		return false
	}
}

func orNotSet(v string) string {
	if v == "" {
		return notSet
	}
	return v
}

func orDefault(v string) string {
	if v == "" {
		return "(provider default)"
	}
	return v
}

func maskSecret(key string) string {
	if key == "" {
		return notSet
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/sercha-assist/internal/adapters/driven/ai"
	"github.com/custodia-labs/sercha-assist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-assist/internal/adapters/driven/notion"
	"github.com/custodia-labs/sercha-assist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-assist/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/core/services"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// build wires the services from the config file in configDir. When the
// directory cannot be used, settings come from the environment only.
func build(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("config dir: %w", err)
		}
		configDir = dir
	}
	loadDotEnv(".env", filepath.Join(configDir, ".env"))

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("config file unavailable, using environment only: %v", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	prompts, err := file.NewPromptStore(filepath.Join(configDir, "prompts"))
	if err != nil {
		return nil, fmt.Errorf("prompt store: %w", err)
	}

	return wire(services.NewSettingsService(store), prompts)
}

// loadDotEnv exports variables from the given files without overriding the
// process environment. Missing files are skipped.
func loadDotEnv(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logger.Warn("reading %s: %v", path, err)
			continue
		}
		logger.Debug("loaded environment from %s", path)
	}
}

// wire assembles the answer pipeline. Missing or invalid settings do not fail
// the build: they are reported through SetupErr so settings and check still work.
func wire(settingsSvc *services.SettingsService, prompts *file.PromptStore) (*cli.Services, error) {
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := &cli.Services{
		Settings: settingsSvc,
		Close:    func() {},
	}
	if err := settings.Validate(); err != nil {
		out.SetupErr = err
		return out, nil
	}

	store, err := notion.NewStore(notion.Config{
		Token:             settings.Notion.Token,
		RequestsPerSecond: settings.Notion.RequestsPerSecond,
	})
	if err != nil {
		out.SetupErr = err
		return out, nil
	}

	llm, err := ai.CreateLLMService(&settings.LLM)
	if err != nil {
		out.SetupErr = fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
		return out, nil
	}
	if llm == nil {
		out.SetupErr = fmt.Errorf("%w: llm", domain.ErrNotConfigured)
		return out, nil
	}

	selector := services.NewDocumentSelector(store, settings.Notion.ScopeID)
	selector.SetConcurrency(settings.Answer.Concurrency)

	synthesizer := services.NewSynthesizer(llm, settings.Answer.Language)
	synthesizer.SetPromptStore(prompts)

	out.Answer = services.NewAnswerService(selector, synthesizer)
	out.Documents = services.NewDocumentReader(store, settings.Notion.ScopeID)
	out.WatchPrompts = prompts.Watch
	out.Checks = []cli.Check{
		{Name: "Notion", Run: store.Ping},
		{
			Name: fmt.Sprintf("LLM (%s, %s)", settings.LLM.Provider, llm.ModelName()),
			Run:  llm.Ping,
		},
	}
	out.Close = func() {
		if err := llm.Close(); err != nil {
			logger.Debug("closing llm: %v", err)
		}
	}
	return out, nil
}

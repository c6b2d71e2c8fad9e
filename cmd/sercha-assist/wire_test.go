package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-assist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/services"
)

func newSettings(values map[string]any) *services.SettingsService {
	svc := services.NewSettingsService(memory.NewConfigStore(values))
	svc.SetEnvLookup(func(string) string { return "" })
	return svc
}

func TestWire_ReportsMissingSettings(t *testing.T) {
	prompts, err := file.NewPromptStore(t.TempDir())
	require.NoError(t, err)

	out, err := wire(newSettings(nil), prompts)
	require.NoError(t, err)

	assert.NotNil(t, out.Settings)
	assert.Nil(t, out.Answer)
	assert.Nil(t, out.Documents)
	assert.ErrorIs(t, out.SetupErr, domain.ErrNotConfigured)
	assert.Contains(t, out.SetupErr.Error(), "notion.token")
}

func TestWire_BuildsPipeline(t *testing.T) {
	prompts, err := file.NewPromptStore(t.TempDir())
	require.NoError(t, err)

	out, err := wire(newSettings(map[string]any{
		"notion.token":       "secret_token",
		"notion.scope_id":    "db-1",
		"llm.provider":       "ollama",
		"llm.model":          "llama3.2",
		"answer.concurrency": 2,
	}), prompts)
	require.NoError(t, err)
	defer out.Close()

	require.NoError(t, out.SetupErr)
	assert.NotNil(t, out.Answer)
	assert.NotNil(t, out.Documents)
	assert.NotNil(t, out.WatchPrompts)
	require.Len(t, out.Checks, 2)
	assert.Equal(t, "Notion", out.Checks[0].Name)
	assert.Equal(t, "LLM (ollama, llama3.2)", out.Checks[1].Name)
}

func TestBuild_UsesConfigDir(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("LLM_PROVIDER", "")

	out, err := build(t.TempDir())
	require.NoError(t, err)

	assert.NotNil(t, out.Settings)
	assert.Error(t, out.SetupErr)
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERCHA_TEST_A=from-file\nSERCHA_TEST_B=from-file\n"), 0600))

	t.Setenv("SERCHA_TEST_A", "from-env")
	t.Setenv("SERCHA_TEST_B", "")
	require.NoError(t, os.Unsetenv("SERCHA_TEST_B"))

	loadDotEnv(filepath.Join(dir, "missing.env"), path)

	assert.Equal(t, "from-env", os.Getenv("SERCHA_TEST_A"))
	assert.Equal(t, "from-file", os.Getenv("SERCHA_TEST_B"))
}

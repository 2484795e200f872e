package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, 2, cfg.Cache.TTLHours)
	assert.Equal(t, 10, cfg.Scraper.TimeoutSeconds)
	assert.True(t, cfg.Scraper.Enabled)
	assert.Empty(t, cfg.LLM.Provider)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[graph]
uri = "bolt://db.example.com:7687"

[llm]
provider = "openai"
model = "gpt-4o-mini"

[cache]
ttl_hours = 6
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "bolt://db.example.com:7687", cfg.Graph.URI)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 6, cfg.Cache.TTLHours)

	// Untouched sections keep their defaults.
	assert.Equal(t, 10, cfg.Scraper.TimeoutSeconds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GRAPH_URI", "bolt://env.example.com:7687")
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("LLM_API_KEY", "test-key")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://env.example.com:7687", cfg.Graph.URI)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
}

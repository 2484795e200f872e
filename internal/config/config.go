package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
}

type GraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ScraperConfig struct {
	Enabled        bool   `toml:"enabled"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

type CacheConfig struct {
	TTLHours int `toml:"ttl_hours"`
}

type Config struct {
	LLM     LLMConfig     `toml:"llm"`
	Graph   GraphConfig   `toml:"graph"`
	Scraper ScraperConfig `toml:"scraper"`
	Cache   CacheConfig   `toml:"cache"`
}

// Default returns a config that works against a local Bolt endpoint
// with no LLM configured (deterministic answers only).
func Default() *Config {
	return &Config{
		Graph: GraphConfig{URI: "bolt://localhost:7687"},
		Scraper: ScraperConfig{
			Enabled:        true,
			TimeoutSeconds: 10,
			UserAgent:      "Mozilla/5.0 (compatible; praline/1.0)",
		},
		Cache: CacheConfig{TTLHours: 2},
		LLM:   LLMConfig{MaxTokens: 600, Temperature: 0.7},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GRAPH_URI"); v != "" {
		c.Graph.URI = v
	}
	if v := os.Getenv("GRAPH_USER"); v != "" {
		c.Graph.User = v
	}
	if v := os.Getenv("GRAPH_PASSWORD"); v != "" {
		c.Graph.Password = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}

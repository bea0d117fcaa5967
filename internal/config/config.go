// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Embedding backends.
const (
	EmbeddingsHashing = "hashing"
	EmbeddingsGemini  = "gemini"
)

// APIKeyEnv is the environment variable holding the Gemini API key.
const APIKeyEnv = "GEMINI_API_KEY"

// Config represents the CLI configuration, read from a YAML or JSON file
// and the environment. Every field has a default.
type Config struct {
	APIKey              string                `mapstructure:"api-key"`
	Model               string                `mapstructure:"model"`
	RemoteTimeout       time.Duration         `mapstructure:"remote-timeout" validate:"gt=0"`
	RemoteRetries       int                   `mapstructure:"remote-retries" validate:"gte=0,lte=5"`
	Embeddings          string                `mapstructure:"embeddings" validate:"oneof=hashing gemini"`
	EmbeddingDimensions int                   `mapstructure:"embedding-dimensions" validate:"gte=16,lte=4096"`
	Log                 LogConfig             `mapstructure:"log"`
	Selection           types.SelectionConfig `mapstructure:"selection"`
}

// LogConfig selects the logger format and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	sel := types.DefaultSelectionConfig()

	v.SetDefault("api-key", "")
	v.SetDefault("model", "")
	v.SetDefault("remote-timeout", extraction.DefaultRemoteTimeout)
	v.SetDefault("remote-retries", extraction.DefaultRemoteRetries)
	v.SetDefault("embeddings", EmbeddingsHashing)
	v.SetDefault("embedding-dimensions", embedding.DefaultDimensions)
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("selection.minimum-score", sel.MinimumScore)
	v.SetDefault("selection.max-total", sel.MaxTotal)
	v.SetDefault("selection.max-per-company", sel.MaxPerCompany)
	v.SetDefault("selection.current-role-floor", sel.CurrentRoleFloor)
	v.SetDefault("selection.use-remote-extraction", sel.UseRemoteExtraction)
}

// Load reads configuration into a Config. path may be empty, in which case
// only defaults and the environment apply. A nil v uses a fresh viper instance.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	if err := v.BindEnv("api-key", APIKeyEnv); err != nil {
		return nil, fmt.Errorf("binding %s environment variable: %w", APIKeyEnv, err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Embeddings == EmbeddingsGemini && c.APIKey == "" {
		return fmt.Errorf("config error: gemini embeddings require %s or api-key", APIKeyEnv)
	}
	return nil
}

// RemoteOptions returns the remote extraction settings.
func (c *Config) RemoteOptions() extraction.RemoteOptions {
	opts := extraction.DefaultRemoteOptions()
	opts.Timeout = c.RemoteTimeout
	opts.Retries = c.RemoteRetries
	return opts
}

// LLMConfig returns the client config, with Model overriding the standard tier.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if c.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, c.Model)
	}
	return cfg
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Gemini GeminiConfig
	OpenAI OpenAIConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LLMConfig struct {
	// Provider selects the model backend: "gemini" (default) or "openai".
	Provider string
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Endpoint        string
	Timeout         time.Duration
	Temperature     float32
	MaxOutputTokens int32
}

type OpenAIConfig struct {
	APIKey      string
	APIEndpoint string
	Model       string
}

// LoadConfig resolves configuration from the process environment,
// falling back to a local .env file for values the environment does
// not provide. The selected provider's API key is required; startup
// must not proceed without it.
func LoadConfig() (*Config, error) {
	// godotenv never overrides variables that are already set, so the
	// hosted environment keeps priority over the local .env tier.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.read_timeout", "30s")
	// A recommendation runs up to four model calls back to back, so
	// the write timeout is well above a single-call budget.
	v.SetDefault("server.write_timeout", "3m")

	v.SetDefault("llm.provider", "gemini")

	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.endpoint", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.temperature", 0.2)
	v.SetDefault("gemini.max_output_tokens", 1024)

	v.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		LLM: LLMConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
		},
		Gemini: GeminiConfig{
			APIKey:          v.GetString("gemini.api_key"),
			Model:           v.GetString("gemini.model"),
			Endpoint:        v.GetString("gemini.endpoint"),
			Timeout:         v.GetDuration("gemini.timeout"),
			Temperature:     float32(v.GetFloat64("gemini.temperature")),
			MaxOutputTokens: v.GetInt32("gemini.max_output_tokens"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      v.GetString("openai.api_key"),
			APIEndpoint: v.GetString("openai.endpoint"),
			Model:       v.GetString("openai.model"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded", "provider", cfg.LLM.Provider, "model", cfg.ModelName())
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY missing: set it in the environment or a .env file")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY missing: set it in the environment or a .env file")
		}
	default:
		return fmt.Errorf("unknown LLM provider %q", c.LLM.Provider)
	}
	return nil
}

// ModelName reports the configured model for the active provider.
func (c *Config) ModelName() string {
	if c.LLM.Provider == "openai" {
		return c.OpenAI.Model
	}
	return c.Gemini.Model
}

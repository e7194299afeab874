package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel       OTelConfig
	RoadmapLLM LLMConfig
	Roadmap    RoadmapConfig
	Env        string
	Port       string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type LLMConfig struct {
	Provider    string // "openai" or "anthropic"
	APIKey      string
	BaseURL     string // Optional: for custom endpoints
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration // zero disables the per-call deadline
}

type RoadmapConfig struct {
	// StrictGoals rejects priority/type values outside the known sets.
	StrictGoals bool
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Load loads configuration from environment variables.
// In development, it loads .env.server and falls back to .env.
//
// The credential for the selected provider is required: a missing key is a
// startup failure, never a per-request one.
func Load() (Config, error) {
	if getEnv("PATHPLAN_ENV", "development") == "development" {
		if err := godotenv.Load(".env.server"); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	provider := getEnv("LLM_PROVIDER", ProviderOpenAI)

	cfg := Config{
		Env:  getEnv("PATHPLAN_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "pathplan-ai-engine"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		RoadmapLLM: LLMConfig{
			Provider:    provider,
			MaxTokens:   getEnvInt("ROADMAP_LLM_MAX_TOKENS", 1500),
			Temperature: getEnvFloat("ROADMAP_LLM_TEMPERATURE", 0.7),
			Timeout:     getEnvDuration("ROADMAP_LLM_TIMEOUT", 60*time.Second),
		},
		Roadmap: RoadmapConfig{
			StrictGoals: getEnvBool("ROADMAP_STRICT_GOALS", false),
		},
	}

	switch provider {
	case ProviderOpenAI:
		cfg.RoadmapLLM.APIKey = getEnv("OPENAI_API_KEY", "")
		cfg.RoadmapLLM.BaseURL = getEnv("OPENAI_BASE_URL", "")
		cfg.RoadmapLLM.Model = getEnv("ROADMAP_LLM_MODEL", "gpt-4")
		if cfg.RoadmapLLM.APIKey == "" {
			return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderAnthropic:
		cfg.RoadmapLLM.APIKey = getEnv("ANTHROPIC_API_KEY", "")
		cfg.RoadmapLLM.BaseURL = getEnv("ANTHROPIC_BASE_URL", "")
		cfg.RoadmapLLM.Model = getEnv("ROADMAP_LLM_MODEL", "claude-sonnet-4-5")
		if cfg.RoadmapLLM.APIKey == "" {
			return Config{}, fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	default:
		return Config{}, fmt.Errorf("unsupported LLM_PROVIDER: %s", provider)
	}

	if cfg.RoadmapLLM.MaxTokens <= 0 {
		return Config{}, fmt.Errorf("ROADMAP_LLM_MAX_TOKENS must be positive")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

package llm

import (
	"context"
	"errors"
	"fmt"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Message roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrNoChoices is returned when the provider answers without any completion.
var ErrNoChoices = errors.New("no choices in response")

// Config holds LLM client configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string // Required: API key for the provider
	BaseURL  string // Optional: custom API endpoint
	Model    string // Model name (e.g., "gpt-4", "claude-sonnet-4-5")
}

// Client performs a single chat completion against a remote model.
// Implementations never retry: one Complete call is one outbound request.
// Deadlines come from ctx.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Model() string
}

type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature *float64 // nil = model default, explicit 0 = deterministic
}

type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

type Response struct {
	Choices          []string // Text of each returned candidate, in provider order
	FinishReason     string
	PromptTokens     int
	CompletionTokens int
}

// New creates a Client for cfg.Provider. Defaults to OpenAI when no provider is set.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

func Temp(t float64) *float64 {
	return &t
}

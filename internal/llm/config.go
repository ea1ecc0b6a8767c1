package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "groq", "anthropic", "gemini", "mock"
	Provider string

	Groq      GroqConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig
}

// GroqConfig holds Groq-specific configuration. Groq serves the OpenAI
// chat-completions API, so this also works for any compatible endpoint
// via BaseURL.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: ModelLarge
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig configures retry, backoff and model-downgrade behavior.
type RetryConfig struct {
	// MaxAttempts is the total retry budget per Generate call.
	MaxAttempts int

	// RateLimitWait is the backoff unit for rate-limit failures:
	// attempt N waits (N+1) x RateLimitWait.
	RateLimitWait time.Duration

	// InvalidWait is the backoff unit for unparseable responses:
	// attempt N waits (N+1) x InvalidWait.
	InvalidWait time.Duration

	// DowngradeAfter is how many failed large-model attempts are allowed
	// before the call switches to the small model.
	DowngradeAfter int

	// AttemptTimeout bounds the wall-clock time of a single attempt.
	AttemptTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "groq",
		Groq: GroqConfig{
			Model:   ModelLarge,
			BaseURL: "https://api.groq.com/openai/v1",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts:    5,
			RateLimitWait:  12 * time.Second,
			InvalidWait:    2 * time.Second,
			DowngradeAfter: 2,
			AttemptTimeout: 3 * time.Minute,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PREPMATE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.Groq.APIKey = k
	}
	if m := os.Getenv("PREPMATE_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}
	if u := os.Getenv("PREPMATE_GROQ_BASE_URL"); u != "" {
		cfg.Groq.BaseURL = u
	}

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("PREPMATE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("PREPMATE_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

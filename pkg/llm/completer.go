package llm

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// ProviderOpenAI selects the OpenAI-compatible gateway.
	ProviderOpenAI = "openai"
	// ProviderAnthropic selects the Anthropic Messages API.
	ProviderAnthropic = "anthropic"

	// DefaultGatewayURL is the OpenAI-compatible AI gateway.
	DefaultGatewayURL = "https://ai.gateway.lovable.dev/v1"
	// DefaultGatewayModel is the model requested from the gateway.
	DefaultGatewayModel = "google/gemini-2.5-flash"
	// DefaultAnthropicModel is the model used with the Anthropic provider.
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	// DefaultTimeout bounds a single completion.
	DefaultTimeout = 120 * time.Second
	// DefaultMaxTokens caps the completion length.
	DefaultMaxTokens = 4096
)

var (
	// ErrRateLimited is returned when the provider answers 429.
	ErrRateLimited = errors.New("rate limit exceeded, please try again later")
	// ErrPaymentRequired is returned when the provider answers 402.
	ErrPaymentRequired = errors.New("AI credits exhausted, please add credits to continue")
	// ErrInvalidRequest is returned when an operation's input is incomplete.
	ErrInvalidRequest = errors.New("invalid request")
)

// Completer turns a system and user prompt into model text.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (text string, err error)
}

// GatewayConfig selects and configures a Completer.
type GatewayConfig struct {
	Provider  string
	URL       string
	APIKey    string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

// withDefaults fills unset fields for the configured provider.
func (c GatewayConfig) withDefaults() (cfg GatewayConfig) {
	cfg = c
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}

	if cfg.Model == "" {
		cfg.Model = DefaultGatewayModel
		if cfg.Provider == ProviderAnthropic {
			cfg.Model = DefaultAnthropicModel
		}
	}

	if cfg.URL == "" && cfg.Provider == ProviderOpenAI {
		cfg.URL = DefaultGatewayURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	return cfg
}

// NewCompleter builds the Completer for cfg.Provider.
func NewCompleter(cfg GatewayConfig) (completer Completer, err error) {
	cfg = cfg.withDefaults()

	if cfg.APIKey == "" {
		err = errors.Errorf("no API key configured for provider %s", cfg.Provider)
		return completer, err
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		completer = NewGatewayClient(cfg)
	case ProviderAnthropic:
		completer = NewAnthropicClient(cfg)
	default:
		err = errors.Errorf("unknown AI provider %q (expected %s or %s)", cfg.Provider, ProviderOpenAI, ProviderAnthropic)
	}

	return completer, err
}

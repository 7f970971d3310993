package llm

import (
	"context"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"
)

// AnthropicClient completes prompts through the Anthropic Messages API.
type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicClient creates an Anthropic-backed Completer. A URL in cfg overrides the API base URL.
func NewAnthropicClient(cfg GatewayConfig) (client *AnthropicClient) {
	cfg.Provider = ProviderAnthropic
	cfg = cfg.withDefaults()

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.URL != "" {
		opts = append(opts, option.WithBaseURL(cfg.URL))
	}

	client = &AnthropicClient{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
	}
	return client
}

// Complete sends a single user message and joins the text blocks of the reply.
func (c *AnthropicClient) Complete(ctx context.Context, system, prompt string) (text string, err error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	var message *anthropic.Message
	message, err = c.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusTooManyRequests:
				err = ErrRateLimited
				return text, err
			case http.StatusPaymentRequired:
				err = ErrPaymentRequired
				return text, err
			}
		}

		err = errors.Wrap(err, "anthropic request failed")
		return text, err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	if sb.Len() == 0 {
		err = errors.New("no text content in anthropic response")
		return text, err
	}

	text = sb.String()
	return text, err
}

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// GatewayClient talks to an OpenAI-compatible chat completions endpoint.
type GatewayClient struct {
	http      *resty.Client
	model     string
	maxTokens int
}

// NewGatewayClient creates a gateway client from cfg.
func NewGatewayClient(cfg GatewayConfig) (client *GatewayClient) {
	cfg = cfg.withDefaults()

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	client = &GatewayClient{
		http:      httpClient,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
	return client
}

// Complete sends one chat completion and returns the first choice's content.
func (c *GatewayClient) Complete(ctx context.Context, system, prompt string) (text string, err error) {
	req := ChatRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
	}
	if system != "" {
		req.Messages = append(req.Messages, ChatMessage{Role: "system", Content: system})
	}
	req.Messages = append(req.Messages, ChatMessage{Role: "user", Content: prompt})

	var resp *resty.Response
	resp, err = c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		err = errors.Wrap(err, "gateway request failed")
		return text, err
	}

	switch resp.StatusCode() {
	case http.StatusTooManyRequests:
		err = ErrRateLimited
		return text, err
	case http.StatusPaymentRequired:
		err = ErrPaymentRequired
		return text, err
	}

	if resp.IsError() {
		err = errors.Errorf("gateway request failed with status %d: %s", resp.StatusCode(), resp.String())
		return text, err
	}

	var chatResp ChatResponse
	err = json.Unmarshal(resp.Body(), &chatResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse gateway response: %s", resp.String())
		return text, err
	}

	if len(chatResp.Choices) == 0 {
		err = errors.New("no choices in gateway response")
		return text, err
	}

	text = chatResp.Choices[0].Message.Content
	return text, err
}

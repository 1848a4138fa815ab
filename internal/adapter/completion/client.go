package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyReply indicates the completion API answered without usable content.
var ErrEmptyReply = errors.New("empty completion reply")

const systemPrompt = "You are a compassionate addiction support assistant. " +
	"Respond in a calm, supportive, and empathetic tone. " +
	"Avoid giving medical advice. Always suggest professional help if needed."

const (
	replyTemperature = 0.7
	replyMaxTokens   = 150
)

// Client exposes supportive reply generation.
type Client interface {
	GenerateReply(ctx context.Context, category, description string) (string, error)
}

// Config carries connection settings for the completion API.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIClient implements Client against an OpenAI-compatible chat API.
type OpenAIClient struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIClient creates completion client with request timeout.
func NewOpenAIClient(cfg Config, logger *slog.Logger) (*OpenAIClient, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse completion url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("completion url must be absolute")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	apiConfig.BaseURL = strings.TrimRight(parsed.String(), "/")
	apiConfig.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIClient{
		api:    openai.NewClientWithConfig(apiConfig),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// GenerateReply requests a supportive reply for the described struggle.
func (c *OpenAIClient) GenerateReply(ctx context.Context, category, description string) (string, error) {
	prompt := fmt.Sprintf("I am struggling with %s. Here's what I'm going through: %s", category, description)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
	})
	if err != nil {
		c.logger.Error("completion request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn("completion returned no choices", slog.String("model", c.model))
		return "", ErrEmptyReply
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		c.logger.Warn("completion returned blank content", slog.String("model", c.model))
		return "", ErrEmptyReply
	}
	return reply, nil
}

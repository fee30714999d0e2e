package provider

import (
	"context"
	"strings"

	"github.com/ZaguanLabs/convertirse"
	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is the base URL of Groq's OpenAI-compatible API.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// DefaultGroqModel is the default model when talking to Groq.
const DefaultGroqModel = "mixtral-8x7b-32768"

// OpenAIProvider implements AIProvider against any OpenAI-compatible API
// (OpenAI itself, Groq, or a self-hosted gateway).
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// OpenAIConfig holds configuration for the provider.
type OpenAIConfig struct {
	APIKey  string // API credential (required, fail-closed)
	Model   string // Model to use (default: "gpt-4o-mini"; DefaultGroqModel for Groq)
	BaseURL string // Custom base URL (optional, e.g. GroqBaseURL)
}

// NewOpenAIProvider creates a new provider. The credential must be supplied
// explicitly; a missing key fails with a *ConfigurationError before any
// request is made.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &convertirse.ConfigurationError{Message: "API key is required"}
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		if cfg.BaseURL == GroqBaseURL {
			model = DefaultGroqModel
		} else {
			model = "gpt-4o-mini"
		}
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Generate sends the conversion prompt as a chat completion and returns the
// raw model output.
func (p *OpenAIProvider) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", &convertirse.GenerationError{
			Message:   "chat completion failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &convertirse.GenerationError{
			Message:   "empty response from model",
			Retryable: true,
		}
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &convertirse.GenerationError{
			Message:   "empty response from model",
			Retryable: true,
		}
	}

	return content, nil
}

// Model returns the configured model identifier.
func (p *OpenAIProvider) Model() string {
	return p.model
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements AIProvider
var _ AIProvider = (*OpenAIProvider)(nil)

package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

const (
	// DefaultOpenAIModel is the default model to use.
	DefaultOpenAIModel = "gpt-4o-mini"
	// DefaultOpenAIBaseURL is the default OpenAI API base URL.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	// DefaultTimeout is the default timeout for API calls.
	DefaultTimeout = 30 * time.Second

	// ErrNoChoicesInResponse is returned when the API response has no choices.
	ErrNoChoicesInResponse = "no choices in response"
)

// OpenAIProvider implements the Provider interface using OpenAI's API.
type OpenAIProvider struct {
	client     openai.Client
	model      string
	maxRetries int
	logger     *zap.Logger
	debugMode  bool
}

// OpenAIOptions configures an OpenAIProvider beyond the API key.
type OpenAIOptions struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Logger     *zap.Logger
	DebugMode  bool
}

// NewOpenAIProvider creates a new OpenAI provider with default options.
func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	return NewOpenAIProviderWithOptions(apiKey, OpenAIOptions{Model: model})
}

// NewOpenAIProviderWithOptions creates a new OpenAI provider.
func NewOpenAIProviderWithOptions(apiKey string, opts OpenAIOptions) *OpenAIProvider {
	if opts.Model == "" {
		opts.Model = DefaultOpenAIModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultOpenAIBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	httpClient := &http.Client{
		Timeout: opts.Timeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(opts.BaseURL),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &OpenAIProvider{
		client:     client,
		model:      opts.Model,
		maxRetries: opts.MaxRetries,
		logger:     opts.Logger,
		debugMode:  opts.DebugMode,
	}
}

// Generate sends the prompt as a single user message and returns the raw
// response text. Rate-limited calls are retried up to MaxRetries times with
// backoff; every other failure is returned to the caller untouched.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	if p.logger != nil && p.debugMode {
		p.logger.Debug("llm_api_request",
			zap.String("operation", "generate"),
			zap.String("model", p.model),
			zap.Int("prompt_length", len(prompt)),
			zap.String("prompt_preview", SanitizePrompt(prompt, true)),
		)
	}

	var lastErr error
	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(RetryDelay(lastErr, attempt-1)):
			}
		}

		start := time.Now()
		resp, err := p.client.Chat.Completions.New(ctx, req)
		latency := time.Since(start)
		if err != nil {
			if p.logger != nil && p.debugMode {
				p.logger.Debug("llm_api_error",
					zap.String("operation", "generate"),
					zap.String("model", p.model),
					zap.Error(err),
					zap.Int("attempt", attempt),
					zap.Duration("latency_ms", latency),
				)
			}
			if apiErr := ExtractAPIError(err); apiErr != nil {
				err = apiErr
			}
			lastErr = err
			if IsRateLimitError(err) && !IsQuotaError(err) && attempt < p.maxRetries {
				continue
			}
			return "", fmt.Errorf("failed to generate completion: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", errors.New(ErrNoChoicesInResponse)
		}

		content := resp.Choices[0].Message.Content
		if p.logger != nil && p.debugMode {
			p.logger.Debug("llm_api_response",
				zap.String("operation", "generate"),
				zap.String("model", p.model),
				zap.Int("response_length", len(content)),
				zap.String("response_preview", SanitizeResponse(content, true)),
				zap.Int64("latency_ms", latency.Milliseconds()),
			)
		}
		return content, nil
	}

	return "", fmt.Errorf("failed to generate completion: %w", lastErr)
}

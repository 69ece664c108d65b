package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/otey247/diagram-creator/internal/config"
	"go.uber.org/zap"
)

var (
	ErrMisconfiguredCredential = errors.New("OpenAI API key not configured, set OPENAI_API_KEY")
	ErrGenerationFailed        = errors.New("failed to generate diagram")
)

// Completer turns a prompt into raw model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewClient builds an OpenAI client for cfg. SDK retries are disabled:
// a failed call is reported to the user, who decides whether to resubmit.
func NewClient(cfg config.OpenAIConfig, opts ...option.RequestOption) openai.Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	return openai.NewClient(append(base, opts...)...)
}

type OpenAI struct {
	logger      *zap.Logger
	client      openai.Client
	apiKey      string
	model       string
	temperature float64
	maxTokens   int64
}

func NewOpenAI(logger *zap.Logger, client openai.Client, cfg config.OpenAIConfig) *OpenAI {
	return &OpenAI{
		logger:      logger.Named("completion"),
		client:      client,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Complete issues one chat completion with prompt as the only user message.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	if o.apiKey == "" {
		return "", ErrMisconfiguredCredential
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(o.temperature),
		MaxCompletionTokens: openai.Int(o.maxTokens),
	}

	o.logger.Debug("chat completion request",
		zap.String("model", o.model),
		zap.Int("prompt_len", len(prompt)),
	)

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		o.logger.Error("chat completion failed", zap.Error(err))
		return "", generationError(err)
	}

	if len(resp.Choices) == 0 {
		o.logger.Warn("chat completion returned no choices", zap.String("id", resp.ID))
		return "", nil
	}

	o.logger.Debug("chat completion done",
		zap.String("id", resp.ID),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

// generationError prefers the provider's own message over the SDK's
// request dump.
func generationError(err error) error {
	msg := err.Error()
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		msg = apiErr.Message
	}
	if msg == "" {
		return ErrGenerationFailed
	}
	return fmt.Errorf("%w: %s", ErrGenerationFailed, msg)
}

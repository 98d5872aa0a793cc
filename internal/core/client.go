package core

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Rorical/LofiStudio/internal/config"
	"github.com/Rorical/LofiStudio/internal/metrics"
)

const requestTimeout = 60 * time.Second

// ChatCompleter is the slice of the go-openai client the prompt client needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// CompleterFactory builds a ChatCompleter once a credential is known.
type CompleterFactory func(apiKey, baseURL string) ChatCompleter

// NewOpenAICompleter points the go-openai client at baseURL, Groq by default.
func NewOpenAICompleter(apiKey, baseURL string) ChatCompleter {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	clientConfig.HTTPClient = &http.Client{Timeout: requestTimeout}
	return openai.NewClientWithConfig(clientConfig)
}

// PromptGenerator is what the service and the HTTP API call into.
type PromptGenerator interface {
	CreateLofiMusicPrompt(ctx context.Context, req PromptRequest) (string, error)
	IsConfigured() bool
}

// PromptClient turns a weather and mood pair into a Lo-Fi music prompt with
// one chat completion call. It keeps no state between calls apart from the
// lazily built API client.
type PromptClient struct {
	config       *config.Config
	logger       *zap.Logger
	metrics      *metrics.Recorder
	newCompleter CompleterFactory

	mu           sync.Mutex
	completer    ChatCompleter
	completerKey string
}

type Option func(*PromptClient)

func WithLogger(l *zap.Logger) Option {
	return func(c *PromptClient) { c.logger = l }
}

func WithMetrics(r *metrics.Recorder) Option {
	return func(c *PromptClient) { c.metrics = r }
}

func WithCompleterFactory(f CompleterFactory) Option {
	return func(c *PromptClient) { c.newCompleter = f }
}

// NewPromptClient never fails: the credential is checked on first use.
func NewPromptClient(cfg *config.Config, opts ...Option) *PromptClient {
	c := &PromptClient{
		config:       cfg,
		logger:       zap.NewNop(),
		newCompleter: NewOpenAICompleter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *PromptClient) IsConfigured() bool {
	return c.config != nil && c.config.IsValid()
}

// CreateLofiMusicPrompt validates the input, checks the credential, makes a
// single completion call and returns the trimmed text of the first choice.
func (c *PromptClient) CreateLofiMusicPrompt(ctx context.Context, req PromptRequest) (string, error) {
	if strings.TrimSpace(req.Weather) == "" || strings.TrimSpace(req.Mood) == "" {
		c.metrics.Observe(metrics.OutcomeInvalidInput, 0)
		return "", ErrInvalidInput
	}

	completer, err := c.getCompleter()
	if err != nil {
		c.metrics.Observe(metrics.OutcomeConfig, 0)
		return "", err
	}

	if req.Model == "" && c.config != nil {
		req.Model = c.config.GetModel()
	}
	chatReq := BuildChatRequest(req)

	log := c.logger.With(
		zap.String("weather", req.Weather),
		zap.String("mood", req.Mood),
		zap.String("model", chatReq.Model),
	)

	start := time.Now()
	resp, err := completer.CreateChatCompletion(ctx, chatReq)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.Observe(metrics.OutcomeProvider, elapsed)
		log.Warn("completion request failed", zap.Duration("duration", elapsed), zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	result := firstChoiceText(resp)
	if result == "" {
		c.metrics.Observe(metrics.OutcomeEmptyResult, elapsed)
		log.Warn("completion returned no text", zap.Duration("duration", elapsed), zap.Int("choices", len(resp.Choices)))
		return "", ErrEmptyResult
	}

	c.metrics.Observe(metrics.OutcomeSuccess, elapsed)
	log.Info("prompt generated",
		zap.Duration("duration", elapsed),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return result, nil
}

func firstChoiceText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// getCompleter builds the API client the first time a credential is present
// and rebuilds it if the credential changes.
func (c *PromptClient) getCompleter() (ChatCompleter, error) {
	if !c.IsConfigured() {
		return nil, &ConfigError{Key: config.APIKeyEnv}
	}
	apiKey := c.config.GetAPIKey()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.completer == nil || c.completerKey != apiKey {
		c.completer = c.newCompleter(apiKey, c.config.GetBaseURL())
		c.completerKey = apiKey
	}
	return c.completer, nil
}

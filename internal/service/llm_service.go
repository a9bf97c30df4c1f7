package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecotrack/pkg/config"
	"ecotrack/pkg/metrics"

	"github.com/Role1776/gigago"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const requestTemperature = 0.7

// completionBackend performs exactly one completion request.
type completionBackend interface {
	complete(ctx context.Context, prompt Prompt) (string, error)
	close()
}

// LLMService sends single completion requests to the configured generative
// backend. It never retries: each call is billable and not idempotent.
type LLMService struct {
	config  *config.LLMConfig
	backend completionBackend
	initErr error
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewLLMService(cfg *config.LLMConfig, m *metrics.Metrics, logger *zap.Logger) (*LLMService, error) {
	service := &LLMService{
		config:  cfg,
		metrics: m,
		logger:  logger,
	}

	if cfg.APIKey == "" {
		logger.Warn("LLM API key is not set, generation will use fallback results",
			zap.String("provider", cfg.Provider),
		)
		return service, nil
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		service.backend = newOpenAIBackend(cfg)
	case config.ProviderGigaChat:
		backend, err := newGigaChatBackend(cfg, logger)
		if err != nil {
			// keep serving; every call reports the init failure and falls back
			logger.Error("Failed to create GigaChat client", zap.Error(err))
			service.initErr = err
		} else {
			service.backend = backend
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}

	logger.Info("LLM service initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout),
	)
	return service, nil
}

// Complete makes one bounded-timeout request and returns the raw generated
// text. ErrNotConfigured is returned before any network attempt when no
// credential is set; every transport problem is reported as ErrNetwork.
func (s *LLMService) Complete(ctx context.Context, prompt Prompt, kind TaskKind) (string, error) {
	if s.config.APIKey == "" {
		return "", ErrNotConfigured
	}
	if s.initErr != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, s.initErr)
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := s.backend.complete(ctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("response contains no generated text")
	}
	s.metrics.ObserveLLMCall(string(kind), started, err)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	s.logger.Debug("LLM completion received",
		zap.String("task", string(kind)),
		zap.Int("length", len(text)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return text, nil
}

func (s *LLMService) Close() error {
	if s.backend != nil {
		s.backend.close()
	}
	return nil
}

type openAIBackend struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func newOpenAIBackend(cfg *config.LLMConfig) *openAIBackend {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &openAIBackend{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

func (b *openAIBackend) complete(ctx context.Context, prompt Prompt) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		Temperature: requestTemperature,
		MaxTokens:   b.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (b *openAIBackend) close() {}

type gigaChatBackend struct {
	client    *gigago.Client
	modelName string
}

func newGigaChatBackend(cfg *config.LLMConfig, logger *zap.Logger) (*gigaChatBackend, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	// the client may keep the context for token refresh, so it must not expire
	client, err := gigago.NewClient(context.Background(), cfg.APIKey, opts...)
	if err != nil {
		return nil, err
	}
	return &gigaChatBackend{client: client, modelName: cfg.Model}, nil
}

// complete builds a model per call since the system instruction differs by
// task and the model value is not safe to share between requests.
func (b *gigaChatBackend) complete(ctx context.Context, prompt Prompt) (string, error) {
	model := b.client.GenerativeModel(b.modelName)
	model.SystemInstruction = prompt.System
	model.Temperature = requestTemperature

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt.User},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (b *gigaChatBackend) close() {
	b.client.Close()
}

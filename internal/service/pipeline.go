package service

import (
	"context"
	"errors"

	"ecotrack/pkg/metrics"

	"go.uber.org/zap"
)

// Generator is the generative text capability. *LLMService implements it.
type Generator interface {
	Complete(ctx context.Context, prompt Prompt, kind TaskKind) (string, error)
}

type taskRunner struct {
	generator Generator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// runTask calls the generator once and normalizes its output. Any failure on
// either step yields the fallback value; it never returns an error.
func runTask[T any](
	ctx context.Context,
	r *taskRunner,
	kind TaskKind,
	prompt Prompt,
	normalize func(raw string) (T, error),
	fallback func() T,
	fields ...zap.Field,
) Result[T] {
	fields = append(fields, zap.String("task", string(kind)))

	raw, err := r.generator.Complete(ctx, prompt, kind)
	if err == nil {
		value, normErr := normalize(raw)
		if normErr == nil {
			r.metrics.ObserveGeneration(string(kind), string(SourceGenerated))
			return generated(value)
		}
		err = normErr
		fields = append(fields, zap.String("response_preview", preview(raw)))
	}

	if errors.Is(err, ErrNotConfigured) {
		r.logger.Info("Generative backend not configured, using fallback", fields...)
	} else {
		r.logger.Warn("Generation failed, using fallback", append(fields, zap.Error(err))...)
	}
	r.metrics.ObserveGeneration(string(kind), string(SourceFallback))
	return fellBack(fallback(), err)
}

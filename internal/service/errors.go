package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned before any network attempt when the
	// generative backend has no credential.
	ErrNotConfigured = errors.New("generative backend not configured")
	// ErrNetwork covers connection failures, timeouts, non-2xx responses and
	// responses without generated text.
	ErrNetwork = errors.New("generative backend request failed")

	ErrExtraction = errors.New("no structured payload found")
	ErrParse      = errors.New("structured payload is not valid JSON")
	ErrCoercion   = errors.New("structured payload has unexpected shape")

	ErrRecommendationNotFound = errors.New("recommendation not found")
)

// NormalizationError wraps every failure of turning raw generated text into
// a canonical record. The wrapped sentinel is kept for diagnostics only.
type NormalizationError struct {
	Task TaskKind
	Err  error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize %s response: %v", e.Task, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

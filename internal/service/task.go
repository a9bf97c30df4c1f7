package service

// TaskKind selects the prompt template, response schema and fallback.
type TaskKind string

const (
	TaskRecommendation TaskKind = "recommendation"
	TaskPrediction     TaskKind = "prediction"
	TaskBehavior       TaskKind = "behavior"
)

// Prompt is a rendered system instruction plus user prompt.
type Prompt struct {
	System string
	User   string
}

// Source tells whether a result came from the generative backend or from
// the deterministic fallback.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Result is the outcome of a generation task. Cause is set only when
// Source is SourceFallback.
type Result[T any] struct {
	Value  T
	Source Source
	Cause  error
}

// FellBack reports whether Value is the deterministic fallback rather than
// generated output.
func (r Result[T]) FellBack() bool {
	return r.Source == SourceFallback
}

func generated[T any](value T) Result[T] {
	return Result[T]{Value: value, Source: SourceGenerated}
}

func fellBack[T any](value T, cause error) Result[T] {
	return Result[T]{Value: value, Source: SourceFallback, Cause: cause}
}

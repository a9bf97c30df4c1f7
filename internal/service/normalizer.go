package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ecotrack/internal/models"
)

const (
	defaultRecommendationTitle       = "Reduce your carbon footprint"
	defaultRecommendationDescription = "Review this area of your lifestyle for emission savings."
	defaultRecommendationImpact      = 1.0
	defaultRecommendationConfidence  = 80
	defaultRecommendationCategory    = "General"
	defaultRecommendationActionStep  = "Review this recommendation and plan your first step"
	defaultRecommendationTimeframe   = "1-3 months"
)

// extractPayload finds the structured part of free-form generated text.
// An array span wins over an object span, unless the array is nested inside
// an object that opens first; then the enclosing object is the payload.
func extractPayload(raw string) (string, error) {
	arrStart, arrEnd, arrOK := findSpan(raw, '[', ']')
	objStart, objEnd, objOK := findSpan(raw, '{', '}')

	nested := arrOK && objOK && objStart < arrStart && objEnd > arrEnd
	switch {
	case arrOK && !nested:
		return raw[arrStart : arrEnd+1], nil
	case objOK:
		return raw[objStart : objEnd+1], nil
	default:
		return "", ErrExtraction
	}
}

// findSpan returns the span from the leftmost open byte to its matching
// close byte. Brackets inside JSON string literals are ignored.
func findSpan(text string, open, close byte) (int, int, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return 0, 0, false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return start, i, true
			}
		}
	}
	return 0, 0, false
}

func decodePayload(raw string) (any, error) {
	payload, err := extractPayload(raw)
	if err != nil {
		return nil, err
	}
	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return value, nil
}

// NormalizeRecommendations turns generated text into fully defaulted
// recommendations. A single recommendation object is treated as a
// one-element list; an object wrapping exactly one list yields that list.
func NormalizeRecommendations(raw string) ([]*models.Recommendation, error) {
	value, err := decodePayload(raw)
	if err != nil {
		return nil, &NormalizationError{Task: TaskRecommendation, Err: err}
	}

	var items []any
	switch v := value.(type) {
	case map[string]any:
		if hasAnyKey(v, recommendationKeys) {
			items = []any{v}
			break
		}
		list, ok := soleList(v)
		if !ok {
			return nil, &NormalizationError{Task: TaskRecommendation, Err: fmt.Errorf("%w: object has no recommendation fields", ErrCoercion)}
		}
		items = list
	case []any:
		items = v
	default:
		return nil, &NormalizationError{Task: TaskRecommendation, Err: fmt.Errorf("%w: got %T", ErrCoercion, value)}
	}
	if len(items) == 0 {
		return nil, &NormalizationError{Task: TaskRecommendation, Err: fmt.Errorf("%w: empty list", ErrCoercion)}
	}

	recommendations := make([]*models.Recommendation, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, &NormalizationError{
				Task: TaskRecommendation,
				Err:  fmt.Errorf("%w: element %d is %T", ErrCoercion, i, item),
			}
		}
		if !hasAnyKey(fields, recommendationKeys) {
			return nil, &NormalizationError{
				Task: TaskRecommendation,
				Err:  fmt.Errorf("%w: element %d has no recommendation fields", ErrCoercion, i),
			}
		}
		recommendations = append(recommendations, coerceRecommendation(fields))
	}
	return recommendations, nil
}

// NormalizePrediction passes the generated object through without
// field-level defaulting; absent fields stay nil.
func NormalizePrediction(raw string) (*models.PredictionResult, error) {
	var result models.PredictionResult
	if err := decodeObject(raw, &result); err != nil {
		return nil, &NormalizationError{Task: TaskPrediction, Err: err}
	}
	return &result, nil
}

// NormalizeBehavior passes the generated object through without
// field-level defaulting; absent fields stay nil.
func NormalizeBehavior(raw string) (*models.BehaviorAnalysis, error) {
	var result models.BehaviorAnalysis
	if err := decodeObject(raw, &result); err != nil {
		return nil, &NormalizationError{Task: TaskBehavior, Err: err}
	}
	return &result, nil
}

func decodeObject(raw string, dst any) error {
	value, err := decodePayload(raw)
	if err != nil {
		return err
	}
	if _, ok := value.(map[string]any); !ok {
		return fmt.Errorf("%w: expected object, got %T", ErrCoercion, value)
	}
	// re-marshal of a decoded map cannot fail
	data, _ := json.Marshal(value)
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrCoercion, err)
	}
	return nil
}

func coerceRecommendation(fields map[string]any) *models.Recommendation {
	rec := &models.Recommendation{
		Type:        models.RecommendationType(strings.ToLower(stringField(fields, "", "type"))),
		Title:       stringField(fields, defaultRecommendationTitle, "title"),
		Description: stringField(fields, defaultRecommendationDescription, "description"),
		Category:    stringField(fields, defaultRecommendationCategory, "category"),
		Timeframe:   stringField(fields, defaultRecommendationTimeframe, "timeframe"),
		Priority:    models.Priority(strings.ToLower(stringField(fields, "", "priority"))),
		ActionSteps: stringListField(fields, "actionSteps", "action_steps"),
	}

	rec.Impact = numberField(fields, defaultRecommendationImpact, "impact")
	confidence := numberField(fields, defaultRecommendationConfidence, "confidence")
	rec.Confidence = int(math.Round(min(max(confidence, 0), 100)))
	rec.EstimatedCost = numberField(fields, 0, "estimatedCost", "estimated_cost")
	rec.RewardPotential = -1
	if v, ok := lookupNumber(fields, "rewardPotential", "reward_potential"); ok {
		rec.RewardPotential = int(math.Floor(min(max(v, 0), math.MaxInt32)))
	}

	applyRecommendationDefaults(rec)
	return rec
}

// applyRecommendationDefaults enforces the value ranges and substitutes
// defaults for empty fields. A negative RewardPotential means "derive from
// impact".
func applyRecommendationDefaults(rec *models.Recommendation) {
	if !rec.Type.Valid() {
		rec.Type = models.RecommendationTypeReduction
	}
	if !rec.Priority.Valid() {
		rec.Priority = models.PriorityMedium
	}
	if strings.TrimSpace(rec.Title) == "" {
		rec.Title = defaultRecommendationTitle
	}
	if strings.TrimSpace(rec.Description) == "" {
		rec.Description = defaultRecommendationDescription
	}
	if strings.TrimSpace(rec.Category) == "" {
		rec.Category = defaultRecommendationCategory
	}
	if strings.TrimSpace(rec.Timeframe) == "" {
		rec.Timeframe = defaultRecommendationTimeframe
	}
	if len(rec.ActionSteps) == 0 {
		rec.ActionSteps = []string{defaultRecommendationActionStep}
	}
	if rec.Impact < 0 || math.IsNaN(rec.Impact) || math.IsInf(rec.Impact, 0) {
		rec.Impact = 0
	}
	rec.Confidence = min(max(rec.Confidence, 0), 100)
	if rec.RewardPotential < 0 {
		rec.RewardPotential = EstimateReward(rec.Impact)
	}
	if rec.EstimatedCost < 0 || math.IsNaN(rec.EstimatedCost) || math.IsInf(rec.EstimatedCost, 0) {
		rec.EstimatedCost = 0
	}
}

// recommendationKeys are the field names a generated recommendation may use.
var recommendationKeys = []string{
	"type", "title", "description", "impact", "confidence", "category",
	"rewardPotential", "reward_potential", "actionSteps", "action_steps",
	"estimatedCost", "estimated_cost", "timeframe", "priority",
}

// soleList returns the only array-valued field of obj.
func soleList(obj map[string]any) ([]any, bool) {
	var list []any
	found := 0
	for _, v := range obj {
		if arr, ok := v.([]any); ok {
			list = arr
			found++
		}
	}
	return list, found == 1
}

func hasAnyKey(fields map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

func lookup(fields map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := fields[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func stringField(fields map[string]any, fallback string, keys ...string) string {
	v, ok := lookup(fields, keys...)
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

// lookupNumber accepts JSON numbers and numeric strings such as "2.5".
func lookupNumber(fields map[string]any, keys ...string) (float64, bool) {
	v, ok := lookup(fields, keys...)
	if !ok {
		return 0, false
	}
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func numberField(fields map[string]any, fallback float64, keys ...string) float64 {
	if n, ok := lookupNumber(fields, keys...); ok {
		return n
	}
	return fallback
}

func stringListField(fields map[string]any, keys ...string) []string {
	v, ok := lookup(fields, keys...)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []any:
		var steps []string
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				steps = append(steps, strings.TrimSpace(s))
			}
		}
		return steps
	}
	return nil
}

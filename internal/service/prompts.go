package service

import (
	"fmt"
	"strconv"
	"strings"

	"ecotrack/internal/models"
)

const notSpecified = "not specified"

const (
	recommendationSystemInstruction = `You are an expert carbon footprint advisor. You help individuals reduce their personal CO2 emissions with specific, realistic and measurable actions that fit their location, lifestyle and budget. Always respond with valid structured data (JSON) and nothing else.`

	predictionSystemInstruction = `You are an expert in carbon emission forecasting. You analyse historical monthly emissions and activity data to predict near-term emissions and explain the drivers behind the trend. Always respond with valid structured data (JSON) and nothing else.`

	behaviorSystemInstruction = `You are an expert in sustainable behavior change. You analyse daily activity logs to find emission-relevant habits and suggest practical improvements. Always respond with valid structured data (JSON) and nothing else.`
)

// SystemInstruction returns the fixed system instruction for a task kind.
func SystemInstruction(kind TaskKind) string {
	switch kind {
	case TaskPrediction:
		return predictionSystemInstruction
	case TaskBehavior:
		return behaviorSystemInstruction
	default:
		return recommendationSystemInstruction
	}
}

func BuildRecommendationPrompt(profile *models.UserProfile) Prompt {
	var b strings.Builder
	b.WriteString("Generate 3 to 5 personalized carbon reduction recommendations for this user.\n\n")
	b.WriteString("User profile:\n")
	fmt.Fprintf(&b, "- Carbon footprint: %s\n", formatTons(profile.CarbonFootprint))
	fmt.Fprintf(&b, "- Location: %s\n", orNotSpecified(profile.Location))
	fmt.Fprintf(&b, "- Lifestyle: %s\n", formatList(profile.Lifestyle))
	fmt.Fprintf(&b, "- Preferences: %s\n", formatList(profile.Preferences))
	fmt.Fprintf(&b, "- Budget: %s\n", formatAmount(profile.Budget))
	b.WriteString(`
Return a JSON array. Each element must contain:
- "type": one of "reduction", "purchase", "optimization", "behavioral"
- "title": short action title
- "description": what to do and why it lowers emissions
- "impact": estimated yearly CO2 reduction in tons (number >= 0)
- "confidence": confidence in the estimate, integer 0-100
- "category": area such as "Energy", "Transportation", "Food", "Waste"
- "rewardPotential": suggested token reward, integer >= 0
- "actionSteps": ordered list of concrete steps (at least one)
- "estimatedCost": upfront cost in the user's currency (number >= 0)
- "timeframe": how long implementation takes, e.g. "1-3 months"
- "priority": one of "low", "medium", "high", "critical"

Respect the budget when one is given.`)

	return Prompt{System: SystemInstruction(TaskRecommendation), User: b.String()}
}

func BuildPredictionPrompt(input PredictionInput) Prompt {
	var b strings.Builder
	b.WriteString("Predict this user's carbon emissions for the next 3 months.\n\n")
	fmt.Fprintf(&b, "Monthly emissions history (kg CO2, oldest first): %s\n", formatSeries(input.MonthlyEmissions))
	fmt.Fprintf(&b, "Recent activities: %s\n", formatList(input.Activities))
	fmt.Fprintf(&b, "Account for seasonal variation: %s\n", formatYesNo(input.Seasonal))
	b.WriteString(`
Return a JSON object with:
- "predictedEmissions": predicted monthly emissions (number)
- "trend": one of "increasing", "decreasing", "stable"
- "factors": list of the main factors driving the prediction
- "confidence": confidence in the prediction, 0-100
- "timeframe": period the prediction covers, e.g. "3 months"`)

	return Prompt{System: SystemInstruction(TaskPrediction), User: b.String()}
}

func BuildBehaviorPrompt(input BehaviorInput) Prompt {
	var b strings.Builder
	b.WriteString("Analyse this user's daily activity log for carbon-relevant behavior.\n\n")
	b.WriteString("Activity log:\n")
	if len(input.DailyActivities) == 0 {
		fmt.Fprintf(&b, "- %s\n", notSpecified)
	}
	for _, day := range input.DailyActivities {
		line := fmt.Sprintf("- %s: %s", orNotSpecified(day.Date), formatList(day.Activities))
		if day.Emissions != nil {
			line += fmt.Sprintf(" (%s kg CO2)", formatNumber(*day.Emissions))
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "Observed patterns: %s\n", formatList(input.Patterns))
	fmt.Fprintf(&b, "Goals: %s\n", formatList(input.Goals))
	b.WriteString(`
Return a JSON object with:
- "insights": list of observations about the user's behavior
- "behavior_score": sustainability score 0-100
- "improvement_suggestions": list of concrete improvements
- "habit_recommendations": list of habits to build`)

	return Prompt{System: SystemInstruction(TaskBehavior), User: b.String()}
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

func formatList(items []string) string {
	var kept []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return notSpecified
	}
	return strings.Join(kept, ", ")
}

func formatTons(v *float64) string {
	if v == nil {
		return notSpecified
	}
	return formatNumber(*v) + " tons CO2/year"
}

func formatAmount(v *float64) string {
	if v == nil {
		return notSpecified
	}
	return formatNumber(*v)
}

func formatSeries(series []float64) string {
	if len(series) == 0 {
		return notSpecified
	}
	parts := make([]string, len(series))
	for i, v := range series {
		parts[i] = formatNumber(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatYesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

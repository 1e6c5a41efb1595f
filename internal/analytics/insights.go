package analytics

import (
	"fmt"
	"strings"
)

// Insights renders the numeric results into a small fixed set of ranked
// statements. The first is always the mood tier, then emotion dominance,
// then sample size; a fourth names the top narrative when one exists.
func Insights(total int, sentiment, emotion Distribution, mood float64, narratives []TopicSummary) []string {
	insights := make([]string, 0, 4)

	switch {
	case mood >= 70:
		insights = append(insights, fmt.Sprintf("**Highly Positive Mood**: overall sentiment is very optimistic (%.1f/100)", mood))
	case mood >= 50:
		insights = append(insights, fmt.Sprintf("**Moderately Positive**: sentiment leans positive but with some concerns (%.1f/100)", mood))
	case mood >= 30:
		insights = append(insights, fmt.Sprintf("**Mixed Sentiment**: balanced between positive and negative signals (%.1f/100)", mood))
	default:
		insights = append(insights, fmt.Sprintf("**Negative Mood**: predominately negative sentiment detected (%.1f/100)", mood))
	}

	dominant, strength := emotion.Max()
	if dominant == "" {
		dominant = "neutral"
	}
	if strength > 40 {
		insights = append(insights, fmt.Sprintf("**Strong Emotional Signal**: %s dominates (%.1f%% of responses)", titleCase(dominant), strength))
	} else {
		insights = append(insights, "**Diverse Emotions**: no single emotion dominates, indicating varied reactions")
	}

	insights = append(insights, fmt.Sprintf("**Sample Size**: %s texts analyzed", formatInt(total)))

	if len(narratives) > 0 {
		top := narratives[0]
		insights = append(insights, fmt.Sprintf("**Top Narrative**: %s (%d mentions, %+.0f%% sentiment)",
			top.Name, top.DocumentCount, top.SentimentScore))
	}

	return insights
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatInt formats an integer with comma separators.
func formatInt(n int) string {
	if n < 0 {
		return "0"
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

package render

import (
	"fmt"
	"strings"

	"github.com/mkallio/moodlens/internal/analytics"
)

// ReportData holds everything needed to render an analysis report.
type ReportData struct {
	Source          string // input path, or "sample" for the demo dataset
	Date            string // YYYY-MM-DD
	ClassifierModel string // empty when the corpus arrived pre-labeled
	TopicModel      string // empty when topic modeling did not run
	Result          analytics.Result
}

// Report renders a full markdown analysis report.
func Report(d ReportData) string {
	var b strings.Builder

	b.WriteString("# Mood Analysis Report\n\n")
	fmt.Fprintf(&b, "- **Source**: %s\n", d.Source)
	fmt.Fprintf(&b, "- **Date**: %s\n", d.Date)
	fmt.Fprintf(&b, "- **Documents**: %s\n", formatInt(d.Result.Total))
	if d.ClassifierModel != "" {
		fmt.Fprintf(&b, "- **Classifier**: %s\n", d.ClassifierModel)
	}
	if d.TopicModel != "" {
		fmt.Fprintf(&b, "- **Topic model**: %s\n", d.TopicModel)
	}

	b.WriteString("\n## Metrics\n\n")
	fmt.Fprintf(&b, "| Mood Score | Volatility Index | Sample Size |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| %.1f/100 | %.1f/100 | %s |\n", d.Result.Mood, d.Result.Volatility, formatInt(d.Result.Total))

	b.WriteString("\n## Key Insights\n\n")
	for _, insight := range d.Result.Insights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	writeDistribution(&b, "Sentiment Distribution", d.Result.Sentiment)
	writeDistribution(&b, "Emotion Distribution", d.Result.Emotion)

	if len(d.Result.Narratives) > 0 {
		b.WriteString("\n## Dominant Narratives\n\n")
		b.WriteString("| Narrative | Mentions | Sentiment | Emotion | Positive % | Negative % |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, n := range d.Result.Narratives {
			fmt.Fprintf(&b, "| %s | %d | %+.1f | %s | %.1f | %.1f |\n",
				n.Name, n.DocumentCount, n.SentimentScore, n.DominantEmotion, n.PositivePct, n.NegativePct)
		}
	}

	if len(d.Result.Correlation) > 0 {
		writeCorrelation(&b, d.Result)
	}

	return b.String()
}

// writeDistribution renders one label/percentage table, largest share
// first with ties broken alphabetically for stable output.
func writeDistribution(b *strings.Builder, title string, dist analytics.Distribution) {
	if len(dist) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## %s\n\n", title)
	b.WriteString("| Label | Share |\n")
	b.WriteString("|---|---|\n")
	for _, label := range sortedByShare(dist) {
		fmt.Fprintf(b, "| %s | %.1f%% |\n", label, dist.Get(label))
	}
}

// writeCorrelation renders the topic x emotion matrix.
func writeCorrelation(b *strings.Builder, r analytics.Result) {
	names := topicNames(r.Narratives)

	// Column order: emotions by first appearance in the entries.
	var emotions []string
	seen := make(map[string]bool)
	for _, e := range r.Correlation {
		if !seen[e.Emotion] {
			seen[e.Emotion] = true
			emotions = append(emotions, e.Emotion)
		}
	}

	// Row order: topics by first appearance.
	var topicOrder []int
	seenTopic := make(map[int]bool)
	cells := make(map[int]map[string]float64)
	for _, e := range r.Correlation {
		if !seenTopic[e.Topic] {
			seenTopic[e.Topic] = true
			topicOrder = append(topicOrder, e.Topic)
			cells[e.Topic] = make(map[string]float64)
		}
		cells[e.Topic][e.Emotion] = e.Percentage
	}

	b.WriteString("\n## Topic-Emotion Correlation\n\n")
	b.WriteString("| Topic |")
	for _, e := range emotions {
		fmt.Fprintf(b, " %s |", e)
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", len(emotions)))
	b.WriteString("\n")

	for _, topic := range topicOrder {
		name, ok := names[topic]
		if !ok {
			name = fmt.Sprintf("Topic %d", topic)
		}
		fmt.Fprintf(b, "| %s |", name)
		for _, e := range emotions {
			fmt.Fprintf(b, " %.1f%% |", cells[topic][e])
		}
		b.WriteString("\n")
	}
}

func topicNames(narratives []analytics.TopicSummary) map[int]string {
	names := make(map[int]string, len(narratives))
	for _, n := range narratives {
		names[n.TopicID] = n.Name
	}
	return names
}

// sortedByShare returns labels ordered by descending share, ties
// alphabetical.
func sortedByShare(dist analytics.Distribution) []string {
	labels := make([]string, 0, len(dist))
	for l := range dist {
		labels = append(labels, l)
	}
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0; j-- {
			a, b := labels[j-1], labels[j]
			if dist.Get(b) > dist.Get(a) || (dist.Get(b) == dist.Get(a) && b < a) {
				labels[j-1], labels[j] = b, a
			} else {
				break
			}
		}
	}
	return labels
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

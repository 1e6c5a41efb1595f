// Package analytics is the aggregation core: deterministic statistical
// transforms from a table of per-document (sentiment, emotion, topic)
// labels to corpus-level metrics, correlation tables and ranked narrative
// summaries. Every function is pure and total over its inputs; "no data"
// conditions produce empty values, never errors.
package analytics

import "github.com/mkallio/moodlens/internal/corpus"

// Result bundles everything one analysis run produces. A new run replaces
// the whole value; nothing in here is mutated after Analyze returns.
type Result struct {
	Total     int
	Sentiment Distribution
	Emotion   Distribution

	Mood       float64
	Volatility float64

	// Nil when the corpus carries no topic assignments.
	Correlation []CorrelationEntry
	Narratives  []TopicSummary

	Insights []string
}

// Analyze runs the full aggregation pipeline over a validated corpus.
// info may be nil when topic modeling did not run; the correlation and
// narrative outputs are then absent.
func Analyze(docs []corpus.Document, info []TopicInfo) Result {
	r := Result{
		Total:     len(docs),
		Sentiment: SentimentDistribution(docs),
		Emotion:   EmotionDistribution(docs),
	}
	r.Mood = MoodScore(r.Sentiment, r.Emotion)
	r.Volatility = VolatilityIndex(r.Emotion)

	if corpus.HasTopics(docs) {
		r.Correlation = TopicEmotionCorrelation(docs)
		r.Narratives = DetectNarratives(docs, info)
	}

	r.Insights = Insights(r.Total, r.Sentiment, r.Emotion, r.Mood, r.Narratives)
	return r
}

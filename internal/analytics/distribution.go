package analytics

import (
	"math"

	"github.com/mkallio/moodlens/internal/corpus"
)

// Distribution maps a category label to its percentage of the corpus.
// Entries are rounded independently to one decimal, so the displayed sum
// may drift slightly from 100. Labels never observed are simply absent;
// use Get to read with a zero default.
type Distribution map[string]float64

// Get returns the percentage for label, or 0 when the label was never
// observed. Missing labels are valid input everywhere in this package,
// never an error.
func (d Distribution) Get(label string) float64 {
	return d[label]
}

// Max returns the label with the highest percentage and its value.
// Ties go to the lexically smallest label so the result is deterministic.
// An empty distribution returns ("", 0).
func (d Distribution) Max() (string, float64) {
	var best string
	var bestVal float64
	for label, v := range d {
		if best == "" || v > bestVal || (v == bestVal && label < best) {
			best = label
			bestVal = v
		}
	}
	return best, bestVal
}

// SentimentDistribution computes the sentiment share of the corpus.
func SentimentDistribution(docs []corpus.Document) Distribution {
	return distributionOf(docs, func(d corpus.Document) string { return string(d.Sentiment) })
}

// EmotionDistribution computes the emotion share of the corpus.
func EmotionDistribution(docs []corpus.Document) Distribution {
	return distributionOf(docs, func(d corpus.Document) string { return d.Emotion })
}

// distributionOf counts label occurrences and converts them to one-decimal
// percentages. An empty corpus yields an empty (non-nil) Distribution.
func distributionOf(docs []corpus.Document, label func(corpus.Document) string) Distribution {
	dist := make(Distribution)
	if len(docs) == 0 {
		return dist
	}

	counts := make(map[string]int)
	for _, d := range docs {
		counts[label(d)]++
	}

	total := float64(len(docs))
	for l, n := range counts {
		dist[l] = round1(float64(n) / total * 100)
	}
	return dist
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

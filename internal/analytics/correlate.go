package analytics

import "github.com/mkallio/moodlens/internal/corpus"

// CorrelationEntry is the emotion share within a single topic's documents.
// Percentages for a fixed topic sum to ~100 across its emotions.
type CorrelationEntry struct {
	Topic      int
	Emotion    string
	Percentage float64
}

// TopicEmotionCorrelation cross-tabulates the emotion distribution per
// topic. Outlier documents (topic -1) are always excluded. Entries are
// grouped by topic in order of first appearance in the corpus; within a
// topic, emotions follow their first appearance among that topic's
// documents. Returns nil when no document carries a real topic.
func TopicEmotionCorrelation(docs []corpus.Document) []CorrelationEntry {
	var topicOrder []int
	byTopic := make(map[int][]corpus.Document)

	for _, d := range docs {
		if d.Topic == corpus.TopicOutlier {
			continue
		}
		if _, seen := byTopic[d.Topic]; !seen {
			topicOrder = append(topicOrder, d.Topic)
		}
		byTopic[d.Topic] = append(byTopic[d.Topic], d)
	}

	var entries []CorrelationEntry
	for _, topic := range topicOrder {
		selection := byTopic[topic]
		dist := EmotionDistribution(selection)

		for _, emotion := range emotionOrder(selection) {
			entries = append(entries, CorrelationEntry{
				Topic:      topic,
				Emotion:    emotion,
				Percentage: dist.Get(emotion),
			})
		}
	}
	return entries
}

// emotionOrder returns the distinct emotions in first-appearance order.
func emotionOrder(docs []corpus.Document) []string {
	var order []string
	seen := make(map[string]bool)
	for _, d := range docs {
		if !seen[d.Emotion] {
			seen[d.Emotion] = true
			order = append(order, d.Emotion)
		}
	}
	return order
}

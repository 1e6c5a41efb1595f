package analytics

import (
	"fmt"
	"sort"

	"github.com/mkallio/moodlens/internal/corpus"
)

// TopicInfo is the externally supplied description of one topic.
type TopicInfo struct {
	Topic int
	Name  string // short human label from the topic model's top terms
}

// TopicSummary is the sentiment/emotion profile of one detected narrative.
type TopicSummary struct {
	TopicID         int
	Name            string
	DocumentCount   int
	SentimentScore  float64 // [-100, 100]
	DominantEmotion string
	PositivePct     float64
	NegativePct     float64
}

// DetectNarratives ranks topics by document volume and profiles each one.
// Topics listed in info but matching no documents are skipped, as is the
// outlier topic -1. The result is sorted by document count descending with
// a stable sort, so topics tied on volume keep their info-table order.
// Returns nil when info is empty or nothing matches.
func DetectNarratives(docs []corpus.Document, info []TopicInfo) []TopicSummary {
	if len(info) == 0 {
		return nil
	}

	var summaries []TopicSummary
	for _, ti := range info {
		if ti.Topic == corpus.TopicOutlier {
			continue
		}

		var selection []corpus.Document
		for _, d := range docs {
			if d.Topic == ti.Topic {
				selection = append(selection, d)
			}
		}
		if len(selection) == 0 {
			continue
		}

		name := ti.Name
		if name == "" {
			name = fmt.Sprintf("Topic %d", ti.Topic)
		}

		var pos, neg int
		for _, d := range selection {
			switch d.Sentiment {
			case corpus.Positive:
				pos++
			case corpus.Negative:
				neg++
			}
		}
		total := float64(len(selection))

		summaries = append(summaries, TopicSummary{
			TopicID:         ti.Topic,
			Name:            name,
			DocumentCount:   len(selection),
			SentimentScore:  round1(float64(pos-neg) / total * 100),
			DominantEmotion: dominantEmotion(selection),
			PositivePct:     round1(float64(pos) / total * 100),
			NegativePct:     round1(float64(neg) / total * 100),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].DocumentCount > summaries[j].DocumentCount
	})
	return summaries
}

// dominantEmotion picks the most frequent emotion in the selection.
// Ties go to the emotion that appears earliest in the selection, which
// makes the choice deterministic for a given document order.
func dominantEmotion(docs []corpus.Document) string {
	counts := make(map[string]int)
	for _, d := range docs {
		counts[d.Emotion]++
	}

	var best string
	var bestCount int
	for _, emotion := range emotionOrder(docs) {
		if counts[emotion] > bestCount {
			best = emotion
			bestCount = counts[emotion]
		}
	}
	return best
}

// Package export writes analysis artifacts to disk: the markdown report,
// CSV tables of labeled documents and narratives, and optional zstd
// compression of everything it writes.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mkallio/moodlens/internal/analytics"
	"github.com/mkallio/moodlens/internal/corpus"
)

// WriteDocumentsCSV writes the labeled corpus to path, one row per document.
func WriteDocumentsCSV(path string, docs []corpus.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"text", "sentiment", "sentiment_confidence", "emotion", "topic"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, d := range docs {
		topic := ""
		if d.Topic != corpus.TopicOutlier {
			topic = strconv.Itoa(d.Topic)
		}
		row := []string{
			d.Text,
			string(d.Sentiment),
			strconv.FormatFloat(d.Confidence, 'f', -1, 64),
			d.Emotion,
			topic,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// WriteNarrativesCSV writes one row per detected narrative to path.
func WriteNarrativesCSV(path string, narratives []analytics.TopicSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"topic_id", "narrative", "document_count", "sentiment_score", "dominant_emotion", "positive_pct", "negative_pct"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, n := range narratives {
		row := []string{
			strconv.Itoa(n.TopicID),
			n.Name,
			strconv.Itoa(n.DocumentCount),
			strconv.FormatFloat(n.SentimentScore, 'f', 1, 64),
			n.DominantEmotion,
			strconv.FormatFloat(n.PositivePct, 'f', 1, 64),
			strconv.FormatFloat(n.NegativePct, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

package corpus

import "fmt"

// Sentiment is a classifier-assigned sentiment label.
type Sentiment string

const (
	Positive Sentiment = "POSITIVE"
	Negative Sentiment = "NEGATIVE"
	Neutral  Sentiment = "NEUTRAL"
)

// TopicOutlier marks a document the topic model left unclustered.
const TopicOutlier = -1

// Document is one classified input text. Created once by the classification
// step and immutable afterward; the analysis never writes back into it.
type Document struct {
	Text       string
	Sentiment  Sentiment
	Confidence float64 // classifier confidence in [0,1], 0 when unknown
	Emotion    string  // lowercase label, e.g. "joy", "anger", "neutral"
	Topic      int     // TopicOutlier when unclustered or topics disabled
}

// Labeled reports whether the document already carries classification labels.
// Loaders produce unlabeled documents when the input has only a text column.
func (d Document) Labeled() bool {
	return d.Sentiment != "" && d.Emotion != ""
}

// Validate checks that every document carries the fields the aggregation
// core requires. It fails fast on the first malformed record rather than
// substituting defaults, so upstream classifier failures surface instead of
// flattening into plausible-looking zeros.
func Validate(docs []Document) error {
	for i, d := range docs {
		if d.Text == "" {
			return fmt.Errorf("document %d: empty text", i)
		}
		switch d.Sentiment {
		case Positive, Negative, Neutral:
		case "":
			return fmt.Errorf("document %d: missing sentiment", i)
		default:
			return fmt.Errorf("document %d: unknown sentiment %q", i, d.Sentiment)
		}
		if d.Emotion == "" {
			return fmt.Errorf("document %d: missing emotion", i)
		}
		if d.Topic < TopicOutlier {
			return fmt.Errorf("document %d: invalid topic %d", i, d.Topic)
		}
	}
	return nil
}

// HasTopics reports whether any document was assigned to a real topic.
func HasTopics(docs []Document) bool {
	for _, d := range docs {
		if d.Topic > TopicOutlier {
			return true
		}
	}
	return false
}

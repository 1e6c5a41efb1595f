package analytics

import (
	"math"
	"testing"

	"github.com/mkallio/moodlens/internal/corpus"
)

func makeDoc(sentiment corpus.Sentiment, emotion string, topic int) corpus.Document {
	return corpus.Document{
		Text:      "text",
		Sentiment: sentiment,
		Emotion:   emotion,
		Topic:     topic,
	}
}

func TestSentimentDistribution_Empty(t *testing.T) {
	dist := SentimentDistribution(nil)
	if dist == nil {
		t.Fatal("expected non-nil distribution for empty corpus")
	}
	if len(dist) != 0 {
		t.Errorf("len = %d, want 0", len(dist))
	}
	if got := dist.Get("POSITIVE"); got != 0 {
		t.Errorf("Get on missing label = %f, want 0", got)
	}
}

func TestSentimentDistribution_Counts(t *testing.T) {
	docs := []corpus.Document{
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Negative, "anger", -1),
		makeDoc(corpus.Neutral, "neutral", -1),
	}

	dist := SentimentDistribution(docs)

	if got := dist.Get("POSITIVE"); got != 50.0 {
		t.Errorf("POSITIVE = %f, want 50.0", got)
	}
	if got := dist.Get("NEGATIVE"); got != 25.0 {
		t.Errorf("NEGATIVE = %f, want 25.0", got)
	}
	if got := dist.Get("NEUTRAL"); got != 25.0 {
		t.Errorf("NEUTRAL = %f, want 25.0", got)
	}
}

func TestDistribution_Rounding(t *testing.T) {
	// 3 labels over 3 docs: each 33.333... -> 33.3
	docs := []corpus.Document{
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Negative, "anger", -1),
		makeDoc(corpus.Neutral, "fear", -1),
	}

	dist := EmotionDistribution(docs)
	for _, label := range []string{"joy", "anger", "fear"} {
		if got := dist.Get(label); got != 33.3 {
			t.Errorf("%s = %f, want 33.3", label, got)
		}
	}
}

func TestDistribution_SumNear100(t *testing.T) {
	// Uneven split to force rounding drift.
	docs := []corpus.Document{
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Positive, "surprise", -1),
		makeDoc(corpus.Negative, "anger", -1),
		makeDoc(corpus.Negative, "sadness", -1),
		makeDoc(corpus.Neutral, "neutral", -1),
		makeDoc(corpus.Neutral, "neutral", -1),
	}

	dist := EmotionDistribution(docs)
	var sum float64
	for _, v := range dist {
		sum += v
	}

	epsilon := 0.1 * float64(len(dist))
	if math.Abs(sum-100) > epsilon {
		t.Errorf("sum = %f, want 100 +/- %f", sum, epsilon)
	}
}

func TestDistribution_Max(t *testing.T) {
	dist := Distribution{"joy": 50.0, "anger": 25.0, "neutral": 25.0}
	label, val := dist.Max()
	if label != "joy" || val != 50.0 {
		t.Errorf("Max = (%q, %f), want (joy, 50.0)", label, val)
	}

	// Tie breaks to the lexically smallest label.
	tied := Distribution{"surprise": 50.0, "anger": 50.0}
	label, _ = tied.Max()
	if label != "anger" {
		t.Errorf("tied Max = %q, want anger", label)
	}

	label, val = Distribution{}.Max()
	if label != "" || val != 0 {
		t.Errorf("empty Max = (%q, %f), want (\"\", 0)", label, val)
	}
}

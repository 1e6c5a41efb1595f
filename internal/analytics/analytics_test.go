package analytics

import (
	"reflect"
	"testing"

	"github.com/mkallio/moodlens/internal/corpus"
)

func scenarioCorpus() []corpus.Document {
	return []corpus.Document{
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Positive, "joy", -1),
		makeDoc(corpus.Negative, "anger", -1),
		makeDoc(corpus.Neutral, "neutral", -1),
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	r := Analyze(scenarioCorpus(), nil)

	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}

	wantSentiment := Distribution{"POSITIVE": 50.0, "NEGATIVE": 25.0, "NEUTRAL": 25.0}
	if !reflect.DeepEqual(r.Sentiment, wantSentiment) {
		t.Errorf("Sentiment = %v, want %v", r.Sentiment, wantSentiment)
	}

	wantEmotion := Distribution{"joy": 50.0, "anger": 25.0, "neutral": 25.0}
	if !reflect.DeepEqual(r.Emotion, wantEmotion) {
		t.Errorf("Emotion = %v, want %v", r.Emotion, wantEmotion)
	}

	// 50 + (50 - 25 - 0.3*(25/4))/2 = 61.5625 -> 61.6
	if r.Mood != 61.6 {
		t.Errorf("Mood = %f, want 61.6", r.Mood)
	}
	// 100 * (1 - (50-25)/100) = 75.0
	if r.Volatility != 75.0 {
		t.Errorf("Volatility = %f, want 75.0", r.Volatility)
	}

	if r.Correlation != nil || r.Narratives != nil {
		t.Error("expected absent topic outputs for untopiced corpus")
	}
	if len(r.Insights) != 3 {
		t.Errorf("Insights len = %d, want 3", len(r.Insights))
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	docs := scenarioCorpus()
	docs[0].Topic = 0
	docs[1].Topic = 0
	docs[2].Topic = 1
	info := []TopicInfo{{Topic: 0, Name: "a"}, {Topic: 1, Name: "b"}}

	first := Analyze(docs, info)
	second := Analyze(docs, info)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running analysis changed the result:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyze_WithTopics(t *testing.T) {
	docs := scenarioCorpus()
	docs[0].Topic = 0
	docs[1].Topic = 0
	docs[2].Topic = 1
	info := []TopicInfo{{Topic: 0, Name: "praise"}, {Topic: 1, Name: "gripes"}}

	r := Analyze(docs, info)

	if len(r.Narratives) != 2 {
		t.Fatalf("Narratives len = %d, want 2", len(r.Narratives))
	}
	if r.Narratives[0].Name != "praise" {
		t.Errorf("top narrative = %q, want praise", r.Narratives[0].Name)
	}
	if len(r.Correlation) == 0 {
		t.Error("expected correlation entries")
	}
	if len(r.Insights) != 4 {
		t.Errorf("Insights len = %d, want 4 with narratives", len(r.Insights))
	}
}

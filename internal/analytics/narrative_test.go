package analytics

import (
	"testing"

	"github.com/mkallio/moodlens/internal/corpus"
)

func TestDetectNarratives_NoInfo(t *testing.T) {
	docs := []corpus.Document{makeDoc(corpus.Positive, "joy", 0)}
	if got := DetectNarratives(docs, nil); got != nil {
		t.Errorf("expected nil without topic info, got %v", got)
	}
}

func TestDetectNarratives_SplitCorpus(t *testing.T) {
	// 10 documents evenly split 5/5: topic 0 all POSITIVE, topic 1 all NEGATIVE.
	var docs []corpus.Document
	for i := 0; i < 5; i++ {
		docs = append(docs, makeDoc(corpus.Positive, "joy", 0))
	}
	for i := 0; i < 5; i++ {
		docs = append(docs, makeDoc(corpus.Negative, "anger", 1))
	}

	info := []TopicInfo{
		{Topic: 0, Name: "praise"},
		{Topic: 1, Name: "complaints"},
	}

	summaries := DetectNarratives(docs, info)
	if len(summaries) != 2 {
		t.Fatalf("len = %d, want 2", len(summaries))
	}

	// Both tied at 5 documents; the stable sort keeps info order.
	if summaries[0].TopicID != 0 || summaries[1].TopicID != 1 {
		t.Errorf("tie order = [%d %d], want [0 1]", summaries[0].TopicID, summaries[1].TopicID)
	}

	if summaries[0].SentimentScore != 100.0 {
		t.Errorf("topic 0 sentiment = %f, want 100.0", summaries[0].SentimentScore)
	}
	if summaries[1].SentimentScore != -100.0 {
		t.Errorf("topic 1 sentiment = %f, want -100.0", summaries[1].SentimentScore)
	}
	if summaries[0].DocumentCount != 5 || summaries[1].DocumentCount != 5 {
		t.Errorf("counts = [%d %d], want [5 5]", summaries[0].DocumentCount, summaries[1].DocumentCount)
	}
	if summaries[0].PositivePct != 100.0 || summaries[0].NegativePct != 0.0 {
		t.Errorf("topic 0 pct = %f/%f, want 100/0", summaries[0].PositivePct, summaries[0].NegativePct)
	}
}

func TestDetectNarratives_SortByVolume(t *testing.T) {
	docs := []corpus.Document{
		makeDoc(corpus.Positive, "joy", 0),
		makeDoc(corpus.Negative, "anger", 1),
		makeDoc(corpus.Negative, "anger", 1),
		makeDoc(corpus.Neutral, "neutral", 1),
	}
	info := []TopicInfo{
		{Topic: 0, Name: "small"},
		{Topic: 1, Name: "large"},
	}

	summaries := DetectNarratives(docs, info)
	if len(summaries) != 2 {
		t.Fatalf("len = %d, want 2", len(summaries))
	}
	if summaries[0].Name != "large" || summaries[0].DocumentCount != 3 {
		t.Errorf("first = %+v, want large with 3 docs", summaries[0])
	}

	// sentiment_score = 100 * (0-2)/3 = -66.7
	if summaries[0].SentimentScore != -66.7 {
		t.Errorf("sentiment = %f, want -66.7", summaries[0].SentimentScore)
	}
	if summaries[0].NegativePct != 66.7 {
		t.Errorf("negative_pct = %f, want 66.7", summaries[0].NegativePct)
	}
}

func TestDetectNarratives_SkipsEmptyAndOutlier(t *testing.T) {
	docs := []corpus.Document{
		makeDoc(corpus.Positive, "joy", 0),
		makeDoc(corpus.Negative, "fear", -1),
	}
	info := []TopicInfo{
		{Topic: -1, Name: "outliers"},
		{Topic: 0, Name: "real"},
		{Topic: 7, Name: "ghost"}, // no matching documents
	}

	summaries := DetectNarratives(docs, info)
	if len(summaries) != 1 {
		t.Fatalf("len = %d, want 1", len(summaries))
	}
	if summaries[0].Name != "real" {
		t.Errorf("name = %q, want real", summaries[0].Name)
	}
}

func TestDetectNarratives_PlaceholderName(t *testing.T) {
	docs := []corpus.Document{makeDoc(corpus.Positive, "joy", 3)}
	summaries := DetectNarratives(docs, []TopicInfo{{Topic: 3}})
	if len(summaries) != 1 {
		t.Fatalf("len = %d, want 1", len(summaries))
	}
	if summaries[0].Name != "Topic 3" {
		t.Errorf("name = %q, want %q", summaries[0].Name, "Topic 3")
	}
}

func TestDominantEmotion_TieBreak(t *testing.T) {
	// surprise and joy tie at 2; surprise appears first in the selection.
	docs := []corpus.Document{
		makeDoc(corpus.Positive, "surprise", 0),
		makeDoc(corpus.Positive, "joy", 0),
		makeDoc(corpus.Positive, "surprise", 0),
		makeDoc(corpus.Positive, "joy", 0),
	}

	summaries := DetectNarratives(docs, []TopicInfo{{Topic: 0, Name: "t"}})
	if len(summaries) != 1 {
		t.Fatalf("len = %d, want 1", len(summaries))
	}
	if summaries[0].DominantEmotion != "surprise" {
		t.Errorf("dominant = %q, want surprise (first seen wins ties)", summaries[0].DominantEmotion)
	}
}

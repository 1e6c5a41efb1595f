// Package topics wraps the external topic-modeling collaborator. It asks
// the model to cluster the corpus into named themes and assign each
// document to one, with -1 reserved for outliers.
package topics

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/mkallio/moodlens/internal/config"
	"github.com/mkallio/moodlens/internal/corpus"
	"github.com/mkallio/moodlens/internal/llm"
)

// Topic is one discovered theme.
type Topic struct {
	ID   int    `json:"id" jsonschema_description:"Topic id, starting at 0"`
	Name string `json:"name" jsonschema_description:"Short human label, 2-4 words from the cluster's key terms"`
}

// Result holds a fitted topic model: one assignment per input document
// (aligned by index, -1 = outlier) plus the discovered topics.
type Result struct {
	Assignments []int   `json:"assignments" jsonschema_description:"One topic id per input document, in order; -1 for documents fitting no cluster"`
	Topics      []Topic `json:"topics" jsonschema_description:"The discovered topics"`
}

var resultSchema = llm.GenerateSchema[Result]()

// Modeler clusters documents via an OpenAI-compatible Responses API.
type Modeler struct {
	client       *openai.Client
	model        string
	minTopicSize int
}

// New builds a Modeler from config. Returns (nil, nil) when topic modeling
// is disabled or the classifier API key is not set (the collaborators share
// one credential).
func New(cfg config.TopicsConfig, classifier config.ClassifierConfig) (*Modeler, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	apiKey := os.Getenv(classifier.APIKeyEnv)
	if apiKey == "" {
		return nil, nil
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("topics model is empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if classifier.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(classifier.BaseURL))
	}
	client := openai.NewClient(opts...)

	minSize := cfg.MinTopicSize
	if minSize <= 0 {
		minSize = 5
	}

	return &Modeler{client: &client, model: cfg.Model, minTopicSize: minSize}, nil
}

// Fit clusters the corpus. Returns (nil, nil) when the corpus is smaller
// than the minimum topic size; topic modeling needs enough documents to
// form at least one cluster.
func (m *Modeler) Fit(ctx context.Context, texts []string) (*Result, error) {
	if len(texts) < m.minTopicSize {
		return nil, nil
	}

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "TopicModel",
			Schema:      resultSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Topic assignments and topic names"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           m.model,
		MaxOutputTokens: openai.Int(4000),
		Instructions:    openai.String(topicPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildTopicInput(texts, m.minTopicSize), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := llm.CallWithRetry(ctx, m.client, params)
	if err != nil {
		return nil, fmt.Errorf("fit topics: %w", err)
	}

	var result Result
	if err := llm.DecodeJSON(resp.OutputText(), &result); err != nil {
		return nil, fmt.Errorf("unmarshal topic model: %w", err)
	}

	if len(result.Assignments) != len(texts) {
		return nil, fmt.Errorf("assignment count mismatch: got %d for %d documents", len(result.Assignments), len(texts))
	}

	prune(&result, m.minTopicSize)
	return &result, nil
}

// prune demotes undeclared topic ids to outliers and dissolves topics
// smaller than minSize, the same post-fit reduction the reference topic
// model applies.
func prune(r *Result, minSize int) {
	declared := make(map[int]bool, len(r.Topics))
	for _, t := range r.Topics {
		declared[t.ID] = true
	}

	counts := make(map[int]int)
	for i, a := range r.Assignments {
		if a != corpus.TopicOutlier && !declared[a] {
			r.Assignments[i] = corpus.TopicOutlier
			continue
		}
		counts[a]++
	}

	small := make(map[int]bool)
	for id, n := range counts {
		if id != corpus.TopicOutlier && n < minSize {
			small[id] = true
		}
	}
	if len(small) == 0 {
		return
	}

	for i, a := range r.Assignments {
		if small[a] {
			r.Assignments[i] = corpus.TopicOutlier
		}
	}
	kept := r.Topics[:0]
	for _, t := range r.Topics {
		if !small[t.ID] {
			kept = append(kept, t)
		}
	}
	r.Topics = kept
}

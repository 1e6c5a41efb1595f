// Package classify wraps the external sentiment/emotion classifier.
// It is a collaborator boundary: the aggregation core never calls it and
// only sees the finished Document labels it produces.
package classify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/mkallio/moodlens/internal/config"
	"github.com/mkallio/moodlens/internal/corpus"
	"github.com/mkallio/moodlens/internal/llm"
)

// Emotions is the fixed label vocabulary the classifier is constrained to.
var Emotions = []string{"joy", "anger", "disgust", "fear", "sadness", "surprise", "neutral"}

// Labels holds the classifier output for one document.
type Labels struct {
	Sentiment  string  `json:"sentiment" jsonschema_description:"One of POSITIVE, NEGATIVE, NEUTRAL"`
	Confidence float64 `json:"confidence" jsonschema_description:"Classifier confidence in [0,1]"`
	Emotion    string  `json:"emotion" jsonschema_description:"One of joy, anger, disgust, fear, sadness, surprise, neutral"`
}

// batchResponse is the structured output for one classification request.
type batchResponse struct {
	Labels []Labels `json:"labels" jsonschema_description:"One entry per input document, in input order"`
}

var batchSchema = llm.GenerateSchema[batchResponse]()

// Classifier labels documents via an OpenAI-compatible Responses API.
type Classifier struct {
	client    *openai.Client
	model     string
	batchSize int
}

// New builds a Classifier from config. Returns (nil, nil) when the
// classifier is disabled or the API key is not set, mirroring how callers
// treat an absent collaborator.
func New(cfg config.ClassifierConfig) (*Classifier, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, nil
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("classifier model is empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 20
	}

	return &Classifier{client: &client, model: cfg.Model, batchSize: batch}, nil
}

// Classify labels every text, batching requests to bound prompt size.
// The result aligns 1:1 with texts. Per the collaborator contract,
// unusable model output maps to NEUTRAL/"neutral" with zero confidence
// rather than failing the run.
func (c *Classifier) Classify(ctx context.Context, texts []string) ([]Labels, error) {
	out := make([]Labels, 0, len(texts))

	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		labels, err := c.classifyBatch(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("classify documents %d-%d: %w", start, end-1, err)
		}
		out = append(out, labels...)
	}

	return out, nil
}

func (c *Classifier) classifyBatch(ctx context.Context, texts []string) ([]Labels, error) {
	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "DocumentLabels",
			Schema:      batchSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Per-document sentiment and emotion labels"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           c.model,
		MaxOutputTokens: openai.Int(4000),
		Instructions:    openai.String(classifierPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildBatchInput(texts), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := llm.CallWithRetry(ctx, c.client, params)
	if err != nil {
		return nil, err
	}

	var batch batchResponse
	if err := llm.DecodeJSON(resp.OutputText(), &batch); err != nil {
		return nil, fmt.Errorf("unmarshal labels: %w", err)
	}

	if len(batch.Labels) != len(texts) {
		return nil, fmt.Errorf("label count mismatch: got %d for %d documents", len(batch.Labels), len(texts))
	}

	for i := range batch.Labels {
		batch.Labels[i] = Normalize(batch.Labels[i])
	}
	return batch.Labels, nil
}

// Normalize maps raw model output onto the documented label contract:
// unrecognized sentiment becomes NEUTRAL with zero confidence, unknown or
// missing emotion becomes "neutral".
func Normalize(l Labels) Labels {
	l.Sentiment = strings.ToUpper(strings.TrimSpace(l.Sentiment))
	switch corpus.Sentiment(l.Sentiment) {
	case corpus.Positive, corpus.Negative, corpus.Neutral:
	default:
		l.Sentiment = string(corpus.Neutral)
		l.Confidence = 0
	}

	if l.Confidence < 0 || l.Confidence > 1 {
		l.Confidence = 0
	}

	l.Emotion = strings.ToLower(strings.TrimSpace(l.Emotion))
	if !knownEmotion(l.Emotion) {
		l.Emotion = "neutral"
	}

	return l
}

func knownEmotion(e string) bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

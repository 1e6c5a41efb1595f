// Package analysis orchestrates one analysis run: load a corpus, label it
// through the collaborators, run the aggregation core and write artifacts.
package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/mkallio/moodlens/internal/analytics"
	"github.com/mkallio/moodlens/internal/cache"
	"github.com/mkallio/moodlens/internal/classify"
	"github.com/mkallio/moodlens/internal/config"
	"github.com/mkallio/moodlens/internal/corpus"
	"github.com/mkallio/moodlens/internal/export"
	"github.com/mkallio/moodlens/internal/render"
	"github.com/mkallio/moodlens/internal/topics"
)

// Options selects what one run analyzes and writes.
type Options struct {
	Input    string // input file path; empty means the built-in sample
	OutDir   string // overrides cfg.OutputDir when set
	NoTopics bool   // skip topic modeling even when configured on
	CSV      bool   // also write documents.csv and narratives.csv
}

// RunResult reports what a run produced.
type RunResult struct {
	Result analytics.Result
	Report string   // rendered markdown
	Paths  []string // artifact paths written, report first
}

// Run executes the full pipeline. Collaborator absence degrades the run
// rather than failing it: without a classifier only pre-labeled input is
// accepted, and without a topic model the topic sections are omitted.
func Run(ctx context.Context, cfg config.Config, opts Options, log *zap.Logger) (*RunResult, error) {
	docs, source, err := loadCorpus(opts.Input)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents in %s", source)
	}
	log.Info("corpus loaded", zap.String("source", source), zap.Int("documents", len(docs)))

	classifierModel, err := labelCorpus(ctx, cfg, docs, log)
	if err != nil {
		return nil, err
	}

	if err := corpus.Validate(docs); err != nil {
		return nil, fmt.Errorf("validate corpus: %w", err)
	}

	var info []analytics.TopicInfo
	topicModel := ""
	if !opts.NoTopics && !corpus.HasTopics(docs) {
		info, topicModel, err = assignTopics(ctx, cfg, docs, log)
		if err != nil {
			return nil, err
		}
	}

	result := analytics.Analyze(docs, info)
	log.Info("analysis complete",
		zap.Float64("mood", result.Mood),
		zap.Float64("volatility", result.Volatility),
		zap.Int("narratives", len(result.Narratives)))

	report := render.Report(render.ReportData{
		Source:          source,
		Date:            time.Now().Format("2006-01-02"),
		ClassifierModel: classifierModel,
		TopicModel:      topicModel,
		Result:          result,
	})

	paths, err := writeArtifacts(cfg, opts, docs, result, report)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		log.Info("artifact written", zap.String("path", p))
	}

	return &RunResult{Result: result, Report: report, Paths: paths}, nil
}

func loadCorpus(input string) ([]corpus.Document, string, error) {
	if input == "" {
		return corpus.Sample(), "sample", nil
	}
	docs, err := corpus.LoadFile(input)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", input, err)
	}
	return docs, input, nil
}

// labelCorpus fills in sentiment/emotion for unlabeled documents, consulting
// the label cache first. Returns the classifier model name when it ran.
func labelCorpus(ctx context.Context, cfg config.Config, docs []corpus.Document, log *zap.Logger) (string, error) {
	var unlabeled []int
	for i, d := range docs {
		if !d.Labeled() {
			unlabeled = append(unlabeled, i)
		}
	}
	if len(unlabeled) == 0 {
		return "", nil
	}

	clf, err := classify.New(cfg.Classifier)
	if err != nil {
		return "", fmt.Errorf("init classifier: %w", err)
	}
	if clf == nil {
		return "", fmt.Errorf("%d documents need classification but no classifier is available (set %s or pre-label the input)",
			len(unlabeled), cfg.Classifier.APIKeyEnv)
	}

	store := openCache(cfg.Cache, log)
	if store != nil {
		defer store.Close()
	}

	// Resolve cache hits, collect the rest for the classifier.
	var pending []int
	for _, i := range unlabeled {
		if store != nil {
			if l, ok, err := store.Get(docs[i].Text, cfg.Classifier.Model); err == nil && ok {
				applyLabels(&docs[i], l)
				continue
			}
		}
		pending = append(pending, i)
	}
	if hits := len(unlabeled) - len(pending); hits > 0 {
		log.Info("label cache hits", zap.Int("hits", hits), zap.Int("pending", len(pending)))
	}
	if len(pending) == 0 {
		return cfg.Classifier.Model, nil
	}

	texts := make([]string, len(pending))
	for j, i := range pending {
		texts[j] = docs[i].Text
	}

	timeout := time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	classifyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Info("classifying", zap.Int("documents", len(pending)), zap.String("model", cfg.Classifier.Model))
	labels, err := clf.Classify(classifyCtx, texts)
	if err != nil {
		return "", fmt.Errorf("classify: %w", err)
	}

	for j, i := range pending {
		applyLabels(&docs[i], labels[j])
		if store != nil {
			if err := store.Put(docs[i].Text, cfg.Classifier.Model, labels[j]); err != nil {
				log.Warn("cache write failed", zap.Error(err))
				store = nil
			}
		}
	}

	return cfg.Classifier.Model, nil
}

// assignTopics fits the topic model and writes assignments back into docs.
// Absence of the collaborator, or a corpus too small to cluster, returns
// empty results without error.
func assignTopics(ctx context.Context, cfg config.Config, docs []corpus.Document, log *zap.Logger) ([]analytics.TopicInfo, string, error) {
	modeler, err := topics.New(cfg.Topics, cfg.Classifier)
	if err != nil {
		return nil, "", fmt.Errorf("init topic model: %w", err)
	}
	if modeler == nil {
		return nil, "", nil
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}

	log.Info("fitting topics", zap.Int("documents", len(texts)), zap.String("model", cfg.Topics.Model))
	fit, err := modeler.Fit(ctx, texts)
	if err != nil {
		// Topic modeling is optional enrichment; degrade instead of failing.
		log.Warn("topic modeling failed, continuing without topics", zap.Error(err))
		return nil, "", nil
	}
	if fit == nil {
		log.Info("corpus too small for topic modeling", zap.Int("min_topic_size", cfg.Topics.MinTopicSize))
		return nil, "", nil
	}

	for i := range docs {
		docs[i].Topic = fit.Assignments[i]
	}
	info := make([]analytics.TopicInfo, len(fit.Topics))
	for i, t := range fit.Topics {
		info[i] = analytics.TopicInfo{Topic: t.ID, Name: t.Name}
	}
	return info, cfg.Topics.Model, nil
}

func openCache(cfg config.CacheConfig, log *zap.Logger) *cache.Store {
	if !cfg.Enabled || cfg.Path == "" {
		return nil
	}
	store, err := cache.Open(cfg.Path)
	if err != nil {
		log.Warn("label cache unavailable", zap.Error(err))
		return nil
	}
	return store
}

func applyLabels(d *corpus.Document, l classify.Labels) {
	d.Sentiment = corpus.Sentiment(l.Sentiment)
	d.Confidence = l.Confidence
	d.Emotion = l.Emotion
}

// writeArtifacts writes the report and optional CSV tables under the
// output directory, compressing each file when configured.
func writeArtifacts(cfg config.Config, opts Options, docs []corpus.Document, result analytics.Result, report string) ([]string, error) {
	outDir := opts.OutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	stamp := time.Now().Format("2006-01-02")
	reportPath := filepath.Join(outDir, fmt.Sprintf("mood-report-%s.md", stamp))
	if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	paths := []string{reportPath}

	if opts.CSV {
		docsPath := filepath.Join(outDir, fmt.Sprintf("documents-%s.csv", stamp))
		if err := export.WriteDocumentsCSV(docsPath, docs); err != nil {
			return nil, err
		}
		paths = append(paths, docsPath)

		if len(result.Narratives) > 0 {
			narrPath := filepath.Join(outDir, fmt.Sprintf("narratives-%s.csv", stamp))
			if err := export.WriteNarrativesCSV(narrPath, result.Narratives); err != nil {
				return nil, err
			}
			paths = append(paths, narrPath)
		}
	}

	if cfg.Export.Compress {
		for i, p := range paths {
			archived, err := export.Compress(p)
			if err != nil {
				return nil, fmt.Errorf("compress %s: %w", p, err)
			}
			paths[i] = archived
		}
	}

	return paths, nil
}

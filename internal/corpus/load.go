package corpus

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mkallio/moodlens/internal/sanitize"
)

// LoadFile reads documents from path. CSV files must carry a "text" column
// and may carry "sentiment", "emotion" and "topic" columns for a pre-labeled
// corpus; any other extension is treated as plain text, one document per
// non-blank line.
func LoadFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(f)
	}
	return ParseLines(f)
}

// ParseLines reads one document per non-blank line.
func ParseLines(r io.Reader) ([]Document, error) {
	var docs []Document
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line

	for scanner.Scan() {
		line := sanitize.Clean(scanner.Text())
		if line == "" {
			continue
		}
		docs = append(docs, Document{Text: line, Topic: TopicOutlier})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return docs, nil
}

// ParseCSV reads documents from a CSV with a header row. The "text" column
// is required; label columns are optional and, when present, must be filled
// on every row they apply to.
func ParseCSV(r io.Reader) ([]Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	textCol, ok := cols["text"]
	if !ok {
		return nil, fmt.Errorf("CSV must contain a %q column", "text")
	}

	var docs []Document
	rowNum := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row %d: %w", rowNum, err)
		}
		rowNum++

		text := sanitize.Clean(field(row, textCol))
		if text == "" {
			continue
		}

		doc := Document{Text: text, Topic: TopicOutlier}

		if i, ok := cols["sentiment"]; ok {
			doc.Sentiment = Sentiment(strings.ToUpper(strings.TrimSpace(field(row, i))))
		}
		if i, ok := cols["sentiment_confidence"]; ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(field(row, i)), 64); err == nil {
				doc.Confidence = v
			}
		}
		if i, ok := cols["emotion"]; ok {
			doc.Emotion = strings.ToLower(strings.TrimSpace(field(row, i)))
		}
		if i, ok := cols["topic"]; ok {
			raw := strings.TrimSpace(field(row, i))
			if raw != "" {
				t, err := strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("CSV row %d: invalid topic %q", rowNum, raw)
				}
				doc.Topic = t
			}
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

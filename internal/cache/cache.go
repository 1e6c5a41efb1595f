// Package cache persists classifier labels between runs so re-analyzing an
// edited input only pays for the documents that changed. It lives entirely
// at the collaborator boundary; the aggregation core never touches it.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mkallio/moodlens/internal/classify"
)

// Store is a SQLite-backed label cache keyed by document hash and model.
// Construct once with Open, pass into the pipeline, Close when done.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS labels (
	doc_hash   TEXT NOT NULL,
	model      TEXT NOT NULL,
	sentiment  TEXT NOT NULL,
	confidence REAL NOT NULL,
	emotion    TEXT NOT NULL,
	PRIMARY KEY (doc_hash, model)
);`

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached labels for (text, model), or ok=false on a miss.
func (s *Store) Get(text, model string) (classify.Labels, bool, error) {
	var l classify.Labels
	row := s.db.QueryRow(
		`SELECT sentiment, confidence, emotion FROM labels WHERE doc_hash = ? AND model = ?`,
		docHash(text), model,
	)
	if err := row.Scan(&l.Sentiment, &l.Confidence, &l.Emotion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return classify.Labels{}, false, nil
		}
		return classify.Labels{}, false, fmt.Errorf("read cache: %w", err)
	}
	return l, true, nil
}

// Put stores labels for (text, model), replacing any previous entry.
func (s *Store) Put(text, model string, l classify.Labels) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO labels (doc_hash, model, sentiment, confidence, emotion) VALUES (?, ?, ?, ?, ?)`,
		docHash(text), model, l.Sentiment, l.Confidence, l.Emotion,
	)
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

func docHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

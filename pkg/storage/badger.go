package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/thealper2/weissman-score-benchmark/pkg/logger"
	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

const runKeyPrefix = "run/"

// HistoryStore is a BadgerDB-backed archive of past benchmark runs. Each run
// is stored as JSON under run/<timestamp>/<run-id>, so key order equals
// chronological order.
type HistoryStore struct {
	db *badger.DB
}

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	RunID      string
	Target     string
	CreatedAt  time.Time
	Algorithms int
	Succeeded  int
}

// NewHistoryStore opens (or creates) the history database under dir.
func NewHistoryStore(dir string) (*HistoryStore, error) {
	opts := badger.DefaultOptions(dir).
		WithCompression(options.ZSTD).
		WithIndexCacheSize(16 << 20).
		WithCompactL0OnClose(true).
		WithLogger(quietBadgerLogger{})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open history store %s: %w", dir, err)
	}

	logger.Debug("Opened run history store", "path", dir)
	return &HistoryStore{db: db}, nil
}

// Save archives a completed run.
func (s *HistoryStore) Save(rs *types.ResultSet) error {
	value, err := json.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", rs.RunID, err)
	}

	key := runKey(rs)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Get retrieves one stored run by its ID.
func (s *HistoryStore) Get(runID string) (*types.ResultSet, error) {
	var found *types.ResultSet

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek([]byte(runKeyPrefix)); it.ValidForPrefix([]byte(runKeyPrefix)); it.Next() {
			item := it.Item()
			if !strings.HasSuffix(string(item.Key()), "/"+runID) {
				continue
			}
			return item.Value(func(val []byte) error {
				var rs types.ResultSet
				if err := json.Unmarshal(val, &rs); err != nil {
					return fmt.Errorf("unmarshal run %s: %w", runID, err)
				}
				found = &rs
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("run %s not found in history", runID)
	}
	return found, nil
}

// List returns summaries of all stored runs, oldest first.
func (s *HistoryStore) List() ([]RunSummary, error) {
	var summaries []RunSummary

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek([]byte(runKeyPrefix)); it.ValidForPrefix([]byte(runKeyPrefix)); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rs types.ResultSet
				if err := json.Unmarshal(val, &rs); err != nil {
					return fmt.Errorf("unmarshal stored run: %w", err)
				}
				summaries = append(summaries, RunSummary{
					RunID:      rs.RunID,
					Target:     rs.Target,
					CreatedAt:  rs.CreatedAt,
					Algorithms: len(rs.Results),
					Succeeded:  rs.Succeeded(),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

// Close closes the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

func runKey(rs *types.ResultSet) string {
	return fmt.Sprintf("%s%s/%s", runKeyPrefix, rs.CreatedAt.UTC().Format(time.RFC3339Nano), rs.RunID)
}

// quietBadgerLogger routes badger's chatter to debug level only.
type quietBadgerLogger struct{}

func (quietBadgerLogger) Errorf(format string, args ...any) {
	logger.Error("badger: "+fmt.Sprintf(format, args...), nil)
}

func (quietBadgerLogger) Warningf(format string, args ...any) {
	logger.Warn("badger: " + fmt.Sprintf(format, args...))
}

func (quietBadgerLogger) Infof(format string, args ...any) {
	logger.Debug("badger: " + fmt.Sprintf(format, args...))
}

func (quietBadgerLogger) Debugf(format string, args ...any) {
	logger.Debug("badger: " + fmt.Sprintf(format, args...))
}

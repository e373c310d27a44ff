package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

// historyRecord is the stored value for one word.
type historyRecord struct {
	Word string `json:"word"`
	At   int64  `json:"at"` // unix nanoseconds of the latest lookup
}

// HistoryStore implements domain.HistoryStore using BoltDB. Each API server
// gets its own bucket so switching servers does not mix histories.
type HistoryStore struct {
	db     *bolt.DB
	bucket []byte
	size   int
	now    func() time.Time

	mu    sync.RWMutex // Protects memory
	items map[string]historyRecord
}

// NewHistoryStore opens (or creates) the history database at path. An empty
// path keeps history in memory only. size bounds the number of words kept.
func NewHistoryStore(path, serverURL string, size int) (*HistoryStore, error) {
	if size <= 0 {
		size = 50
	}
	s := &HistoryStore{
		bucket: []byte("history:" + hashServerURL(serverURL)),
		size:   size,
		now:    time.Now,
		items:  make(map[string]historyRecord),
	}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		// Load existing records into memory
		return b.ForEach(func(k, v []byte) error {
			var rec historyRecord
			if json.Unmarshal(v, &rec) == nil {
				s.items[string(k)] = rec
			}
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

func hashServerURL(serverURL string) string {
	normalized := strings.TrimRight(strings.ToLower(serverURL), "/")
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

func historyKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Record moves word to the front of the history, evicting the oldest words
// beyond the configured size.
func (s *HistoryStore) Record(word string) error {
	key := historyKey(word)
	if key == "" {
		return nil
	}
	rec := historyRecord{Word: strings.TrimSpace(word), At: s.now().UnixNano()}

	s.mu.Lock()
	s.items[key] = rec
	evicted := s.evictLocked()
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := b.Put([]byte(key), data); err != nil {
			return err
		}
		for _, k := range evicted {
			if err := b.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

// evictLocked drops the oldest records beyond size and returns their keys.
func (s *HistoryStore) evictLocked() []string {
	if len(s.items) <= s.size {
		return nil
	}
	recs := s.sortedLocked()
	var evicted []string
	for _, rec := range recs[s.size:] {
		k := historyKey(rec.Word)
		delete(s.items, k)
		evicted = append(evicted, k)
	}
	return evicted
}

func (s *HistoryStore) sortedLocked() []historyRecord {
	recs := make([]historyRecord, 0, len(s.items))
	for _, rec := range s.items {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].At != recs[j].At {
			return recs[i].At > recs[j].At
		}
		return recs[i].Word < recs[j].Word
	})
	return recs
}

// Recent returns up to limit words, newest first. limit <= 0 returns all.
func (s *HistoryStore) Recent(limit int) ([]string, error) {
	s.mu.RLock()
	recs := s.sortedLocked()
	s.mu.RUnlock()

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	words := make([]string, len(recs))
	for i, rec := range recs {
		words[i] = rec.Word
	}
	return words, nil
}

// Clear removes all history for this server
func (s *HistoryStore) Clear() error {
	s.mu.Lock()
	s.items = make(map[string]historyRecord)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(s.bucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(s.bucket)
		return err
	})
}

func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

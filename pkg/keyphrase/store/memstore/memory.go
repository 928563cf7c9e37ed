// Package memstore is an in-memory Store for tests and examples.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

type memStore struct {
	mu     sync.RWMutex
	docs   map[string]store.Doc
	scores map[string][]store.TermScore
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{
		docs:   make(map[string]store.Doc),
		scores: make(map[string][]store.TermScore),
	}
}

func (m *memStore) Close() error { return nil }

func (m *memStore) UpsertDoc(_ context.Context, d store.Doc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[d.ID] = d
	return nil
}

func (m *memStore) GetDoc(_ context.Context, id string) (store.Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	if !ok {
		return store.Doc{}, fmt.Errorf("%w: doc %s", internalerr.ErrNotFound, id)
	}
	return d, nil
}

func (m *memStore) CountDocs(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.docs)), nil
}

func (m *memStore) SaveScores(_ context.Context, run string, scores []store.TermScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]store.TermScore, len(scores))
	copy(copied, scores)
	m.scores[run] = copied
	return nil
}

func (m *memStore) TopScores(_ context.Context, run string, limit int) ([]store.TermScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scores := make([]store.TermScore, len(m.scores[run]))
	copy(scores, m.scores[run])
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if limit > 0 && limit < len(scores) {
		scores = scores[:limit]
	}
	return scores, nil
}

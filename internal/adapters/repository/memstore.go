package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/tobst96/ModularengrundlagenausbildungTracker/internal/domain/model"
	"github.com/tobst96/ModularengrundlagenausbildungTracker/pkg/metrics"
)

// MemStore is the in-memory Store implementation. A document is extracted
// whole before Replace is called, so readers either see the previous snapshot
// or the new one, never a mix. Nothing is mutated after Replace returns;
// the read methods copy slice contents so callers cannot alter the snapshot.
type MemStore struct {
	mu         sync.RWMutex
	documentID string
	records    []model.TrainingRecord
	byPerson   map[string][]model.TrainingRecord
	people     []string
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{byPerson: make(map[string][]model.TrainingRecord)}
}

// Replace implements Store.
func (s *MemStore) Replace(_ context.Context, documentID string, records []model.TrainingRecord) {
	snapshot := make([]model.TrainingRecord, len(records))
	copy(snapshot, records)

	byPerson := make(map[string][]model.TrainingRecord)
	for _, r := range snapshot {
		byPerson[r.PersonName] = append(byPerson[r.PersonName], r)
	}
	people := make([]string, 0, len(byPerson))
	for name := range byPerson {
		people = append(people, name)
	}
	sort.Strings(people)

	s.mu.Lock()
	s.documentID = documentID
	s.records = snapshot
	s.byPerson = byPerson
	s.people = people
	s.mu.Unlock()

	metrics.UpdateStoredRecords(len(snapshot))
	metrics.UpdatePeopleCount(len(people))
}

// Records implements Store.
func (s *MemStore) Records(_ context.Context) []model.TrainingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TrainingRecord, len(s.records))
	copy(out, s.records)
	return out
}

// ByPerson implements Store.
func (s *MemStore) ByPerson(_ context.Context, name string) ([]model.TrainingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.byPerson[name]
	if !ok {
		return nil, ErrPersonNotFound
	}
	out := make([]model.TrainingRecord, len(records))
	copy(out, records)
	return out, nil
}

// People implements Store.
func (s *MemStore) People(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.people))
	copy(out, s.people)
	return out
}

// DocumentID implements Store.
func (s *MemStore) DocumentID(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentID, s.documentID != ""
}

// Count implements Store.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

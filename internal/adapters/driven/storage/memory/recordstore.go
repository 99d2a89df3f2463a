package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
	"github.com/custodia-labs/pdfwords/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Records are kept in insertion order; each document may appear once.
type RecordStore struct {
	mu      sync.RWMutex
	records []domain.ExtractedRecord
	index   map[string]int
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		index: make(map[string]int),
	}
}

// Append adds a record. A second record for the same category and file name
// is rejected.
func (s *RecordStore) Append(_ context.Context, rec domain.ExtractedRecord) error {
	key := recordKey(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[key]; exists {
		return fmt.Errorf("%w: record for %s already stored", domain.ErrInvalidInput, key)
	}
	s.index[key] = len(s.records)
	s.records = append(s.records, rec)
	return nil
}

// List returns the records in insertion order.
func (s *RecordStore) List(_ context.Context) ([]domain.ExtractedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ExtractedRecord(nil), s.records...), nil
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear removes all records.
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.index = make(map[string]int)
}

func recordKey(rec domain.ExtractedRecord) string {
	return rec.Category + "/" + rec.FileName
}

// Package memory holds records for the lifetime of the process. Nothing is
// ever written to disk.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"jizhang/internal/core"
	"jizhang/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []store.StoredRecord
}

func New() *Store {
	return &Store{}
}

// Append validates and stores the record, assigning it a fresh ID.
func (s *Store) Append(_ context.Context, r core.ExpenseRecord) (store.StoredRecord, error) {
	if err := r.Validate(); err != nil {
		return store.StoredRecord{}, err
	}
	rec := store.StoredRecord{ID: uuid.NewString(), ExpenseRecord: r}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, rec)
	return rec, nil
}

// List returns a copy of all stored records in insertion order.
func (s *Store) List(_ context.Context) ([]store.StoredRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.StoredRecord, len(s.items))
	copy(out, s.items)
	return out, nil
}

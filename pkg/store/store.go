// Package store persists computed layouts so the API can hand out share
// links: POST a document, get an ID back, fetch the stored layout later.
//
// Two implementations exist:
//   - MongoStore: production backend for the API server
//   - MemoryStore: in-process backend for tests and single-shot CLI use
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/graph"
)

// Record is one stored layout computation: the input document plus the
// per-scene layouts computed from it.
type Record struct {
	ID        string         `json:"id" bson:"_id"`
	Title     string         `json:"title,omitempty" bson:"title,omitempty"`
	Document  graph.Document `json:"document" bson:"document"`
	Layouts   []graph.Layout `json:"layouts" bson:"layouts"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// Store is the persistence interface for layout records.
type Store interface {
	// Save stores a record. A record with an empty ID gets a fresh UUID;
	// the stored ID is returned.
	Save(ctx context.Context, rec Record) (string, error)

	// Get retrieves a record by ID. Returns an error with code
	// LAYOUT_NOT_FOUND if no record exists.
	Get(ctx context.Context, id string) (Record, error)

	// List returns the most recent records, newest first, up to limit.
	List(ctx context.Context, limit int) ([]Record, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// =============================================================================
// MemoryStore
// =============================================================================

// MemoryStore is an in-process Store for tests and development.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Save stores a record, assigning an ID and timestamp if missing.
func (s *MemoryStore) Save(ctx context.Context, rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = NewID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return rec.ID, nil
}

// Get retrieves a record by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return Record{}, errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
	}
	return rec, nil
}

// List returns records newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Delete removes a record.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

package record

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/moneypal/moneypal/internal/kv"
	log "github.com/sirupsen/logrus"
)

// Identifiable is the constraint for records kept in a Store: every record
// carries a stable string id.
type Identifiable interface {
	RecordID() string
}

// Store is a durable collection of records persisted as a single JSON blob
// under one key of the key-value layer. Every mutation writes the whole
// collection and refreshes the in-memory cache. Mutators are serialized with
// a per-store mutex, so overlapping calls cannot lose each other's writes.
type Store[T Identifiable] struct {
	kv  kv.Store
	key string

	mu    sync.Mutex
	cache []T
}

func NewStore[T Identifiable](kvStore kv.Store, key string) *Store[T] {
	return &Store[T]{kv: kvStore, key: key, cache: []T{}}
}

// Load reads the full collection from the durable layer and replaces the
// cache. A missing or unreadable blob loads as an empty collection.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("could not load collection %q: %w", s.key, err)
	}
	records := []T{}
	if found {
		if err := json.Unmarshal(value, &records); err != nil {
			log.Warnf("collection %q is corrupt, treating as empty: %v", s.key, err)
			records = []T{}
		}
	}
	s.cache = records
	return s.snapshot(), nil
}

// Items returns a copy of the cached collection without touching the
// durable layer.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add appends the record and persists the whole collection. Id uniqueness is
// the caller's responsibility.
func (s *Store[T]) Add(ctx context.Context, rec T) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(s.snapshot(), rec)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.cache = next
	return s.snapshot(), nil
}

// Update replaces the record with a matching id. A record with no match is
// silently dropped, never inserted.
func (s *Store[T]) Update(ctx context.Context, rec T) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshot()
	for i := range next {
		if next[i].RecordID() == rec.RecordID() {
			next[i] = rec
			if err := s.persist(ctx, next); err != nil {
				return nil, err
			}
			s.cache = next
			break
		}
	}
	return s.snapshot(), nil
}

// Delete removes the record with a matching id. A missing id is a no-op.
func (s *Store[T]) Delete(ctx context.Context, id string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]T, 0, len(s.cache))
	removed := false
	for _, rec := range s.cache {
		if rec.RecordID() == id {
			removed = true
			continue
		}
		next = append(next, rec)
	}
	if removed {
		if err := s.persist(ctx, next); err != nil {
			return nil, err
		}
		s.cache = next
	}
	return s.snapshot(), nil
}

// Clear persists an empty collection and empties the cache.
func (s *Store[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []T{}
	if err := s.persist(ctx, empty); err != nil {
		return err
	}
	s.cache = empty
	return nil
}

func (s *Store[T]) persist(ctx context.Context, records []T) error {
	value, err := json.Marshal(records)
	if err != nil {
		err := fmt.Errorf("could not encode collection %q: %w", s.key, err)
		log.Error(err)
		return err
	}
	if err := s.kv.Set(ctx, s.key, value); err != nil {
		return fmt.Errorf("could not persist collection %q: %w", s.key, err)
	}
	return nil
}

func (s *Store[T]) snapshot() []T {
	cp := make([]T, len(s.cache))
	copy(cp, s.cache)
	return cp
}

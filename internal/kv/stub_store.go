package kv

import (
	"context"
	"sync"
)

// StubStore is an in-memory Store for tests.
type StubStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailSet makes the next Set calls fail with the given error when non-nil.
	FailSet error
}

func NewStubStore() *StubStore {
	return &StubStore{data: map[string][]byte{}}
}

func (s *StubStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (s *StubStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet != nil {
		return s.FailSet
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *StubStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *StubStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string][]byte{}
}

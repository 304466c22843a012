package asset

import (
	"context"
	"fmt"
)

// StubStore is an in-memory Store for tests.
type StubStore struct {
	Assets map[string][]byte
	nextId int

	FailRead  error
	FailWrite error
}

func NewStubStore() *StubStore {
	return &StubStore{Assets: map[string][]byte{}}
}

func (s *StubStore) Read(_ context.Context, ref string) ([]byte, error) {
	if s.FailRead != nil {
		return nil, s.FailRead
	}
	data, ok := s.Assets[ref]
	if !ok {
		return nil, fmt.Errorf("asset %q not found", ref)
	}
	return data, nil
}

func (s *StubStore) Write(_ context.Context, data []byte, ext string) (string, error) {
	if s.FailWrite != nil {
		return "", s.FailWrite
	}
	s.nextId++
	ref := fmt.Sprintf("restored_%d.%s", s.nextId, ext)
	s.Assets[ref] = data
	return ref, nil
}

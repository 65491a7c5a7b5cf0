// Package db keeps finished conversions so they can be fetched again by id.
package db

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/midimml/model"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("conversion not found")

type Store interface {
	// Put saves c under a new id and returns it.
	Put(ctx context.Context, c model.Conversion) (string, error)
	Get(ctx context.Context, id string) (model.Conversion, error)
}

func newID() string {
	return uuid.New().String()
}

type MemoryStore struct {
	mu          sync.RWMutex
	conversions map[string]model.Conversion
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{conversions: make(map[string]model.Conversion)}
}

func (s *MemoryStore) Put(_ context.Context, c model.Conversion) (string, error) {
	c.ID = newID()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversions[c.ID] = c
	return c.ID, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (model.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversions[id]
	if !ok {
		return model.Conversion{}, errors.Wrap(ErrNotFound, id)
	}
	return c, nil
}

// Package memory holds uploaded datasets for the lifetime of the process.
// Datasets are immutable once stored; there is no cross-session sharing
// and nothing is persisted.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/google/uuid"
)

// SampleID is the fixed id the built-in sample dataset is seeded under.
const SampleID = "sample"

// Store keeps datasets keyed by id.
type Store interface {
	Add(ctx context.Context, ds domain.Dataset) (string, error)
	Get(ctx context.Context, id string) (domain.Dataset, error)
}

type datasetStore struct {
	mu       sync.Mutex
	datasets map[string]domain.Dataset
	order    []string // uploaded ids, oldest first
	maxSize  int
}

// NewStore creates a store bounded to maxSize uploaded datasets; the
// oldest upload is evicted when the bound is exceeded. The seed dataset
// (the built-in sample) lives under SampleID and is never evicted.
func NewStore(seed domain.Dataset, maxSize int) (Store, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("store size must be positive, got %d", maxSize)
	}
	return &datasetStore{
		datasets: map[string]domain.Dataset{SampleID: seed},
		maxSize:  maxSize,
	}, nil
}

func (s *datasetStore) Add(_ context.Context, ds domain.Dataset) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.datasets[id] = ds
	s.order = append(s.order, id)

	if len(s.order) > s.maxSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.datasets, oldest)
	}
	return id, nil
}

func (s *datasetStore) Get(_ context.Context, id string) (domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[id]
	if !ok {
		return domain.Dataset{}, fmt.Errorf("dataset %q not found", id)
	}
	return ds, nil
}

package state

import (
	"sync"

	"github.com/atomicstack/loandesk/internal/domain"
)

// DatasetStore holds the dataset currently shown by the dashboard.
type DatasetStore interface {
	Dataset() domain.Dataset
	SetDataset(domain.Dataset)
	Version() uint64
}

type datasetStore struct {
	mu      sync.RWMutex
	dataset domain.Dataset
	version uint64
}

func NewDatasetStore(initial domain.Dataset) DatasetStore {
	return &datasetStore{dataset: initial, version: 1}
}

func (s *datasetStore) Dataset() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// SetDataset replaces the dataset and bumps the version.
func (s *datasetStore) SetDataset(ds domain.Dataset) {
	s.mu.Lock()
	s.dataset = ds
	s.version++
	s.mu.Unlock()
}

func (s *datasetStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

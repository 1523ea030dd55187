package helpers

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/galaxysim/internal/domain/run"
)

// MockRunRepository is an in-memory run.Repository
type MockRunRepository struct {
	mu      sync.RWMutex
	records map[string]*run.Record
	saves   int

	// SaveErr, when set, is returned by every Save
	SaveErr error
}

// NewMockRunRepository creates an empty mock run repository
func NewMockRunRepository() *MockRunRepository {
	return &MockRunRepository{
		records: make(map[string]*run.Record),
	}
}

// Save stores a copy of the record
func (m *MockRunRepository) Save(ctx context.Context, record *run.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := *record
	m.records[record.ID] = &stored
	m.saves++
	return nil
}

// FindByID returns the stored record
func (m *MockRunRepository) FindByID(ctx context.Context, id string) (*run.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, &run.ErrRunNotFound{ID: id}
	}
	found := *record
	return &found, nil
}

// List returns headers newest first, honouring filters and pagination
func (m *MockRunRepository) List(ctx context.Context, opts run.ListOptions) ([]*run.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*run.Record
	for _, record := range m.records {
		if opts.Status != nil && record.Status != *opts.Status {
			continue
		}
		if opts.Seed != nil && record.Parameters.Seed != *opts.Seed {
			continue
		}
		header := *record
		header.Statistics = nil
		header.Civilizations = nil
		header.Events = nil
		matched = append(matched, &header)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if opts.Offset >= len(matched) {
		return []*run.Record{}, nil
	}
	matched = matched[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

// Delete removes a record
func (m *MockRunRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return &run.ErrRunNotFound{ID: id}
	}
	delete(m.records, id)
	return nil
}

// SaveCount returns how many times Save succeeded
func (m *MockRunRepository) SaveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Add stores a record directly, bypassing Save accounting
func (m *MockRunRepository) Add(record *run.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
}


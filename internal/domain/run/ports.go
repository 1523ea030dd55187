package run

import (
	"context"
	"fmt"
)

// Repository persists archived runs
type Repository interface {
	// Save inserts or replaces a run with all its statistics, civilizations and events
	Save(ctx context.Context, record *Record) error

	// FindByID loads a run with all its children
	FindByID(ctx context.Context, id string) (*Record, error)

	// List returns run headers (no statistics, civilizations or events), newest first
	List(ctx context.Context, opts ListOptions) ([]*Record, error)

	// Delete removes a run and its children
	Delete(ctx context.Context, id string) error
}

// ListOptions filters and paginates run listings
type ListOptions struct {
	Status *Status
	Seed   *int64
	Limit  int
	Offset int
}

// DefaultListOptions returns default listing options
func DefaultListOptions() ListOptions {
	return ListOptions{Limit: 20}
}

// ErrRunNotFound is returned when no run has the requested ID
type ErrRunNotFound struct {
	ID string
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.ID)
}

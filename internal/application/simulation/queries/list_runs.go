package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/galaxysim/internal/application/mediator"
	"github.com/andrescamacho/galaxysim/internal/domain/run"
)

// MaxListLimit caps a single page of runs
const MaxListLimit = 500

// ListRunsQuery lists archived runs, newest first
type ListRunsQuery struct {
	Status string // optional, case-insensitive
	Seed   *int64
	Limit  int
	Offset int
}

// ListRunsResponse represents the result of the query
type ListRunsResponse struct {
	Runs []*RunSummaryDTO
}

// RunSummaryDTO is one row of a run listing
type RunSummaryDTO struct {
	ID              string     `json:"id" yaml:"id"`
	Status          run.Status `json:"status" yaml:"status"`
	Seed            int64      `json:"seed" yaml:"seed"`
	Stars           int        `json:"stars" yaml:"stars"`
	Civilizations   int        `json:"civilizations" yaml:"civilizations"`
	StepsRequested  int        `json:"steps_requested" yaml:"steps_requested"`
	StepsCompleted  int        `json:"steps_completed" yaml:"steps_completed"`
	CreatedAt       string     `json:"created_at" yaml:"created_at"`
	DurationSeconds float64    `json:"duration_seconds" yaml:"duration_seconds"`
}

// ListRunsHandler handles the ListRuns query
type ListRunsHandler struct {
	runRepo run.Repository
}

// NewListRunsHandler creates a new ListRunsHandler
func NewListRunsHandler(runRepo run.Repository) *ListRunsHandler {
	return &ListRunsHandler{
		runRepo: runRepo,
	}
}

// Handle executes the ListRuns query
func (h *ListRunsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListRunsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListRunsQuery")
	}

	opts, err := buildListOptions(query)
	if err != nil {
		return nil, err
	}

	records, err := h.runRepo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	dtos := make([]*RunSummaryDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, &RunSummaryDTO{
			ID:              r.ID,
			Status:          r.Status,
			Seed:            r.Parameters.Seed,
			Stars:           r.Parameters.Stars,
			Civilizations:   r.Parameters.Civilizations,
			StepsRequested:  r.Parameters.Steps,
			StepsCompleted:  r.StepsCompleted,
			CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
			DurationSeconds: r.Duration().Seconds(),
		})
	}

	return &ListRunsResponse{Runs: dtos}, nil
}

func buildListOptions(query *ListRunsQuery) (run.ListOptions, error) {
	opts := run.DefaultListOptions()
	if query.Limit < 0 || query.Offset < 0 {
		return opts, fmt.Errorf("limit and offset must not be negative")
	}
	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	if opts.Limit > MaxListLimit {
		opts.Limit = MaxListLimit
	}
	opts.Offset = query.Offset
	opts.Seed = query.Seed

	if query.Status != "" {
		status := run.Status(strings.ToUpper(query.Status))
		switch status {
		case run.StatusPending, run.StatusRunning, run.StatusCompleted, run.StatusFailed, run.StatusCancelled:
			opts.Status = &status
		default:
			return opts, fmt.Errorf("unknown run status: %s", query.Status)
		}
	}
	return opts, nil
}

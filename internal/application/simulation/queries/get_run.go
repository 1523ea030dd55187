package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/galaxysim/internal/application/mediator"
	"github.com/andrescamacho/galaxysim/internal/domain/run"
)

// GetRunQuery loads one archived run with all its detail
type GetRunQuery struct {
	RunID string
}

// GetRunResponse represents the result of the query
type GetRunResponse struct {
	Run *run.Record
}

// GetRunHandler handles the GetRun query
type GetRunHandler struct {
	runRepo run.Repository
}

// NewGetRunHandler creates a new GetRunHandler
func NewGetRunHandler(runRepo run.Repository) *GetRunHandler {
	return &GetRunHandler{
		runRepo: runRepo,
	}
}

// Handle executes the GetRun query
func (h *GetRunHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetRunQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetRunQuery")
	}
	if query.RunID == "" {
		return nil, fmt.Errorf("run_id is required")
	}

	record, err := h.runRepo.FindByID(ctx, query.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return &GetRunResponse{Run: record}, nil
}

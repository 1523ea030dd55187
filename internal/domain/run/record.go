package run

import (
	"fmt"
	"time"

	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// Status is the lifecycle state of an archived run
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"
)

// Parameters are the inputs that, with the seed, fully determine a run
type Parameters struct {
	Stars            int     `json:"stars" yaml:"stars"`
	Civilizations    int     `json:"civilizations" yaml:"civilizations"`
	Seed             int64   `json:"seed" yaml:"seed"`
	Steps            int     `json:"steps" yaml:"steps"`
	PropagationSpeed float64 `json:"propagation_speed" yaml:"propagation_speed"`
	EventsEnabled    bool    `json:"events_enabled" yaml:"events_enabled"`
	AdaptivePolicy   bool    `json:"adaptive_policy" yaml:"adaptive_policy"`
	SurveyDeposits   bool    `json:"survey_deposits" yaml:"survey_deposits"`
}

// StepStatistics is one row of the statistics history
type StepStatistics struct {
	Step               int     `json:"step" yaml:"step"`
	AliveCivilizations int     `json:"alive_civilizations" yaml:"alive_civilizations"`
	TotalPopulation    int64   `json:"total_population" yaml:"total_population"`
	AverageTechLevel   float64 `json:"average_tech_level" yaml:"average_tech_level"`
}

// CivilizationSummary is the final state of one civilization
type CivilizationSummary struct {
	ID             int      `json:"id" yaml:"id"`
	HomePlanetID   int      `json:"home_planet_id" yaml:"home_planet_id"`
	Status         string   `json:"status" yaml:"status"`
	CollapseReason string   `json:"collapse_reason,omitempty" yaml:"collapse_reason,omitempty"`
	Population     int64    `json:"population" yaml:"population"`
	TechLevel      int      `json:"tech_level" yaml:"tech_level"`
	Resources      int64    `json:"resources" yaml:"resources"`
	Planets        int      `json:"planets" yaml:"planets"`
	Technologies   []string `json:"technologies" yaml:"technologies"`
	Government     string   `json:"government" yaml:"government"`
	Economy        string   `json:"economy" yaml:"economy"`
	Religion       string   `json:"religion" yaml:"religion"`
	Language       string   `json:"language" yaml:"language"`
	History        []string `json:"history" yaml:"history"`
}

// EventEntry is one line of the archived event log
type EventEntry struct {
	Step    int    `json:"step" yaml:"step"`
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Record is an archived simulation run.
//
// Lifecycle: PENDING -> RUNNING -> COMPLETED | FAILED | CANCELLED.
// A cancelled run keeps the statistics of every step it completed.
type Record struct {
	ID             string                `json:"id" yaml:"id"`
	Parameters     Parameters            `json:"parameters" yaml:"parameters"`
	Status         Status                `json:"status" yaml:"status"`
	CreatedAt      time.Time             `json:"created_at" yaml:"created_at"`
	StartedAt      *time.Time            `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	FinishedAt     *time.Time            `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	StepsCompleted int                   `json:"steps_completed" yaml:"steps_completed"`
	LastError      string                `json:"last_error,omitempty" yaml:"last_error,omitempty"`
	Statistics     []StepStatistics      `json:"statistics" yaml:"statistics"`
	Civilizations  []CivilizationSummary `json:"civilizations" yaml:"civilizations"`
	Events         []EventEntry          `json:"events" yaml:"events"`

	clock shared.Clock
}

// NewRecord creates a pending run record
func NewRecord(id string, params Parameters, clock shared.Clock) *Record {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Record{
		ID:         id,
		Parameters: params,
		Status:     StatusPending,
		CreatedAt:  clock.Now(),
		clock:      clock,
	}
}

// Start transitions from PENDING to RUNNING
func (r *Record) Start() error {
	if r.Status != StatusPending {
		return fmt.Errorf("cannot start run %s from %s state", r.ID, r.Status)
	}
	now := r.now()
	r.Status = StatusRunning
	r.StartedAt = &now
	return nil
}

// Complete transitions from RUNNING to COMPLETED
func (r *Record) Complete() error {
	if r.Status != StatusRunning {
		return fmt.Errorf("cannot complete run %s from %s state", r.ID, r.Status)
	}
	r.finish(StatusCompleted)
	return nil
}

// Fail transitions any unfinished run to FAILED
func (r *Record) Fail(err error) error {
	if r.IsFinished() {
		return fmt.Errorf("cannot fail run %s from %s state", r.ID, r.Status)
	}
	if err != nil {
		r.LastError = err.Error()
	}
	r.finish(StatusFailed)
	return nil
}

// Cancel transitions any unfinished run to CANCELLED
func (r *Record) Cancel(reason error) error {
	if r.IsFinished() {
		return fmt.Errorf("cannot cancel run %s from %s state", r.ID, r.Status)
	}
	if reason != nil {
		r.LastError = reason.Error()
	}
	r.finish(StatusCancelled)
	return nil
}

// IsFinished returns true once the run completed, failed or was cancelled
func (r *Record) IsFinished() bool {
	return r.Status == StatusCompleted || r.Status == StatusFailed || r.Status == StatusCancelled
}

// Duration is how long the run has been or was running, zero if not started
func (r *Record) Duration() time.Duration {
	if r.StartedAt == nil {
		return 0
	}
	end := r.now()
	if r.FinishedAt != nil {
		end = *r.FinishedAt
	}
	return end.Sub(*r.StartedAt)
}

// Final returns the statistics of the last completed step
func (r *Record) Final() (StepStatistics, bool) {
	if len(r.Statistics) == 0 {
		return StepStatistics{}, false
	}
	return r.Statistics[len(r.Statistics)-1], true
}

func (r *Record) finish(status Status) {
	now := r.now()
	r.Status = status
	r.FinishedAt = &now
	r.StepsCompleted = len(r.Statistics)
}

func (r *Record) now() time.Time {
	if r.clock == nil {
		r.clock = shared.NewRealClock()
	}
	return r.clock.Now()
}

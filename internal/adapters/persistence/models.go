package persistence

import (
	"time"
)

// RunModel represents the runs table
type RunModel struct {
	ID               string     `gorm:"column:id;primaryKey"`
	Seed             int64      `gorm:"column:seed;not null;index"`
	Stars            int        `gorm:"column:stars;not null"`
	Civilizations    int        `gorm:"column:civilizations;not null"`
	Steps            int        `gorm:"column:steps;not null"`
	PropagationSpeed float64    `gorm:"column:propagation_speed;not null"`
	EventsEnabled    bool       `gorm:"column:events_enabled;not null;default:true"`
	AdaptivePolicy   bool       `gorm:"column:adaptive_policy;not null;default:false"`
	SurveyDeposits   bool       `gorm:"column:survey_deposits;not null;default:false"`
	Status           string     `gorm:"column:status;not null;index"`
	StepsCompleted   int        `gorm:"column:steps_completed;not null;default:0"`
	LastError        string     `gorm:"column:last_error;type:text"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"`
	StartedAt        *time.Time `gorm:"column:started_at"`
	FinishedAt       *time.Time `gorm:"column:finished_at"`
}

func (RunModel) TableName() string {
	return "runs"
}

// StepStatisticModel represents the run_step_statistics table
type StepStatisticModel struct {
	ID                 uint    `gorm:"column:id;primaryKey;autoIncrement"`
	RunID              string  `gorm:"column:run_id;not null;index:idx_run_step,unique"`
	Step               int     `gorm:"column:step;not null;index:idx_run_step,unique"`
	AliveCivilizations int     `gorm:"column:alive_civilizations;not null"`
	TotalPopulation    int64   `gorm:"column:total_population;not null"`
	AverageTechLevel   float64 `gorm:"column:average_tech_level;not null"`
}

func (StepStatisticModel) TableName() string {
	return "run_step_statistics"
}

// CivilizationRecordModel represents the run_civilizations table
type CivilizationRecordModel struct {
	RunID          string `gorm:"column:run_id;primaryKey"`
	CivilizationID int    `gorm:"column:civilization_id;primaryKey;autoIncrement:false"`
	HomePlanetID   int    `gorm:"column:home_planet_id;not null"`
	Status         string `gorm:"column:status;not null"`
	CollapseReason string `gorm:"column:collapse_reason"`
	Population     int64  `gorm:"column:population;not null"`
	TechLevel      int    `gorm:"column:tech_level;not null"`
	Resources      int64  `gorm:"column:resources;not null"`
	Planets        int    `gorm:"column:planets;not null"`
	Technologies   string `gorm:"column:technologies;type:text"` // JSON array as text
	Government     string `gorm:"column:government"`
	Economy        string `gorm:"column:economy"`
	Religion       string `gorm:"column:religion"`
	Language       string `gorm:"column:language"`
	History        string `gorm:"column:history;type:text"` // JSON array as text
}

func (CivilizationRecordModel) TableName() string {
	return "run_civilizations"
}

// EventLogModel represents the run_events table
type EventLogModel struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RunID    string `gorm:"column:run_id;not null;index"`
	Sequence int    `gorm:"column:sequence;not null"`
	Step     int    `gorm:"column:step;not null"`
	Kind     string `gorm:"column:kind;not null"`
	Message  string `gorm:"column:message;type:text;not null"`
}

func (EventLogModel) TableName() string {
	return "run_events"
}

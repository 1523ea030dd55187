package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/galaxysim/internal/domain/run"
)

const batchSize = 500

// GormRunRepository implements run.Repository using GORM
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run repository
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// Save upserts the run header and replaces all its children in one transaction
func (r *GormRunRepository) Save(ctx context.Context, record *run.Record) error {
	model := runToModel(record)
	stats := statisticsToModels(record)
	events := eventsToModels(record)
	civs, err := civilizationsToModels(record)
	if err != nil {
		return fmt.Errorf("failed to convert civilizations: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		if err := deleteChildren(tx, record.ID); err != nil {
			return err
		}
		if len(stats) > 0 {
			if err := tx.CreateInBatches(stats, batchSize).Error; err != nil {
				return fmt.Errorf("failed to save step statistics: %w", err)
			}
		}
		if len(civs) > 0 {
			if err := tx.CreateInBatches(civs, batchSize).Error; err != nil {
				return fmt.Errorf("failed to save civilizations: %w", err)
			}
		}
		if len(events) > 0 {
			if err := tx.CreateInBatches(events, batchSize).Error; err != nil {
				return fmt.Errorf("failed to save events: %w", err)
			}
		}
		return nil
	})
}

// FindByID loads a run with statistics, civilizations and events
func (r *GormRunRepository) FindByID(ctx context.Context, id string) (*run.Record, error) {
	db := r.db.WithContext(ctx)

	var model RunModel
	result := db.Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, &run.ErrRunNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to find run: %w", result.Error)
	}
	record := modelToRun(&model)

	var stats []StepStatisticModel
	if err := db.Where("run_id = ?", id).Order("step ASC").Find(&stats).Error; err != nil {
		return nil, fmt.Errorf("failed to load step statistics: %w", err)
	}
	for _, s := range stats {
		record.Statistics = append(record.Statistics, run.StepStatistics{
			Step:               s.Step,
			AliveCivilizations: s.AliveCivilizations,
			TotalPopulation:    s.TotalPopulation,
			AverageTechLevel:   s.AverageTechLevel,
		})
	}

	var civs []CivilizationRecordModel
	if err := db.Where("run_id = ?", id).Order("civilization_id ASC").Find(&civs).Error; err != nil {
		return nil, fmt.Errorf("failed to load civilizations: %w", err)
	}
	for i := range civs {
		summary, err := modelToCivilization(&civs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert civilization %d: %w", civs[i].CivilizationID, err)
		}
		record.Civilizations = append(record.Civilizations, summary)
	}

	var events []EventLogModel
	if err := db.Where("run_id = ?", id).Order("sequence ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	for _, e := range events {
		record.Events = append(record.Events, run.EventEntry{Step: e.Step, Kind: e.Kind, Message: e.Message})
	}

	return record, nil
}

// List returns run headers, newest first
func (r *GormRunRepository) List(ctx context.Context, opts run.ListOptions) ([]*run.Record, error) {
	query := r.db.WithContext(ctx).Model(&RunModel{})
	if opts.Status != nil {
		query = query.Where("status = ?", string(*opts.Status))
	}
	if opts.Seed != nil {
		query = query.Where("seed = ?", *opts.Seed)
	}
	query = query.Order("created_at DESC").Order("id ASC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []RunModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	records := make([]*run.Record, len(models))
	for i := range models {
		records[i] = modelToRun(&models[i])
	}
	return records, nil
}

// Delete removes a run and its children
func (r *GormRunRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&RunModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete run: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &run.ErrRunNotFound{ID: id}
		}
		return nil
	})
}

func deleteChildren(tx *gorm.DB, runID string) error {
	if err := tx.Where("run_id = ?", runID).Delete(&StepStatisticModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear step statistics: %w", err)
	}
	if err := tx.Where("run_id = ?", runID).Delete(&CivilizationRecordModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear civilizations: %w", err)
	}
	if err := tx.Where("run_id = ?", runID).Delete(&EventLogModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	return nil
}

func runToModel(record *run.Record) *RunModel {
	p := record.Parameters
	return &RunModel{
		ID:               record.ID,
		Seed:             p.Seed,
		Stars:            p.Stars,
		Civilizations:    p.Civilizations,
		Steps:            p.Steps,
		PropagationSpeed: p.PropagationSpeed,
		EventsEnabled:    p.EventsEnabled,
		AdaptivePolicy:   p.AdaptivePolicy,
		SurveyDeposits:   p.SurveyDeposits,
		Status:           string(record.Status),
		StepsCompleted:   record.StepsCompleted,
		LastError:        record.LastError,
		CreatedAt:        record.CreatedAt,
		StartedAt:        record.StartedAt,
		FinishedAt:       record.FinishedAt,
	}
}

func modelToRun(model *RunModel) *run.Record {
	return &run.Record{
		ID: model.ID,
		Parameters: run.Parameters{
			Stars:            model.Stars,
			Civilizations:    model.Civilizations,
			Seed:             model.Seed,
			Steps:            model.Steps,
			PropagationSpeed: model.PropagationSpeed,
			EventsEnabled:    model.EventsEnabled,
			AdaptivePolicy:   model.AdaptivePolicy,
			SurveyDeposits:   model.SurveyDeposits,
		},
		Status:         run.Status(model.Status),
		CreatedAt:      model.CreatedAt,
		StartedAt:      model.StartedAt,
		FinishedAt:     model.FinishedAt,
		StepsCompleted: model.StepsCompleted,
		LastError:      model.LastError,
	}
}

func statisticsToModels(record *run.Record) []StepStatisticModel {
	out := make([]StepStatisticModel, len(record.Statistics))
	for i, s := range record.Statistics {
		out[i] = StepStatisticModel{
			RunID:              record.ID,
			Step:               s.Step,
			AliveCivilizations: s.AliveCivilizations,
			TotalPopulation:    s.TotalPopulation,
			AverageTechLevel:   s.AverageTechLevel,
		}
	}
	return out
}

func eventsToModels(record *run.Record) []EventLogModel {
	out := make([]EventLogModel, len(record.Events))
	for i, e := range record.Events {
		out[i] = EventLogModel{
			RunID:    record.ID,
			Sequence: i,
			Step:     e.Step,
			Kind:     e.Kind,
			Message:  e.Message,
		}
	}
	return out
}

func civilizationsToModels(record *run.Record) ([]CivilizationRecordModel, error) {
	out := make([]CivilizationRecordModel, len(record.Civilizations))
	for i, c := range record.Civilizations {
		techJSON, err := json.Marshal(c.Technologies)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal technologies: %w", err)
		}
		historyJSON, err := json.Marshal(c.History)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal history: %w", err)
		}
		out[i] = CivilizationRecordModel{
			RunID:          record.ID,
			CivilizationID: c.ID,
			HomePlanetID:   c.HomePlanetID,
			Status:         c.Status,
			CollapseReason: c.CollapseReason,
			Population:     c.Population,
			TechLevel:      c.TechLevel,
			Resources:      c.Resources,
			Planets:        c.Planets,
			Technologies:   string(techJSON),
			Government:     c.Government,
			Economy:        c.Economy,
			Religion:       c.Religion,
			Language:       c.Language,
			History:        string(historyJSON),
		}
	}
	return out, nil
}

func modelToCivilization(model *CivilizationRecordModel) (run.CivilizationSummary, error) {
	summary := run.CivilizationSummary{
		ID:             model.CivilizationID,
		HomePlanetID:   model.HomePlanetID,
		Status:         model.Status,
		CollapseReason: model.CollapseReason,
		Population:     model.Population,
		TechLevel:      model.TechLevel,
		Resources:      model.Resources,
		Planets:        model.Planets,
		Government:     model.Government,
		Economy:        model.Economy,
		Religion:       model.Religion,
		Language:       model.Language,
	}
	if model.Technologies != "" {
		if err := json.Unmarshal([]byte(model.Technologies), &summary.Technologies); err != nil {
			return summary, fmt.Errorf("failed to unmarshal technologies: %w", err)
		}
	}
	if model.History != "" {
		if err := json.Unmarshal([]byte(model.History), &summary.History); err != nil {
			return summary, fmt.Errorf("failed to unmarshal history: %w", err)
		}
	}
	return summary, nil
}

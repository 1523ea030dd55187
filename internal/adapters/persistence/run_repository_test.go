package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/adapters/persistence"
	"github.com/andrescamacho/galaxysim/internal/domain/run"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

func sampleRecord(id string, seed int64, createdAt time.Time) *run.Record {
	record := run.NewRecord(id, run.Parameters{
		Stars:            100,
		Civilizations:    5,
		Seed:             seed,
		Steps:            2,
		PropagationSpeed: 1,
		EventsEnabled:    true,
	}, shared.NewMockClock(createdAt))
	_ = record.Start()
	record.Statistics = []run.StepStatistics{
		{Step: 0, AliveCivilizations: 2, TotalPopulation: 3_000_000, AverageTechLevel: 1},
		{Step: 1, AliveCivilizations: 1, TotalPopulation: 1_500_000, AverageTechLevel: 2},
	}
	record.Civilizations = []run.CivilizationSummary{
		{
			ID: 0, HomePlanetID: 12, Status: "alive", Population: 1_500_000, TechLevel: 2,
			Resources: 900, Planets: 2, Technologies: []string{"Agriculture", "Metallurgy"},
			Government: "republic", Economy: "mixed", Religion: "none", Language: "Xeno",
			History: []string{"Colonized planet 13", "Researched Metallurgy"},
		},
		{
			ID: 1, HomePlanetID: 40, Status: "collapsed", CollapseReason: "internal revolt",
			Population: 1_400_000, TechLevel: 1, Resources: 10, Planets: 1,
			Technologies: []string{"Agriculture"}, History: []string{"Collapsed due to internal revolt"},
		},
	}
	record.Events = []run.EventEntry{
		{Step: 1, Kind: "revolt", Message: "Civilization 1 collapsed due to revolt!"},
	}
	_ = record.Complete()
	return record
}

func TestRunRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	record := sampleRecord("run-42-aaaa", 42, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	// Act
	require.NoError(t, repo.Save(context.Background(), record))
	found, err := repo.FindByID(context.Background(), "run-42-aaaa")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, record.Parameters, found.Parameters)
	assert.Equal(t, run.StatusCompleted, found.Status)
	assert.Equal(t, 2, found.StepsCompleted)
	assert.True(t, record.CreatedAt.Equal(found.CreatedAt))
	assert.Equal(t, record.Statistics, found.Statistics)
	assert.Equal(t, record.Civilizations, found.Civilizations)
	assert.Equal(t, record.Events, found.Events)
}

func TestRunRepository_SaveReplacesChildren(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	record := sampleRecord("run-1-bbbb", 1, time.Now().UTC())
	require.NoError(t, repo.Save(context.Background(), record))

	// Act
	record.Statistics = record.Statistics[:1]
	record.Events = nil
	require.NoError(t, repo.Save(context.Background(), record))
	found, err := repo.FindByID(context.Background(), record.ID)

	// Assert
	require.NoError(t, err)
	assert.Len(t, found.Statistics, 1)
	assert.Empty(t, found.Events)
	assert.Len(t, found.Civilizations, 2)
}

func TestRunRepository_FindMissing(t *testing.T) {
	// Arrange
	repo := persistence.NewGormRunRepository(helpers.NewTestDB(t))

	// Act
	_, err := repo.FindByID(context.Background(), "nope")

	// Assert
	var notFound *run.ErrRunNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestRunRepository_ListNewestFirstWithFilters(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), sampleRecord("run-a", 1, base)))
	require.NoError(t, repo.Save(context.Background(), sampleRecord("run-b", 2, base.Add(time.Hour))))
	failed := sampleRecord("run-c", 1, base.Add(2*time.Hour))
	failed.Status = run.StatusFailed
	require.NoError(t, repo.Save(context.Background(), failed))

	// Act
	all, err := repo.List(context.Background(), run.DefaultListOptions())
	require.NoError(t, err)
	seed := int64(1)
	bySeed, err := repo.List(context.Background(), run.ListOptions{Seed: &seed})
	require.NoError(t, err)
	status := run.StatusCompleted
	byStatus, err := repo.List(context.Background(), run.ListOptions{Status: &status, Limit: 1})
	require.NoError(t, err)

	// Assert
	require.Len(t, all, 3)
	assert.Equal(t, []string{"run-c", "run-b", "run-a"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Empty(t, all[0].Statistics)
	assert.Len(t, bySeed, 2)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "run-b", byStatus[0].ID)
}

func TestRunRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	require.NoError(t, repo.Save(context.Background(), sampleRecord("run-d", 3, time.Now().UTC())))

	// Act
	require.NoError(t, repo.Delete(context.Background(), "run-d"))

	// Assert
	_, err := repo.FindByID(context.Background(), "run-d")
	assert.Error(t, err)
	var count int64
	require.NoError(t, db.Model(&persistence.StepStatisticModel{}).Where("run_id = ?", "run-d").Count(&count).Error)
	assert.Zero(t, count)

	var notFound *run.ErrRunNotFound
	assert.ErrorAs(t, repo.Delete(context.Background(), "run-d"), &notFound)
}

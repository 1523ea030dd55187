package simulation

import "github.com/andrescamacho/galaxysim/internal/domain/civilization"

// Statistics is the aggregate state after one step
type Statistics struct {
	Step               int     `json:"step" yaml:"step"`
	AliveCivilizations int     `json:"alive_civilizations" yaml:"alive_civilizations"`
	TotalPopulation    int64   `json:"total_population" yaml:"total_population"`
	AverageTechLevel   float64 `json:"average_tech_level" yaml:"average_tech_level"`
}

// Aggregate computes statistics over the alive civilizations. With nobody
// alive every figure is zero.
func Aggregate(step int, civilizations []*civilization.Civilization) Statistics {
	stats := Statistics{Step: step}
	techSum := 0
	for _, c := range civilizations {
		if !c.IsAlive() {
			continue
		}
		stats.AliveCivilizations++
		stats.TotalPopulation += c.Population
		techSum += c.TechLevel
	}
	if stats.AliveCivilizations > 0 {
		stats.AverageTechLevel = float64(techSum) / float64(stats.AliveCivilizations)
	}
	return stats
}

package galaxy

// DefaultNearbyDistance is the expansion radius between stars, in light-years
const DefaultNearbyDistance = 20.0

// Galaxy owns every star and planet of a run plus the planet occupancy map.
//
// Invariants:
// - a planet is occupied by at most one civilization at a time
// - occupancy changes only through Claim and Release
type Galaxy struct {
	Stars   []*Star
	Planets []*Planet

	// planet ID -> civilization ID
	occupancy map[int]int
}

// New creates a galaxy from already generated stars and planets
func New(stars []*Star, planets []*Planet) *Galaxy {
	return &Galaxy{
		Stars:     stars,
		Planets:   planets,
		occupancy: make(map[int]int),
	}
}

// Planet returns a planet by ID. Planet IDs are dense indexes assigned by the generator.
func (g *Galaxy) Planet(id int) (*Planet, error) {
	if id < 0 || id >= len(g.Planets) {
		return nil, &ErrPlanetNotFound{PlanetID: id}
	}
	return g.Planets[id], nil
}

// Occupant returns the civilization occupying a planet, if any
func (g *Galaxy) Occupant(planetID int) (int, bool) {
	civID, ok := g.occupancy[planetID]
	return civID, ok
}

// IsOccupied reports whether any civilization holds the planet
func (g *Galaxy) IsOccupied(planetID int) bool {
	_, ok := g.occupancy[planetID]
	return ok
}

// Claim marks a planet as occupied by a civilization.
// Claiming a planet the same civilization already holds is a no-op.
func (g *Galaxy) Claim(planetID, civilizationID int) error {
	if current, ok := g.occupancy[planetID]; ok {
		if current == civilizationID {
			return nil
		}
		return &ErrPlanetOccupied{PlanetID: planetID, OccupantID: current}
	}
	g.occupancy[planetID] = civilizationID
	return nil
}

// Release clears the occupant of a planet
func (g *Galaxy) Release(planetID int) {
	delete(g.occupancy, planetID)
}

// OccupiedCount returns the number of occupied planets
func (g *Galaxy) OccupiedCount() int {
	return len(g.occupancy)
}

// NearbyPlanets returns every unoccupied planet whose star lies strictly within
// maxDistance of the reference planet's star, excluding the reference planet.
// Results keep generation order. Linear scan over all planets.
func (g *Galaxy) NearbyPlanets(ref *Planet, maxDistance float64) []*Planet {
	var result []*Planet
	origin := ref.Star.Position
	for _, p := range g.Planets {
		if p == ref || g.IsOccupied(p.ID) {
			continue
		}
		if origin.DistanceTo(p.Star.Position) < maxDistance {
			result = append(result, p)
		}
	}
	return result
}

// IntelligentPlanets returns planets with intelligent life in generation order
func (g *Galaxy) IntelligentPlanets() []*Planet {
	var result []*Planet
	for _, p := range g.Planets {
		if p.HasIntelligentLife {
			result = append(result, p)
		}
	}
	return result
}

// Summary counts generated content for reporting
type Summary struct {
	Stars            int                   `json:"stars" yaml:"stars"`
	Planets          int                   `json:"planets" yaml:"planets"`
	HabitableZone    int                   `json:"habitable_zone" yaml:"habitable_zone"`
	WithLife         int                   `json:"with_life" yaml:"with_life"`
	WithIntelligence int                   `json:"with_intelligence" yaml:"with_intelligence"`
	Occupied         int                   `json:"occupied" yaml:"occupied"`
	StarsByClass     map[SpectralClass]int `json:"stars_by_class" yaml:"stars_by_class"`
	PlanetsByType    map[PlanetType]int    `json:"planets_by_type" yaml:"planets_by_type"`
}

// Summarize counts stars and planets by category
func (g *Galaxy) Summarize() Summary {
	s := Summary{
		Stars:         len(g.Stars),
		Planets:       len(g.Planets),
		Occupied:      len(g.occupancy),
		StarsByClass:  make(map[SpectralClass]int),
		PlanetsByType: make(map[PlanetType]int),
	}
	for _, star := range g.Stars {
		s.StarsByClass[star.Class]++
	}
	for _, p := range g.Planets {
		s.PlanetsByType[p.Type]++
		if p.HabitableZone {
			s.HabitableZone++
		}
		if p.HasLife {
			s.WithLife++
		}
		if p.HasIntelligentLife {
			s.WithIntelligence++
		}
	}
	return s
}

package events

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// Entry is one fired event. Message is the human-readable log line; the ID
// fields are set only when the event concerns that kind of object.
type Entry struct {
	Step           int
	Kind           Kind
	Message        string
	CivilizationID *int
	StarID         *int
	PlanetID       *int
}

// Manager rolls random events against the galaxy and its civilizations.
// Each trigger is an independent Bernoulli draw; several events may fire in
// the same pass. Every fired event is kept in the process-wide log.
type Manager struct {
	galaxy *galaxy.Galaxy
	roster *civilization.Roster
	rng    *shared.RNG
	rates  Rates
	log    []Entry
}

// NewManager creates an event manager sharing the run's draw stream
func NewManager(g *galaxy.Galaxy, roster *civilization.Roster, rng *shared.RNG, rates Rates) *Manager {
	return &Manager{
		galaxy: g,
		roster: roster,
		rng:    rng,
		rates:  rates,
	}
}

// Rates returns the configured probabilities
func (m *Manager) Rates() Rates {
	return m.rates
}

// Trigger runs the cosmic pass then the civilization pass and returns the entries fired
func (m *Manager) Trigger(step int) []Entry {
	fired := m.TriggerCosmic(step)
	return append(fired, m.TriggerCivilization(step)...)
}

// TriggerCosmic rolls supernova, asteroid impact and black hole, in that order.
// Supernova and black hole sterilize a whole system and clear occupancy but do
// not collapse anyone; an asteroid impact collapses the occupant of its planet.
func (m *Manager) TriggerCosmic(step int) []Entry {
	var fired []Entry

	if m.rng.Chance(m.rates.Supernova) && len(m.galaxy.Stars) > 0 {
		star := shared.Pick(m.rng, m.galaxy.Stars)
		m.sterilizeSystem(star)
		fired = append(fired, m.record(Entry{
			Step:    step,
			Kind:    KindSupernova,
			Message: fmt.Sprintf("Supernova at star %d! All planets sterilized.", star.ID),
			StarID:  intPtr(star.ID),
		}))
	}

	if m.rng.Chance(m.rates.AsteroidImpact) && len(m.galaxy.Planets) > 0 {
		planet := shared.Pick(m.rng, m.galaxy.Planets)
		planet.Sterilize()
		entry := Entry{
			Step:     step,
			Kind:     KindAsteroidImpact,
			Message:  fmt.Sprintf("Asteroid impact on planet %d!", planet.ID),
			StarID:   intPtr(planet.Star.ID),
			PlanetID: intPtr(planet.ID),
		}
		if occupantID, ok := m.galaxy.Occupant(planet.ID); ok {
			if occupant, found := m.roster.ByID(occupantID); found {
				occupant.Collapse(civilization.ReasonAsteroidImpact)
				entry.CivilizationID = intPtr(occupantID)
			}
		}
		fired = append(fired, m.record(entry))
	}

	if m.rng.Chance(m.rates.BlackHole) && len(m.galaxy.Stars) > 0 {
		star := shared.Pick(m.rng, m.galaxy.Stars)
		m.sterilizeSystem(star)
		fired = append(fired, m.record(Entry{
			Step:    step,
			Kind:    KindBlackHole,
			Message: fmt.Sprintf("Black hole devoured star %d!", star.ID),
			StarID:  intPtr(star.ID),
		}))
	}

	return fired
}

// TriggerCivilization rolls the five civilization events for every civilization
// alive when the pass starts. All five are rolled even if a revolt collapses
// the civilization partway through.
func (m *Manager) TriggerCivilization(step int) []Entry {
	var fired []Entry
	for _, c := range m.roster.Alive() {
		id := intPtr(c.ID)

		if m.rng.Chance(m.rates.Revolt) {
			c.Collapse(civilization.ReasonInternalRevolt)
			fired = append(fired, m.record(Entry{
				Step:           step,
				Kind:           KindRevolt,
				Message:        fmt.Sprintf("Civilization %d collapsed due to revolt!", c.ID),
				CivilizationID: id,
			}))
		}

		if m.rng.Chance(m.rates.GoldenAge) {
			c.GrowthRate *= GoldenAgeGrowthFactor
			c.Record("Golden Age! Growth rate increased.")
			fired = append(fired, m.record(Entry{
				Step:           step,
				Kind:           KindGoldenAge,
				Message:        fmt.Sprintf("Civilization %d entered a Golden Age!", c.ID),
				CivilizationID: id,
			}))
		}

		if m.rng.Chance(m.rates.Plague) {
			c.Population = int64(float64(c.Population) * PlagueSurvivalFactor)
			c.Record("Plague! Population reduced.")
			fired = append(fired, m.record(Entry{
				Step:           step,
				Kind:           KindPlague,
				Message:        fmt.Sprintf("Civilization %d hit by a plague! Population reduced.", c.ID),
				CivilizationID: id,
			}))
		}

		if m.rng.Chance(m.rates.ResourceBoom) {
			c.Resources += int64(float64(c.Resources) * BoomBonusFactor)
			c.Record("Resource boom! Resources increased.")
			fired = append(fired, m.record(Entry{
				Step:           step,
				Kind:           KindResourceBoom,
				Message:        fmt.Sprintf("Civilization %d experienced a resource boom!", c.ID),
				CivilizationID: id,
			}))
		}

		if m.rng.Chance(m.rates.ResourceCrash) {
			c.Resources = int64(float64(c.Resources) * CrashFactor)
			c.Record("Resource crash! Resources halved.")
			fired = append(fired, m.record(Entry{
				Step:           step,
				Kind:           KindResourceCrash,
				Message:        fmt.Sprintf("Civilization %d suffered a resource crash!", c.ID),
				CivilizationID: id,
			}))
		}
	}
	return fired
}

// Entries returns the full event log
func (m *Manager) Entries() []Entry {
	return append([]Entry{}, m.log...)
}

// Log returns the event log messages in firing order
func (m *Manager) Log() []string {
	out := make([]string, len(m.log))
	for i, e := range m.log {
		out[i] = e.Message
	}
	return out
}

func (m *Manager) sterilizeSystem(star *galaxy.Star) {
	for _, p := range star.Planets {
		p.Sterilize()
		m.galaxy.Release(p.ID)
	}
}

func (m *Manager) record(e Entry) Entry {
	m.log = append(m.log, e)
	return e
}

func intPtr(v int) *int {
	return &v
}

// FormatLog renders log lines as a bulleted list
func FormatLog(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(line)
	}
	return b.String()
}

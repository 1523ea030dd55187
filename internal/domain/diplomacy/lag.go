package diplomacy

import "github.com/andrescamacho/galaxysim/internal/domain/civilization"

// DefaultPropagationSpeed is the speed of light in light-years per year
const DefaultPropagationSpeed = 1.0

// CommunicationLag computes message travel time between home systems
type CommunicationLag struct {
	Speed float64
}

// NewCommunicationLag creates a lag model, falling back to light speed for non-positive speeds
func NewCommunicationLag(speed float64) CommunicationLag {
	if speed <= 0 {
		speed = DefaultPropagationSpeed
	}
	return CommunicationLag{Speed: speed}
}

// Lag returns the distance between home stars divided by the propagation speed, in years
func (l CommunicationLag) Lag(a, b *civilization.Civilization) float64 {
	return a.HomePlanet.Star.Position.DistanceTo(b.HomePlanet.Star.Position) / l.Speed
}

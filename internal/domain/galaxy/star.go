package galaxy

import (
	"fmt"

	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// SpectralClass is the Morgan-Keenan classification of a star
type SpectralClass string

const (
	SpectralClassO SpectralClass = "O"
	SpectralClassB SpectralClass = "B"
	SpectralClassA SpectralClass = "A"
	SpectralClassF SpectralClass = "F"
	SpectralClassG SpectralClass = "G"
	SpectralClassK SpectralClass = "K"
	SpectralClassM SpectralClass = "M"
)

// spectralClasses lists classes in the order their generation weights are given
var spectralClasses = []SpectralClass{
	SpectralClassO, SpectralClassB, SpectralClassA, SpectralClassF,
	SpectralClassG, SpectralClassK, SpectralClassM,
}

// spectralClassWeights approximates real stellar demographics
var spectralClassWeights = []float64{0.01, 0.02, 0.06, 0.12, 0.20, 0.30, 0.29}

// luminosityByClass is in solar units
var luminosityByClass = map[SpectralClass]float64{
	SpectralClassO: 100000,
	SpectralClassB: 20000,
	SpectralClassA: 80,
	SpectralClassF: 6,
	SpectralClassG: 1,
	SpectralClassK: 0.4,
	SpectralClassM: 0.04,
}

// AllSpectralClasses returns every spectral class, hottest first
func AllSpectralClasses() []SpectralClass {
	out := make([]SpectralClass, len(spectralClasses))
	copy(out, spectralClasses)
	return out
}

// Luminosity returns the luminosity for the class, 1 for unknown classes
func (c SpectralClass) Luminosity() float64 {
	if l, ok := luminosityByClass[c]; ok {
		return l
	}
	return 1
}

// FavoursLife reports whether the class gets the life-seeding bonus (long-lived G, K and M dwarfs)
func (c SpectralClass) FavoursLife() bool {
	return c == SpectralClassG || c == SpectralClassK || c == SpectralClassM
}

// IsValid checks if the class is one of OBAFGKM
func (c SpectralClass) IsValid() bool {
	_, ok := luminosityByClass[c]
	return ok
}

// Star is fixed after generation; its planet list is filled once by the generator
type Star struct {
	ID          int
	Position    shared.Vector3
	Class       SpectralClass
	Metallicity float64 // heavy-element fraction
	Age         float64 // billion years
	Luminosity  float64 // solar units, derived from Class
	Planets     []*Planet
}

// NewStar creates a star, deriving its luminosity from the spectral class
func NewStar(id int, position shared.Vector3, class SpectralClass, metallicity, age float64) *Star {
	return &Star{
		ID:          id,
		Position:    position,
		Class:       class,
		Metallicity: metallicity,
		Age:         age,
		Luminosity:  class.Luminosity(),
		Planets:     []*Planet{},
	}
}

func (s *Star) String() string {
	return fmt.Sprintf("Star(%d, %s)", s.ID, s.Class)
}

package galaxy

import "fmt"

// ErrPlanetOccupied is returned when claiming a planet another civilization already holds
type ErrPlanetOccupied struct {
	PlanetID   int
	OccupantID int
}

func (e *ErrPlanetOccupied) Error() string {
	return fmt.Sprintf("planet %d is already occupied by civilization %d", e.PlanetID, e.OccupantID)
}

// ErrPlanetNotFound is returned for planet IDs outside the galaxy
type ErrPlanetNotFound struct {
	PlanetID int
}

func (e *ErrPlanetNotFound) Error() string {
	return fmt.Sprintf("planet not found: %d", e.PlanetID)
}

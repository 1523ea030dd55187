package diplomacy

import "fmt"

// ErrAlreadyAtWar is returned when declaring a war that is already active
type ErrAlreadyAtWar struct {
	A, B int
}

func (e *ErrAlreadyAtWar) Error() string {
	return fmt.Sprintf("civilizations %d and %d are already at war", e.A, e.B)
}

// ErrNotAtWar is returned when resolving a war that is not active
type ErrNotAtWar struct {
	A, B int
}

func (e *ErrNotAtWar) Error() string {
	return fmt.Sprintf("civilizations %d and %d are not at war", e.A, e.B)
}

package diplomacy

import (
	"fmt"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
)

// War is an active conflict. Aggressor is whoever declared it.
type War struct {
	Aggressor int
	Defender  int
}

// Involves reports whether the war is between a and b in either order
func (w War) Involves(a, b int) bool {
	return (w.Aggressor == a && w.Defender == b) || (w.Aggressor == b && w.Defender == a)
}

// Outcome describes a resolved war
type Outcome struct {
	Winner *civilization.Civilization
	Loser  *civilization.Civilization
}

// Wars is the set of active wars. Pairs are unordered: a war between a and b
// blocks a second declaration from either side.
type Wars struct {
	active []War
}

// NewWars creates an empty war set
func NewWars() *Wars {
	return &Wars{}
}

// AtWar reports whether a and b are fighting
func (w *Wars) AtWar(a, b int) bool {
	return w.index(a, b) >= 0
}

// Engaged reports whether id takes part in any active war
func (w *Wars) Engaged(id int) bool {
	for _, war := range w.active {
		if war.Aggressor == id || war.Defender == id {
			return true
		}
	}
	return false
}

// Active returns active wars in declaration order
func (w *Wars) Active() []War {
	return append([]War{}, w.active...)
}

// Declare starts a war and records it in both histories
func (w *Wars) Declare(aggressor, defender *civilization.Civilization) error {
	if w.AtWar(aggressor.ID, defender.ID) {
		return &ErrAlreadyAtWar{A: aggressor.ID, B: defender.ID}
	}
	w.active = append(w.active, War{Aggressor: aggressor.ID, Defender: defender.ID})
	aggressor.Record(fmt.Sprintf("Declared war on Civ %d", defender.ID))
	defender.Record(fmt.Sprintf("Was attacked by Civ %d", aggressor.ID))
	return nil
}

// Resolve ends the war between a and b. The side with the larger tech level
// plus population wins; on a tie b wins. The loser collapses.
func (w *Wars) Resolve(a, b *civilization.Civilization) (Outcome, error) {
	i := w.index(a.ID, b.ID)
	if i < 0 {
		return Outcome{}, &ErrNotAtWar{A: a.ID, B: b.ID}
	}
	winner, loser := b, a
	if a.Strength() > b.Strength() {
		winner, loser = a, b
	}
	loser.Collapse(civilization.ReasonDefeatedInWar)
	winner.Record(fmt.Sprintf("Defeated Civ %d in war", loser.ID))
	w.active = append(w.active[:i], w.active[i+1:]...)
	return Outcome{Winner: winner, Loser: loser}, nil
}

func (w *Wars) index(a, b int) int {
	for i, war := range w.active {
		if war.Involves(a, b) {
			return i
		}
	}
	return -1
}

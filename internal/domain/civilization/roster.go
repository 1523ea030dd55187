package civilization

import "fmt"

// Roster is the ordered set of civilizations of a run. Civilizations are never
// removed; collapse is a status, not a deletion.
type Roster struct {
	civilizations []*Civilization
	byID          map[int]*Civilization
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{byID: make(map[int]*Civilization)}
}

// Add appends a civilization, rejecting duplicate IDs
func (r *Roster) Add(c *Civilization) error {
	if _, exists := r.byID[c.ID]; exists {
		return fmt.Errorf("civilization %d already in roster", c.ID)
	}
	r.civilizations = append(r.civilizations, c)
	r.byID[c.ID] = c
	return nil
}

// All returns every civilization in founding order
func (r *Roster) All() []*Civilization {
	return r.civilizations
}

// Alive returns the civilizations still alive, in founding order
func (r *Roster) Alive() []*Civilization {
	var out []*Civilization
	for _, c := range r.civilizations {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// ByID looks up a civilization
func (r *Roster) ByID(id int) (*Civilization, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Len returns the number of civilizations ever founded
func (r *Roster) Len() int {
	return len(r.civilizations)
}

// IDs returns civilization IDs in founding order
func (r *Roster) IDs() []int {
	ids := make([]int, len(r.civilizations))
	for i, c := range r.civilizations {
		ids[i] = c.ID
	}
	return ids
}

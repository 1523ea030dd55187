package diplomacy

import "sort"

// Pair is an ordered pair of civilization IDs
type Pair struct {
	From int
	To   int
}

// Relation is one entry of the matrix
type Relation struct {
	Pair
	Value int
}

// Matrix holds directed relations between civilizations. Zero is neutral,
// positive friendly, negative hostile. Relations are not symmetric: updating
// (a, b) leaves (b, a) alone.
type Matrix struct {
	members   []int
	relations map[Pair]int
}

// NewMatrix creates a neutral matrix over every ordered pair of distinct IDs
func NewMatrix(ids []int) *Matrix {
	m := &Matrix{relations: make(map[Pair]int)}
	for _, id := range ids {
		m.Add(id)
	}
	return m
}

// Add extends the matrix with a new member at neutral relations. Adding an existing member is a no-op.
func (m *Matrix) Add(id int) {
	if m.Has(id) {
		return
	}
	for _, other := range m.members {
		m.relations[Pair{From: id, To: other}] = 0
		m.relations[Pair{From: other, To: id}] = 0
	}
	m.members = append(m.members, id)
}

// Has reports whether id is a member
func (m *Matrix) Has(id int) bool {
	for _, member := range m.members {
		if member == id {
			return true
		}
	}
	return false
}

// Get returns the relation of from towards to, zero for unknown pairs
func (m *Matrix) Get(from, to int) int {
	return m.relations[Pair{From: from, To: to}]
}

// Update shifts the relation of from towards to. Unknown pairs are ignored.
func (m *Matrix) Update(from, to, delta int) {
	key := Pair{From: from, To: to}
	if _, ok := m.relations[key]; ok {
		m.relations[key] += delta
	}
}

// Relations lists every entry ordered by (From, To)
func (m *Matrix) Relations() []Relation {
	out := make([]Relation, 0, len(m.relations))
	for pair, v := range m.relations {
		out = append(out, Relation{Pair: pair, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

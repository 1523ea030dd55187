package technology

// Technology names of the default catalog
const (
	Agriculture      = "Agriculture"
	Metallurgy       = "Metallurgy"
	Spaceflight      = "Spaceflight"
	FusionPower      = "Fusion Power"
	AI               = "AI"
	FTLCommunication = "FTL Communication"
	Terraforming     = "Terraforming"
	DysonSpheres     = "Dyson Spheres"
)

// Tree is a fixed catalog of technologies with prerequisite edges.
//
// Invariants:
// - catalog order is preserved and drives the order of Available
// - every prerequisite names a technology in the catalog
// - prerequisites form a DAG
type Tree struct {
	technologies []string
	prereqs      map[string][]string
	known        map[string]bool
}

// NewTree validates a catalog and its prerequisites
func NewTree(technologies []string, prereqs map[string][]string) (*Tree, error) {
	t := &Tree{
		technologies: append([]string{}, technologies...),
		prereqs:      make(map[string][]string, len(prereqs)),
		known:        make(map[string]bool, len(technologies)),
	}
	for _, name := range technologies {
		t.known[name] = true
	}
	for tech, reqs := range prereqs {
		if !t.known[tech] {
			return nil, &ErrUnknownTechnology{Name: tech}
		}
		for _, r := range reqs {
			if !t.known[r] {
				return nil, &ErrUnknownTechnology{Name: r}
			}
		}
		t.prereqs[tech] = append([]string{}, reqs...)
	}
	if cycle := t.findCycle(); cycle != nil {
		return nil, &ErrCyclicPrerequisites{Cycle: cycle}
	}
	return t, nil
}

// DefaultTree returns the standard eight-technology tree
func DefaultTree() *Tree {
	t, err := NewTree(
		[]string{Agriculture, Metallurgy, Spaceflight, FusionPower, AI, FTLCommunication, Terraforming, DysonSpheres},
		map[string][]string{
			Metallurgy:       {Agriculture},
			Spaceflight:      {Metallurgy},
			FusionPower:      {Spaceflight},
			AI:               {FusionPower},
			FTLCommunication: {AI},
			Terraforming:     {FusionPower},
			DysonSpheres:     {FusionPower, AI},
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Technologies returns the catalog in order
func (t *Tree) Technologies() []string {
	return append([]string{}, t.technologies...)
}

// Prerequisites returns the direct prerequisites of a technology
func (t *Tree) Prerequisites(name string) ([]string, error) {
	if !t.known[name] {
		return nil, &ErrUnknownTechnology{Name: name}
	}
	return append([]string{}, t.prereqs[name]...), nil
}

// IsAvailable reports whether a technology is not owned and all its prerequisites are
func (t *Tree) IsAvailable(name string, owned map[string]bool) bool {
	if !t.known[name] || owned[name] {
		return false
	}
	for _, p := range t.prereqs[name] {
		if !owned[p] {
			return false
		}
	}
	return true
}

// Available returns every researchable technology in catalog order
func (t *Tree) Available(owned map[string]bool) []string {
	var out []string
	for _, name := range t.technologies {
		if t.IsAvailable(name, owned) {
			out = append(out, name)
		}
	}
	return out
}

func (t *Tree) findCycle() []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(t.technologies))
	var path []string
	var visit func(name string) []string
	visit = func(name string) []string {
		switch state[name] {
		case visiting:
			for i, n := range path {
				if n == name {
					return append(append([]string{}, path[i:]...), name)
				}
			}
			return []string{name, name}
		case done:
			return nil
		}
		state[name] = visiting
		path = append(path, name)
		for _, p := range t.prereqs[name] {
			if cycle := visit(p); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}
	for _, name := range t.technologies {
		if cycle := visit(name); cycle != nil {
			return cycle
		}
	}
	return nil
}

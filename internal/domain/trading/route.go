package trading

import (
	"fmt"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
)

// Route volume bounds, inclusive
const (
	MinVolume = 100
	MaxVolume = 1000
)

// Route is a trade agreement between two civilizations. Routes are never
// removed; a route whose party collapsed is stale but stays in the ledger.
type Route struct {
	From     int
	To       int
	Resource galaxy.ResourceCategory
	Volume   int64
	Active   bool
	Step     int
}

// RouteView is a route plus its staleness, computed from party status at read time
type RouteView struct {
	Route
	Stale bool
}

// Ledger keeps every route ever opened, in creation order
type Ledger struct {
	routes []Route
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Open records a new route and logs it in both histories
func (l *Ledger) Open(from, to *civilization.Civilization, resource galaxy.ResourceCategory, volume int64, step int) Route {
	route := Route{
		From:     from.ID,
		To:       to.ID,
		Resource: resource,
		Volume:   volume,
		Active:   true,
		Step:     step,
	}
	l.routes = append(l.routes, route)
	from.Record(fmt.Sprintf("Started trade with Civ %d", to.ID))
	to.Record(fmt.Sprintf("Started trade with Civ %d", from.ID))
	return route
}

// Routes returns every route in creation order
func (l *Ledger) Routes() []Route {
	return append([]Route{}, l.routes...)
}

// Len returns the number of routes
func (l *Ledger) Len() int {
	return len(l.routes)
}

// View marks routes stale when either party is not alive according to isAlive
func (l *Ledger) View(isAlive func(civilizationID int) bool) []RouteView {
	out := make([]RouteView, len(l.routes))
	for i, r := range l.routes {
		out[i] = RouteView{Route: r, Stale: !isAlive(r.From) || !isAlive(r.To)}
	}
	return out
}

// ResourceFor picks the traded category from the initiator's home planet deposits
func ResourceFor(c *civilization.Civilization) galaxy.ResourceCategory {
	return c.HomePlanet.Deposits.Richest()
}

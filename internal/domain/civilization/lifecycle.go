package civilization

// LifecycleStatus represents the state of a civilization
type LifecycleStatus string

const (
	// LifecycleStatusAlive indicates the civilization grows, expands, researches, trades and fights
	LifecycleStatusAlive LifecycleStatus = "alive"

	// LifecycleStatusCollapsed is terminal: the record is frozen but kept for reporting
	LifecycleStatusCollapsed LifecycleStatus = "collapsed"
)

// Collapse reasons recorded in history
const (
	ReasonResourceDepletion = "resource depletion"
	ReasonAsteroidImpact    = "asteroid impact"
	ReasonInternalRevolt    = "internal revolt"
	ReasonDefeatedInWar     = "defeated in war"
)

// Lifecycle manages the one-way alive -> collapsed transition.
//
// Invariants:
// - there is no transition out of collapsed
// - the first collapse reason is kept even if collapse is requested again
type Lifecycle struct {
	status LifecycleStatus
	reason string
}

// NewLifecycle creates a lifecycle in the alive state
func NewLifecycle() Lifecycle {
	return Lifecycle{status: LifecycleStatusAlive}
}

// Status returns the current lifecycle status
func (l *Lifecycle) Status() LifecycleStatus {
	return l.status
}

// IsAlive returns true until the first collapse
func (l *Lifecycle) IsAlive() bool {
	return l.status == LifecycleStatusAlive
}

// Reason returns the reason of the first collapse, empty while alive
func (l *Lifecycle) Reason() string {
	return l.reason
}

// Collapse moves to collapsed. Returns false if already collapsed.
func (l *Lifecycle) Collapse(reason string) bool {
	if l.status == LifecycleStatusCollapsed {
		return false
	}
	l.status = LifecycleStatusCollapsed
	l.reason = reason
	return true
}

// RecoverFromPersistence restores lifecycle state when rebuilding from an archive
func (l *Lifecycle) RecoverFromPersistence(status LifecycleStatus, reason string) {
	l.status = status
	l.reason = reason
}

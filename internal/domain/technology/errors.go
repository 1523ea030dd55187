package technology

import (
	"fmt"
	"strings"
)

// ErrUnknownTechnology is returned when a prerequisite or lookup names a technology outside the catalog
type ErrUnknownTechnology struct {
	Name string
}

func (e *ErrUnknownTechnology) Error() string {
	return fmt.Sprintf("unknown technology: %s", e.Name)
}

// ErrCyclicPrerequisites is returned when prerequisites do not form a DAG
type ErrCyclicPrerequisites struct {
	Cycle []string
}

func (e *ErrCyclicPrerequisites) Error() string {
	return fmt.Sprintf("cyclic technology prerequisites: %s", strings.Join(e.Cycle, " -> "))
}

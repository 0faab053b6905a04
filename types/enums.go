package types

// TaskStatus is the workflow state shared by tasks, projects and phases.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "Backlog"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusBacklog, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority ranks a task. P1 is most urgent.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3:
		return true
	}
	return false
}

// Energy is the effort level a task demands.
type Energy string

const (
	EnergyHigh Energy = "High"
	EnergyLow  Energy = "Low"
)

// Valid reports whether e is one of the known energy levels.
func (e Energy) Valid() bool {
	return e == EnergyHigh || e == EnergyLow
}

// ResourceType distinguishes link resources from inline notes.
type ResourceType string

const (
	ResourceLink ResourceType = "link"
	ResourceNote ResourceType = "note"
)

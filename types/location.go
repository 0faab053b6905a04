package types

import "fmt"

// ContainerKind names one of the four legal task containers.
type ContainerKind string

const (
	ContainerInbox   ContainerKind = "inbox"
	ContainerArea    ContainerKind = "area"
	ContainerProject ContainerKind = "project"
	ContainerPhase   ContainerKind = "phase"
)

// TaskLocation addresses a single task container inside a document.
// ID names the owning area, project or phase; it is empty for the inbox.
type TaskLocation struct {
	Kind ContainerKind `json:"kind"`
	ID   string        `json:"id,omitempty"`
}

// InboxLocation addresses the document inbox.
func InboxLocation() TaskLocation {
	return TaskLocation{Kind: ContainerInbox}
}

// AreaLocation addresses an area's direct task list.
func AreaLocation(areaID string) TaskLocation {
	return TaskLocation{Kind: ContainerArea, ID: areaID}
}

// ProjectLocation addresses a project's direct task list.
func ProjectLocation(projectID string) TaskLocation {
	return TaskLocation{Kind: ContainerProject, ID: projectID}
}

// PhaseLocation addresses a phase's task list.
func PhaseLocation(phaseID string) TaskLocation {
	return TaskLocation{Kind: ContainerPhase, ID: phaseID}
}

func (l TaskLocation) String() string {
	if l.Kind == ContainerInbox {
		return "inbox"
	}
	return fmt.Sprintf("%s:%s", l.Kind, l.ID)
}

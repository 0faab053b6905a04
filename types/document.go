// Package types defines the entity shapes for the strata document tree.
// A Document exclusively owns all of its descendants: groups, areas,
// projects, phases, tasks, resources and attachments. No entity is ever
// referenced from two places; the only cross-reference is Area.GroupID,
// which is a soft reference by ID.
package types

import "time"

// Document is the full nested productivity data tree for one user.
// It is the unit of persistence for both the local cache and the
// remote store: snapshots are always read and written whole.
type Document struct {
	AreaGroups []AreaGroup `json:"areaGroups"`
	Areas      []Area      `json:"areas"`
	Inbox      []Task      `json:"inbox"`
}

// AreaGroup is a named bucket areas can opt into. Deleting a group
// never deletes its areas; they just become ungrouped.
type AreaGroup struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Area is a top-level life/work domain. GroupID may reference an
// AreaGroup by ID; a dangling GroupID is legal and treated as ungrouped.
type Area struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	GroupID     string     `json:"groupId,omitempty"`
	Labels      []string   `json:"labels"`
	Tasks       []Task     `json:"tasks"`
	Projects    []Project  `json:"projects"`
	Resources   []Resource `json:"resources"`
}

// Project belongs to exactly one Area at a time.
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	StartDate   string       `json:"startDate,omitempty"`
	EndDate     string       `json:"endDate,omitempty"`
	Labels      []string     `json:"labels"`
	Attachments []Attachment `json:"attachments"`
	Tasks       []Task       `json:"tasks"`
	Phases      []Phase      `json:"phases"`
	Resources   []Resource   `json:"resources"`
}

// Phase belongs to exactly one Project. Phases keep their declared
// order, unlike every other collection which surfaces new items first.
type Phase struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Status      TaskStatus   `json:"status"`
	Labels      []string     `json:"labels"`
	Attachments []Attachment `json:"attachments"`
	Tasks       []Task       `json:"tasks"`
}

// Task resides in exactly one location at a time: the inbox, an area's
// direct task list, a project's direct task list, or a phase's task
// list. It is never duplicated across locations.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    Priority     `json:"priority"`
	Energy      Energy       `json:"energy"`
	ContextTags []string     `json:"contextTags"`
	Labels      []string     `json:"labels"`
	Deadline    string       `json:"deadline,omitempty"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Resource is a reference item (link or note) attached to an area or
// project.
type Resource struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Type      ResourceType `json:"type"`
	URL       string       `json:"url,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Attachment is a file reference carried by a task, project or phase.
type Attachment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

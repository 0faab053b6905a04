package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/strata-app/strata/types"
)

// NewGroup returns an area group with a fresh ID.
func NewGroup(title string) types.AreaGroup {
	return types.AreaGroup{
		ID:    uuid.New().String(),
		Title: title,
	}
}

// NewArea returns an area with a fresh ID and empty collections.
// groupID may be empty for an ungrouped area.
func NewArea(title, icon, groupID string) types.Area {
	return types.Area{
		ID:        uuid.New().String(),
		Title:     title,
		Icon:      icon,
		GroupID:   groupID,
		Labels:    []string{},
		Tasks:     []types.Task{},
		Projects:  []types.Project{},
		Resources: []types.Resource{},
	}
}

// NewProject returns a project in Backlog with empty collections.
func NewProject(title string) types.Project {
	return types.Project{
		ID:          uuid.New().String(),
		Title:       title,
		Status:      types.StatusBacklog,
		Labels:      []string{},
		Attachments: []types.Attachment{},
		Tasks:       []types.Task{},
		Phases:      []types.Phase{},
		Resources:   []types.Resource{},
	}
}

// NewPhase returns a phase in Backlog with empty collections.
func NewPhase(title string) types.Phase {
	return types.Phase{
		ID:          uuid.New().String(),
		Title:       title,
		Status:      types.StatusBacklog,
		Labels:      []string{},
		Attachments: []types.Attachment{},
		Tasks:       []types.Task{},
	}
}

// NewTask returns a task with schema defaults: Backlog status, P2
// priority, Low energy, empty collections and a UTC creation timestamp.
func NewTask(title string) types.Task {
	return types.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Status:      types.StatusBacklog,
		Priority:    types.PriorityP2,
		Energy:      types.EnergyLow,
		ContextTags: []string{},
		Labels:      []string{},
		Attachments: []types.Attachment{},
		CreatedAt:   time.Now().UTC(),
	}
}

// NewResource returns a resource with a fresh ID and creation timestamp.
func NewResource(title, content string, typ types.ResourceType, url string) types.Resource {
	return types.Resource{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Type:      typ,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	}
}

// NewAttachment returns an attachment with a fresh ID and creation timestamp.
func NewAttachment(name, url, typ string, size int64) types.Attachment {
	return types.Attachment{
		ID:        uuid.New().String(),
		Name:      name,
		URL:       url,
		Type:      typ,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
}

// Package testutil provides a deterministic test universe: a fully
// populated document exercising every container kind, shared by tests
// across packages.
package testutil

import (
	"time"

	"github.com/strata-app/strata/types"
)

// Universe names every entity in the fixture document so tests can
// address them without hunting through the tree.
type Universe struct {
	// Groups
	LifeGroup types.AreaGroup // referenced by Health and Finances
	WorkGroup types.AreaGroup // referenced by Engineering

	// Areas
	Health      types.Area // grouped under LifeGroup, has direct tasks
	Finances    types.Area // grouped under LifeGroup
	Engineering types.Area // grouped under WorkGroup, has projects
	Hobby       types.Area // ungrouped

	// Projects
	GetFit  types.Project // under Health
	Rewrite types.Project // under Engineering, has phases

	// Phases
	DesignPhase types.Phase // under Rewrite
	BuildPhase  types.Phase // under Rewrite, has a task

	// Tasks, one per container kind
	InboxTask   types.Task // in the inbox
	AreaTask    types.Task // direct under Health
	ProjectTask types.Task // direct under Rewrite
	PhaseTask   types.Task // under BuildPhase
}

// fixtureTime keeps creation timestamps deterministic.
var fixtureTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func fixtureTask(id, title string, status types.TaskStatus) types.Task {
	return types.Task{
		ID:          id,
		Title:       title,
		Status:      status,
		Priority:    types.PriorityP2,
		Energy:      types.EnergyLow,
		ContextTags: []string{},
		Labels:      []string{},
		Attachments: []types.Attachment{},
		CreatedAt:   fixtureTime,
	}
}

// BuildUniverse returns the fixture document and its named entities.
// The document is already normalized and passes validation.
func BuildUniverse() (types.Document, Universe) {
	u := Universe{
		LifeGroup: types.AreaGroup{ID: "group-life", Title: "Life"},
		WorkGroup: types.AreaGroup{ID: "group-work", Title: "Work"},

		InboxTask:   fixtureTask("task-inbox", "Sort mail", types.StatusBacklog),
		AreaTask:    fixtureTask("task-area", "Book dentist", types.StatusInProgress),
		ProjectTask: fixtureTask("task-project", "Write migration plan", types.StatusBacklog),
		PhaseTask:   fixtureTask("task-phase", "Wire up storage layer", types.StatusDone),
	}

	u.DesignPhase = types.Phase{
		ID:          "phase-design",
		Title:       "Design",
		Status:      types.StatusDone,
		Labels:      []string{},
		Attachments: []types.Attachment{},
		Tasks:       []types.Task{},
	}
	u.BuildPhase = types.Phase{
		ID:          "phase-build",
		Title:       "Build",
		Status:      types.StatusInProgress,
		Labels:      []string{},
		Attachments: []types.Attachment{},
		Tasks:       []types.Task{u.PhaseTask},
	}

	u.GetFit = types.Project{
		ID:          "project-getfit",
		Title:       "Get fit",
		Status:      types.StatusInProgress,
		Labels:      []string{"health"},
		Attachments: []types.Attachment{},
		Tasks:       []types.Task{},
		Phases:      []types.Phase{},
		Resources:   []types.Resource{},
	}
	u.Rewrite = types.Project{
		ID:          "project-rewrite",
		Title:       "Storage rewrite",
		Status:      types.StatusInProgress,
		Labels:      []string{},
		Attachments: []types.Attachment{},
		Tasks:       []types.Task{u.ProjectTask},
		Phases:      []types.Phase{u.DesignPhase, u.BuildPhase},
		Resources:   []types.Resource{},
	}

	u.Health = types.Area{
		ID:        "area-health",
		Title:     "Health",
		Icon:      "heart",
		GroupID:   u.LifeGroup.ID,
		Labels:    []string{},
		Tasks:     []types.Task{u.AreaTask},
		Projects:  []types.Project{u.GetFit},
		Resources: []types.Resource{},
	}
	u.Finances = types.Area{
		ID:      "area-finances",
		Title:   "Finances",
		Icon:    "bank",
		GroupID: u.LifeGroup.ID,
		Labels:  []string{},
		Tasks:   []types.Task{},
		Projects: []types.Project{},
		Resources: []types.Resource{
			{
				ID:        "resource-budget",
				Title:     "Budget sheet",
				Type:      types.ResourceLink,
				URL:       "https://example.com/budget",
				CreatedAt: fixtureTime,
			},
		},
	}
	u.Engineering = types.Area{
		ID:        "area-engineering",
		Title:     "Engineering",
		Icon:      "wrench",
		GroupID:   u.WorkGroup.ID,
		Labels:    []string{"work"},
		Tasks:     []types.Task{},
		Projects:  []types.Project{u.Rewrite},
		Resources: []types.Resource{},
	}
	u.Hobby = types.Area{
		ID:        "area-hobby",
		Title:     "Hobby",
		Icon:      "guitar",
		Labels:    []string{},
		Tasks:     []types.Task{},
		Projects:  []types.Project{},
		Resources: []types.Resource{},
	}

	doc := types.Document{
		AreaGroups: []types.AreaGroup{u.LifeGroup, u.WorkGroup},
		Areas:      []types.Area{u.Health, u.Finances, u.Engineering, u.Hobby},
		Inbox:      []types.Task{u.InboxTask},
	}
	return doc, u
}

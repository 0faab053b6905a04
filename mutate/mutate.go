// Package mutate implements the transformation operations over the
// document tree. Every operation clones the input document, applies the
// intent to the clone, and returns it; the caller's document is never
// touched. Operations preserve the structural invariants: a task lives
// in exactly one container, a project in exactly one area, a phase in
// exactly one project.
//
// New items are inserted at the front of their target collection so
// they surface first; phases are the exception and append, preserving
// declared order.
package mutate

import (
	"fmt"

	"github.com/strata-app/strata/types"
)

// findArea returns a pointer into doc's area list, or nil.
func findArea(doc *types.Document, id string) *types.Area {
	for i := range doc.Areas {
		if doc.Areas[i].ID == id {
			return &doc.Areas[i]
		}
	}
	return nil
}

// findProject returns a pointer to the project and its owning area, or
// nils when absent.
func findProject(doc *types.Document, id string) (*types.Area, *types.Project) {
	for i := range doc.Areas {
		for j := range doc.Areas[i].Projects {
			if doc.Areas[i].Projects[j].ID == id {
				return &doc.Areas[i], &doc.Areas[i].Projects[j]
			}
		}
	}
	return nil, nil
}

// findPhase returns a pointer to the phase and its owning project, or
// nils when absent.
func findPhase(doc *types.Document, id string) (*types.Project, *types.Phase) {
	for i := range doc.Areas {
		for j := range doc.Areas[i].Projects {
			p := &doc.Areas[i].Projects[j]
			for k := range p.Phases {
				if p.Phases[k].ID == id {
					return p, &p.Phases[k]
				}
			}
		}
	}
	return nil, nil
}

// taskList resolves a location to the task slice it addresses.
func taskList(doc *types.Document, loc types.TaskLocation) (*[]types.Task, error) {
	switch loc.Kind {
	case types.ContainerInbox:
		return &doc.Inbox, nil
	case types.ContainerArea:
		if a := findArea(doc, loc.ID); a != nil {
			return &a.Tasks, nil
		}
		return nil, fmt.Errorf("area %q not found", loc.ID)
	case types.ContainerProject:
		if _, p := findProject(doc, loc.ID); p != nil {
			return &p.Tasks, nil
		}
		return nil, fmt.Errorf("project %q not found", loc.ID)
	case types.ContainerPhase:
		if _, ph := findPhase(doc, loc.ID); ph != nil {
			return &ph.Tasks, nil
		}
		return nil, fmt.Errorf("phase %q not found", loc.ID)
	default:
		return nil, fmt.Errorf("unknown container kind %q", loc.Kind)
	}
}

// allTaskLists yields every task container in the document. The caller
// may not know where a task currently lives, so search and delete
// operations walk all of them.
func allTaskLists(doc *types.Document) []*[]types.Task {
	lists := []*[]types.Task{&doc.Inbox}
	for i := range doc.Areas {
		a := &doc.Areas[i]
		lists = append(lists, &a.Tasks)
		for j := range a.Projects {
			p := &a.Projects[j]
			lists = append(lists, &p.Tasks)
			for k := range p.Phases {
				lists = append(lists, &p.Phases[k].Tasks)
			}
		}
	}
	return lists
}

// findTaskAnywhere returns a pointer to the task wherever it lives.
func findTaskAnywhere(doc *types.Document, id string) *types.Task {
	for _, list := range allTaskLists(doc) {
		for i := range *list {
			if (*list)[i].ID == id {
				return &(*list)[i]
			}
		}
	}
	return nil
}

// removeTaskAnywhere splices the task out of whichever container holds
// it and returns it.
func removeTaskAnywhere(doc *types.Document, id string) (types.Task, bool) {
	for _, list := range allTaskLists(doc) {
		for i := range *list {
			if (*list)[i].ID == id {
				t := (*list)[i]
				*list = append((*list)[:i], (*list)[i+1:]...)
				return t, true
			}
		}
	}
	return types.Task{}, false
}

// prependTask inserts t at the front of list.
func prependTask(list *[]types.Task, t types.Task) {
	*list = append([]types.Task{t}, *list...)
}

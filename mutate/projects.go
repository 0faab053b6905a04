package mutate

import (
	"fmt"

	"github.com/strata-app/strata/schema"
	"github.com/strata-app/strata/types"
)

// CreateProject adds a new project at the front of the area's project
// list.
func CreateProject(doc types.Document, title, areaID string) (types.Document, types.Project, error) {
	out := doc.Clone()
	a := findArea(&out, areaID)
	if a == nil {
		return types.Document{}, types.Project{}, fmt.Errorf("area %q not found", areaID)
	}
	p := schema.NewProject(title)
	a.Projects = append([]types.Project{p}, a.Projects...)
	return out, p, nil
}

// UpdateProject replaces the project with a matching ID wholesale,
// wherever it lives.
func UpdateProject(doc types.Document, project types.Project) (types.Document, error) {
	out := doc.Clone()
	_, p := findProject(&out, project.ID)
	if p == nil {
		return types.Document{}, fmt.Errorf("project %q not found", project.ID)
	}
	*p = project
	return out, nil
}

// DeleteProject removes the project from its owning area. Removing an
// unknown ID is a no-op.
func DeleteProject(doc types.Document, id string) types.Document {
	out := doc.Clone()
	for i := range out.Areas {
		a := &out.Areas[i]
		for j := range a.Projects {
			if a.Projects[j].ID == id {
				a.Projects = append(a.Projects[:j], a.Projects[j+1:]...)
				return out
			}
		}
	}
	return out
}

// MoveProject removes the project from its current area and inserts it
// at the front of the target area's project list, keeping the one-parent
// invariant.
func MoveProject(doc types.Document, projectID, targetAreaID string) (types.Document, error) {
	out := doc.Clone()
	if findArea(&out, targetAreaID) == nil {
		return types.Document{}, fmt.Errorf("area %q not found", targetAreaID)
	}

	var moved *types.Project
	for i := range out.Areas {
		a := &out.Areas[i]
		for j := range a.Projects {
			if a.Projects[j].ID == projectID {
				p := a.Projects[j]
				a.Projects = append(a.Projects[:j], a.Projects[j+1:]...)
				moved = &p
				break
			}
		}
		if moved != nil {
			break
		}
	}
	if moved == nil {
		return types.Document{}, fmt.Errorf("project %q not found", projectID)
	}

	// Resolve the target after the removal: the pointer from before
	// the splice may be stale.
	target := findArea(&out, targetAreaID)
	target.Projects = append([]types.Project{*moved}, target.Projects...)
	return out, nil
}

// CreatePhase appends a new phase to the project's phase list. Phases
// keep declared order instead of surfacing first.
func CreatePhase(doc types.Document, title, projectID string) (types.Document, types.Phase, error) {
	out := doc.Clone()
	_, p := findProject(&out, projectID)
	if p == nil {
		return types.Document{}, types.Phase{}, fmt.Errorf("project %q not found", projectID)
	}
	ph := schema.NewPhase(title)
	p.Phases = append(p.Phases, ph)
	return out, ph, nil
}

// UpdatePhase replaces the phase with a matching ID wholesale.
func UpdatePhase(doc types.Document, phase types.Phase) (types.Document, error) {
	out := doc.Clone()
	_, ph := findPhase(&out, phase.ID)
	if ph == nil {
		return types.Document{}, fmt.Errorf("phase %q not found", phase.ID)
	}
	*ph = phase
	return out, nil
}

// DeletePhase removes the phase from its owning project. Removing an
// unknown ID is a no-op.
func DeletePhase(doc types.Document, id string) types.Document {
	out := doc.Clone()
	for i := range out.Areas {
		for j := range out.Areas[i].Projects {
			p := &out.Areas[i].Projects[j]
			for k := range p.Phases {
				if p.Phases[k].ID == id {
					p.Phases = append(p.Phases[:k], p.Phases[k+1:]...)
					return out
				}
			}
		}
	}
	return out
}

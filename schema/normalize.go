// Package schema repairs arbitrary or partial input into a structurally
// valid document and provides constructors that apply schema defaults.
// Input may come from an older schema version of the cache file or from
// the remote store; Normalize fills every missing collection with an
// empty default so downstream code never deals with nil slices.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/strata-app/strata/types"
)

// Normalize returns a structurally valid copy of doc. It is idempotent:
// normalizing an already-normalized document yields an identical document.
func Normalize(doc types.Document) types.Document {
	out := doc.Clone()

	if out.AreaGroups == nil {
		out.AreaGroups = []types.AreaGroup{}
	}

	if out.Inbox == nil {
		out.Inbox = []types.Task{}
	}
	for i := range out.Inbox {
		out.Inbox[i] = normalizeTask(out.Inbox[i])
	}

	if out.Areas == nil {
		out.Areas = []types.Area{}
	}
	for i := range out.Areas {
		out.Areas[i] = normalizeArea(out.Areas[i])
	}

	return out
}

// Decode parses loose JSON into a normalized document. It is the single
// entry point for bytes coming back from the cache or the remote store.
func Decode(data []byte) (types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("failed to parse document: %w", err)
	}
	return Normalize(doc), nil
}

func normalizeArea(a types.Area) types.Area {
	if a.Labels == nil {
		a.Labels = []string{}
	}
	if a.Tasks == nil {
		a.Tasks = []types.Task{}
	}
	for i := range a.Tasks {
		a.Tasks[i] = normalizeTask(a.Tasks[i])
	}
	if a.Projects == nil {
		a.Projects = []types.Project{}
	}
	for i := range a.Projects {
		a.Projects[i] = normalizeProject(a.Projects[i])
	}
	if a.Resources == nil {
		a.Resources = []types.Resource{}
	}
	return a
}

func normalizeProject(p types.Project) types.Project {
	if !p.Status.Valid() {
		p.Status = types.StatusBacklog
	}
	if p.Labels == nil {
		p.Labels = []string{}
	}
	if p.Attachments == nil {
		p.Attachments = []types.Attachment{}
	}
	if p.Tasks == nil {
		p.Tasks = []types.Task{}
	}
	for i := range p.Tasks {
		p.Tasks[i] = normalizeTask(p.Tasks[i])
	}
	if p.Phases == nil {
		p.Phases = []types.Phase{}
	}
	for i := range p.Phases {
		p.Phases[i] = normalizePhase(p.Phases[i])
	}
	if p.Resources == nil {
		p.Resources = []types.Resource{}
	}
	return p
}

func normalizePhase(ph types.Phase) types.Phase {
	if !ph.Status.Valid() {
		ph.Status = types.StatusBacklog
	}
	if ph.Labels == nil {
		ph.Labels = []string{}
	}
	if ph.Attachments == nil {
		ph.Attachments = []types.Attachment{}
	}
	if ph.Tasks == nil {
		ph.Tasks = []types.Task{}
	}
	for i := range ph.Tasks {
		ph.Tasks[i] = normalizeTask(ph.Tasks[i])
	}
	return ph
}

func normalizeTask(t types.Task) types.Task {
	if !t.Status.Valid() {
		t.Status = types.StatusBacklog
	}
	if !t.Priority.Valid() {
		t.Priority = types.PriorityP2
	}
	if !t.Energy.Valid() {
		t.Energy = types.EnergyLow
	}
	if t.ContextTags == nil {
		t.ContextTags = []string{}
	}
	if t.Labels == nil {
		t.Labels = []string{}
	}
	if t.Attachments == nil {
		t.Attachments = []types.Attachment{}
	}
	return t
}

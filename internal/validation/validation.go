// Package validation checks the structural invariants of a document:
// unique identifiers per collection, legal enum values, and the
// one-location rule for tasks. A dangling area group reference is legal
// (the area is simply treated as ungrouped) and is not reported.
package validation

import (
	"fmt"

	"github.com/strata-app/strata/types"
)

// ValidateDocument reports the first invariant violation found, or nil.
func ValidateDocument(doc types.Document) error {
	groupIDs := make(map[string]bool, len(doc.AreaGroups))
	for _, g := range doc.AreaGroups {
		if g.ID == "" {
			return fmt.Errorf("group %q has no ID", g.Title)
		}
		if groupIDs[g.ID] {
			return fmt.Errorf("duplicate group ID %q", g.ID)
		}
		groupIDs[g.ID] = true
	}

	areaIDs := make(map[string]bool, len(doc.Areas))
	projectIDs := make(map[string]bool)
	phaseIDs := make(map[string]bool)
	taskIDs := make(map[string]int)

	countTasks := func(tasks []types.Task) error {
		for _, t := range tasks {
			if t.ID == "" {
				return fmt.Errorf("task %q has no ID", t.Title)
			}
			if !t.Status.Valid() {
				return fmt.Errorf("task %q has invalid status %q", t.ID, t.Status)
			}
			if !t.Priority.Valid() {
				return fmt.Errorf("task %q has invalid priority %q", t.ID, t.Priority)
			}
			if !t.Energy.Valid() {
				return fmt.Errorf("task %q has invalid energy %q", t.ID, t.Energy)
			}
			taskIDs[t.ID]++
		}
		return nil
	}

	if err := countTasks(doc.Inbox); err != nil {
		return err
	}

	for _, a := range doc.Areas {
		if a.ID == "" {
			return fmt.Errorf("area %q has no ID", a.Title)
		}
		if areaIDs[a.ID] {
			return fmt.Errorf("duplicate area ID %q", a.ID)
		}
		areaIDs[a.ID] = true
		if err := countTasks(a.Tasks); err != nil {
			return err
		}

		for _, p := range a.Projects {
			if p.ID == "" {
				return fmt.Errorf("project %q has no ID", p.Title)
			}
			if projectIDs[p.ID] {
				return fmt.Errorf("duplicate project ID %q", p.ID)
			}
			projectIDs[p.ID] = true
			if !p.Status.Valid() {
				return fmt.Errorf("project %q has invalid status %q", p.ID, p.Status)
			}
			if err := countTasks(p.Tasks); err != nil {
				return err
			}

			for _, ph := range p.Phases {
				if ph.ID == "" {
					return fmt.Errorf("phase %q has no ID", ph.Title)
				}
				if phaseIDs[ph.ID] {
					return fmt.Errorf("duplicate phase ID %q", ph.ID)
				}
				phaseIDs[ph.ID] = true
				if !ph.Status.Valid() {
					return fmt.Errorf("phase %q has invalid status %q", ph.ID, ph.Status)
				}
				if err := countTasks(ph.Tasks); err != nil {
					return err
				}
			}
		}
	}

	for id, n := range taskIDs {
		if n > 1 {
			return fmt.Errorf("task %q appears in %d locations", id, n)
		}
	}
	return nil
}

// TaskOccurrences counts how many containers hold a task with the given
// ID. A consistent document yields 0 or 1.
func TaskOccurrences(doc types.Document, id string) int {
	n := 0
	count := func(tasks []types.Task) {
		for _, t := range tasks {
			if t.ID == id {
				n++
			}
		}
	}
	count(doc.Inbox)
	for _, a := range doc.Areas {
		count(a.Tasks)
		for _, p := range a.Projects {
			count(p.Tasks)
			for _, ph := range p.Phases {
				count(ph.Tasks)
			}
		}
	}
	return n
}

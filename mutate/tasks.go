package mutate

import (
	"fmt"

	"github.com/strata-app/strata/schema"
	"github.com/strata-app/strata/types"
)

// CreateTask adds a new task with schema defaults at the front of the
// target container.
func CreateTask(doc types.Document, title string, loc types.TaskLocation) (types.Document, types.Task, error) {
	out := doc.Clone()
	list, err := taskList(&out, loc)
	if err != nil {
		return types.Document{}, types.Task{}, err
	}
	t := schema.NewTask(title)
	prependTask(list, t)
	return out, t, nil
}

// UpdateTask replaces the task with a matching ID wholesale, wherever it
// currently lives. The task stays in place; only its fields change.
func UpdateTask(doc types.Document, task types.Task) (types.Document, error) {
	out := doc.Clone()
	t := findTaskAnywhere(&out, task.ID)
	if t == nil {
		return types.Document{}, fmt.Errorf("task %q not found", task.ID)
	}
	*t = task
	return out, nil
}

// DeleteTask removes the task by ID. The caller may not know where the
// task lives, so every container is searched: the inbox, each area's
// direct list, each project's direct list, and each phase's list.
// Removing an unknown ID is a no-op.
func DeleteTask(doc types.Document, id string) types.Document {
	out := doc.Clone()
	_, _ = removeTaskAnywhere(&out, id)
	return out
}

// MoveTask removes the task from whichever container currently holds it
// and inserts it at the front of the target container. The origin is
// found by search, never supplied by the caller. Moving a task that
// does not exist is a no-op.
func MoveTask(doc types.Document, taskID string, loc types.TaskLocation) (types.Document, error) {
	out := doc.Clone()

	// Validate the target before removal so a bad destination cannot
	// drop the task.
	if _, err := taskList(&out, loc); err != nil {
		return types.Document{}, err
	}

	t, ok := removeTaskAnywhere(&out, taskID)
	if !ok {
		return out, nil
	}

	// Re-resolve after the splice; the earlier pointer may be stale.
	list, err := taskList(&out, loc)
	if err != nil {
		return types.Document{}, err
	}
	prependTask(list, t)
	return out, nil
}

// ToggleTaskStatus flips a task between Done and In Progress wherever
// it is found. A done task reopens as In Progress, never Backlog; any
// other status completes to Done. Unknown IDs are a no-op.
func ToggleTaskStatus(doc types.Document, taskID string) types.Document {
	out := doc.Clone()
	t := findTaskAnywhere(&out, taskID)
	if t == nil {
		return out
	}
	if t.Status == types.StatusDone {
		t.Status = types.StatusInProgress
	} else {
		t.Status = types.StatusDone
	}
	return out
}

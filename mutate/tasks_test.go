package mutate_test

import (
	"testing"

	"github.com/strata-app/strata/internal/validation"
	"github.com/strata-app/strata/mutate"
	"github.com/strata-app/strata/testutil"
	"github.com/strata-app/strata/types"
)

func TestCreateTask(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	t.Run("prepends to the inbox with defaults", func(t *testing.T) {
		got, task, err := mutate.CreateTask(doc, "Buy milk", types.InboxLocation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Inbox[0].ID != task.ID {
			t.Error("new task is not first in the inbox")
		}
		if task.Status != types.StatusBacklog || task.Priority != types.PriorityP2 || task.Energy != types.EnergyLow {
			t.Errorf("defaults wrong: %q/%q/%q", task.Status, task.Priority, task.Energy)
		}
		if task.CreatedAt.IsZero() {
			t.Error("createdAt not set")
		}
		if len(got.Inbox) != len(doc.Inbox)+1 {
			t.Errorf("inbox length = %d, want %d", len(got.Inbox), len(doc.Inbox)+1)
		}
	})

	t.Run("prepends to every container kind", func(t *testing.T) {
		locs := map[string]types.TaskLocation{
			"area":    types.AreaLocation(u.Health.ID),
			"project": types.ProjectLocation(u.Rewrite.ID),
			"phase":   types.PhaseLocation(u.BuildPhase.ID),
		}
		for name, loc := range locs {
			t.Run(name, func(t *testing.T) {
				got, task, err := mutate.CreateTask(doc, "New in "+name, loc)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if n := validation.TaskOccurrences(got, task.ID); n != 1 {
					t.Errorf("task occurs %d times, want 1", n)
				}
				if err := validation.ValidateDocument(got); err != nil {
					t.Errorf("document inconsistent after create: %v", err)
				}
			})
		}
	})

	t.Run("unknown container errors", func(t *testing.T) {
		if _, _, err := mutate.CreateTask(doc, "Lost", types.AreaLocation("no-such-area")); err == nil {
			t.Error("expected error for unknown area")
		}
	})

	t.Run("input document is untouched", func(t *testing.T) {
		before := len(doc.Inbox)
		_, _, _ = mutate.CreateTask(doc, "Mutation check", types.InboxLocation())
		if len(doc.Inbox) != before {
			t.Error("input document was mutated")
		}
	})
}

func TestUpdateTask(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	t.Run("replaces fields in place", func(t *testing.T) {
		edited := u.PhaseTask
		edited.Title = "Wire up the new storage layer"
		edited.Priority = types.PriorityP1

		got, err := mutate.UpdateTask(doc, edited)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		phase := got.Areas[2].Projects[0].Phases[1]
		if phase.Tasks[0].Title != edited.Title {
			t.Errorf("title = %q, want %q", phase.Tasks[0].Title, edited.Title)
		}
		if phase.Tasks[0].Priority != types.PriorityP1 {
			t.Errorf("priority = %q, want P1", phase.Tasks[0].Priority)
		}
		if n := validation.TaskOccurrences(got, edited.ID); n != 1 {
			t.Errorf("task occurs %d times, want 1", n)
		}
	})

	t.Run("unknown task errors", func(t *testing.T) {
		if _, err := mutate.UpdateTask(doc, types.Task{ID: "no-such-task"}); err == nil {
			t.Error("expected error for unknown task")
		}
	})
}

func TestDeleteTask(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	for name, id := range map[string]string{
		"inbox":   u.InboxTask.ID,
		"area":    u.AreaTask.ID,
		"project": u.ProjectTask.ID,
		"phase":   u.PhaseTask.ID,
	} {
		t.Run("removes from "+name, func(t *testing.T) {
			got := mutate.DeleteTask(doc, id)
			if n := validation.TaskOccurrences(got, id); n != 0 {
				t.Errorf("task still occurs %d times", n)
			}
		})
	}

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := mutate.DeleteTask(doc, "no-such-task")
		if len(got.Inbox) != len(doc.Inbox) {
			t.Error("inbox changed for unknown delete")
		}
	})
}

func TestMoveTask(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	t.Run("inbox to phase", func(t *testing.T) {
		got, err := mutate.MoveTask(doc, u.InboxTask.ID, types.PhaseLocation(u.BuildPhase.ID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Inbox) != 0 {
			t.Error("task still in the inbox")
		}
		phase := got.Areas[2].Projects[0].Phases[1]
		if phase.Tasks[0].ID != u.InboxTask.ID {
			t.Error("task not first in the target phase")
		}
		if n := validation.TaskOccurrences(got, u.InboxTask.ID); n != 1 {
			t.Errorf("task occurs %d times, want 1", n)
		}
	})

	t.Run("phase to inbox", func(t *testing.T) {
		got, err := mutate.MoveTask(doc, u.PhaseTask.ID, types.InboxLocation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Inbox[0].ID != u.PhaseTask.ID {
			t.Error("task not first in the inbox")
		}
		if n := validation.TaskOccurrences(got, u.PhaseTask.ID); n != 1 {
			t.Errorf("task occurs %d times, want 1", n)
		}
	})

	t.Run("bad target keeps the task in place", func(t *testing.T) {
		_, err := mutate.MoveTask(doc, u.InboxTask.ID, types.AreaLocation("no-such-area"))
		if err == nil {
			t.Fatal("expected error for unknown target")
		}
		// Source document still holds the task.
		if n := validation.TaskOccurrences(doc, u.InboxTask.ID); n != 1 {
			t.Errorf("source task occurs %d times, want 1", n)
		}
	})

	t.Run("unknown task is a no-op", func(t *testing.T) {
		got, err := mutate.MoveTask(doc, "no-such-task", types.InboxLocation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Inbox) != len(doc.Inbox) {
			t.Error("inbox changed for unknown move")
		}
	})
}

func TestToggleTaskStatus(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	t.Run("backlog completes to done", func(t *testing.T) {
		got := mutate.ToggleTaskStatus(doc, u.InboxTask.ID)
		if got.Inbox[0].Status != types.StatusDone {
			t.Errorf("status = %q, want Done", got.Inbox[0].Status)
		}
	})

	t.Run("done reopens as in progress", func(t *testing.T) {
		once := mutate.ToggleTaskStatus(doc, u.InboxTask.ID)
		twice := mutate.ToggleTaskStatus(once, u.InboxTask.ID)
		if twice.Inbox[0].Status != types.StatusInProgress {
			t.Errorf("status = %q, want In Progress", twice.Inbox[0].Status)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		got := mutate.ToggleTaskStatus(doc, "no-such-task")
		if got.Inbox[0].Status != doc.Inbox[0].Status {
			t.Error("status changed for unknown toggle")
		}
	})
}

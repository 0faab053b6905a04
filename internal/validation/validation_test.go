package validation_test

import (
	"strings"
	"testing"

	"github.com/strata-app/strata/internal/validation"
	"github.com/strata-app/strata/testutil"
	"github.com/strata-app/strata/types"
)

func TestValidateDocument(t *testing.T) {
	t.Run("fixture document is consistent", func(t *testing.T) {
		doc, _ := testutil.BuildUniverse()
		if err := validation.ValidateDocument(doc); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty document is consistent", func(t *testing.T) {
		if err := validation.ValidateDocument(types.Document{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate area IDs", func(t *testing.T) {
		doc, u := testutil.BuildUniverse()
		doc.Areas = append(doc.Areas, u.Health)
		expectError(t, doc, "duplicate area")
	})

	t.Run("duplicate group IDs", func(t *testing.T) {
		doc, u := testutil.BuildUniverse()
		doc.AreaGroups = append(doc.AreaGroups, u.LifeGroup)
		expectError(t, doc, "duplicate group")
	})

	t.Run("task in two locations", func(t *testing.T) {
		doc, u := testutil.BuildUniverse()
		doc.Inbox = append(doc.Inbox, u.AreaTask)
		expectError(t, doc, "locations")
	})

	t.Run("invalid task status", func(t *testing.T) {
		doc, _ := testutil.BuildUniverse()
		doc.Inbox[0].Status = "Cancelled"
		expectError(t, doc, "invalid status")
	})

	t.Run("invalid priority", func(t *testing.T) {
		doc, _ := testutil.BuildUniverse()
		doc.Inbox[0].Priority = "P9"
		expectError(t, doc, "invalid priority")
	})

	t.Run("missing task ID", func(t *testing.T) {
		doc, _ := testutil.BuildUniverse()
		doc.Inbox[0].ID = ""
		expectError(t, doc, "no ID")
	})

	t.Run("dangling group reference is tolerated", func(t *testing.T) {
		doc, _ := testutil.BuildUniverse()
		doc.Areas[0].GroupID = "gone"
		if err := validation.ValidateDocument(doc); err != nil {
			t.Errorf("dangling group reference should be legal: %v", err)
		}
	})
}

func expectError(t *testing.T, doc types.Document, substr string) {
	t.Helper()
	err := validation.ValidateDocument(doc)
	if err == nil {
		t.Fatalf("expected an error containing %q", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error %q does not mention %q", err, substr)
	}
}

func TestTaskOccurrences(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	for _, id := range []string{u.InboxTask.ID, u.AreaTask.ID, u.ProjectTask.ID, u.PhaseTask.ID} {
		if n := validation.TaskOccurrences(doc, id); n != 1 {
			t.Errorf("task %s occurs %d times, want 1", id, n)
		}
	}
	if n := validation.TaskOccurrences(doc, "no-such-task"); n != 0 {
		t.Errorf("unknown task occurs %d times, want 0", n)
	}

	doc.Inbox = append(doc.Inbox, u.PhaseTask)
	if n := validation.TaskOccurrences(doc, u.PhaseTask.ID); n != 2 {
		t.Errorf("duplicated task occurs %d times, want 2", n)
	}
}

package search_test

import (
	"testing"

	"github.com/strata-app/strata/mutate"
	"github.com/strata-app/strata/search"
	"github.com/strata-app/strata/testutil"
	"github.com/strata-app/strata/types"
)

func TestTasks(t *testing.T) {
	doc, u := testutil.BuildUniverse()

	t.Run("empty query returns nothing", func(t *testing.T) {
		if got := search.Tasks(doc, search.Options{}); len(got) != 0 {
			t.Errorf("got %d results for empty query", len(got))
		}
	})

	t.Run("finds a task anywhere in the tree", func(t *testing.T) {
		got := search.Tasks(doc, search.Options{Query: "storage layer"})
		if len(got) != 1 {
			t.Fatalf("got %d results, want 1", len(got))
		}
		if got[0].Task.ID != u.PhaseTask.ID {
			t.Errorf("matched %q, want %q", got[0].Task.ID, u.PhaseTask.ID)
		}
		if got[0].Location.Kind != types.ContainerPhase {
			t.Errorf("location kind = %v, want phase", got[0].Location.Kind)
		}
		if want := "Engineering / Storage rewrite / Build"; got[0].Path != want {
			t.Errorf("path = %q, want %q", got[0].Path, want)
		}
	})

	t.Run("case-insensitive by default", func(t *testing.T) {
		got := search.Tasks(doc, search.Options{Query: "SORT MAIL"})
		if len(got) != 1 || got[0].Task.ID != u.InboxTask.ID {
			t.Fatalf("unexpected results: %+v", got)
		}
	})

	t.Run("case-sensitive when asked", func(t *testing.T) {
		got := search.Tasks(doc, search.Options{Query: "SORT MAIL", CaseSensitive: true})
		if len(got) != 0 {
			t.Errorf("got %d results for case-sensitive mismatch", len(got))
		}
	})

	t.Run("whole-title match outranks partial", func(t *testing.T) {
		base, _, err := mutate.CreateTask(doc, "plan", types.InboxLocation())
		if err != nil {
			t.Fatal(err)
		}
		got := search.Tasks(base, search.Options{Query: "plan"})
		if len(got) < 2 {
			t.Fatalf("got %d results, want at least 2", len(got))
		}
		// "plan" (exact) beats "Write migration plan" (substring).
		if got[0].Task.Title != "plan" {
			t.Errorf("top result = %q, want the exact match", got[0].Task.Title)
		}
		if got[0].MatchType != search.MatchExactTitle {
			t.Errorf("match type = %q, want exact_title", got[0].MatchType)
		}
	})

	t.Run("exact match mode drops substrings", func(t *testing.T) {
		got := search.Tasks(doc, search.Options{Query: "plan", ExactMatch: true})
		if len(got) != 0 {
			t.Errorf("got %d results in exact mode, want 0", len(got))
		}
	})

	t.Run("max results caps the list", func(t *testing.T) {
		one := 1
		got := search.Tasks(doc, search.Options{Query: "a", MaxResults: &one})
		if len(got) > 1 {
			t.Errorf("got %d results, want at most 1", len(got))
		}
	})

	t.Run("restricting fields skips others", func(t *testing.T) {
		got := search.Tasks(doc, search.Options{
			Query:  "storage layer",
			Fields: []string{"description"},
		})
		if len(got) != 0 {
			t.Errorf("title-only match leaked through a description search: %+v", got)
		}
	})
}

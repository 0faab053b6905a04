package formats_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/strata-app/strata/formats"
	"github.com/strata-app/strata/schema"
	"github.com/strata-app/strata/testutil"
	"github.com/strata-app/strata/types"
)

func TestRegistry(t *testing.T) {
	t.Run("built-in formats are registered", func(t *testing.T) {
		names := formats.List()
		for _, want := range []string{"json", "markdown", "yaml"} {
			found := false
			for _, n := range names {
				if n == want {
					found = true
				}
			}
			if !found {
				t.Errorf("format %q not registered (have %v)", want, names)
			}
		}
	})

	t.Run("unknown format errors", func(t *testing.T) {
		if _, err := formats.Get("xml"); err == nil {
			t.Error("expected error for unknown format")
		}
		if _, err := formats.Export(testutilDoc(t), "xml"); err == nil {
			t.Error("expected export error for unknown format")
		}
	})

	t.Run("extensions carry the dot", func(t *testing.T) {
		f, err := formats.Get("markdown")
		if err != nil {
			t.Fatal(err)
		}
		if f.Extension != ".md" {
			t.Errorf("extension = %q, want .md", f.Extension)
		}
	})
}

func TestJSONExportRoundTrips(t *testing.T) {
	doc := testutilDoc(t)

	data, err := formats.Export(doc, "json")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	// The JSON dump is the document wire format, so it decodes back.
	got, err := schema.Decode(data)
	if err != nil {
		t.Fatalf("exported JSON does not decode: %v", err)
	}
	if len(got.Areas) != len(doc.Areas) {
		t.Errorf("got %d areas after round trip, want %d", len(got.Areas), len(doc.Areas))
	}
	if got.Inbox[0].ID != doc.Inbox[0].ID {
		t.Error("inbox lost in round trip")
	}
}

func TestYAMLExportParses(t *testing.T) {
	doc := testutilDoc(t)

	data, err := formats.Export(doc, "yaml")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("exported YAML does not parse: %v", err)
	}
	if _, ok := parsed["areas"]; !ok {
		t.Errorf("yaml output missing areas key: %v", parsed)
	}
}

func TestMarkdownExport(t *testing.T) {
	doc := testutilDoc(t)
	_, u := testutil.BuildUniverse()

	data, err := formats.Export(doc, "markdown")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"# Inbox",
		u.InboxTask.Title,
		"# Life / Health",
		"## " + u.Rewrite.Title,
		"### " + u.BuildPhase.Title,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}

	// Done tasks are checked, open ones are not.
	if !strings.Contains(out, "- [x] "+u.PhaseTask.Title) {
		t.Error("done task not checked")
	}
	if !strings.Contains(out, "- [ ] "+u.InboxTask.Title) {
		t.Error("open task rendered as done")
	}
}

func testutilDoc(t *testing.T) types.Document {
	t.Helper()
	d, _ := testutil.BuildUniverse()
	return d
}

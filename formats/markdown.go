package formats

import (
	"fmt"
	"strings"

	"github.com/strata-app/strata/types"
)

func init() {
	if err := Register(&ExportFormat{
		Name:      "markdown",
		Extension: ".md",
		Marshal: func(doc types.Document) ([]byte, error) {
			return []byte(renderMarkdown(doc)), nil
		},
	}); err != nil {
		panic(err)
	}
}

// renderMarkdown writes the document as a human-readable outline:
// groups and areas as headings, projects and phases as subheadings,
// tasks as checklist items.
func renderMarkdown(doc types.Document) string {
	var sb strings.Builder

	if len(doc.Inbox) > 0 {
		sb.WriteString("# Inbox\n\n")
		writeTasks(&sb, doc.Inbox, "")
		sb.WriteString("\n")
	}

	groupTitles := make(map[string]string, len(doc.AreaGroups))
	for _, g := range doc.AreaGroups {
		groupTitles[g.ID] = g.Title
	}

	for _, area := range doc.Areas {
		title := area.Title
		// A dangling group reference renders as ungrouped.
		if name, ok := groupTitles[area.GroupID]; ok && area.GroupID != "" {
			title = fmt.Sprintf("%s / %s", name, area.Title)
		}
		sb.WriteString(fmt.Sprintf("# %s\n\n", title))
		if area.Description != "" {
			sb.WriteString(area.Description + "\n\n")
		}
		writeTasks(&sb, area.Tasks, "")

		for _, project := range area.Projects {
			sb.WriteString(fmt.Sprintf("## %s (%s)\n\n", project.Title, project.Status))
			if project.Description != "" {
				sb.WriteString(project.Description + "\n\n")
			}
			writeTasks(&sb, project.Tasks, "")
			for _, phase := range project.Phases {
				sb.WriteString(fmt.Sprintf("### %s (%s)\n\n", phase.Title, phase.Status))
				writeTasks(&sb, phase.Tasks, "")
			}
		}

		for _, res := range area.Resources {
			if res.Type == types.ResourceLink {
				sb.WriteString(fmt.Sprintf("- [%s](%s)\n", res.Title, res.URL))
			} else {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", res.Title, res.Content))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeTasks(sb *strings.Builder, tasks []types.Task, indent string) {
	for _, t := range tasks {
		mark := " "
		if t.Status == types.StatusDone {
			mark = "x"
		}
		extra := ""
		if t.Deadline != "" {
			extra = " (due " + t.Deadline + ")"
		}
		sb.WriteString(fmt.Sprintf("%s- [%s] %s [%s/%s]%s\n", indent, mark, t.Title, t.Priority, t.Energy, extra))
	}
	if len(tasks) > 0 {
		sb.WriteString("\n")
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/mutate"
	"github.com/strata-app/strata/schema"
	enginesync "github.com/strata-app/strata/sync"
	"github.com/strata-app/strata/types"
)

var (
	addAreaIcon    string
	addAreaGroupID string
	addTaskArea    string
	addTaskProject string
	addTaskPhase   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create groups, areas, projects, phases and tasks",
}

var addGroupCmd = &cobra.Command{
	Use:   "group <title>",
	Short: "Create an area group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			doc := currentDoc(eng)
			next, g := mutate.CreateGroup(doc, args[0])
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("created group %q (%s)\n", g.Title, g.ID)
			return nil
		})
	},
}

var addAreaCmd = &cobra.Command{
	Use:   "area <title>",
	Short: "Create an area",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			doc := currentDoc(eng)
			next, a := mutate.CreateArea(doc, args[0], addAreaIcon, addAreaGroupID)
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("created area %q (%s)\n", a.Title, a.ID)
			return nil
		})
	},
}

var addProjectCmd = &cobra.Command{
	Use:   "project <title> <area-id>",
	Short: "Create a project inside an area",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			doc := currentDoc(eng)
			next, p, err := mutate.CreateProject(doc, args[0], args[1])
			if err != nil {
				return err
			}
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("created project %q (%s)\n", p.Title, p.ID)
			return nil
		})
	},
}

var addPhaseCmd = &cobra.Command{
	Use:   "phase <title> <project-id>",
	Short: "Create a phase inside a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			doc := currentDoc(eng)
			next, ph, err := mutate.CreatePhase(doc, args[0], args[1])
			if err != nil {
				return err
			}
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("created phase %q (%s)\n", ph.Title, ph.ID)
			return nil
		})
	},
}

var addTaskCmd = &cobra.Command{
	Use:   "task <title>",
	Short: "Create a task (inbox by default)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := taskLocationFromFlags(addTaskArea, addTaskProject, addTaskPhase)
		if err != nil {
			return err
		}
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			doc := currentDoc(eng)
			next, t, err := mutate.CreateTask(doc, args[0], loc)
			if err != nil {
				return err
			}
			if err := eng.Set(next); err != nil {
				return err
			}
			fmt.Printf("created task %q (%s) in %s\n", t.Title, t.ID, loc)
			return nil
		})
	},
}

func init() {
	addAreaCmd.Flags().StringVar(&addAreaIcon, "icon", "", "icon name for the area")
	addAreaCmd.Flags().StringVar(&addAreaGroupID, "group", "", "group ID the area belongs to")
	addTaskCmd.Flags().StringVar(&addTaskArea, "area", "", "target area ID")
	addTaskCmd.Flags().StringVar(&addTaskProject, "project", "", "target project ID")
	addTaskCmd.Flags().StringVar(&addTaskPhase, "phase", "", "target phase ID")

	addCmd.AddCommand(addGroupCmd)
	addCmd.AddCommand(addAreaCmd)
	addCmd.AddCommand(addProjectCmd)
	addCmd.AddCommand(addPhaseCmd)
	addCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(addCmd)
}

// currentDoc returns the engine's snapshot, or an empty normalized
// document on first use.
func currentDoc(eng *enginesync.Engine) types.Document {
	doc, ok := eng.Document()
	if !ok {
		return schema.Normalize(types.Document{})
	}
	return doc
}

// taskLocationFromFlags maps the mutually exclusive target flags to a
// location, defaulting to the inbox.
func taskLocationFromFlags(areaID, projectID, phaseID string) (types.TaskLocation, error) {
	set := 0
	for _, v := range []string{areaID, projectID, phaseID} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return types.TaskLocation{}, fmt.Errorf("--area, --project and --phase are mutually exclusive")
	}
	switch {
	case areaID != "":
		return types.AreaLocation(areaID), nil
	case projectID != "":
		return types.ProjectLocation(projectID), nil
	case phaseID != "":
		return types.PhaseLocation(phaseID), nil
	default:
		return types.InboxLocation(), nil
	}
}

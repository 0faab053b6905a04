package mutate

import (
	"fmt"

	"github.com/strata-app/strata/schema"
	"github.com/strata-app/strata/types"
)

// CreateGroup adds a new area group at the front of the group list.
func CreateGroup(doc types.Document, title string) (types.Document, types.AreaGroup) {
	out := doc.Clone()
	g := schema.NewGroup(title)
	out.AreaGroups = append([]types.AreaGroup{g}, out.AreaGroups...)
	return out, g
}

// UpdateGroup replaces the group with a matching ID wholesale.
func UpdateGroup(doc types.Document, group types.AreaGroup) (types.Document, error) {
	out := doc.Clone()
	for i := range out.AreaGroups {
		if out.AreaGroups[i].ID == group.ID {
			out.AreaGroups[i] = group
			return out, nil
		}
	}
	return types.Document{}, fmt.Errorf("group %q not found", group.ID)
}

// DeleteGroup removes the group and clears GroupID on every area that
// referenced it. Orphaned areas become ungrouped, never deleted.
// Removing an unknown ID is a no-op.
func DeleteGroup(doc types.Document, id string) types.Document {
	out := doc.Clone()
	kept := out.AreaGroups[:0]
	for _, g := range out.AreaGroups {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	out.AreaGroups = kept
	for i := range out.Areas {
		if out.Areas[i].GroupID == id {
			out.Areas[i].GroupID = ""
		}
	}
	return out
}

// CreateArea adds a new area at the front of the area list. groupID may
// be empty for an ungrouped area; it is kept even when it references no
// existing group (soft reference).
func CreateArea(doc types.Document, title, icon, groupID string) (types.Document, types.Area) {
	out := doc.Clone()
	a := schema.NewArea(title, icon, groupID)
	out.Areas = append([]types.Area{a}, out.Areas...)
	return out, a
}

// UpdateArea replaces the area with a matching ID wholesale.
func UpdateArea(doc types.Document, area types.Area) (types.Document, error) {
	out := doc.Clone()
	for i := range out.Areas {
		if out.Areas[i].ID == area.ID {
			out.Areas[i] = area
			return out, nil
		}
	}
	return types.Document{}, fmt.Errorf("area %q not found", area.ID)
}

// DeleteArea removes the area and everything it owns. Removing an
// unknown ID is a no-op.
func DeleteArea(doc types.Document, id string) types.Document {
	out := doc.Clone()
	kept := out.Areas[:0]
	for _, a := range out.Areas {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	out.Areas = kept
	return out
}

package types

import "github.com/brunoga/deep"

// Clone returns a structurally independent copy of the document.
// Mutation operations clone first and mutate the copy, so callers
// holding the original never observe partial updates or aliased slices.
func (d Document) Clone() Document {
	return deep.MustCopy(d)
}

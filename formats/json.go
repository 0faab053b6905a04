package formats

import (
	"encoding/json"

	"github.com/strata-app/strata/types"
)

func init() {
	// The canonical export: a direct dump of the document payload.
	if err := Register(&ExportFormat{
		Name:      "json",
		Extension: ".json",
		Marshal: func(doc types.Document) ([]byte, error) {
			return json.MarshalIndent(doc, "", "  ")
		},
	}); err != nil {
		panic(err)
	}
}

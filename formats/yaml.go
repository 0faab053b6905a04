package formats

import (
	"gopkg.in/yaml.v3"

	"github.com/strata-app/strata/types"
)

func init() {
	if err := Register(&ExportFormat{
		Name:      "yaml",
		Extension: ".yaml",
		Marshal: func(doc types.Document) ([]byte, error) {
			return yaml.Marshal(doc)
		},
	}); err != nil {
		panic(err)
	}
}

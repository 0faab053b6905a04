// Package formats serializes the full document for export. The
// canonical format is the JSON dump — byte-compatible with the remote
// store payload, not a distinct export schema. YAML and a Markdown
// outline are offered for humans.
package formats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/strata-app/strata/types"
)

// ExportFormat defines how a document is serialized for export.
type ExportFormat struct {
	// Name is the format identifier (lowercase alphanumeric).
	Name string

	// Extension is the file extension including the dot.
	Extension string

	// Marshal converts the document into the exported bytes.
	Marshal func(doc types.Document) ([]byte, error)
}

// registry holds all available export formats
var registry = make(map[string]*ExportFormat)

// Register adds an export format to the registry.
func Register(format *ExportFormat) error {
	if format.Name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if !strings.HasPrefix(format.Extension, ".") {
		format.Extension = "." + format.Extension
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns an export format by name.
func Get(name string) (*ExportFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(List(), ", "))
	}
	return format, nil
}

// List returns all registered format names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Export serializes doc with the named format.
func Export(doc types.Document, name string) ([]byte, error) {
	format, err := Get(name)
	if err != nil {
		return nil, err
	}
	return format.Marshal(doc)
}

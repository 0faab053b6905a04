// strata is the reference collaborator for the strata data layer: a CLI
// that reads the current document snapshot, issues mutation intents, and
// synchronizes with the configured remote store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

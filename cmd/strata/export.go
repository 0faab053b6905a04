package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strata-app/strata/formats"
	enginesync "github.com/strata-app/strata/sync"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Serialize the full document to a file or stdout",
	Long: "Export writes the full document. The json format is a direct dump of\n" +
		"the same payload the remote store holds.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(ctx context.Context, eng *enginesync.Engine) error {
			out, err := formats.Export(currentDoc(eng), exportFormat)
			if err != nil {
				return err
			}
			if exportOut == "" || exportOut == "-" {
				fmt.Print(string(out))
				return nil
			}
			if err := os.WriteFile(exportOut, out, 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("exported to %s\n", exportOut)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json",
		fmt.Sprintf("export format (%s)", strings.Join(formats.List(), ", ")))
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

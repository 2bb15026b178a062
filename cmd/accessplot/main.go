// Command accessplot works with saved accessible chart artifacts: it
// previews a rendered HTML page as a PNG through headless Chrome and
// exports a serialized document to an xlsx workbook.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accessplot",
		Short: "Work with accessible chart documents",
		Long: `accessplot previews and converts the artifacts produced by the
accessplot library: HTML pages carrying an embedded chart document,
and the document JSON itself.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newPreviewCmd(), newExportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

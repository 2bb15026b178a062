package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/svgdoc"
)

func newExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export [document.json]",
		Short: "Convert a saved chart document to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (default: input name with .xlsx)")
	return cmd
}

func runExport(inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	var doc accessplot.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".json") + ".xlsx"
	}
	if err := svgdoc.ExportXLSX(&doc, outputPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "workbook written to %s\n", outputPath)
	return nil
}

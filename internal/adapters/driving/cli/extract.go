package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <manifest> [input-dir]",
	Short: "Extract frame ranges listed in a manifest",
	Long: `Reads a manifest (.xlsx, .xlsm or .csv) with the columns
"File name", "start frame", "stop frame", "technique" and "hand", and writes
each listed frame range of <input-dir>/<File name>.csv to its own file.

Frames are 1-based and inclusive. The capture file's metadata lines are
copied unchanged ahead of the column header. A failing row is reported
and the remaining rows still run.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output directory (default from settings)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if app == nil || app.NewExtractor == nil {
		return fmt.Errorf("extract service not configured")
	}
	settingsSvc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	inputDir := "."
	if len(args) > 1 {
		inputDir = args[1]
	}
	outputDir := settings.Extract.OutputDir
	if extractOutput != "" {
		outputDir = extractOutput
	}

	extractor := app.NewExtractor(settings.Extract)
	results, err := extractor.ExtractAll(commandContext(cmd), args[0], inputDir, outputDir)
	printResults(cmd, "Extracted", results)
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	return nil
}

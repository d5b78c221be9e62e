package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

var (
	normalizeOutput    string
	normalizePattern   string
	normalizeFrames    int
	normalizeShiftAxes []string
	normalizeSkipLines int
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [input-dir]",
	Short: "Re-centre, reorder and resample trials",
	Long: `Processes every matching file directly inside input-dir:

  1. subtracts the mean heel midpoint from the shifted axes (X and Y by default)
  2. groups coordinate columns X, then Y, then Z
  3. resamples every column to a fixed number of frames
  4. regenerates the Frame and Sub Frame columns

Use --skip-lines 3 to read the output of "mocapprep extract" directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	f := normalizeCmd.Flags()
	f.StringVarP(&normalizeOutput, "output", "o", "", "output directory (default from settings)")
	f.StringVar(&normalizePattern, "pattern", "", "file name glob (default from settings)")
	f.IntVar(&normalizeFrames, "frames", 0, "frames per resampled trial (default from settings)")
	f.StringSliceVar(&normalizeShiftAxes, "shift-axes", nil, "axes to re-centre, e.g. X,Y (default from settings)")
	f.IntVar(&normalizeSkipLines, "skip-lines", 0, "lines to skip before the column header (default from settings)")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	if app == nil || app.NewNormalizer == nil {
		return fmt.Errorf("normalize service not configured")
	}
	settingsSvc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	ns, err := applyNormalizeFlags(cmd, settings.Normalize)
	if err != nil {
		return err
	}

	inputDir := ns.InputDir
	if len(args) > 0 {
		inputDir = args[0]
	}

	normalizer := app.NewNormalizer(ns)
	results, err := normalizer.ProcessAll(commandContext(cmd), inputDir, ns.OutputDir)
	printResults(cmd, "Processed", results)
	if err != nil {
		return fmt.Errorf("normalize failed: %w", err)
	}
	return nil
}

// applyNormalizeFlags overrides stored settings with explicitly set flags.
func applyNormalizeFlags(cmd *cobra.Command, ns domain.NormalizeSettings) (domain.NormalizeSettings, error) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		ns.OutputDir = normalizeOutput
	}
	if flags.Changed("pattern") {
		ns.Pattern = normalizePattern
	}
	if flags.Changed("frames") {
		ns.TargetFrames = normalizeFrames
	}
	if flags.Changed("skip-lines") {
		ns.SkipLines = normalizeSkipLines
	}
	if flags.Changed("shift-axes") {
		axes, err := domain.ParseAxisSet(normalizeShiftAxes)
		if err != nil {
			return ns, err
		}
		ns.ShiftAxes = axes
	}
	return ns, ns.Validate()
}

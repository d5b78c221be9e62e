package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage pipeline settings",
	Long: `View and change the stored pipeline settings.

Settings are kept in config.toml in the configuration directory.
Command-line flags override them for a single run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. List values are comma separated, e.g.

  mocapprep settings set normalize.shift_axes X,Y,Z
  mocapprep settings set normalize.landmarks Subj1:LHEE,Subj1:RHEE`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Extract]")
	cmd.Printf("  Output directory: %s\n", settings.Extract.OutputDir)
	cmd.Printf("  Preamble lines:   %d\n", settings.Extract.PreambleLines)
	cmd.Println()

	n := settings.Normalize
	cmd.Println("[Normalize]")
	cmd.Printf("  Input directory:  %s\n", n.InputDir)
	cmd.Printf("  Output directory: %s\n", n.OutputDir)
	cmd.Printf("  Pattern:          %s\n", n.Pattern)
	cmd.Printf("  Output prefix:    %q\n", n.OutputPrefix)
	cmd.Printf("  Target frames:    %d\n", n.TargetFrames)
	cmd.Printf("  Shift axes:       %s\n", formatList(n.ShiftAxes.Strings()))
	cmd.Printf("  Landmarks:        %s\n", formatList(n.Landmarks))
	cmd.Printf("  Skip lines:       %d\n", n.SkipLines)
	cmd.Println()

	cmd.Println("[Ledger]")
	cmd.Printf("  Enabled: %s\n", formatBool(settings.Ledger.Enabled))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

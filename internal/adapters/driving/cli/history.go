package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded pipeline runs",
	Long: `Lists recent extract and normalize runs, newest first.
With a run ID, shows the outcome of every item in that run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	history, err := historyService()
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	if len(args) == 1 {
		run, err := history.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get run %s: %w", args[0], err)
		}
		printRun(cmd, run)
		return nil
	}

	runs, err := history.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	st := NewStyles(cmd.OutOrStderr(), nil)
	for i := range runs {
		run := &runs[i]
		cmd.Printf("%s  %-9s  %s  %s  %d ok, %d failed\n",
			st.Muted.Render(run.ID),
			run.Pipeline,
			run.StartedAt.Local().Format(time.DateTime),
			run.Duration().Round(time.Millisecond),
			run.Succeeded(), run.Failed())
	}
	return nil
}

func printRun(cmd *cobra.Command, run *domain.Run) {
	st := NewStyles(cmd.OutOrStderr(), nil)

	cmd.Println(st.Title.Render(fmt.Sprintf("Run %s", run.ID)))
	cmd.Printf("  Pipeline: %s\n", run.Pipeline)
	cmd.Printf("  Started:  %s\n", run.StartedAt.Local().Format(time.DateTime))
	cmd.Printf("  Duration: %s\n", run.Duration().Round(time.Millisecond))
	cmd.Println()

	for _, rec := range run.Records {
		if rec.Success {
			cmd.Printf("%s %s -> %s\n", st.Status(true), rec.Source, rec.Output)
		} else {
			cmd.Printf("%s %s: %s\n", st.Status(false), rec.Source, rec.Message)
		}
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/mocapprep/internal/core/domain"
)

// printResults writes one status line per item and a summary line.
func printResults(cmd *cobra.Command, verb string, results []domain.Result) {
	st := NewStyles(cmd.OutOrStderr(), nil)

	for _, r := range results {
		if r.OK() {
			cmd.Printf("%s %s -> %s\n", st.Status(true), r.Source, r.Output)
		} else {
			cmd.Printf("%s %s: %s\n", st.Status(false), r.Source, r.Message())
		}
	}

	ok := len(domain.Outputs(results))
	cmd.Printf("%s %d of %d\n", st.Title.Render(verb), ok, len(results))
}

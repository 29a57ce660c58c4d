package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-model listing statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := newClient().Summary(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, summary)
			}

			if len(summary) == 0 {
				fmt.Fprintln(out, "Summary is empty.")
				return nil
			}
			return printSummaryTable(out, summary)
		},
	}
}

// aggregatesCmd always prints JSON; the document has no tabular form.
func aggregatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregates",
		Short: "Print the raw aggregates document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := newClient().Aggregates(cmd.Context())
			if err != nil {
				return err
			}
			return outputJSON(cmd.OutOrStdout(), raw)
		},
	}
}

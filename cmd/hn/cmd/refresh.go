package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	refreshRoot := &cobra.Command{
		Use:   "refresh",
		Short: "Trigger background jobs on the server",
	}

	refreshRoot.AddCommand(
		refreshJobCmd("summary", "Recompute the per-model listing summary",
			func(ctx context.Context) (string, error) { return newClient().RefreshSummary(ctx) }),
		refreshJobCmd("models", "Refetch and recompile the regression models",
			func(ctx context.Context) (string, error) { return newClient().RefreshModels(ctx) }),
	)

	return refreshRoot
}

func refreshJobCmd(use, short string, run func(context.Context) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]string{"status": status})
			}
			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func modelsCmd() *cobra.Command {
	modelsRoot := &cobra.Command{
		Use:   "models",
		Short: "Inspect regression models",
	}

	modelsRoot.AddCommand(
		modelsListCmd(),
		modelsGetCmd(),
	)

	return modelsRoot
}

func modelsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List regression models with fit statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := newClient().ListModels(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, models)
			}

			if len(models) == 0 {
				fmt.Fprintln(out, "No models loaded.")
				return nil
			}
			return printModelsTable(out, models)
		},
	}
}

func modelsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Show one model and its depreciation curves",
		Example: `  hn models get RAV4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newClient().GetModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), m)
			}
			return printModelDetail(cmd.OutOrStdout(), m)
		},
	}
}

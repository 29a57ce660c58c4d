package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/hela-notan/internal/api/handlers"
)

func tcoCmd() *cobra.Command {
	var (
		fuel                   string
		buyAge, modelYear      int
		holding                int
		mileage, annualMileage int
	)

	cmd := &cobra.Command{
		Use:   "tco <model>",
		Short: "Compute total cost of ownership",
		Long: "Estimate depreciation, fuel and running costs for owning a car.\n" +
			"Flags left unset take the server's default scenario.",
		Example: `  hn tco RAV4
  hn tco XC60 --fuel Diesel --model-year 2021 --holding 4 --annual-mileage 1800`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := handlers.TCORequest{ModelKey: args[0], Fuel: fuel}
			flags := cmd.Flags()
			if flags.Changed("buy-age") {
				req.BuyAgeYears = &buyAge
			}
			if flags.Changed("model-year") {
				req.ModelYear = &modelYear
			}
			if flags.Changed("holding") {
				req.HoldingYears = &holding
			}
			if flags.Changed("mileage") {
				req.CurrentMileage = &mileage
			}
			if flags.Changed("annual-mileage") {
				req.AnnualMileage = &annualMileage
			}

			res, err := newClient().ComputeTCO(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printTCO(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&fuel, "fuel", "", "fuel category (default: the model's first fuel option)")
	cmd.Flags().IntVar(&buyAge, "buy-age", 0, "age at purchase in years")
	cmd.Flags().IntVar(&modelYear, "model-year", 0, "model year at purchase")
	cmd.Flags().IntVar(&holding, "holding", 0, "years of ownership")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer at purchase in mil")
	cmd.Flags().IntVar(&annualMileage, "annual-mileage", 0, "distance per year in mil")
	cmd.MarkFlagsMutuallyExclusive("buy-age", "model-year")

	cmd.AddCommand(tcoDefaultCmd())

	return cmd
}

func tcoDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Show the default ownership scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newClient().DefaultScenario(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printScenario(cmd.OutOrStdout(), s)
		},
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/hela-notan/internal/api/handlers"
)

func predictCmd() *cobra.Command {
	var (
		req   handlers.PredictRequest
		price int
	)

	cmd := &cobra.Command{
		Use:   "predict <model>",
		Short: "Predict the price of a car",
		Long: "Evaluate a model's regression for the given attributes. Passing\n" +
			"--price also rates the asking price as a deal.",
		Example: `  hn predict RAV4 --age 4 --mileage 6000 --fuel Elhybrid
  hn predict XC60 --age 3 --mileage 4500 --fuel Diesel --price 389000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ModelKey = args[0]
			if cmd.Flags().Changed("price") {
				req.PriceSEK = &price
			}

			resp, err := newClient().Predict(cmd.Context(), &req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printPrediction(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().Float64Var(&req.AgeYears, "age", 0, "car age in years")
	cmd.Flags().IntVar(&req.MileageMil, "mileage", 0, "odometer in mil")
	cmd.Flags().StringVar(&req.FuelType, "fuel", "", "fuel text as listed")
	cmd.Flags().IntVar(&req.Horsepower, "hp", 0, "horsepower (imputed if omitted)")
	cmd.Flags().IntVar(&req.EquipmentCount, "equipment", 0, "equipment count (imputed if omitted)")
	cmd.Flags().StringVar(&req.Drivetrain, "drivetrain", "", "drivetrain text as listed")
	cmd.Flags().StringVar(&req.SellerType, "seller", "", "seller type (dealer, private)")
	cmd.Flags().StringVar(&req.Generation, "generation", "", "generation label")
	cmd.Flags().Float64Var(&req.WLTPRangeKM, "range", 0, "WLTP electric range in km")
	cmd.Flags().StringSliceVar(&req.NotableEquipment, "equipment-item", nil, "notable equipment items")
	cmd.Flags().IntVar(&price, "price", 0, "asking price in SEK")

	return cmd
}

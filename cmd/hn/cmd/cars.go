package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/hela-notan/internal/api/client"
)

func carsCmd() *cobra.Command {
	var params apiclient.ListCarsParams

	cmd := &cobra.Command{
		Use:   "cars",
		Short: "List ranked car listings",
		Long: "List listings that pass the sanity filters, ranked and\n" +
			"annotated with predicted price and deal rating.",
		Example: `  # Cheapest first
  hn cars --sort price --order asc

  # Great deals on two models
  hn cars --models RAV4,XC60 --deal great --sort deal

  # Second page of hybrids, 50 per page
  hn cars --fuel Hybrid --page 2 --limit 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListCars(cmd.Context(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, page)
			}

			if len(page.Items) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}

			fmt.Fprintf(out, "Page %d of %d (%d listings)\n\n", page.Page, page.PageCount, page.Total)
			return printCarsTable(out, page)
		},
	}

	cmd.Flags().StringSliceVar(&params.Models, "models", nil, "model keys to include")
	cmd.Flags().StringVar(&params.Fuel, "fuel", "", "fuel category (Hybrid, PHEV, Diesel, Petrol, Electric, Other)")
	cmd.Flags().StringVar(&params.Deal, "deal", "", "deal filter (good, great, any)")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort key (price, year, mileage, horsepower, deal)")
	cmd.Flags().StringVar(&params.Order, "order", "", "sort order (asc, desc)")
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size (max 100)")

	return cmd
}

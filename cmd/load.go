package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coursedeck/coursedeck/internal/utils"
	"github.com/coursedeck/coursedeck/pkg/catalog"
	"github.com/coursedeck/coursedeck/pkg/rowsource"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

// loadCmd represents the load command. Both data sources must load and decode
// for anything to change; a failed load leaves the stored catalog untouched.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the course listing and price list and rebuild the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		listingLoc, _ := cmd.Flags().GetString("listing")
		pricesLoc, _ := cmd.Flags().GetString("prices")
		if listingLoc == "" {
			listingLoc = viper.GetString("data.listing")
		}
		if pricesLoc == "" {
			pricesLoc = viper.GetString("data.prices")
		}
		if listingLoc == "" || pricesLoc == "" {
			return fmt.Errorf("both --listing and --prices are required (or data.listing / data.prices in the config)")
		}

		listing, err := rowsource.Open(listingLoc)
		if err != nil {
			return err
		}
		prices, err := rowsource.Open(pricesLoc)
		if err != nil {
			return err
		}

		pair, err := rowsource.LoadPair(listing, prices)
		if err != nil {
			return err
		}

		courses := catalog.Build(pair.Listing, catalog.BuildPriceIndex(pair.Prices))
		if len(courses) == 0 {
			return fmt.Errorf("no usable courses in %s", listingLoc)
		}

		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		changes, err := db.ReplaceCatalog(cmd.Context(), courses)
		if err != nil {
			return err
		}

		utils.Log.Infof("Catalog rebuilt: %d courses, %d changes", len(courses), len(changes))
		for _, c := range changes {
			utils.Log.Debugf("%-7s %s", c.ChangeType, c.Code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringP("listing", "", "", "Course listing source (file path or URL; csv, json or html)")
	loadCmd.Flags().StringP("prices", "", "", "Price list source (file path or URL; csv, json or html)")
}

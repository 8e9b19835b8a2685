package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/storage"
	"github.com/coursedeck/coursedeck/pkg/view"
)

// optionsCmd prints the filter vocabularies derived from the stored catalog.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the filter values present in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		courses, err := db.LoadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		opts := view.CollectOptions(courses)
		fmt.Printf("departments: %s\n", strings.Join(opts.Departments, ", "))
		fmt.Printf("days:        %s\n", strings.Join(opts.Days, ", "))
		fmt.Printf("times:       %s\n", strings.Join(opts.Times, ", "))
		fmt.Printf("terms:       %s\n", strings.Join(opts.Terms, ", "))
		fmt.Printf("credits:     %s\n", strings.Join(opts.Credits, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

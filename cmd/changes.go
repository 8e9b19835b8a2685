package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/storage"
)

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Show recent catalog changes (default 50)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		changes, err := db.ListRecentChanges(cmd.Context(), limit)
		if err != nil {
			return err
		}
		for _, c := range changes {
			ts := c.OccurredAt.Format("2006-01-02 15:04:05")
			fmt.Printf("%s  %-7s  %s\n", ts, c.ChangeType, c.Code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changesCmd)
	changesCmd.Flags().Int("limit", 50, "Number of recent changes to show")
}

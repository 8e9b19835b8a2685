package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/catalog"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

// selectCmd toggles one section in the schedule cart. Session ids are only
// unique within a course, so the course code is required too.
var selectCmd = &cobra.Command{
	Use:   "select <course> <session>",
	Short: "Toggle a section in the schedule cart",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := catalog.NormalizeCode(args[0])
		if code == "" {
			return fmt.Errorf("unusable course identifier: %q", args[0])
		}

		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		selected, err := db.ToggleSelection(cmd.Context(), code, args[1])
		if err != nil {
			return err
		}
		if selected {
			fmt.Printf("Selected %s %s\n", code, args[1])
		} else {
			fmt.Printf("Removed %s %s\n", code, args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

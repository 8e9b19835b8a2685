package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/schedule"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

// cartCmd shows the schedule cart with conflict flags and the price total.
// Conflicting sections stay listed but are excluded from the total.
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show selected sections, conflicts, and the price total",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		clearFlag, _ := cmd.Flags().GetBool("clear")
		if clearFlag {
			if err := db.ClearSelections(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Cart cleared.")
			return nil
		}

		sections, err := db.SelectedSections(cmd.Context())
		if err != nil {
			return err
		}
		if len(sections) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}

		marked := schedule.MarkConflicts(sections)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "COURSE\tSESSION\tDAYS\tTIME\tTERM\tPRICE\t")
		for _, s := range marked {
			flag := ""
			if s.IsConflicting {
				flag = "CONFLICT"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f\t%s\n",
				s.CourseCode, s.SessionID, s.Days, s.Time, s.Term, s.Price, flag)
		}
		w.Flush()

		fmt.Printf("\nTotal (non-conflicting): %d\n", schedule.Total(marked))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.Flags().Bool("clear", false, "Remove every section from the cart")
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/schedule"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

var weekdayNames = [...]string{1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri"}

// calendarCmd projects the non-conflicting cart sections onto a weekly
// calendar for the chosen term scope.
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Project the schedule cart onto a weekly calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		sections, err := db.SelectedSections(cmd.Context())
		if err != nil {
			return err
		}

		marked := schedule.MarkConflicts(sections)
		scopeFlag, _ := cmd.Flags().GetString("scope")
		scope := schedule.ParseScope(scopeFlag)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "DAY\tSTART\tEND\tCOURSE\tCOLOR")
		count := 0
		for ev := range schedule.Events(marked, scope) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", weekdayNames[ev.Weekday], ev.Start, ev.End, ev.Title, ev.Color)
			count++
		}
		w.Flush()
		if count == 0 {
			fmt.Println("No calendar events for this scope.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().String("scope", "overall", "Term scope: overall, q1 or q2")
}

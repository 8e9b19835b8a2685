package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/storage"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints statistics about the courses and sections in the catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats(cmd.Context())
		if err != nil {
			return err
		}

		if len(stats) == 0 {
			fmt.Println("No data in the catalog to generate stats.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "DEPARTMENT\tCOURSES\tSECTIONS\t")

		var totalCourses, totalSections int
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t%d\t\n", s.Department, s.CourseCount, s.SectionCount)
			totalCourses += s.CourseCount
			totalSections += s.SectionCount
		}

		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t\n", totalCourses, totalSections)

		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

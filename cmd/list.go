package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/storage"
	"github.com/coursedeck/coursedeck/pkg/view"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog courses, filtered and sorted",
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
		if len(courses) == 0 {
			fmt.Println("Catalog is empty. Run 'coursedeck load' first.")
			return nil
		}

		filters := view.Filters{}
		filters.Department, _ = cmd.Flags().GetString("department")
		filters.Day, _ = cmd.Flags().GetString("day")
		filters.Time, _ = cmd.Flags().GetString("time")
		filters.Term, _ = cmd.Flags().GetString("term")
		filters.Credits, _ = cmd.Flags().GetString("credits")
		filters.Search, _ = cmd.Flags().GetString("search")
		sortKey, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")

		filtered := view.Apply(courses, filters)
		sorted := view.Sort(filtered, sortKey, desc)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CODE\tTITLE\tQUALITY\tDIFFICULTY\tPRICE\tTERMS\tCREDITS\tSECTIONS")
		for _, c := range sorted {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%s\t%s\t%d\n",
				c.Code, c.Title, fmtRating(c.CourseRating), fmtRating(c.DifficultyRating),
				c.AveragePrice, c.Terms, c.Credits, len(c.Sections))
		}
		w.Flush()
		return nil
	},
}

func fmtRating(r *float64) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *r)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("search", "s", "", "Case-insensitive search on course code and title")
	listCmd.Flags().String("department", "", "Filter by 4-letter department prefix")
	listCmd.Flags().String("day", "", "Filter by exact section day string (e.g. MWF)")
	listCmd.Flags().String("time", "", "Filter by exact section time string")
	listCmd.Flags().String("term", "", "Filter by section term")
	listCmd.Flags().String("credits", "", "Filter by section credits")
	listCmd.Flags().String("sort", view.SortByCode, "Sort key: code, title, course_rating, instructor_rating, difficulty_rating, work_rating, average_price")
	listCmd.Flags().Bool("desc", false, "Sort in descending order")
}

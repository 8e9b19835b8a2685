package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursedeck/coursedeck/pkg/catalog"
	"github.com/coursedeck/coursedeck/pkg/storage"
)

// sectionsCmd shows one course's sections with their instructors.
var sectionsCmd = &cobra.Command{
	Use:   "sections <course>",
	Short: "Show the sections and instructors of one course",
	Args:  cobra.ExactArgs(1),
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

		courses, err := db.LoadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		for _, c := range courses {
			if c.Code != code {
				continue
			}
			fmt.Printf("%s  %s\n", c.Code, c.Title)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "SESSION\tMEETINGS\tTERM\tCREDITS\tINSTRUCTORS")
			for _, s := range c.Sections {
				names := make([]string, 0, len(s.Instructors))
				for _, in := range s.Instructors {
					names = append(names, in.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.SessionID, s.Meetings, s.Term, s.Credits, strings.Join(names, ", "))
			}
			w.Flush()
			return nil
		}
		return fmt.Errorf("course not found: %s", code)
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

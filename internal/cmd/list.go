package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listVisibility string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your GitHub repositories",
	Long: `List all repositories of the authenticated user, one line per
repository with name, visibility and description. Results are fetched
page by page until GitHub reports no further pages.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listVisibility, "visibility", "", "Filter by visibility: public or private")
}

func runList(_ *cobra.Command, _ []string) error {
	if listVisibility != "" && listVisibility != "public" && listVisibility != "private" {
		return fmt.Errorf("invalid --visibility %q: must be public or private", listVisibility)
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}

	repos, err := app.Client.ListRepositories()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	count := 0
	for _, r := range repos {
		if listVisibility != "" && r.Visibility() != listVisibility {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.FullName, r.Visibility(), r.Description)
		count++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if count == 0 {
		fmt.Println("No repositories found.")
	}
	return nil
}

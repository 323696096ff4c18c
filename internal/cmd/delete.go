package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"repo/internal/git"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a GitHub repository",
	Long: `Delete a repository on GitHub.

Deletion is permanent and requires the repository name to be re-typed as
confirmation. The token needs the 'delete_repo' scope.

Examples:
  repo delete myproject
  repo delete owner/myproject -y`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runDelete(_ *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	owner, name, err := git.SplitOwnerRepo(args[0])
	if err != nil {
		return err
	}
	if owner == "" {
		owner, err = app.owner("")
		if err != nil {
			return err
		}
	}

	if !deleteYes {
		fmt.Printf("⚠️  This permanently deletes %s/%s on GitHub.\n", owner, name)
		typed, err := readLine(fmt.Sprintf("Type the repository name (%s) to confirm: ", name))
		if err != nil {
			return err
		}
		if typed != name {
			return fmt.Errorf("confirmation did not match, aborting")
		}
	}

	if err := app.Client.DeleteRepository(owner, name); err != nil {
		return err
	}

	fmt.Printf("✅ Deleted %s/%s\n", owner, name)
	return nil
}

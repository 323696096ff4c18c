package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"repo/internal/browser"
	"repo/internal/git"
)

// browserOpener is swapped out in tests
var browserOpener browser.Opener = browser.NewOpener()

var openCmd = &cobra.Command{
	Use:   "open [name]",
	Short: "Open a repository page in the browser",
	Long: `Open a repository's GitHub page in the default browser.

With no argument, the 'origin' remote of the current directory is used
if there is one, otherwise a fuzzy picker over your repositories.

Examples:
  repo open myproject
  repo open owner/project
  repo open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(_ *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	var owner, name string
	switch {
	case len(args) == 1:
		owner, name, err = git.SplitOwnerRepo(args[0])
		if err != nil {
			return err
		}
		if owner == "" {
			owner, err = app.owner("")
			if err != nil {
				return err
			}
		}
	default:
		owner, name, err = repoFromCwd()
		if err != nil {
			picked, pickErr := app.pickRepository("Open repository:")
			if pickErr != nil {
				return pickErr
			}
			owner, name, err = git.SplitOwnerRepo(picked.FullName)
			if err != nil {
				return err
			}
		}
	}

	// Resolve through the API so a bad name fails with a useful
	// message instead of a browser 404.
	repository, err := app.Client.GetRepository(owner, name)
	if err != nil {
		return err
	}

	url := repository.HTMLURL
	if url == "" {
		url = git.WebURL(owner, name)
	}

	if err := browserOpener.Open(url); err != nil {
		return err
	}

	fmt.Printf("✅ Opened %s\n", url)
	return nil
}

// repoFromCwd derives owner/name from the origin remote of the current
// directory.
func repoFromCwd() (string, string, error) {
	gitClient, err := git.NewClient()
	if err != nil {
		return "", "", err
	}

	ctx := context.Background()
	if !gitClient.IsWorkTree(ctx) {
		return "", "", fmt.Errorf("not inside a git repository")
	}

	remote, err := gitClient.RemoteURL(ctx, "origin")
	if err != nil {
		return "", "", err
	}

	return git.SplitOwnerRepo(remote)
}

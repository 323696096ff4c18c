package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"repo/internal/git"
)

var (
	cloneClean bool
	cloneDir   string
)

var cloneCmd = &cobra.Command{
	Use:   "clone [name]",
	Short: "Clone one of your GitHub repositories",
	Long: `Clone a repository over HTTPS.

The argument can be a bare name (resolved against your account), an
owner/name pair or a full GitHub URL. With no argument, a fuzzy picker
over your repositories selects one. --clean removes the .git directory
after cloning, leaving a plain source tree.

Examples:
  repo clone myproject
  repo clone owner/project ~/src/project
  repo clone --clean myproject
  repo clone`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClone,
}

func init() {
	cloneCmd.Flags().BoolVar(&cloneClean, "clean", false, "Remove the .git directory after cloning")
	cloneCmd.Flags().StringVar(&cloneDir, "dir", "", "Target directory (defaults to the repository name)")
}

func runClone(_ *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	var owner, name string
	if len(args) == 1 {
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
	} else {
		picked, err := app.pickRepository("Clone repository:")
		if err != nil {
			return err
		}
		owner, name, err = git.SplitOwnerRepo(picked.FullName)
		if err != nil {
			return err
		}
	}

	target := cloneDir
	if target == "" {
		if app.Config.Defaults.CloneDir != "" {
			target = filepath.Join(app.Config.Defaults.CloneDir, name)
		} else {
			target = name
		}
	}

	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("target directory %s already exists", target)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gitClient, err := git.NewClient()
	if err != nil {
		return err
	}

	if err := gitClient.Clone(ctx, git.CloneURL(owner, name), target); err != nil {
		return err
	}

	if cloneClean {
		if err := os.RemoveAll(filepath.Join(target, ".git")); err != nil {
			return fmt.Errorf("cloned, but failed to strip .git: %w", err)
		}
		fmt.Printf("✅ Cloned %s/%s into %s (git history stripped)\n", owner, name, target)
		return nil
	}

	fmt.Printf("✅ Cloned %s/%s into %s\n", owner, name, target)
	return nil
}

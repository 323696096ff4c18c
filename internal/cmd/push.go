package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"repo/internal/git"
)

var pushForceDirty bool

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the current branch to origin",
	Long: `Push the current branch of the repository in the working directory
to its 'origin' remote, setting the upstream.

The command refuses to run outside a git work tree and, unless
--force-dirty is given, refuses to push while uncommitted changes exist.`,
	RunE: runPush,
}

func init() {
	pushCmd.Flags().BoolVar(&pushForceDirty, "force-dirty", false, "Push even if the work tree has uncommitted changes")
}

func runPush(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gitClient, err := git.NewClient()
	if err != nil {
		return err
	}

	if !gitClient.IsWorkTree(ctx) {
		return fmt.Errorf("not inside a git repository")
	}

	clean, err := gitClient.IsClean(ctx)
	if err != nil {
		return err
	}
	if !clean && !pushForceDirty {
		return fmt.Errorf("work tree has uncommitted changes: commit them first or pass --force-dirty")
	}

	branch, err := gitClient.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	if _, err := gitClient.RemoteURL(ctx, "origin"); err != nil {
		return err
	}

	if err := gitClient.Push(ctx, "origin", branch); err != nil {
		return err
	}

	fmt.Printf("✅ Pushed %s to origin\n", branch)
	return nil
}

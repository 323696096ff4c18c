package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"repo/internal/git"
	"repo/pkg/github"
)

var (
	createPrivate   bool
	createDesc      string
	createGitignore string
	createLicense   string
	createTopics    string
	createPush      bool
	createNoLocal   bool
	createDir       string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a GitHub repository",
	Long: `Create a repository on GitHub and initialize a local clone.

The repository is created for the authenticated user with the given
visibility, description and topics. Unless --no-local is given, a local
git repository is initialized with an optional .gitignore template and
license fetched from GitHub, a README stub, an initial commit on 'main'
and an 'origin' remote. --push pushes the initial commit.

Examples:
  repo create myproject
  repo create myproject -p --desc "Internal tooling"
  repo create myproject --gitignore Go --license mit --topics cli,golang
  repo create myproject --push`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVarP(&createPrivate, "private", "p", false, "Create a private repository")
	createCmd.Flags().StringVar(&createDesc, "desc", "", "Repository description")
	createCmd.Flags().StringVar(&createGitignore, "gitignore", "", "Gitignore template name (e.g. Go, Python)")
	createCmd.Flags().StringVar(&createLicense, "license", "", "License key (e.g. mit, apache-2.0)")
	createCmd.Flags().StringVar(&createTopics, "topics", "", "Comma-separated repository topics")
	createCmd.Flags().BoolVar(&createPush, "push", false, "Push the initial commit after creating")
	createCmd.Flags().BoolVar(&createNoLocal, "no-local", false, "Skip local repository initialization")
	createCmd.Flags().StringVar(&createDir, "dir", "", "Directory for the local repository (defaults to the repo name)")
}

func runCreate(_ *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}

	gitignore := createGitignore
	if gitignore == "" {
		gitignore = app.Config.Defaults.Gitignore
	}
	license := createLicense
	if license == "" {
		license = app.Config.Defaults.License
	}

	repoConfig := github.RepositoryConfig{
		Name:        args[0],
		Description: createDesc,
		Private:     createPrivate || app.Config.Defaults.Private,
		Gitignore:   gitignore,
		License:     license,
		Topics:      github.ParseTopics(createTopics),
	}

	if err := repoConfig.Validate(); err != nil {
		return err
	}

	created, err := app.Client.CreateRepository(repoConfig)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Created %s repository %s\n", created.Visibility(), created.FullName)

	if createNoLocal {
		fmt.Printf("   %s\n", created.HTMLURL)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir := createDir
	if dir == "" {
		dir = created.Name
	}

	if err := initLocalRepo(ctx, app, created, repoConfig, dir); err != nil {
		return fmt.Errorf("repository created on GitHub, but local setup failed: %w", err)
	}

	fmt.Printf("✅ Local repository initialized in %s\n", dir)

	if createPush {
		gitClient, err := git.NewClientForRepo(dir)
		if err != nil {
			return err
		}
		if err := gitClient.Push(ctx, "origin", defaultBranch); err != nil {
			return err
		}
		fmt.Printf("✅ Pushed initial commit to %s\n", created.FullName)
	}

	return nil
}

const defaultBranch = "main"

// initLocalRepo creates the working directory, seeds it with the
// gitignore/license/README files and records the initial commit.
func initLocalRepo(ctx context.Context, app *appContext, created *github.Repository, repoConfig github.RepositoryConfig, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %s already exists", dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	gitClient, err := git.NewClientForRepo(dir)
	if err != nil {
		return err
	}

	if err := gitClient.Init(ctx, defaultBranch); err != nil {
		return err
	}

	client := app.Client.WithContext(ctx)

	if repoConfig.Gitignore != "" {
		body, err := client.GetGitignoreTemplate(repoConfig.Gitignore)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(body), 0o644); err != nil {
			return fmt.Errorf("failed to write .gitignore: %w", err)
		}
	}

	if repoConfig.License != "" {
		license, err := client.GetLicense(repoConfig.License)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "LICENSE"), []byte(license.Body), 0o644); err != nil {
			return fmt.Errorf("failed to write LICENSE: %w", err)
		}
	}

	readme := fmt.Sprintf("# %s\n", created.Name)
	if created.Description != "" {
		readme += fmt.Sprintf("\n%s\n", created.Description)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0o644); err != nil {
		return fmt.Errorf("failed to write README.md: %w", err)
	}

	if err := gitClient.Add(ctx); err != nil {
		return err
	}
	if err := gitClient.Commit(ctx, "Initial commit"); err != nil {
		return err
	}

	owner, name, err := git.SplitOwnerRepo(created.FullName)
	if err != nil {
		return err
	}
	return gitClient.AddRemote(ctx, "origin", git.CloneURL(owner, name))
}

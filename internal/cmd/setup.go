package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"repo/internal/creds"
	"repo/pkg/config"
	"repo/pkg/github"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure GitHub credentials",
	Long: `Interactively configure the GitHub username and personal access token
used by all other commands.

The token is validated against the GitHub API before anything is written.
Credentials are stored in ~/.repo/credentials with owner-only permissions;
the username is also recorded in ~/.repo/config.yaml. Re-running setup
overwrites the stored credentials.`,
	RunE: runSetup,
}

func runSetup(_ *cobra.Command, _ []string) error {
	username, err := readLine("GitHub username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	fmt.Print("GitHub personal access token (input hidden): ")
	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	// Validate before persisting anything.
	authManager := github.NewAuthManager()
	if err := authManager.Authenticate(token); err != nil {
		return err
	}

	tokenInfo, err := authManager.ValidateToken(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Token validation failed: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "%s\n", github.GetAuthInstructions())
		return fmt.Errorf("setup aborted")
	}

	if !strings.EqualFold(tokenInfo.User, username) {
		return fmt.Errorf("token belongs to %q, not %q: check the username or use the right token", tokenInfo.User, username)
	}

	if err := authManager.CheckScopes(tokenInfo); err != nil {
		fmt.Printf("⚠️  %v\n", err)
		if !confirm("Store the token anyway?") {
			return fmt.Errorf("setup aborted")
		}
	}

	store, err := creds.NewStore()
	if err != nil {
		return err
	}

	if err := store.Save(&creds.Credential{Username: tokenInfo.User, Token: token}); err != nil {
		return withTroubleshooting(err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.GitHub.Username = tokenInfo.User
	if err := cfg.SaveConfig(); err != nil {
		return err
	}

	fmt.Printf("✅ Authenticated as %s, credentials saved to %s\n", tokenInfo.User, store.Path())
	return nil
}

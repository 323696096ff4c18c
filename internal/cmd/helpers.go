package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"repo/internal/creds"
	"repo/pkg/config"
	"repo/pkg/fuzzy"
	"repo/pkg/github"
)

// appContext bundles the pieces most commands need
type appContext struct {
	Config *config.Config
	Creds  *creds.Credential
	Client *github.Client
}

// newAppContext loads config and credentials and builds an API client.
// The token is resolved from the environment first, then the credential
// file written by 'repo setup'.
func newAppContext() (*appContext, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := creds.NewStore()
	if err != nil {
		return nil, err
	}

	var stored string
	var cred *creds.Credential
	if store.Exists() {
		cred, err = store.Load()
		if err != nil {
			return nil, withTroubleshooting(err)
		}
		stored = cred.Token
	}

	token, err := github.ResolveToken(stored)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n\n", github.GetAuthInstructions())
		return nil, err
	}

	return &appContext{
		Config: cfg,
		Creds:  cred,
		Client: github.NewClient(token),
	}, nil
}

// owner returns the account to operate on: explicit value, configured
// organization, configured username, then the stored credential login.
func (a *appContext) owner(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if o := a.Config.Owner(); o != "" {
		return o, nil
	}
	if a.Creds != nil && a.Creds.Username != "" {
		return a.Creds.Username, nil
	}
	return "", fmt.Errorf("no GitHub account configured: run 'repo setup'")
}

// pickRepository lists the user's repositories and lets the user choose
// one with the fuzzy finder.
func (a *appContext) pickRepository(prompt string) (*github.Repository, error) {
	repos, err := a.Client.ListRepositories()
	if err != nil {
		return nil, err
	}

	if len(repos) == 0 {
		return nil, fmt.Errorf("no repositories found for this account")
	}

	finder := fuzzy.NewFzf(prompt)
	options := make([]fuzzy.Option, 0, len(repos))
	for _, r := range repos {
		desc := r.Visibility()
		if r.Description != "" {
			desc = desc + ", " + r.Description
		}
		options = append(options, fuzzy.Option{Value: r.FullName, Description: desc})
	}
	if err := finder.SetOptions(options); err != nil {
		return nil, err
	}

	selected, err := finder.Select()
	if err != nil {
		return nil, err
	}

	for i := range repos {
		if repos[i].FullName == selected {
			return &repos[i], nil
		}
	}
	return nil, fmt.Errorf("selected repository %q not found", selected)
}

// confirm asks a y/N question on stdin
func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

// readLine reads a single trimmed line from stdin
func readLine(prompt string) (string, error) {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// withTroubleshooting appends troubleshooting steps to credential errors
func withTroubleshooting(err error) error {
	var credErr *creds.Error
	if errors.As(err, &credErr) {
		if steps := credErr.GetTroubleshootingMessage(); steps != "" {
			return fmt.Errorf("%w\n%s", err, steps)
		}
	}
	return err
}

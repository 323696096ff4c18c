package github

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// AuthManager handles GitHub authentication
type AuthManager struct {
	client *github.Client
	token  string
}

// NewAuthManager creates a new authentication manager
func NewAuthManager() *AuthManager {
	return &AuthManager{}
}

// ResolveToken returns the GitHub token to use, preferring the
// REPO_GITHUB_TOKEN and GITHUB_TOKEN environment variables over the
// token persisted by 'repo setup'.
func ResolveToken(stored string) (string, error) {
	if token := os.Getenv("REPO_GITHUB_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	if stored != "" {
		return strings.TrimSpace(stored), nil
	}

	return "", fmt.Errorf("no GitHub token found: run 'repo setup' or set the GITHUB_TOKEN environment variable")
}

// Authenticate sets up the GitHub client with the provided token
func (am *AuthManager) Authenticate(token string) error {
	if token == "" {
		return fmt.Errorf("GitHub token cannot be empty")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	am.client = github.NewClient(tc)
	am.token = token

	return nil
}

// TokenInfo contains information about the authenticated token
type TokenInfo struct {
	User   string   `json:"user"`
	Scopes []string `json:"scopes"`
}

// ValidateToken validates the GitHub token against the current-user
// endpoint and reports the login and OAuth scopes it carries.
func (am *AuthManager) ValidateToken(ctx context.Context) (*TokenInfo, error) {
	if am.client == nil {
		return nil, fmt.Errorf("not authenticated: call Authenticate() first")
	}

	user, resp, err := am.client.Users.Get(ctx, "")
	if err != nil {
		return nil, WrapAPIError(err, "authenticated user")
	}

	scopes := []string{}
	if scopeHeader := resp.Header.Get("X-OAuth-Scopes"); scopeHeader != "" {
		scopes = strings.Split(strings.ReplaceAll(scopeHeader, " ", ""), ",")
	}

	return &TokenInfo{
		User:   user.GetLogin(),
		Scopes: scopes,
	}, nil
}

// CheckScopes verifies that the token carries the 'repo' scope. Classic
// tokens report scopes in the X-OAuth-Scopes header; fine-grained tokens
// report none, so an empty scope list is accepted.
func (am *AuthManager) CheckScopes(info *TokenInfo) error {
	if len(info.Scopes) == 0 {
		return nil
	}

	for _, scope := range info.Scopes {
		if scope == "repo" {
			return nil
		}
	}

	return fmt.Errorf("GitHub token is missing the 'repo' scope, required to manage repositories")
}

// GetClient returns the authenticated GitHub client
func (am *AuthManager) GetClient() *github.Client {
	return am.client
}

// GetAuthInstructions returns instructions for setting up GitHub authentication
func GetAuthInstructions() string {
	return `GitHub authentication is required. Set it up with one of:

1. Interactive setup (stores the token in ~/.repo/credentials):
   repo setup

2. Environment variable:
   export GITHUB_TOKEN="your_personal_access_token"

To create a personal access token:
1. Go to GitHub Settings > Developer settings > Personal access tokens
2. Click "Generate new token (classic)"
3. Select the 'repo' scope (and 'delete_repo' if you want 'repo delete')
4. Copy the generated token and use it with one of the methods above.`
}

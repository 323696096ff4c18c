package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub REST API for repository lifecycle operations
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// WithContext returns a copy of the client bound to the given context
func (c *Client) WithContext(ctx context.Context) *Client {
	return &Client{
		client: c.client,
		ctx:    ctx,
	}
}

// GetRepository retrieves a repository by owner and name
func (c *Client) GetRepository(owner, name string) (*Repository, error) {
	repo, _, err := c.client.Repositories.Get(c.ctx, owner, name)
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return c.convertRepository(repo), nil
}

// CreateRepository creates a new repository for the authenticated user
func (c *Client) CreateRepository(config RepositoryConfig) (*Repository, error) {
	repo := &github.Repository{
		Name:        github.String(config.Name),
		Description: github.String(config.Description),
		Private:     github.Bool(config.Private),
	}

	created, _, err := c.client.Repositories.Create(c.ctx, "", repo)
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("repository %s", config.Name))
	}

	// Topics cannot be set on the creation request; they need a
	// follow-up call against the created resource.
	if len(config.Topics) > 0 {
		if err := c.ReplaceTopics(created.GetOwner().GetLogin(), created.GetName(), config.Topics); err != nil {
			return c.convertRepository(created), err
		}
		created.Topics = config.Topics
	}

	return c.convertRepository(created), nil
}

// DeleteRepository deletes a repository by owner and name
func (c *Client) DeleteRepository(owner, name string) error {
	_, err := c.client.Repositories.Delete(c.ctx, owner, name)
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}
	return nil
}

// ListRepositories lists all repositories of the authenticated user.
// Pages are fetched until the API reports no next page or a page comes
// back empty.
func (c *Client) ListRepositories() ([]Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "full_name",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []Repository
	for {
		repos, resp, err := c.client.Repositories.ListByAuthenticatedUser(c.ctx, opts)
		if err != nil {
			return nil, WrapAPIError(err, "repository list")
		}

		if len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			all = append(all, *c.convertRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ReplaceTopics replaces the full set of topics on a repository
func (c *Client) ReplaceTopics(owner, name string, topics []string) error {
	_, _, err := c.client.Repositories.ReplaceAllTopics(c.ctx, owner, name, topics)
	if err != nil {
		return WrapAPIError(err, fmt.Sprintf("topics for repository %s/%s", owner, name))
	}
	return nil
}

// GetGitignoreTemplate fetches the body of a named gitignore template
func (c *Client) GetGitignoreTemplate(name string) (string, error) {
	tmpl, _, err := c.client.Gitignores.Get(c.ctx, name)
	if err != nil {
		return "", WrapAPIError(err, fmt.Sprintf("gitignore template %s", name))
	}
	return tmpl.GetSource(), nil
}

// License holds the resolved name and body of a license template
type License struct {
	Key  string
	Name string
	Body string
}

// GetLicense fetches a license template by its SPDX-ish key (e.g. "mit")
func (c *Client) GetLicense(key string) (*License, error) {
	lic, _, err := c.client.Licenses.Get(c.ctx, key)
	if err != nil {
		return nil, WrapAPIError(err, fmt.Sprintf("license %s", key))
	}

	return &License{
		Key:  lic.GetKey(),
		Name: lic.GetName(),
		Body: lic.GetBody(),
	}, nil
}

// convertRepository converts a GitHub API repository to our internal type
func (c *Client) convertRepository(repo *github.Repository) *Repository {
	return &Repository{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Private:       repo.GetPrivate(),
		Topics:        repo.Topics,
		HTMLURL:       repo.GetHTMLURL(),
		CloneURL:      repo.GetCloneURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
	}
}

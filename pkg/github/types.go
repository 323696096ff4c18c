package github

import "time"

// Repository represents a GitHub repository as returned by the API
type Repository struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	FullName      string    `json:"full_name"`
	Description   string    `json:"description"`
	Private       bool      `json:"private"`
	Topics        []string  `json:"topics"`
	HTMLURL       string    `json:"html_url"`
	CloneURL      string    `json:"clone_url"`
	DefaultBranch string    `json:"default_branch"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Visibility returns the human-readable visibility of the repository
func (r *Repository) Visibility() string {
	if r.Private {
		return "private"
	}
	return "public"
}

// RepositoryConfig describes a repository to be created
type RepositoryConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Private     bool     `yaml:"private"`
	Gitignore   string   `yaml:"gitignore,omitempty"`
	License     string   `yaml:"license,omitempty"`
	Topics      []string `yaml:"topics,omitempty"`
}

// Validate performs local validation of the repository configuration
func (c *RepositoryConfig) Validate() error {
	if err := ValidateRepoName(c.Name); err != nil {
		return err
	}

	if len(c.Description) > 350 {
		return &ValidationError{
			Field:   "description",
			Message: "description must be 350 characters or less",
		}
	}

	for _, topic := range c.Topics {
		if err := validateTopic(topic); err != nil {
			return err
		}
	}

	return nil
}

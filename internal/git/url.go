package git

import (
	"fmt"
	"strings"
)

// CloneURL builds the HTTPS clone URL for a GitHub repository
func CloneURL(owner, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s.git", owner, name)
}

// WebURL builds the browser URL for a GitHub repository
func WebURL(owner, name string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, name)
}

// RepoNameFromURL extracts the repository name from a git URL
func RepoNameFromURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")
	url = strings.TrimSuffix(url, ".git")

	// SSH URLs use a colon between host and path
	if i := strings.LastIndex(url, ":"); i >= 0 && !strings.Contains(url[i:], "/") {
		return url[i+1:]
	}

	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

// SplitOwnerRepo parses "owner/name" or a GitHub URL into its parts.
// A bare "name" comes back with an empty owner.
func SplitOwnerRepo(s string) (owner, name string, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".git")
	s = strings.TrimPrefix(s, "https://github.com/")
	s = strings.TrimPrefix(s, "http://github.com/")
	s = strings.TrimPrefix(s, "git@github.com:")

	if s == "" {
		return "", "", fmt.Errorf("repository name is required")
	}

	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		return "", parts[0], nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid repository %q: expected owner/name", s)
		}
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", s)
	}
}

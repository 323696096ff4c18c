package github

import (
	"fmt"
	"strings"
)

// MaxRepoNameLength is the maximum repository name length accepted by GitHub
const MaxRepoNameLength = 100

// ValidateRepoName checks that a repository name uses the character set
// and length GitHub accepts: 1-100 characters from [A-Za-z0-9._-].
func ValidateRepoName(name string) error {
	if name == "" {
		return &ValidationError{
			Field:   "name",
			Message: "repository name is required",
		}
	}

	if len(name) > MaxRepoNameLength {
		return &ValidationError{
			Field:   "name",
			Value:   name,
			Message: fmt.Sprintf("repository name must be %d characters or less", MaxRepoNameLength),
		}
	}

	if name == "." || name == ".." {
		return &ValidationError{
			Field:   "name",
			Value:   name,
			Message: "repository name cannot be '.' or '..'",
		}
	}

	for _, r := range name {
		if !isRepoNameRune(r) {
			return &ValidationError{
				Field:   "name",
				Value:   name,
				Message: fmt.Sprintf("repository name contains invalid character %q: only letters, digits, '-', '_' and '.' are allowed", r),
			}
		}
	}

	return nil
}

func isRepoNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}

// validateTopic checks a single repository topic against GitHub's rules:
// lowercase letters, digits and hyphens, starting with a letter or digit,
// at most 50 characters.
func validateTopic(topic string) error {
	if topic == "" {
		return &ValidationError{
			Field:   "topics",
			Message: "topic cannot be empty",
		}
	}

	if len(topic) > 50 {
		return &ValidationError{
			Field:   "topics",
			Value:   topic,
			Message: "topic must be 50 characters or less",
		}
	}

	if strings.HasPrefix(topic, "-") {
		return &ValidationError{
			Field:   "topics",
			Value:   topic,
			Message: "topic must start with a letter or digit",
		}
	}

	for _, r := range topic {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		if !valid {
			return &ValidationError{
				Field:   "topics",
				Value:   topic,
				Message: fmt.Sprintf("topic contains invalid character %q: only lowercase letters, digits and hyphens are allowed", r),
			}
		}
	}

	return nil
}

// ParseTopics splits a comma-separated topic list, trims whitespace and
// drops empty entries.
func ParseTopics(s string) []string {
	if s == "" {
		return nil
	}

	var topics []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(strings.ToLower(t))
		if t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

package creds

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// credentialFileMode keeps the stored token readable by the owner only
const credentialFileMode = 0o600

// Credential is the stored GitHub identity: the account login and its
// personal access token.
type Credential struct {
	Username string
	Token    string
}

// Store reads and writes the credential file
type Store struct {
	path string
}

// NewStore creates a store backed by the default credential file path
func NewStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{path: path}, nil
}

// NewStoreAt creates a store backed by a specific file path
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default credential file location
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".repo", "credentials"), nil
}

// Path returns the file the store operates on
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a credential file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the stored credential. A missing file yields a structured
// missing-credentials error telling the user to run setup.
func (s *Store) Load() (*Credential, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, &Error{
			Type:    ErrorTypeMissingCredentials,
			Message: "no stored GitHub credentials found",
			TroubleshootingSteps: []string{
				"Run 'repo setup' to configure your GitHub username and token",
				"Or set the GITHUB_TOKEN environment variable",
			},
		}
	}

	file, err := ini.Load(s.path)
	if err != nil {
		return nil, ClassifyError(err)
	}

	section := file.Section("github")
	cred := &Credential{
		Username: strings.TrimSpace(section.Key("username").String()),
		Token:    strings.TrimSpace(section.Key("token").String()),
	}

	if cred.Token == "" {
		return nil, &Error{
			Type:    ErrorTypeInvalidCredentials,
			Message: fmt.Sprintf("credential file %s has no token", s.path),
			TroubleshootingSteps: []string{
				"Run 'repo setup' to reconfigure your credentials",
			},
		}
	}

	return cred, nil
}

// Save writes the credential file with owner-only permissions,
// overwriting any previous content.
func (s *Store) Save(cred *Credential) error {
	if cred == nil || cred.Token == "" {
		return &Error{
			Type:    ErrorTypeInvalidCredentials,
			Message: "cannot save an empty token",
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return ClassifyError(err)
	}

	file := ini.Empty()
	section := file.Section("github")
	section.Key("username").SetValue(cred.Username)
	section.Key("token").SetValue(cred.Token)

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to serialize credentials: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), credentialFileMode); err != nil {
		return ClassifyError(err)
	}

	// WriteFile does not change the mode of an existing file.
	if err := os.Chmod(s.path, credentialFileMode); err != nil {
		return ClassifyError(err)
	}

	return nil
}

// Remove deletes the credential file
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return ClassifyError(err)
	}
	return nil
}

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func getProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "../.."
	}
	// Walk up until we find go.mod
	for dir != "/" {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		dir = filepath.Dir(dir)
	}
	return "../.."
}

func TestCLIIntegration(t *testing.T) {
	// Use pre-built binary from CI or build locally
	binaryPath := os.Getenv("REPO_BINARY")
	if binaryPath == "" {
		root := getProjectRoot()
		binaryPath = filepath.Join(t.TempDir(), "repo-test")

		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = root
		var buildOut bytes.Buffer
		buildCmd.Stdout = &buildOut
		buildCmd.Stderr = &buildOut
		if err := buildCmd.Run(); err != nil {
			t.Fatalf("Failed to build binary: %v\nOutput: %s", err, buildOut.String())
		}
	}

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "no arguments (shows help)",
			args:     []string{},
			expected: "repo",
		},
		{
			name:     "help command",
			args:     []string{"--help"},
			expected: "GitHub",
		},
		{
			name:     "create help",
			args:     []string{"create", "--help"},
			expected: "--gitignore",
		},
		{
			name:     "delete help",
			args:     []string{"delete", "--help"},
			expected: "confirmation",
		},
		{
			name:     "clone help",
			args:     []string{"clone", "--help"},
			expected: "--clean",
		},
		{
			name:     "setup help",
			args:     []string{"setup", "--help"},
			expected: "token",
		},
		{
			name:     "version command",
			args:     []string{"version"},
			expected: "repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)

			var out bytes.Buffer
			cmd.Stdout = &out
			cmd.Stderr = &out

			// Help and version must not require credentials
			cmd.Env = append(os.Environ(), "GITHUB_TOKEN=", "REPO_GITHUB_TOKEN=")

			if err := cmd.Run(); err != nil {
				t.Fatalf("Command failed: %v\nOutput: %s", err, out.String())
			}

			if !strings.Contains(out.String(), tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, out.String())
			}
		})
	}
}

func TestCLIUnknownCommand(t *testing.T) {
	binaryPath := os.Getenv("REPO_BINARY")
	if binaryPath == "" {
		root := getProjectRoot()
		binaryPath = filepath.Join(t.TempDir(), "repo-test")

		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = root
		if out, err := buildCmd.CombinedOutput(); err != nil {
			t.Fatalf("Failed to build binary: %v\nOutput: %s", err, out)
		}
	}

	cmd := exec.Command(binaryPath, "frobnicate")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err == nil {
		t.Error("Expected non-zero exit for unknown command")
	}
}

// Package git shells out to the local git binary for working-copy
// operations. Pattern inspired by github.com/cli/cli's git client.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Client wraps git subprocess invocations for a single repository directory
type Client struct {
	GitPath string // Path to the git executable
	RepoDir string // Working directory for commands, empty means cwd
}

// GitError carries the exit status and stderr of a failed git command
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
	err      error
}

// Error implements the error interface
func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed (exit %d): %s", strings.Join(e.Args, " "), e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	if e.err != nil {
		return fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.err)
	}
	return fmt.Sprintf("git %s failed (exit %d)", strings.Join(e.Args, " "), e.ExitCode)
}

// Unwrap returns the underlying exec error
func (e *GitError) Unwrap() error {
	return e.err
}

// NewClient creates a git client operating in the current directory
func NewClient() (*Client, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git executable not found in PATH: %w", err)
	}

	return &Client{GitPath: gitPath}, nil
}

// NewClientForRepo creates a git client operating in the given directory
func NewClientForRepo(repoDir string) (*Client, error) {
	c, err := NewClient()
	if err != nil {
		return nil, err
	}
	c.RepoDir = repoDir
	return c, nil
}

// Command creates a git command bound to the client's repo directory
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)
	if c.RepoDir != "" {
		cmd.Dir = c.RepoDir
	}
	return cmd
}

// run executes a git command, converting failures into *GitError
func (c *Client) run(ctx context.Context, args ...string) error {
	_, err := c.output(ctx, args...)
	return err
}

// output executes a git command and returns its stdout
func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	cmd := c.Command(ctx, args...)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		gitErr := &GitError{
			Args:     args,
			Stderr:   stderr.String(),
			ExitCode: -1,
			err:      err,
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			gitErr.ExitCode = exitErr.ExitCode()
		}
		return "", gitErr
	}

	return string(out), nil
}

// runInteractive executes a git command with stdio attached, so the user
// sees progress output (clone, push).
func (c *Client) runInteractive(ctx context.Context, args ...string) error {
	cmd := c.Command(ctx, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	var stderr strings.Builder
	cmd.Stderr = &prefixlessWriter{buf: &stderr}

	if err := cmd.Run(); err != nil {
		gitErr := &GitError{
			Args:     args,
			Stderr:   stderr.String(),
			ExitCode: -1,
			err:      err,
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			gitErr.ExitCode = exitErr.ExitCode()
		}
		return gitErr
	}
	return nil
}

// prefixlessWriter tees stderr to the terminal while keeping a copy for
// the error message.
type prefixlessWriter struct {
	buf *strings.Builder
}

func (w *prefixlessWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	return os.Stderr.Write(p)
}

// Init initializes a new repository with the given initial branch
func (c *Client) Init(ctx context.Context, branch string) error {
	return c.run(ctx, "init", "--initial-branch", branch)
}

// Add stages the given paths, or everything when none are given
func (c *Client) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add"}, paths...)
	if len(paths) == 0 {
		args = append(args, "--all")
	}
	return c.run(ctx, args...)
}

// Commit records a commit with the given message
func (c *Client) Commit(ctx context.Context, message string) error {
	return c.run(ctx, "commit", "-m", message)
}

// SetBranch renames the current branch
func (c *Client) SetBranch(ctx context.Context, name string) error {
	return c.run(ctx, "branch", "-M", name)
}

// AddRemote registers a remote by name and URL
func (c *Client) AddRemote(ctx context.Context, name, url string) error {
	return c.run(ctx, "remote", "add", name, url)
}

// Push pushes the given branch to the remote, setting the upstream
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	return c.runInteractive(ctx, "push", "-u", remote, branch)
}

// Clone clones the repository URL into targetPath
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath string) error {
	return c.runInteractive(ctx, "clone", cloneURL, targetPath)
}

// IsWorkTree reports whether the client's directory is inside a git work tree
func (c *Client) IsWorkTree(ctx context.Context) bool {
	out, err := c.output(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// IsClean reports whether the work tree has no uncommitted changes
func (c *Client) IsClean(ctx context.Context) (bool, error) {
	out, err := c.output(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// CurrentBranch returns the checked-out branch name
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}

	branch := strings.TrimSpace(out)
	if branch == "HEAD" {
		return "", fmt.Errorf("detached HEAD state, check out a branch before pushing")
	}
	return branch, nil
}

// RemoteURL returns the URL of the named remote
func (c *Client) RemoteURL(ctx context.Context, remote string) (string, error) {
	out, err := c.output(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("no %q remote configured: %w", remote, err)
	}
	return strings.TrimSpace(out), nil
}

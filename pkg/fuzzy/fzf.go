package fuzzy

import (
	"fmt"
	"io"
	"os"
	"strings"

	fzf "github.com/junegunn/fzf/src"
)

// descriptionSeparator separates value from description in fzf rows
const descriptionSeparator = "  │  "

// Runner defines the interface for running fzf
type Runner interface {
	Run(opts *fzf.Options) (int, error)
}

// DefaultRunner implements Runner using the real fzf library
type DefaultRunner struct{}

// Run executes fzf with the given options
func (r *DefaultRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// FzfFinder implements fuzzy finding using the embedded fzf library
type FzfFinder struct {
	options []Option
	prompt  string
	runner  Runner
}

// NewFzf creates a new fzf-backed finder
func NewFzf(prompt string) *FzfFinder {
	return &FzfFinder{
		prompt: prompt,
		runner: &DefaultRunner{},
	}
}

// NewFzfWithRunner creates an fzf finder with a custom runner (for testing)
func NewFzfWithRunner(prompt string, runner Runner) *FzfFinder {
	return &FzfFinder{
		prompt: prompt,
		runner: runner,
	}
}

// SetOptions sets the available options for selection
func (f *FzfFinder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// SetPrompt sets the display prompt
func (f *FzfFinder) SetPrompt(prompt string) {
	f.prompt = prompt
}

// Select runs fzf over the options and returns the chosen value. When fzf
// cannot run (no TTY), it falls back to the numbered finder.
func (f *FzfFinder) Select() (string, error) {
	if len(f.options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	tmpFile, err := os.CreateTemp("", "repo-fzf-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
	}()

	for _, option := range f.options {
		row := option.Value
		if option.Description != "" {
			row = option.Value + descriptionSeparator + option.Description
		}
		if _, err := fmt.Fprintln(tmpFile, row); err != nil {
			return "", fmt.Errorf("failed to write option to file: %w", err)
		}
	}

	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}

	args := []string{
		"--prompt=" + f.prompt + " ",
		"--height=12",
		"--layout=default",
		"--no-multi",
		"--cycle",
		"--no-mouse",
		"--border=none",
	}

	opts, err := fzf.ParseOptions(true, args)
	if err != nil {
		return "", fmt.Errorf("failed to parse fzf options: %w", err)
	}

	// fzf reads candidates from stdin and prints the selection on
	// stdout, so both get swapped around the run.
	originalStdin := os.Stdin
	defer func() { os.Stdin = originalStdin }()

	input, err := os.Open(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to open temporary file for reading: %w", err)
	}
	defer func() { _ = input.Close() }()
	os.Stdin = input

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create pipe: %w", err)
	}
	defer func() { _ = r.Close() }()
	os.Stdout = w

	exitCode, runErr := f.runner.Run(opts)

	_ = w.Close()
	os.Stdout = originalStdout

	if runErr != nil {
		return f.fallbackSelect()
	}

	if exitCode != fzf.ExitOk {
		return "", fmt.Errorf("selection cancelled")
	}

	result, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read fzf result: %w", err)
	}

	selected := strings.TrimSpace(string(result))
	if selected == "" {
		return "", fmt.Errorf("no selection made")
	}

	value := strings.TrimSpace(strings.Split(selected, descriptionSeparator)[0])
	return value, nil
}

// fallbackSelect degrades to the numbered finder when fzf is unavailable
func (f *FzfFinder) fallbackSelect() (string, error) {
	finder := New(f.prompt)
	finder.SetOptions(f.options)
	return finder.Select()
}

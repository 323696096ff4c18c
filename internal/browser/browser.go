// Package browser opens repository URLs in the platform's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener defines the interface for opening URLs in the default browser
type Opener interface {
	Open(url string) error
}

// DefaultOpener implements cross-platform browser opening
type DefaultOpener struct{}

// NewOpener creates a new browser opener instance
func NewOpener() *DefaultOpener {
	return &DefaultOpener{}
}

// Open opens the specified URL in the default browser
func (b *DefaultOpener) Open(url string) error {
	cmd, err := openCommand(url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

func openCommand(url string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

package browser

import (
	"runtime"
	"strings"
	"testing"
)

func TestNewOpener(t *testing.T) {
	opener := NewOpener()
	if opener == nil {
		t.Error("NewOpener() returned nil")
	}
}

func TestOpenCommand(t *testing.T) {
	cmd, err := openCommand("https://github.com/octocat/hello-world")

	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		if err != nil {
			t.Fatalf("Expected no error on %s, got: %v", runtime.GOOS, err)
		}
		if cmd == nil {
			t.Fatal("Expected command, got nil")
		}

		joined := strings.Join(cmd.Args, " ")
		if !strings.Contains(joined, "https://github.com/octocat/hello-world") {
			t.Errorf("Expected URL in command args, got: %v", cmd.Args)
		}
	default:
		if err == nil {
			t.Errorf("Expected error on unsupported platform %s", runtime.GOOS)
		}
	}
}

// MockOpener records opened URLs for command tests
type MockOpener struct {
	OpenFunc func(url string) error
	Calls    []string
}

func (m *MockOpener) Open(url string) error {
	m.Calls = append(m.Calls, url)
	if m.OpenFunc != nil {
		return m.OpenFunc(url)
	}
	return nil
}

func TestMockOpener(t *testing.T) {
	mock := &MockOpener{}

	if err := mock.Open("https://example.com"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(mock.Calls) != 1 || mock.Calls[0] != "https://example.com" {
		t.Errorf("Expected recorded call, got: %v", mock.Calls)
	}
}

package fuzzy

import (
	"testing"
)

func TestNew(t *testing.T) {
	prompt := "Select repository:"
	finder := New(prompt)

	if finder == nil {
		t.Fatal("New should return a non-nil finder")
	}

	if finder.prompt != prompt {
		t.Errorf("Expected prompt '%s', got '%s'", prompt, finder.prompt)
	}

	if len(finder.options) != 0 {
		t.Errorf("Expected 0 options, got %d", len(finder.options))
	}
}

func TestAddOption(t *testing.T) {
	finder := New("Test")

	finder.AddOption("octocat/hello-world", "public")
	finder.AddOption("octocat/secrets", "private")

	if len(finder.options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(finder.options))
	}

	if finder.options[0].Value != "octocat/hello-world" {
		t.Errorf("Expected first option value 'octocat/hello-world', got '%s'", finder.options[0].Value)
	}

	if finder.options[1].Description != "private" {
		t.Errorf("Expected second option description 'private', got '%s'", finder.options[1].Description)
	}
}

func TestSetOptionsCopies(t *testing.T) {
	finder := New("Test")

	source := []Option{
		{Value: "a", Description: "first"},
		{Value: "b", Description: "second"},
	}
	finder.SetOptions(source)

	source[0].Value = "mutated"

	if finder.options[0].Value != "a" {
		t.Error("Expected SetOptions to copy the slice")
	}
}

func TestSelectNoOptions(t *testing.T) {
	finder := New("Test")

	if _, err := finder.Select(); err == nil {
		t.Error("Expected error when selecting with no options")
	}
}

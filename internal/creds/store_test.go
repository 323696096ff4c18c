package creds

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStoreAt(filepath.Join(tempDir, "credentials"))

	cred := &Credential{Username: "octocat", Token: "ghp_testtoken123"}
	if err := store.Save(cred); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Username != "octocat" {
		t.Errorf("Expected username octocat, got %s", loaded.Username)
	}
	if loaded.Token != "ghp_testtoken123" {
		t.Errorf("Expected token ghp_testtoken123, got %s", loaded.Token)
	}
}

func TestSaveFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on Windows")
	}

	tempDir := t.TempDir()
	store := NewStoreAt(filepath.Join(tempDir, "credentials"))

	if err := store.Save(&Credential{Username: "octocat", Token: "secret"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected credential file mode 0600, got %o", perm)
	}
}

func TestSaveOverwriteKeepsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on Windows")
	}

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "credentials")

	// Pre-existing file with loose permissions must be tightened.
	if err := os.WriteFile(path, []byte("[github]\ntoken = old\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	store := NewStoreAt(path)
	if err := store.Save(&Credential{Username: "octocat", Token: "newtoken"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected mode 0600 after overwrite, got %o", perm)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Token != "newtoken" {
		t.Errorf("Expected overwritten token, got %s", loaded.Token)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "credentials"))

	_, err := store.Load()
	if err == nil {
		t.Fatal("Expected error for missing credential file")
	}

	var credErr *Error
	if !errors.As(err, &credErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if credErr.Type != ErrorTypeMissingCredentials {
		t.Errorf("Expected missing_credentials type, got %s", credErr.Type)
	}
	if credErr.GetTroubleshootingMessage() == "" {
		t.Error("Expected troubleshooting steps for missing credentials")
	}
}

func TestLoadEmptyToken(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "credentials")

	if err := os.WriteFile(path, []byte("[github]\nusername = octocat\n"), 0o600); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	store := NewStoreAt(path)
	_, err := store.Load()
	if err == nil {
		t.Fatal("Expected error for credential file without token")
	}

	var credErr *Error
	if !errors.As(err, &credErr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if credErr.Type != ErrorTypeInvalidCredentials {
		t.Errorf("Expected invalid_credentials type, got %s", credErr.Type)
	}
}

func TestSaveEmptyToken(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "credentials"))

	if err := store.Save(&Credential{Username: "octocat"}); err == nil {
		t.Error("Expected error when saving an empty token")
	}
	if err := store.Save(nil); err == nil {
		t.Error("Expected error when saving nil credential")
	}
}

func TestExistsAndRemove(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "credentials"))

	if store.Exists() {
		t.Error("Expected Exists to be false before Save")
	}

	if err := store.Save(&Credential{Username: "octocat", Token: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !store.Exists() {
		t.Error("Expected Exists to be true after Save")
	}

	if err := store.Remove(); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if store.Exists() {
		t.Error("Expected Exists to be false after Remove")
	}

	// Removing again is not an error
	if err := store.Remove(); err != nil {
		t.Errorf("Expected no error removing a missing file, got: %v", err)
	}
}

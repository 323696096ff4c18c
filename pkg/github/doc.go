// Package github wraps the GitHub REST v3 API for the repo CLI.
// It covers repository CRUD, paginated listing, topic replacement,
// gitignore/license template lookup and token validation.
//
// The package includes:
// - Client, a thin wrapper over google/go-github
// - AuthManager for token resolution and validation
// - A status-code error taxonomy mapped to user-facing messages
// - Local validation of repository names and topics
package github

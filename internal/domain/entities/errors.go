package entities

import "errors"

var (
	// ErrInvalidReference is returned when a string is not a repository URL of the supported host.
	ErrInvalidReference = errors.New("invalid GitHub URL format")

	// ErrNotFound is returned when the repository metadata could not be fetched.
	// Private repositories are indistinguishable from missing ones.
	ErrNotFound = errors.New("repository not found or not accessible")

	// ErrMissingInformation is returned when a record lacks the fields a document needs.
	ErrMissingInformation = errors.New("missing information")
)

package entities

// RepositoryMetadata is a read-only snapshot of the repository-info endpoint.
// Nil pointers mean the API returned no value.
type RepositoryMetadata struct {
	Name            string
	Description     *string
	PrimaryLanguage *string
	Topics          []string
	HomepageURL     *string
	LicenseName     *string
	StarCount       int
	ForkCount       int
	CanonicalURL    string
}

// Language returns the primary language or an empty string.
func (m *RepositoryMetadata) Language() string {
	if m == nil || m.PrimaryLanguage == nil {
		return ""
	}
	return *m.PrimaryLanguage
}

// EntryKind distinguishes files from directories in a listing.
type EntryKind string

const (
	EntryKindFile      EntryKind = "file"
	EntryKindDirectory EntryKind = "dir"
)

// DirectoryEntry is one item of the repository root listing.
type DirectoryEntry struct {
	Name string
	Kind EntryKind
}

// IsDir reports whether the entry is a directory.
func (e DirectoryEntry) IsDir() bool { return e.Kind == EntryKindDirectory }

// IsFile reports whether the entry is a regular file.
func (e DirectoryEntry) IsFile() bool { return e.Kind == EntryKindFile }

//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// ListingBuilder assembles a root listing in insertion order.
type ListingBuilder struct {
	entries []entities.DirectoryEntry
}

// NewListingBuilder creates an empty listing builder.
func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{entries: []entities.DirectoryEntry{}}
}

// WithFiles appends file entries.
func (b *ListingBuilder) WithFiles(names ...string) *ListingBuilder {
	for _, name := range names {
		b.entries = append(b.entries, entities.DirectoryEntry{Name: name, Kind: entities.EntryKindFile})
	}
	return b
}

// WithDirs appends directory entries.
func (b *ListingBuilder) WithDirs(names ...string) *ListingBuilder {
	for _, name := range names {
		b.entries = append(b.entries, entities.DirectoryEntry{Name: name, Kind: entities.EntryKindDirectory})
	}
	return b
}

// Build returns a copy of the listing.
func (b *ListingBuilder) Build() []entities.DirectoryEntry {
	return append([]entities.DirectoryEntry(nil), b.entries...)
}

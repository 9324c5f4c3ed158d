//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

// SpyDataSourceRepository implements repositories.DataSourceRepository as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyDataSourceRepository struct {
	// --- identity ---
	SourceName string

	// --- FetchRepositoryMetadata ---
	Metadata    *entities.RepositoryMetadata
	MetadataErr error

	// --- FetchRootListing ---
	Listing []entities.DirectoryEntry

	// --- FetchFileContent ---
	FileContents map[string]string // path -> content

	// --- spy ---
	mu            sync.Mutex
	MetadataCalls int
	ListingCalls  int
	FetchedPaths  []string
}

var _ repositories.DataSourceRepository = (*SpyDataSourceRepository)(nil)

func (s *SpyDataSourceRepository) Name() string {
	if s.SourceName == "" {
		return "spy"
	}
	return s.SourceName
}

func (s *SpyDataSourceRepository) FetchRepositoryMetadata(
	_ context.Context, _ entities.RepositoryReference,
) (*entities.RepositoryMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MetadataCalls++
	if s.MetadataErr != nil {
		return nil, s.MetadataErr
	}
	return s.Metadata, nil
}

func (s *SpyDataSourceRepository) FetchRootListing(
	_ context.Context, _ entities.RepositoryReference,
) []entities.DirectoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListingCalls++
	if s.Listing == nil {
		return []entities.DirectoryEntry{}
	}
	return s.Listing
}

func (s *SpyDataSourceRepository) FetchFileContent(
	_ context.Context, _ entities.RepositoryReference, path string,
) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FetchedPaths = append(s.FetchedPaths, path)
	content, ok := s.FileContents[path]
	return content, ok
}

// TotalCalls returns the number of calls made against the data source.
func (s *SpyDataSourceRepository) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.MetadataCalls + s.ListingCalls + len(s.FetchedPaths)
}

// Fetched reports whether the given path was requested.
func (s *SpyDataSourceRepository) Fetched(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fetched := range s.FetchedPaths {
		if fetched == path {
			return true
		}
	}
	return false
}

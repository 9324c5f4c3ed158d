package repositories

import (
	"context"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// DataSourceRepository abstracts the read-only hosting API the analysis
// pipeline draws from. Only metadata failures are errors; the listing and
// file reads degrade to "nothing known".
type DataSourceRepository interface {
	// Name returns the data source identifier (e.g. "github").
	Name() string

	// FetchRepositoryMetadata returns the repository-info snapshot, or an error
	// wrapping entities.ErrNotFound when the repository is missing or inaccessible.
	FetchRepositoryMetadata(
		ctx context.Context,
		ref entities.RepositoryReference,
	) (*entities.RepositoryMetadata, error)

	// FetchRootListing returns the root directory entries in API order.
	// Any failure yields an empty listing.
	FetchRootListing(ctx context.Context, ref entities.RepositoryReference) []entities.DirectoryEntry

	// FetchFileContent returns the decoded content of a file, or false when it
	// could not be read.
	FetchFileContent(ctx context.Context, ref entities.RepositoryReference, path string) (string, bool)
}

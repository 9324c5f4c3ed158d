package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const (
	dataSourceName  = "github"
	contentTypeDir  = "dir"
	contentTypeFile = "file"
)

// GitHubDataSourceRepository implements repositories.DataSourceRepository
// against the unauthenticated GitHub REST API.
type GitHubDataSourceRepository struct {
	client *gh.Client
	files  *lru.Cache[string, string]
}

// NewDataSourceRepository creates a GitHub data source from the settings.
func NewDataSourceRepository(settings *entities.Settings) (repositories.DataSourceRepository, error) {
	baseURL, err := url.Parse(withTrailingSlash(settings.APIBaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid api_base_url %q: %w", settings.APIBaseURL, err)
	}

	files, err := lru.New[string, string](settings.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cache: %w", err)
	}

	client := gh.NewClient(&http.Client{Timeout: settings.HTTPTimeout})
	client.BaseURL = baseURL

	return &GitHubDataSourceRepository{
		client: client,
		files:  files,
	}, nil
}

func (p *GitHubDataSourceRepository) Name() string { return dataSourceName }

func (p *GitHubDataSourceRepository) FetchRepositoryMetadata(
	ctx context.Context,
	ref entities.RepositoryReference,
) (*entities.RepositoryMetadata, error) {
	repo, _, err := p.client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrNotFound, ref, err)
	}

	metadata := &entities.RepositoryMetadata{
		Name:            repo.GetName(),
		Description:     repo.Description,
		PrimaryLanguage: repo.Language,
		Topics:          repo.Topics,
		HomepageURL:     repo.Homepage,
		StarCount:       repo.GetStargazersCount(),
		ForkCount:       repo.GetForksCount(),
		CanonicalURL:    repo.GetHTMLURL(),
	}
	if repo.License != nil {
		metadata.LicenseName = repo.License.Name
	}

	return metadata, nil
}

func (p *GitHubDataSourceRepository) FetchRootListing(
	ctx context.Context,
	ref entities.RepositoryReference,
) []entities.DirectoryEntry {
	_, directoryContent, _, err := p.client.Repositories.GetContents(
		ctx, ref.Owner, ref.Name, "",
		&gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		logger.Warnf("[github] Failed to list %s: %v", ref, err)
		return []entities.DirectoryEntry{}
	}

	entries := make([]entities.DirectoryEntry, 0, len(directoryContent))
	for _, item := range directoryContent {
		entries = append(entries, entities.DirectoryEntry{
			Name: item.GetName(),
			Kind: entryKind(item.GetType()),
		})
	}

	return entries
}

func (p *GitHubDataSourceRepository) FetchFileContent(
	ctx context.Context,
	ref entities.RepositoryReference,
	path string,
) (string, bool) {
	key := ref.String() + ":" + path
	if content, ok := p.files.Get(key); ok {
		return content, true
	}

	fileContent, _, _, err := p.client.Repositories.GetContents(
		ctx, ref.Owner, ref.Name, path,
		&gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		logger.Debugf("[github] Failed to get file %q from %s: %v", path, ref, err)
		return "", false
	}
	if fileContent == nil {
		logger.Debugf("[github] Path %q in %s is a directory, not a file", path, ref)
		return "", false
	}

	content, err := fileContent.GetContent()
	if err != nil {
		logger.Debugf("[github] Failed to decode %q from %s: %v", path, ref, err)
		return "", false
	}

	p.files.Add(key, content)
	return content, true
}

func entryKind(contentType string) entities.EntryKind {
	switch contentType {
	case contentTypeDir:
		return entities.EntryKindDirectory
	case contentTypeFile:
		return entities.EntryKindFile
	default:
		return entities.EntryKind(contentType)
	}
}

func withTrailingSlash(raw string) string {
	if strings.HasSuffix(raw, "/") {
		return raw
	}
	return raw + "/"
}

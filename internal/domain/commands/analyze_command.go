package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/readmegen/internal/domain/analysis"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/readmegen/internal/infrastructure/repositories"
)

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, settings *entities.Settings, opts AnalyzeOptions) (*entities.ProjectRecord, error)
}

// AnalyzeOptions holds runtime options for a single analysis.
type AnalyzeOptions struct {
	URL string
}

// AnalyzeCommand turns a repository URL into a project record:
// locate -> fetch metadata and listing -> profile -> classify and extract.
type AnalyzeCommand struct {
	dataSourceRegistry *infraRepos.DataSourceRegistry
}

// NewAnalyzeCommand creates a new AnalyzeCommand with the given data source registry.
func NewAnalyzeCommand(dataSourceRegistry *infraRepos.DataSourceRegistry) *AnalyzeCommand {
	return &AnalyzeCommand{
		dataSourceRegistry: dataSourceRegistry,
	}
}

// extraction collects the results of the independent extractors. Each
// goroutine writes exactly one field.
type extraction struct {
	projectType    entities.ProjectType
	features       []string
	installCommand string
	usageExample   string
	techStack      []string
	prerequisites  []string
}

// Execute runs the analysis pipeline. Only a malformed URL or an unreachable
// repository is an error; everything else degrades to placeholder content.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts AnalyzeOptions,
) (*entities.ProjectRecord, error) {
	ref, err := entities.ParseRepositoryReference(opts.URL)
	if err != nil {
		return nil, err
	}

	source, err := it.dataSourceRegistry.Get(settings.Provider, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create data source: %w", err)
	}

	logger.Infof("[analyze] Analyzing %s via %s", ref, source.Name())

	metadata, err := source.FetchRepositoryMetadata(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze repository: %w", err)
	}

	listing := source.FetchRootListing(ctx, ref)
	if len(listing) == 0 {
		logger.Warnf("[analyze] No root listing for %s, structure is unknown", ref)
	}

	profile := analysis.AnalyzeStructure(ctx, source, ref, listing)
	logger.Debugf("[analyze] Structure profile: %+v", *profile)

	result, err := extract(ctx, source, ref, metadata, listing, profile)
	if err != nil {
		return nil, err
	}

	record := &entities.ProjectRecord{
		Title:          metadata.Name,
		Tagline:        analysis.GenerateTagline(metadata),
		Description:    analysis.GenerateDescription(metadata),
		ProjectType:    result.projectType,
		Features:       result.features,
		InstallCommand: result.installCommand,
		UsageExample:   result.usageExample,
		DemoURL:        valueOrEmpty(metadata.HomepageURL),
		GitHubURL:      metadata.CanonicalURL,
		License:        valueOrEmpty(metadata.LicenseName),
		TechStack:      result.techStack,
		Prerequisites:  result.prerequisites,
	}

	logger.Infof("[analyze] %s classified as %s", ref, record.ProjectType)
	return record, nil
}

// extract runs the classifier and the extractors concurrently. They only
// read the listing and the profile.
func extract(
	ctx context.Context,
	source repositories.DataSourceRepository,
	ref entities.RepositoryReference,
	metadata *entities.RepositoryMetadata,
	listing []entities.DirectoryEntry,
	profile *entities.StructureProfile,
) (*extraction, error) {
	result := &extraction{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		result.projectType = analysis.Classify(listing, profile)
		return nil
	})
	group.Go(func() error {
		result.features = analysis.ExtractFeatures(metadata, profile)
		return nil
	})
	group.Go(func() error {
		result.installCommand = analysis.GenerateInstallCommand(profile)
		return nil
	})
	group.Go(func() error {
		result.usageExample = analysis.GenerateUsageExample(groupCtx, source, ref, profile)
		return nil
	})
	group.Go(func() error {
		result.techStack = analysis.ExtractTechStack(metadata, listing)
		return nil
	})
	group.Go(func() error {
		result.prerequisites = analysis.ExtractPrerequisites(groupCtx, source, ref, profile)
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}
	return result, nil
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

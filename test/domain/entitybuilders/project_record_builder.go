//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ProjectRecordBuilder helps create test project records with a fluent interface.
type ProjectRecordBuilder struct {
	*testkit.BaseBuilder
	title          string
	tagline        string
	description    string
	projectType    entities.ProjectType
	features       []string
	installCommand string
	usageExample   string
	demoURL        string
	githubURL      string
	license        string
	techStack      []string
	prerequisites  []string
}

// NewProjectRecordBuilder creates a new project record builder with sensible defaults.
func NewProjectRecordBuilder() *ProjectRecordBuilder {
	b := &ProjectRecordBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

func (b *ProjectRecordBuilder) setDefaults() {
	b.title = "widget"
	b.tagline = "A tiny widget"
	b.description = "Widget renders widgets."
	b.projectType = entities.ProjectTypeApplication
	b.features = []string{}
	b.installCommand = "npm install"
	b.usageExample = ""
	b.demoURL = ""
	b.githubURL = ""
	b.license = ""
	b.techStack = []string{}
	b.prerequisites = nil
}

// WithTitle sets the title.
func (b *ProjectRecordBuilder) WithTitle(title string) *ProjectRecordBuilder {
	b.title = title
	return b
}

// WithTagline sets the tagline.
func (b *ProjectRecordBuilder) WithTagline(tagline string) *ProjectRecordBuilder {
	b.tagline = tagline
	return b
}

// WithDescription sets the description.
func (b *ProjectRecordBuilder) WithDescription(description string) *ProjectRecordBuilder {
	b.description = description
	return b
}

// WithProjectType sets the project type.
func (b *ProjectRecordBuilder) WithProjectType(projectType entities.ProjectType) *ProjectRecordBuilder {
	b.projectType = projectType
	return b
}

// WithFeatures sets the feature list.
func (b *ProjectRecordBuilder) WithFeatures(features ...string) *ProjectRecordBuilder {
	b.features = features
	return b
}

// WithInstallCommand sets the install command.
func (b *ProjectRecordBuilder) WithInstallCommand(command string) *ProjectRecordBuilder {
	b.installCommand = command
	return b
}

// WithUsageExample sets the usage example.
func (b *ProjectRecordBuilder) WithUsageExample(example string) *ProjectRecordBuilder {
	b.usageExample = example
	return b
}

// WithDemoURL sets the demo URL.
func (b *ProjectRecordBuilder) WithDemoURL(url string) *ProjectRecordBuilder {
	b.demoURL = url
	return b
}

// WithGitHubURL sets the repository URL.
func (b *ProjectRecordBuilder) WithGitHubURL(url string) *ProjectRecordBuilder {
	b.githubURL = url
	return b
}

// WithLicense sets the license name.
func (b *ProjectRecordBuilder) WithLicense(license string) *ProjectRecordBuilder {
	b.license = license
	return b
}

// WithTechStack sets the technology list.
func (b *ProjectRecordBuilder) WithTechStack(stack ...string) *ProjectRecordBuilder {
	b.techStack = stack
	return b
}

// WithPrerequisites sets the prerequisites.
func (b *ProjectRecordBuilder) WithPrerequisites(prerequisites ...string) *ProjectRecordBuilder {
	b.prerequisites = prerequisites
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *ProjectRecordBuilder) Build() interface{} {
	return b.BuildProjectRecord()
}

// BuildProjectRecord creates the record with a concrete return type.
func (b *ProjectRecordBuilder) BuildProjectRecord() entities.ProjectRecord {
	return entities.ProjectRecord{
		Title:          b.title,
		Tagline:        b.tagline,
		Description:    b.description,
		ProjectType:    b.projectType,
		Features:       append([]string(nil), b.features...),
		InstallCommand: b.installCommand,
		UsageExample:   b.usageExample,
		DemoURL:        b.demoURL,
		GitHubURL:      b.githubURL,
		License:        b.license,
		TechStack:      append([]string(nil), b.techStack...),
		Prerequisites:  append([]string(nil), b.prerequisites...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the ProjectRecordBuilder.
func (b *ProjectRecordBuilder) Clone() testkit.Builder {
	return &ProjectRecordBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		title:          b.title,
		tagline:        b.tagline,
		description:    b.description,
		projectType:    b.projectType,
		features:       append([]string(nil), b.features...),
		installCommand: b.installCommand,
		usageExample:   b.usageExample,
		demoURL:        b.demoURL,
		githubURL:      b.githubURL,
		license:        b.license,
		techStack:      append([]string(nil), b.techStack...),
		prerequisites:  append([]string(nil), b.prerequisites...),
	}
}

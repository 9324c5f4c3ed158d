package entities

// ProjectType is the category a project is classified into.
type ProjectType string

const (
	ProjectTypeLibrary     ProjectType = "library"
	ProjectTypeApplication ProjectType = "application"
	ProjectTypeCLI         ProjectType = "cli"
	ProjectTypeFramework   ProjectType = "framework"
)

const (
	// MaxFeatures bounds the feature list of a record.
	MaxFeatures = 6
	// MaxTechStack bounds the technology list of a record.
	MaxTechStack = 8
)

// ProjectRecord describes a project as it is rendered into a document.
// It is produced by the analysis pipeline or written by hand, and may be
// edited freely before rendering. Empty optional strings mean "absent".
type ProjectRecord struct {
	Title          string      `yaml:"title"`
	Tagline        string      `yaml:"tagline"`
	Description    string      `yaml:"description"`
	ProjectType    ProjectType `yaml:"project_type"`
	Features       []string    `yaml:"features"`
	InstallCommand string      `yaml:"install_command"`
	UsageExample   string      `yaml:"usage_example"`
	DemoURL        string      `yaml:"demo_url,omitempty"`
	GitHubURL      string      `yaml:"github_url,omitempty"`
	License        string      `yaml:"license,omitempty"`
	TechStack      []string    `yaml:"tech_stack"`
	Prerequisites  []string    `yaml:"prerequisites,omitempty"`
}

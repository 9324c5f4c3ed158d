package analysis

import (
	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

var uiFrameworkFeatures = []struct {
	framework string
	feature   string
}{
	{framework: FrameworkReact, feature: "Modern React components with hooks"},
	{framework: FrameworkVue, feature: "Reactive Vue.js components"},
	{framework: FrameworkAngular, feature: "Modular Angular architecture"},
	{framework: FrameworkSvelte, feature: "Compiled Svelte components"},
}

// ExtractFeatures lists the project highlights in a fixed order, capped at
// entities.MaxFeatures entries.
func ExtractFeatures(
	metadata *entities.RepositoryMetadata,
	profile *entities.StructureProfile,
) []string {
	features := []string{}

	for _, ui := range uiFrameworkFeatures {
		if profile.HasFramework(ui.framework) {
			features = append(features, ui.feature)
			break
		}
	}
	if metadata.Language() == "TypeScript" {
		features = append(features, "Full TypeScript support")
	}
	if profile.HasTestFolder {
		features = append(features, "Comprehensive test suite")
	}
	if profile.HasDockerfile {
		features = append(features, "Docker containerization support")
	}
	if profile.HasDocsFolder {
		features = append(features, "Detailed documentation")
	}

	features = append(features, "Easy installation and setup", "Production-ready code")

	if len(features) == 0 {
		features = append(features, "Clean and maintainable codebase", "Well-structured project architecture")
	}

	if len(features) > entities.MaxFeatures {
		features = features[:entities.MaxFeatures]
	}
	return features
}

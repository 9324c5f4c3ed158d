package analysis

import (
	"strings"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// ClassificationRule maps a predicate over the listing and profile to a project type.
type ClassificationRule struct {
	Name    string
	Matches func(listing []entities.DirectoryEntry, profile *entities.StructureProfile) bool
	Result  entities.ProjectType
}

// serverFrameworks is the subset of frameworks that marks a project as a framework.
var serverFrameworks = []string{FrameworkExpress, FrameworkFastify, FrameworkNestJS}

// ClassificationRules returns the rules in evaluation order. The first rule
// that matches decides the project type; the last one always matches.
func ClassificationRules() []ClassificationRule {
	return []ClassificationRule{
		{Name: "cli", Matches: looksLikeCLI, Result: entities.ProjectTypeCLI},
		{Name: "library", Matches: looksLikeLibrary, Result: entities.ProjectTypeLibrary},
		{Name: "framework", Matches: usesServerFramework, Result: entities.ProjectTypeFramework},
		{Name: "application", Matches: always, Result: entities.ProjectTypeApplication},
	}
}

// Classify returns the project type of the first matching rule.
func Classify(listing []entities.DirectoryEntry, profile *entities.StructureProfile) entities.ProjectType {
	for _, rule := range ClassificationRules() {
		if rule.Matches(listing, profile) {
			return rule.Result
		}
	}
	return entities.ProjectTypeApplication
}

func looksLikeCLI(listing []entities.DirectoryEntry, _ *entities.StructureProfile) bool {
	for _, entry := range listing {
		if entry.Name == "bin" && entry.IsDir() {
			return true
		}
		name := strings.ToLower(entry.Name)
		if strings.Contains(name, "cli") || strings.Contains(name, "command") {
			return true
		}
	}
	return false
}

func looksLikeLibrary(listing []entities.DirectoryEntry, profile *entities.StructureProfile) bool {
	if !profile.HasPackageJSON || !profile.HasSrcFolder {
		return false
	}
	for _, entry := range listing {
		if strings.Contains(strings.ToLower(entry.Name), "app") {
			return false
		}
	}
	return true
}

func usesServerFramework(_ []entities.DirectoryEntry, profile *entities.StructureProfile) bool {
	for _, framework := range serverFrameworks {
		if profile.HasFramework(framework) {
			return true
		}
	}
	return false
}

func always([]entities.DirectoryEntry, *entities.StructureProfile) bool { return true }

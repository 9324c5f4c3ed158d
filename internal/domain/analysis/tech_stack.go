package analysis

import (
	"strings"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

var extensionTechnologies = map[string]string{
	"ts":    "TypeScript",
	"js":    "JavaScript",
	"py":    "Python",
	"rs":    "Rust",
	"go":    "Go",
	"java":  "Java",
	"cpp":   "C++",
	"c":     "C",
	"php":   "PHP",
	"rb":    "Ruby",
	"kt":    "Kotlin",
	"swift": "Swift",
	"html":  "HTML",
	"css":   "CSS",
	"scss":  "SCSS",
	"yml":   "YAML",
	"yaml":  "YAML",
	"json":  "JSON",
	"md":    "Markdown",
}

var toolMarkers = []struct {
	tool    string
	matches func(name string) bool
}{
	{tool: "Docker", matches: func(name string) bool { return name == "Dockerfile" }},
	{tool: "Webpack", matches: func(name string) bool { return strings.Contains(name, "webpack") }},
	{tool: "Babel", matches: func(name string) bool { return strings.Contains(name, "babel") }},
}

// ExtractTechStack lists the primary language, the languages of root files
// and a few marker tools, without duplicates and capped at entities.MaxTechStack.
func ExtractTechStack(metadata *entities.RepositoryMetadata, listing []entities.DirectoryEntry) []string {
	stack := []string{}
	if language := metadata.Language(); language != "" {
		stack = append(stack, language)
	}

	for _, entry := range listing {
		if !entry.IsFile() {
			continue
		}
		if technology, ok := extensionTechnologies[extension(entry.Name)]; ok {
			stack = append(stack, technology)
		}
	}

	for _, marker := range toolMarkers {
		for _, entry := range listing {
			if marker.matches(entry.Name) {
				stack = append(stack, marker.tool)
				break
			}
		}
	}

	stack = dedupe(stack)
	if len(stack) > entities.MaxTechStack {
		stack = stack[:entities.MaxTechStack]
	}
	return stack
}

// extension returns the lowercased text after the last dot, or the whole
// name when there is none.
func extension(name string) string {
	return strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}

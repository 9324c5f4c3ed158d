package document

import (
	"strings"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

// languageMarkers is checked in order; the first language with a marker in
// the snippet wins.
var languageMarkers = []struct {
	language string
	markers  []string
}{
	{language: "javascript", markers: []string{"import ", "const ", "function "}},
	{language: "python", markers: []string{"def ", "import "}},
	{language: "go", markers: []string{"package ", "func "}},
	{language: "cpp", markers: []string{"#include", "int main"}},
}

// DetectLanguage guesses the fence tag of a code snippet, defaulting to bash.
func DetectLanguage(code string) string {
	for _, candidate := range languageMarkers {
		for _, marker := range candidate.markers {
			if strings.Contains(code, marker) {
				return candidate.language
			}
		}
	}
	return "bash"
}

// categorySection returns the one section specific to the project type.
// Unknown types get the application section.
func categorySection(record entities.ProjectRecord) string {
	switch record.ProjectType {
	case entities.ProjectTypeLibrary:
		return librarySection()
	case entities.ProjectTypeCLI:
		return cliSection(record.Title)
	case entities.ProjectTypeFramework:
		return frameworkSection()
	case entities.ProjectTypeApplication:
		return applicationSection()
	default:
		return applicationSection()
	}
}

func librarySection() string {
	return "## 📚 API Reference\n\n" +
		"### Core Functions\n\n" +
		"Documentation for the main API endpoints and functions will be available here.\n\n" +
		"### Examples\n\n" +
		"Check the [examples](examples/) directory for comprehensive usage examples.\n\n"
}

func cliSection(title string) string {
	command := strings.ToLower(title)
	return "## 🖥 Command Line Usage\n\n" +
		"### Available Commands\n\n" +
		"```bash\n" +
		"# Show help\n" +
		command + " --help\n\n" +
		"# Basic usage\n" +
		command + " [options] <input>\n" +
		"```\n\n"
}

func frameworkSection() string {
	return "## 🏗 Architecture\n\n" +
		"### Core Concepts\n\n" +
		"This framework is built around the following key concepts:\n\n" +
		"- **Component System**: Modular and reusable components\n" +
		"- **Plugin Architecture**: Extensible through plugins\n" +
		"- **Configuration**: Flexible configuration system\n\n" +
		"### Getting Started\n\n" +
		"Check out our [documentation](docs/) for detailed guides and tutorials.\n\n"
}

func applicationSection() string {
	return "## 🎯 Use Cases\n\n" +
		"This application is perfect for:\n\n" +
		"- Teams looking to streamline their workflow\n" +
		"- Developers who need efficient tools\n" +
		"- Organizations seeking scalable solutions\n\n" +
		"## 🔧 Configuration\n\n" +
		"Configuration options and environment setup will be documented here.\n\n"
}

package analysis

import (
	"unicode/utf8"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

const maxTaglineLength = 60

var languageTaglines = map[string]string{
	"JavaScript": "A powerful JavaScript solution for modern development",
	"TypeScript": "Type-safe development with modern TypeScript",
	"Python":     "Elegant Python solution for complex problems",
	"Rust":       "Fast and memory-safe Rust application",
	"Go":         "Efficient and scalable Go application",
	"Java":       "Robust Java application with enterprise features",
}

// GenerateTagline reuses a short description, otherwise picks a tagline for the language.
func GenerateTagline(metadata *entities.RepositoryMetadata) string {
	if metadata.Description != nil && *metadata.Description != "" &&
		utf8.RuneCountInString(*metadata.Description) <= maxTaglineLength {
		return *metadata.Description
	}
	if tagline, ok := languageTaglines[metadata.Language()]; ok {
		return tagline
	}
	return "A modern development solution"
}

// GenerateDescription returns the repository description or a language-based placeholder.
func GenerateDescription(metadata *entities.RepositoryMetadata) string {
	if metadata.Description != nil && *metadata.Description != "" {
		return *metadata.Description
	}
	if language := metadata.Language(); language != "" {
		return "A " + language + " project that provides innovative solutions."
	}
	return "A project that provides innovative solutions."
}

package analysis

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const usageExampleLines = 5

// entryFiles are probed in this order for a usage example.
var entryFiles = []string{"index.js", "index.ts", "main.js", "main.ts", "app.js", "app.ts"}

const genericUsageExample = `// Basic usage example
// Install and run the project following the installation steps above`

// GenerateUsageExample takes the opening lines of the first readable entry
// file, falling back to a templated snippet when none can be fetched.
func GenerateUsageExample(
	ctx context.Context,
	source repositories.DataSourceRepository,
	ref entities.RepositoryReference,
	profile *entities.StructureProfile,
) string {
	for _, filename := range entryFiles {
		content, ok := source.FetchFileContent(ctx, ref, filename)
		if !ok {
			continue
		}
		logger.Debugf("[analyze] Using %s as usage example", filename)
		return ExcerptCode(content, usageExampleLines)
	}

	if profile.HasPackageJSON {
		return fmt.Sprintf(`import { %[1]s } from './%[1]s';

// Basic usage
const result = %[1]s();
console.log(result);`, ref.Name)
	}

	return genericUsageExample
}

// ExcerptCode keeps the first limit lines that are neither blank nor comments.
func ExcerptCode(content string, limit int) string {
	lines := make([]string, 0, limit)
	for _, line := range strings.Split(content, "\n") {
		if len(lines) == limit {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

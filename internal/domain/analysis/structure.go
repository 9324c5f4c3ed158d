package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/domain/repositories"
)

const packageManifest = "package.json"

// Framework names as they appear in the detected-frameworks set.
const (
	FrameworkReact   = "React"
	FrameworkVue     = "Vue.js"
	FrameworkAngular = "Angular"
	FrameworkSvelte  = "Svelte"
	FrameworkNext    = "Next.js"
	FrameworkNuxt    = "Nuxt.js"
	FrameworkExpress = "Express.js"
	FrameworkFastify = "Fastify"
	FrameworkNestJS  = "NestJS"
)

type frameworkKey struct {
	name         string
	dependencies []string
}

// frameworkKeys is checked in order, so the detected set keeps this order.
var frameworkKeys = []frameworkKey{
	{name: FrameworkReact, dependencies: []string{"react"}},
	{name: FrameworkVue, dependencies: []string{"vue"}},
	{name: FrameworkAngular, dependencies: []string{"angular", "@angular/core"}},
	{name: FrameworkSvelte, dependencies: []string{"svelte"}},
	{name: FrameworkNext, dependencies: []string{"next"}},
	{name: FrameworkNuxt, dependencies: []string{"nuxt"}},
	{name: FrameworkExpress, dependencies: []string{"express"}},
	{name: FrameworkFastify, dependencies: []string{"fastify"}},
	{name: FrameworkNestJS, dependencies: []string{"nestjs", "@nestjs/core"}},
}

var manifestMarkers = map[string]func(*entities.StructureProfile){
	"package.json":     func(p *entities.StructureProfile) { p.HasPackageJSON = true },
	"requirements.txt": func(p *entities.StructureProfile) { p.HasRequirementsTxt = true },
	"cargo.toml":       func(p *entities.StructureProfile) { p.HasCargoToml = true },
	"go.mod":           func(p *entities.StructureProfile) { p.HasGoMod = true },
	"dockerfile":       func(p *entities.StructureProfile) { p.HasDockerfile = true },
	"main.tf":          func(p *entities.StructureProfile) { p.HasTerraform = true },
	"versions.tf":      func(p *entities.StructureProfile) { p.HasTerraform = true },
}

var lockfiles = map[string]string{
	"yarn.lock":      "yarn",
	"pnpm-lock.yaml": "pnpm",
	"bun.lockb":      "bun",
	"bun.lock":       "bun",
}

var directoryMarkers = map[string]func(*entities.StructureProfile){
	"src":       func(p *entities.StructureProfile) { p.HasSrcFolder = true },
	"source":    func(p *entities.StructureProfile) { p.HasSrcFolder = true },
	"test":      func(p *entities.StructureProfile) { p.HasTestFolder = true },
	"tests":     func(p *entities.StructureProfile) { p.HasTestFolder = true },
	"__tests__": func(p *entities.StructureProfile) { p.HasTestFolder = true },
	"docs":      func(p *entities.StructureProfile) { p.HasDocsFolder = true },
	"doc":       func(p *entities.StructureProfile) { p.HasDocsFolder = true },
}

// packageManifestContent is the subset of package.json the analysis reads.
type packageManifestContent struct {
	Dependencies    map[string]any `json:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies"`
	// engines also appears as a legacy array or a string
	Engines any `json:"engines"`
}

// AnalyzeStructure builds the structure profile of a root listing. When a
// package manifest is present its dependencies are fetched to detect frameworks;
// that lookup is best effort and never fails the analysis.
func AnalyzeStructure(
	ctx context.Context,
	source repositories.DataSourceRepository,
	ref entities.RepositoryReference,
	listing []entities.DirectoryEntry,
) *entities.StructureProfile {
	profile := NewProfileFromListing(listing)

	if profile.HasPackageJSON {
		frameworks, err := detectFrameworks(ctx, source, ref)
		if err != nil {
			logger.Debugf("[analyze] Could not analyze %s: %v", packageManifest, err)
		} else {
			profile.Frameworks = frameworks
		}
	}

	return profile
}

// NewProfileFromListing derives every listing-only flag of the profile.
// Lockfiles are applied in listing order, so the last one wins.
func NewProfileFromListing(listing []entities.DirectoryEntry) *entities.StructureProfile {
	profile := entities.NewStructureProfile()

	for _, entry := range listing {
		name := strings.ToLower(entry.Name)

		if mark, ok := manifestMarkers[name]; ok {
			mark(profile)
		}
		if manager, ok := lockfiles[name]; ok {
			profile.PackageManager = manager
		}
		if entry.IsDir() {
			if mark, ok := directoryMarkers[name]; ok {
				mark(profile)
			}
		}
	}

	return profile
}

func detectFrameworks(
	ctx context.Context,
	source repositories.DataSourceRepository,
	ref entities.RepositoryReference,
) ([]string, error) {
	content, ok := source.FetchFileContent(ctx, ref, packageManifest)
	if !ok {
		return nil, fmt.Errorf("%s is not readable", packageManifest)
	}

	manifest, err := parsePackageManifest(content)
	if err != nil {
		return nil, err
	}

	return FrameworksFromDependencies(manifest.allDependencies()), nil
}

func parsePackageManifest(content string) (*packageManifestContent, error) {
	var manifest packageManifestContent
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", packageManifest, err)
	}
	return &manifest, nil
}

// allDependencies merges dependencies and devDependencies, the latter winning.
func (m *packageManifestContent) allDependencies() map[string]any {
	merged := make(map[string]any, len(m.Dependencies)+len(m.DevDependencies))
	for name, version := range m.Dependencies {
		merged[name] = version
	}
	for name, version := range m.DevDependencies {
		merged[name] = version
	}
	return merged
}

// FrameworksFromDependencies maps a dependency table to framework names.
func FrameworksFromDependencies(dependencies map[string]any) []string {
	frameworks := []string{}
	for _, key := range frameworkKeys {
		for _, dependency := range key.dependencies {
			if isTruthy(dependencies[dependency]) {
				frameworks = append(frameworks, key.name)
				break
			}
		}
	}
	return frameworks
}

// isTruthy treats empty versions, false and zero like a missing entry.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

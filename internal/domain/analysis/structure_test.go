//go:build unit

package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/readmegen/internal/domain/analysis"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/readmegen/test/infrastructure/repositorydoubles"
)

var testRef = entities.RepositoryReference{Owner: "octo", Name: "widget"}

func TestNewProfileFromListing(t *testing.T) {
	t.Parallel()

	t.Run("should detect manifests case-insensitively", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().
			WithFiles("Package.JSON", "requirements.txt", "Cargo.toml", "go.mod", "Dockerfile", "versions.tf").
			Build()

		// when
		profile := analysis.NewProfileFromListing(listing)

		// then
		assert.True(t, profile.HasPackageJSON)
		assert.True(t, profile.HasRequirementsTxt)
		assert.True(t, profile.HasCargoToml)
		assert.True(t, profile.HasGoMod)
		assert.True(t, profile.HasDockerfile)
		assert.True(t, profile.HasTerraform)
		assert.Equal(t, "npm", profile.PackageManager)
	})

	t.Run("should only treat directories as conventional folders", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().
			WithFiles("src", "docs").
			WithDirs("__tests__").
			Build()

		// when
		profile := analysis.NewProfileFromListing(listing)

		// then
		assert.False(t, profile.HasSrcFolder)
		assert.False(t, profile.HasDocsFolder)
		assert.True(t, profile.HasTestFolder)
	})

	t.Run("should recognize every folder alias", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithDirs("Source", "TEST", "doc").Build()

		// when
		profile := analysis.NewProfileFromListing(listing)

		// then
		assert.True(t, profile.HasSrcFolder)
		assert.True(t, profile.HasTestFolder)
		assert.True(t, profile.HasDocsFolder)
	})

	t.Run("should let the last lockfile in the listing win", func(t *testing.T) {
		t.Parallel()

		// given
		yarnLast := entitybuilders.NewListingBuilder().WithFiles("pnpm-lock.yaml", "yarn.lock").Build()
		pnpmLast := entitybuilders.NewListingBuilder().WithFiles("yarn.lock", "pnpm-lock.yaml").Build()
		bun := entitybuilders.NewListingBuilder().WithFiles("bun.lockb").Build()

		// when / then
		assert.Equal(t, "yarn", analysis.NewProfileFromListing(yarnLast).PackageManager)
		assert.Equal(t, "pnpm", analysis.NewProfileFromListing(pnpmLast).PackageManager)
		assert.Equal(t, "bun", analysis.NewProfileFromListing(bun).PackageManager)
	})

	t.Run("should keep flags set once a later entry does not match", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().
			WithFiles("package.json", "README.md", "LICENSE").
			WithDirs("src", "node_modules").
			Build()

		// when
		profile := analysis.NewProfileFromListing(listing)

		// then
		assert.True(t, profile.HasPackageJSON)
		assert.True(t, profile.HasSrcFolder)
	})
}

func TestAnalyzeStructure(t *testing.T) {
	t.Parallel()

	t.Run("should detect frameworks from dependencies and devDependencies", func(t *testing.T) {
		t.Parallel()

		// given
		source := &doubles.SpyDataSourceRepository{
			FileContents: map[string]string{
				"package.json": `{
					"dependencies": {"express": "^4.18.0", "react": "^18.0.0"},
					"devDependencies": {"@nestjs/core": "^10.0.0", "svelte": ""}
				}`,
			},
		}
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json").Build()

		// when
		profile := analysis.AnalyzeStructure(context.Background(), source, testRef, listing)

		// then
		assert.Equal(t, []string{"React", "Express.js", "NestJS"}, profile.Frameworks)
		assert.True(t, source.Fetched("package.json"))
	})

	t.Run("should not fetch the manifest when there is none", func(t *testing.T) {
		t.Parallel()

		// given
		source := &doubles.SpyDataSourceRepository{}
		listing := entitybuilders.NewListingBuilder().WithFiles("go.mod").Build()

		// when
		profile := analysis.AnalyzeStructure(context.Background(), source, testRef, listing)

		// then
		assert.Empty(t, profile.Frameworks)
		assert.Empty(t, source.FetchedPaths)
	})

	t.Run("should swallow a malformed manifest", func(t *testing.T) {
		t.Parallel()

		// given
		source := &doubles.SpyDataSourceRepository{
			FileContents: map[string]string{"package.json": `{"dependencies": `},
		}
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json").WithDirs("src").Build()

		// when
		profile := analysis.AnalyzeStructure(context.Background(), source, testRef, listing)

		// then
		assert.Empty(t, profile.Frameworks)
		assert.True(t, profile.HasPackageJSON)
		assert.True(t, profile.HasSrcFolder)
	})

	t.Run("should detect frameworks whatever shape engines has", func(t *testing.T) {
		t.Parallel()

		manifests := []string{
			`{"dependencies": {"express": "^4"}, "engines": ["node >= 0.4"]}`,
			`{"dependencies": {"express": "^4"}, "engines": {"node": 20}}`,
			`{"dependencies": {"express": "^4"}, "engines": "node"}`,
		}

		for _, manifest := range manifests {
			// given
			source := &doubles.SpyDataSourceRepository{
				FileContents: map[string]string{"package.json": manifest},
			}
			listing := entitybuilders.NewListingBuilder().WithFiles("package.json").Build()

			// when
			profile := analysis.AnalyzeStructure(context.Background(), source, testRef, listing)

			// then
			assert.Equal(t, []string{"Express.js"}, profile.Frameworks, manifest)
			assert.Equal(t, entities.ProjectTypeFramework, analysis.Classify(listing, profile), manifest)
		}
	})

	t.Run("should swallow an unreadable manifest", func(t *testing.T) {
		t.Parallel()

		// given
		source := &doubles.SpyDataSourceRepository{}
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json").Build()

		// when
		profile := analysis.AnalyzeStructure(context.Background(), source, testRef, listing)

		// then
		assert.Empty(t, profile.Frameworks)
	})
}

func TestFrameworksFromDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should map all nine framework keys in a fixed order", func(t *testing.T) {
		t.Parallel()

		// given
		dependencies := map[string]any{
			"nestjs": "1", "fastify": "1", "express": "1", "nuxt": "1", "next": "1",
			"svelte": "1", "angular": "1", "vue": "1", "react": "1",
		}

		// when
		frameworks := analysis.FrameworksFromDependencies(dependencies)

		// then
		assert.Equal(t, []string{
			"React", "Vue.js", "Angular", "Svelte", "Next.js", "Nuxt.js", "Express.js", "Fastify", "NestJS",
		}, frameworks)
	})

	t.Run("should accept scoped Angular package and ignore falsy values", func(t *testing.T) {
		t.Parallel()

		// given
		dependencies := map[string]any{"@angular/core": "17", "vue": false, "react": nil}

		// when
		frameworks := analysis.FrameworksFromDependencies(dependencies)

		// then
		assert.Equal(t, []string{"Angular"}, frameworks)
	})
}

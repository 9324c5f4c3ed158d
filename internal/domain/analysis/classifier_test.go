//go:build unit

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/readmegen/internal/domain/analysis"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/test/domain/entitybuilders"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("should classify a package with src and tests as a library", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json").WithDirs("src", "tests").Build()
		profile := analysis.NewProfileFromListing(listing)

		// when
		projectType := analysis.Classify(listing, profile)

		// then
		assert.Equal(t, entities.ProjectTypeLibrary, projectType)
	})

	t.Run("should classify a bin directory as cli regardless of other flags", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json").WithDirs("src", "bin").Build()
		profile := analysis.NewProfileFromListing(listing)
		profile.Frameworks = []string{analysis.FrameworkExpress}

		// when
		projectType := analysis.Classify(listing, profile)

		// then
		assert.Equal(t, entities.ProjectTypeCLI, projectType)
	})

	t.Run("should classify names mentioning cli or command as cli", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"my-CLI.js", "commands", "Command.go"} {
			// given
			listing := entitybuilders.NewListingBuilder().WithFiles(name).Build()

			// when
			projectType := analysis.Classify(listing, analysis.NewProfileFromListing(listing))

			// then
			assert.Equal(t, entities.ProjectTypeCLI, projectType, name)
		}
	})

	t.Run("should not treat a bin file as cli", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithFiles("bin").Build()

		// when
		projectType := analysis.Classify(listing, analysis.NewProfileFromListing(listing))

		// then
		assert.Equal(t, entities.ProjectTypeApplication, projectType)
	})

	t.Run("should not classify as library when an entry mentions app", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json", "app.js").WithDirs("src").Build()

		// when
		projectType := analysis.Classify(listing, analysis.NewProfileFromListing(listing))

		// then
		assert.Equal(t, entities.ProjectTypeApplication, projectType)
	})

	t.Run("should classify a server framework as framework", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json", "server.js").Build()
		profile := analysis.NewProfileFromListing(listing)
		profile.Frameworks = []string{analysis.FrameworkReact, analysis.FrameworkExpress}

		// when
		projectType := analysis.Classify(listing, profile)

		// then
		assert.Equal(t, entities.ProjectTypeFramework, projectType)
	})

	t.Run("should classify UI-only frameworks as application", func(t *testing.T) {
		t.Parallel()

		// given
		listing := entitybuilders.NewListingBuilder().WithFiles("package.json").Build()
		profile := analysis.NewProfileFromListing(listing)
		profile.Frameworks = []string{analysis.FrameworkReact, analysis.FrameworkNext}

		// when
		projectType := analysis.Classify(listing, profile)

		// then
		assert.Equal(t, entities.ProjectTypeApplication, projectType)
	})

	t.Run("should default to application for an empty listing", func(t *testing.T) {
		t.Parallel()

		// when
		projectType := analysis.Classify(nil, entities.NewStructureProfile())

		// then
		assert.Equal(t, entities.ProjectTypeApplication, projectType)
	})
}

func TestClassificationRules(t *testing.T) {
	t.Parallel()

	t.Run("should evaluate rules in the documented order", func(t *testing.T) {
		t.Parallel()

		// when
		rules := analysis.ClassificationRules()

		// then
		require.Len(t, rules, 4)
		assert.Equal(t, entities.ProjectTypeCLI, rules[0].Result)
		assert.Equal(t, entities.ProjectTypeLibrary, rules[1].Result)
		assert.Equal(t, entities.ProjectTypeFramework, rules[2].Result)
		assert.Equal(t, entities.ProjectTypeApplication, rules[3].Result)
	})

	t.Run("should match each rule on its own predicate", func(t *testing.T) {
		t.Parallel()

		// given
		rules := analysis.ClassificationRules()
		libraryListing := entitybuilders.NewListingBuilder().WithFiles("package.json").WithDirs("src").Build()
		libraryProfile := analysis.NewProfileFromListing(libraryListing)
		frameworkProfile := entities.NewStructureProfile()
		frameworkProfile.Frameworks = []string{analysis.FrameworkFastify}
		empty := entities.NewStructureProfile()

		// when / then
		assert.True(t, rules[0].Matches(entitybuilders.NewListingBuilder().WithDirs("bin").Build(), empty))
		assert.False(t, rules[0].Matches(libraryListing, libraryProfile))
		assert.True(t, rules[1].Matches(libraryListing, libraryProfile))
		assert.False(t, rules[1].Matches(libraryListing, empty))
		assert.True(t, rules[2].Matches(nil, frameworkProfile))
		assert.False(t, rules[2].Matches(nil, empty))
		assert.True(t, rules[3].Matches(nil, empty))
	})
}

//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/test/domain/entitybuilders"
)

func TestRenderCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should render a valid record", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewProjectRecordBuilder().
			WithTitle("foo").
			WithDescription("A tool").
			WithProjectType(entities.ProjectTypeCLI).
			BuildProjectRecord()

		// when
		readme, err := commands.NewRenderCommand().Execute(&record)

		// then
		require.NoError(t, err)
		assert.Contains(t, readme, "foo --help\n")
		assert.Contains(t, readme, "foo [options] <input>\n")
	})

	t.Run("should reject a record without title or description", func(t *testing.T) {
		t.Parallel()

		// given
		noTitle := entitybuilders.NewProjectRecordBuilder().WithTitle("  ").BuildProjectRecord()
		noDescription := entitybuilders.NewProjectRecordBuilder().WithDescription("").BuildProjectRecord()

		// when
		_, titleErr := commands.NewRenderCommand().Execute(&noTitle)
		_, descriptionErr := commands.NewRenderCommand().Execute(&noDescription)

		// then
		require.ErrorIs(t, titleErr, entities.ErrMissingInformation)
		require.ErrorIs(t, descriptionErr, entities.ErrMissingInformation)
	})

	t.Run("should reject a nil record", func(t *testing.T) {
		t.Parallel()

		// when
		err := commands.ValidateRecord(nil)

		// then
		require.ErrorIs(t, err, entities.ErrMissingInformation)
	})
}

//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
)

func TestParseRepositoryReference(t *testing.T) {
	t.Parallel()

	t.Run("should parse a plain repository URL", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "https://github.com/octo/widget"

		// when
		ref, err := entities.ParseRepositoryReference(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, "octo", ref.Owner)
		assert.Equal(t, "widget", ref.Name)
		assert.Equal(t, "octo/widget", ref.String())
	})

	t.Run("should strip the .git suffix and ignore trailing paths", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "http://www.github.com/octo/widget.git/tree/main/src"

		// when
		ref, err := entities.ParseRepositoryReference(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.RepositoryReference{Owner: "octo", Name: "widget"}, ref)
	})

	t.Run("should stop the name at a query or fragment", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{
			"https://github.com/octo/widget?tab=readme",
			"https://github.com/octo/widget.git?tab=readme",
			"https://github.com/octo/widget#readme",
			"https://www.github.com/octo/widget/tree/main?plain=1",
		}

		for _, input := range inputs {
			// when
			ref, err := entities.ParseRepositoryReference(input)

			// then
			require.NoError(t, err, input)
			assert.Equal(t, entities.RepositoryReference{Owner: "octo", Name: "widget"}, ref, input)
		}
	})

	t.Run("should accept surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		// when
		ref, err := entities.ParseRepositoryReference("  https://github.com/octo/widget/  ")

		// then
		require.NoError(t, err)
		assert.Equal(t, "widget", ref.Name)
	})

	t.Run("should reject strings that are not repository URLs", func(t *testing.T) {
		t.Parallel()

		// given
		inputs := []string{
			"",
			"octo/widget",
			"github.com/octo/widget",
			"ftp://github.com/octo/widget",
			"https://gitlab.com/octo/widget",
			"https://github.com/octo",
			"https://github.com/octo/",
			"https://evilgithub.com/octo/widget",
			"https://github.com/octo/.git",
			"https://github.com/octo/?tab=repositories",
		}

		for _, input := range inputs {
			// when
			_, err := entities.ParseRepositoryReference(input)

			// then
			require.ErrorIs(t, err, entities.ErrInvalidReference, "input %q", input)
		}
	})
}

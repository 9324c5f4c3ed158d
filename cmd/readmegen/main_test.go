//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the application graph", func(t *testing.T) {
		t.Parallel()

		// when
		appContext, err := injectAppContext()

		// then
		require.NoError(t, err)
		assert.Len(t, appContext.GetControllers(), 2)
	})

	t.Run("should register analyze and render with their flags", func(t *testing.T) {
		t.Parallel()

		// given
		appContext, err := injectAppContext()
		require.NoError(t, err)
		root := buildRootCommand()

		// when
		addSubcommands(root, appContext)

		// then
		analyze, _, findErr := root.Find([]string{"analyze"})
		require.NoError(t, findErr)
		assert.Equal(t, "analyze", analyze.Name())
		assert.NotNil(t, analyze.Flags().Lookup("format"))
		assert.NotNil(t, analyze.Flags().Lookup("output"))

		render, _, findErr := root.Find([]string{"render"})
		require.NoError(t, findErr)
		assert.Equal(t, "render", render.Name())
		assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	})
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenearth.GO/config"
	"greenearth.GO/core/registry"
)

func TestRegistry_Register_Apply(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = config.Defaults()
	defer func() { config.AppConfig = prev }()
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCmd)

	out := &bytes.Buffer{}
	Register(&cobra.Command{
		Use: "plants:count",
		Run: func(c *cobra.Command, args []string) {
			out.WriteString("2 plants")
		},
	})
	Apply()
	Apply()

	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"plants:count"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "2 plants", out.String())
}

func TestRegistry_RejectsBadNames(t *testing.T) {
	assert.Panics(t, func() { Register(&cobra.Command{Use: "sweep"}) })
	// Built-in commands are already on the root.
	assert.Panics(t, func() { Register(&cobra.Command{Use: "sessions:sweep"}) })
}

func TestRegistry_RegisterAfterApplyPanics(t *testing.T) {
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
	defer registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCmd)

	assert.Panics(t, func() { Register(&cobra.Command{Use: "test:late"}) })
}

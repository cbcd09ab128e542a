package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "manvet", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"build", "conflicts", "simulate", "audit", "gen-config"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestSubcommandsRejectArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"conflicts", "extra"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestVerboseFlagCounts(t *testing.T) {
	cmd := NewRootCmd()

	f := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, f)
	assert.Equal(t, "v", f.Shorthand)
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
)

func TestNewRootCommand_NoArgs_LaunchesMenu(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchMenuFunc
	defer func() {
		launchMenuFunc = originalFunc
	}()

	called := false
	launchMenuFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	_, _, err := run(t, nil)

	assert.NoError(t, err)
	assert.True(t, called, "launchMenuFunc should be called when no arguments are provided")
}

func TestNewRootCommand_MenuCommand(t *testing.T) {
	originalFunc := launchMenuFunc
	defer func() {
		launchMenuFunc = originalFunc
	}()

	c, _ := newPartyContainer()
	var got *app.Container
	launchMenuFunc = func(c *app.Container) error {
		got = c
		return nil
	}

	_, _, err := run(t, c, "menu")

	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchMenuFunc
	defer func() {
		launchMenuFunc = originalFunc
	}()

	called := false
	launchMenuFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	stdout, _, err := run(t, nil, "--help")

	assert.NoError(t, err)
	assert.False(t, called, "launchMenuFunc should NOT be called when --help is provided")
	assert.Contains(t, stdout, "Party Commands:")
	assert.Contains(t, stdout, "Planning Commands:")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newPartyContainer()
	c.AppConfig.Warnings = []string{"unknown key: store.kind"}

	_, stderr, err := run(t, c, "guest", "list")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key: store.kind")
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/testutil"
)

func TestConfigShow(t *testing.T) {
	c, _ := newPartyContainer()
	manager := testutil.NewMockConfigManager()
	manager.RepoConfigInfo.Exists = true
	c.ConfigManager = manager
	c.AppConfig.Store.Type = domain.StoreSQLite

	stdout, _, err := run(t, c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "- /home/test/.config/partyplan/config.toml (not found)")
	assert.Contains(t, stdout, "- /test/.partyplan/config.toml\n")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "type = 'sqlite'")
	assert.Contains(t, stdout, "currency = 'PLN'")
}

func TestConfigShow_JSON(t *testing.T) {
	c, _ := newPartyContainer()
	c.ConfigManager = testutil.NewMockConfigManager()

	stdout, _, err := run(t, c, "config", "show", "--json")

	require.NoError(t, err)
	assert.Contains(t, stdout, `"effective"`)
	assert.Contains(t, stdout, `"exists": false`)
}

func TestConfigInit(t *testing.T) {
	c, _ := newPartyContainer()
	manager := testutil.NewMockConfigManager()
	c.ConfigManager = manager

	stdout, _, err := run(t, c, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Created config file: /test/.partyplan/config.toml\n", stdout)

	_, _, err = run(t, c, "config", "init")
	require.ErrorIs(t, err, domain.ErrConfigExists)

	_, _, err = run(t, c, "config", "init", "--force")
	require.NoError(t, err)
	assert.True(t, manager.InitRepoForce)
}

func TestConfigTemplate(t *testing.T) {
	stdout, _, err := run(t, nil, "config", "template")

	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), stdout)
}

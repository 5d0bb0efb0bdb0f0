package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func TestLoader_Load_NoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_RepoConfigOnly(t *testing.T) {
	partyDir := t.TempDir()
	writeConfig(t, partyDir, `
[store]
type = "sqlite"

[document]
format = "yaml"
indent = 2

[display]
currency = "EUR"

[log]
level = "debug"
console = true
`)

	cfg, err := NewLoaderWithGlobalDir(partyDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.StoreSQLite, cfg.Store.Type)
	assert.Equal(t, domain.FormatYAML, cfg.Document.Format)
	assert.Equal(t, 2, cfg.Document.Indent)
	assert.Equal(t, "EUR", cfg.Display.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[display]
currency = "USD"
`)

	cfg, err := NewLoaderWithGlobalDir(t.TempDir(), globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Display.Currency)
	assert.Equal(t, domain.StoreJSON, cfg.Store.Type)
}

func TestLoader_Load_MergeRepoOverridesGlobal(t *testing.T) {
	partyDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[display]
currency = "USD"

[log]
level = "warn"
console = true
`)
	writeConfig(t, partyDir, `
[log]
console = false

[document]
indent = 0
`)

	cfg, err := NewLoaderWithGlobalDir(partyDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Display.Currency, "global value kept")
	assert.Equal(t, "warn", cfg.Log.Level, "global value kept")
	assert.False(t, cfg.Log.Console, "repo false overrides global true")
	assert.Equal(t, 0, cfg.Document.Indent, "zero indent is a value, not unset")
}

func TestLoader_Load_Warnings(t *testing.T) {
	partyDir := t.TempDir()
	writeConfig(t, partyDir, `
title = "party"

[store]
type = "postgres"
path = "x"

[document]
indent = -1

[theme]
color = "pink"
`)

	cfg, err := NewLoaderWithGlobalDir(partyDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value in [document]: indent = -1",
		`invalid value in [store]: type = "postgres"`,
		"unknown key in [store]: path",
		"unknown key: title",
		"unknown section: theme",
	}, cfg.Warnings)
	assert.Equal(t, domain.StoreJSON, cfg.Store.Type, "invalid value falls back to default")
	assert.Equal(t, domain.DefaultDocumentIndent, cfg.Document.Indent)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	partyDir := t.TempDir()
	writeConfig(t, partyDir, "[store\ntype = ")

	_, err := NewLoaderWithGlobalDir(partyDir, t.TempDir()).Load()

	assert.Error(t, err)
}

func TestLoader_LoadGlobal(t *testing.T) {
	partyDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "[display]\ncurrency = \"USD\"\n")
	writeConfig(t, partyDir, "[display]\ncurrency = \"EUR\"\n")

	cfg, err := NewLoaderWithGlobalDir(partyDir, globalDir).LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Display.Currency)

	_, err = NewLoaderWithGlobalDir(partyDir, t.TempDir()).LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewLoaderWithGlobalDir(partyDir, "").LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_RenderedTemplateLoadsBack(t *testing.T) {
	partyDir := t.TempDir()
	want := domain.NewDefaultConfig()
	want.Store.Type = domain.StoreSQLite
	want.Display.Currency = "EUR"
	want.Log.Console = true
	writeConfig(t, partyDir, domain.RenderConfigTemplate(want))

	got, err := NewLoaderWithGlobalDir(partyDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

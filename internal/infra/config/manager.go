package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	partyDir      string // Path to the .partyplan directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/partyplan)
}

// NewManager creates a new Manager.
func NewManager(partyDir string) *Manager {
	return &Manager{
		partyDir:      partyDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(partyDir, globalConfDir string) *Manager {
	return &Manager{
		partyDir:      partyDir,
		globalConfDir: globalConfDir,
	}
}

// GetRepoConfigInfo returns information about the workspace config file.
func (m *Manager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(filepath.Join(m.partyDir, domain.ConfigFileName))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitRepoConfig creates the workspace config file from the template.
// An existing file is only replaced when force is set.
func (m *Manager) InitRepoConfig(cfg *domain.Config, force bool) error {
	path := filepath.Join(m.partyDir, domain.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(m.partyDir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(path, []byte(content), 0o600)
}

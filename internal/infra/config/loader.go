// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	partyDir      string // Path to the .partyplan directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/partyplan)
}

// NewLoader creates a new Loader.
func NewLoader(partyDir string) *Loader {
	return &Loader{
		partyDir:      partyDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(partyDir, globalConfDir string) *Loader {
	return &Loader{
		partyDir:      partyDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// layer is one parsed config file. Pointer fields distinguish "unset" from zero values.
type layer struct {
	storeType *domain.StoreType
	format    *domain.DocumentFormat
	indent    *int
	currency  *string
	logLevel  *string
	console   *bool
	warnings  []string
}

// Load returns the merged configuration (defaults, global, repo).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadGlobalLayer()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repo, err := l.loadFile(filepath.Join(l.partyDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- repo (later takes precedence)
	cfg := domain.NewDefaultConfig()
	if global != nil {
		mergeLayer(cfg, global)
	}
	if repo != nil {
		mergeLayer(cfg, repo)
	}
	return cfg, nil
}

// LoadGlobal returns the defaults merged with the global configuration only.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	global, err := l.loadGlobalLayer()
	if err != nil {
		return nil, err
	}
	cfg := domain.NewDefaultConfig()
	mergeLayer(cfg, global)
	return cfg, nil
}

func (l *Loader) loadGlobalLayer() (*layer, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration layer from a file.
func (l *Loader) loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a config layer and collects warnings.
func convertRaw(raw map[string]any) *layer {
	res := &layer{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "type":
					if s, ok := v.(string); ok {
						if st := domain.StoreType(s); st == domain.StoreJSON || st == domain.StoreSQLite {
							res.storeType = &st
						} else {
							warnings = append(warnings, fmt.Sprintf("invalid value in [store]: type = %q", s))
						}
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "document":
			for k, v := range m {
				switch k {
				case "format":
					if s, ok := v.(string); ok {
						if f := domain.DocumentFormat(s); f == domain.FormatJSON || f == domain.FormatYAML {
							res.format = &f
						} else {
							warnings = append(warnings, fmt.Sprintf("invalid value in [document]: format = %q", s))
						}
					}
				case "indent":
					// TOML integers decode as int64
					if n, ok := v.(int64); ok && n >= 0 {
						indent := int(n)
						res.indent = &indent
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid value in [document]: indent = %v", v))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [document]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "currency":
					if s, ok := v.(string); ok {
						res.currency = &s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.logLevel = &s
					}
				case "console":
					if b, ok := v.(bool); ok {
						res.console = &b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.warnings = warnings
	return res
}

// mergeLayer applies the values set in override onto cfg.
func mergeLayer(cfg *domain.Config, override *layer) {
	cfg.Warnings = append(cfg.Warnings, override.warnings...)

	if override.storeType != nil {
		cfg.Store.Type = *override.storeType
	}
	if override.format != nil {
		cfg.Document.Format = *override.format
	}
	if override.indent != nil {
		cfg.Document.Indent = *override.indent
	}
	if override.currency != nil {
		cfg.Display.Currency = *override.currency
	}
	if override.logLevel != nil && *override.logLevel != "" {
		cfg.Log.Level = *override.logLevel
	}
	if override.console != nil {
		cfg.Log.Console = *override.console
	}
}

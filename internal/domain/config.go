package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File layout constants.
const (
	DirName          = ".partyplan"  // Workspace directory name
	ConfigFileName   = "config.toml" // Config file name
	SessionFileName  = "party.json"  // JSON session store
	DatabaseFileName = "party.db"    // SQLite session store
	LogFileName      = "party.log"   // Log file name
	appName          = "partyplan"
)

// PartyDir returns the workspace directory under workDir.
func PartyDir(workDir string) string {
	return filepath.Join(workDir, DirName)
}

// RepoConfigPath returns the workspace config path.
func RepoConfigPath(workDir string) string {
	return filepath.Join(PartyDir(workDir), ConfigFileName)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, appName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LogPath returns the log file path inside a workspace directory.
func LogPath(partyDir string) string {
	return filepath.Join(partyDir, "logs", LogFileName)
}

// StoreType selects the session store implementation.
type StoreType string

const (
	StoreJSON   StoreType = "json"
	StoreSQLite StoreType = "sqlite"
)

// DocumentFormat selects the encoding of party documents.
type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)

// Default values.
const (
	DefaultCurrency       = "PLN"
	DefaultDocumentIndent = 4
	DefaultLogLevel       = "info"
)

// Config represents the application configuration.
type Config struct {
	Display  DisplayConfig  // [display]
	Store    StoreConfig    // [store]
	Document DocumentConfig // [document]
	Log      LogConfig      // [log]
	Warnings []string       // Unknown keys and invalid values found while loading
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Type StoreType // json or sqlite
}

// DocumentConfig holds settings from the [document] section.
type DocumentConfig struct {
	Format DocumentFormat // Format used when the file extension does not tell
	Indent int            // JSON indentation width
}

// DisplayConfig holds settings from the [display] section.
type DisplayConfig struct {
	Currency string // Label printed after amounts
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level   string // debug, info, warn, error
	Console bool   // Mirror log entries to stderr
}

// NewDefaultConfig returns the configuration used when no file sets a value.
func NewDefaultConfig() *Config {
	return &Config{
		Store:    StoreConfig{Type: StoreJSON},
		Document: DocumentConfig{Format: FormatJSON, Indent: DefaultDocumentIndent},
		Display:  DisplayConfig{Currency: DefaultCurrency},
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

// Money formats an amount with the configured currency.
func (d DisplayConfig) Money(amount float64) string {
	if d.Currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, d.Currency)
}

// RenderConfigTemplate renders a commented config file holding the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	var b strings.Builder
	b.WriteString("# partyplan configuration\n\n")

	b.WriteString("[store]\n")
	b.WriteString("# Session store: \"json\" (party.json) or \"sqlite\" (party.db)\n")
	fmt.Fprintf(&b, "type = %q\n\n", cfg.Store.Type)

	b.WriteString("[document]\n")
	b.WriteString("# Format of saved party files when the extension is neither .json nor .yaml\n")
	fmt.Fprintf(&b, "format = %q\n", cfg.Document.Format)
	fmt.Fprintf(&b, "indent = %d\n\n", cfg.Document.Indent)

	b.WriteString("[display]\n")
	fmt.Fprintf(&b, "currency = %q\n\n", cfg.Display.Currency)

	b.WriteString("[log]\n")
	b.WriteString("# Log level: debug, info, warn, error\n")
	fmt.Fprintf(&b, "level = %q\n", cfg.Log.Level)
	b.WriteString("# Mirror log entries to stderr\n")
	fmt.Fprintf(&b, "console = %t\n", cfg.Log.Console)

	return b.String()
}

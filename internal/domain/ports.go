package domain

// PartyRepository persists the running party session between commands.
type PartyRepository interface {
	// Load returns the stored party. Returns ErrNoParty if none was saved yet.
	Load() (*Party, error)

	// Save replaces the stored party.
	Save(p *Party) error

	// Exists reports whether a party has been saved.
	Exists() (bool, error)
}

// DocumentStore reads and writes party documents.
type DocumentStore interface {
	// Read loads a document. Returns ErrDocumentNotFound if the file does not exist.
	Read(path string) (*Document, error)

	// Write stores a document, replacing any existing file.
	Write(path string, doc *Document) error
}

// Logger records what the use cases do.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults, global, repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the workspace config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig writes the default config template into the workspace.
	InitRepoConfig(cfg *Config, force bool) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string `json:"path"`
	Content string `json:"-"`
	Exists  bool   `json:"exists"`
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

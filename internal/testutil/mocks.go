// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"os"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// MockPartyRepository is a test double for domain.PartyRepository.
// Fields are ordered to minimize memory padding.
type MockPartyRepository struct {
	Party     *domain.Party
	LoadErr   error
	SaveErr   error
	ExistsErr error
	Saves     int
}

// NewMockPartyRepository creates an empty MockPartyRepository.
func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{}
}

// Ensure MockPartyRepository implements domain.PartyRepository interface.
var _ domain.PartyRepository = (*MockPartyRepository)(nil)

// Load returns the stored party.
func (m *MockPartyRepository) Load() (*domain.Party, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Party == nil {
		return nil, domain.ErrNoParty
	}
	return m.Party, nil
}

// Save stores the party.
func (m *MockPartyRepository) Save(p *domain.Party) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Party = p
	m.Saves++
	return nil
}

// Exists reports whether a party is stored.
func (m *MockPartyRepository) Exists() (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.Party != nil, nil
}

// MockDocumentStore is a test double for domain.DocumentStore.
type MockDocumentStore struct {
	Documents map[string]*domain.Document
	ReadErr   error
	WriteErr  error
}

// NewMockDocumentStore creates a MockDocumentStore with no documents.
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{
		Documents: make(map[string]*domain.Document),
	}
}

// Ensure MockDocumentStore implements domain.DocumentStore interface.
var _ domain.DocumentStore = (*MockDocumentStore)(nil)

// Read returns the document stored under path.
func (m *MockDocumentStore) Read(path string) (*domain.Document, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	doc, ok := m.Documents[path]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// Write stores the document under path.
func (m *MockDocumentStore) Write(path string, doc *domain.Document) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Documents[path] = doc
	return nil
}

// LogEntry is one message recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log messages.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }
func (m *MockLogger) Info(category, msg string)  { m.add("INFO", category, msg) }
func (m *MockLogger) Warn(category, msg string)  { m.add("WARN", category, msg) }
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Has reports whether a message was logged at level in category.
func (m *MockLogger) Has(level, category string) bool {
	for _, e := range m.Entries {
		if e.Level == level && e.Category == category {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured global config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig == nil {
		return nil, os.ErrNotExist
	}
	return m.GlobalConfig, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitConfig       *domain.Config
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitRepoForce    bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		RepoConfigInfo: domain.ConfigInfo{
			Path:   "/test/.partyplan/config.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/partyplan/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call and returns configured error.
func (m *MockConfigManager) InitRepoConfig(cfg *domain.Config, force bool) error {
	m.InitRepoCalled = true
	m.InitRepoForce = force
	if m.InitRepoErr != nil {
		return m.InitRepoErr
	}
	if m.RepoConfigInfo.Exists && !force {
		return domain.ErrConfigExists
	}
	m.InitConfig = cfg
	m.RepoConfigInfo.Exists = true
	m.RepoConfigInfo.Content = domain.RenderConfigTemplate(cfg)
	return nil
}

// NewTestParty returns a party for Anna (30) with guests Bob (25) and Eve (28).
func NewTestParty() *domain.Party {
	p := domain.NewParty(domain.NewPerson("Anna", 30), "2024-06-01", "Warsaw", 100)
	p.AddGuest(domain.NewPerson("Bob", 25))
	p.AddGuest(domain.NewPerson("Eve", 28))
	return p
}

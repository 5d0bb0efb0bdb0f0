// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/infra/config"
	"github.com/ZuzannaKonieczna/partyplan/internal/infra/jsonstore"
	"github.com/ZuzannaKonieczna/partyplan/internal/infra/logging"
	"github.com/ZuzannaKonieczna/partyplan/internal/infra/partyfile"
	"github.com/ZuzannaKonieczna/partyplan/internal/infra/sqlitestore"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir      string // Directory partyplan was started in
	PartyDir     string // Path to the .partyplan directory
	SessionPath  string // Path to party.json (json store)
	DatabasePath string // Path to party.db (sqlite store)
}

// NewConfig derives the application paths from the working directory.
func NewConfig(workDir string) Config {
	partyDir := domain.PartyDir(workDir)
	return Config{
		WorkDir:      workDir,
		PartyDir:     partyDir,
		SessionPath:  filepath.Join(partyDir, domain.SessionFileName),
		DatabasePath: filepath.Join(partyDir, domain.DatabaseFileName),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Parties       domain.PartyRepository
	Documents     domain.DocumentStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Effective configuration after files and environment
	AppConfig *domain.Config

	closers []io.Closer

	// Paths
	Config Config
}

// New creates a new Container for the workspace rooted at dir.
// Log entries mirrored to the console go to stderr.
func New(dir string, stderr io.Writer) (*Container, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace: %w", err)
	}
	cfg := NewConfig(absDir)

	configLoader := config.NewLoader(cfg.PartyDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Fall back to defaults; the error is shown as a warning.
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, err.Error())
	}
	config.ApplyEnv(appConfig, config.NewEnv())

	c := &Container{
		Documents:     partyfile.New(appConfig.Document.Format, appConfig.Document.Indent),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.PartyDir),
		AppConfig:     appConfig,
		Config:        cfg,
	}

	logger := logging.New(cfg.PartyDir, logging.ParseLevel(appConfig.Log.Level))
	if appConfig.Log.Console {
		_, noColor := os.LookupEnv("NO_COLOR")
		logger = logger.WithConsole(stderr, noColor)
	}
	c.Logger = logger
	c.closers = append(c.closers, logger)

	parties, err := c.openStore(appConfig.Store.Type)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Parties = parties

	return c, nil
}

// openStore creates the session repository selected by [store] type.
func (c *Container) openStore(storeType domain.StoreType) (domain.PartyRepository, error) {
	switch storeType {
	case domain.StoreSQLite:
		store, err := sqlitestore.New(c.Config.DatabasePath)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, store)
		return store, nil
	default:
		return jsonstore.New(c.Config.SessionPath), nil
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, parties domain.PartyRepository, documents domain.DocumentStore, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Parties:   parties,
		Documents: documents,
		Logger:    logger,
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// Close releases the session store and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// NewPartyUseCase returns a new NewParty use case.
func (c *Container) NewPartyUseCase() *usecase.NewParty {
	return usecase.NewNewParty(c.Parties, c.Logger)
}

// LoadPartyUseCase returns a new LoadParty use case.
func (c *Container) LoadPartyUseCase() *usecase.LoadParty {
	return usecase.NewLoadParty(c.Parties, c.Documents, c.Logger)
}

// SavePartyUseCase returns a new SaveParty use case.
func (c *Container) SavePartyUseCase() *usecase.SaveParty {
	return usecase.NewSaveParty(c.Parties, c.Documents, c.Logger)
}

// AddGuestUseCase returns a new AddGuest use case.
func (c *Container) AddGuestUseCase() *usecase.AddGuest {
	return usecase.NewAddGuest(c.Parties, c.Logger)
}

// RemoveGuestUseCase returns a new RemoveGuest use case.
func (c *Container) RemoveGuestUseCase() *usecase.RemoveGuest {
	return usecase.NewRemoveGuest(c.Parties, c.Logger)
}

// ListGuestsUseCase returns a new ListGuests use case.
func (c *Container) ListGuestsUseCase() *usecase.ListGuests {
	return usecase.NewListGuests(c.Parties)
}

// AddGiftUseCase returns a new AddGift use case.
func (c *Container) AddGiftUseCase() *usecase.AddGift {
	return usecase.NewAddGift(c.Parties, c.Logger)
}

// ListGiftsUseCase returns a new ListGifts use case.
func (c *Container) ListGiftsUseCase() *usecase.ListGifts {
	return usecase.NewListGifts(c.Parties)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Parties, c.Logger)
}

// MarkTaskDoneUseCase returns a new MarkTaskDone use case.
func (c *Container) MarkTaskDoneUseCase() *usecase.MarkTaskDone {
	return usecase.NewMarkTaskDone(c.Parties, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Parties)
}

// ShowSummaryUseCase returns a new ShowSummary use case.
func (c *Container) ShowSummaryUseCase() *usecase.ShowSummary {
	return usecase.NewShowSummary(c.Parties)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

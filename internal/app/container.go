// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fukuside/aidea-memo/internal/diary"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/infra/config"
	"github.com/fukuside/aidea-memo/internal/infra/filekv"
	"github.com/fukuside/aidea-memo/internal/infra/idgen"
	"github.com/fukuside/aidea-memo/internal/infra/logging"
	"github.com/fukuside/aidea-memo/internal/infra/mailer"
	"github.com/fukuside/aidea-memo/internal/infra/persist"
	"github.com/fukuside/aidea-memo/internal/infra/sqlitekv"
	"github.com/fukuside/aidea-memo/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	DataDir string // Root of all diary data
	Backend string // Key-value backend: "file" or "sqlite"
}

// Options adjusts how New resolves the container.
type Options struct {
	DataDir   string    // Overrides [store] dir when non-empty
	ConfigDir string    // Overrides the XDG config directory when non-empty
	Stderr    io.Writer // Receives mirrored warnings; nil disables mirroring
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	store     *diary.Store
	openKV    func() (domain.KeyValueStore, io.Closer, error)
	closers   []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container from the config file and opts.
// The store is opened on first use.
func New(opts Options) (*Container, error) {
	loader := config.NewLoader()
	manager := config.NewManager()
	if opts.ConfigDir != "" {
		loader = config.NewLoaderWithGlobalDir(opts.ConfigDir)
		manager = config.NewManagerWithGlobalDir(opts.ConfigDir)
	}

	appConfig, err := loader.Load()
	if err != nil {
		// Defaults apply; the root command prints the warning.
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, err.Error())
	}

	dataDir := firstNonEmpty(opts.DataDir, expandHome(appConfig.Store.Dir), config.DefaultDataDir())
	if dataDir == "" {
		return nil, errors.New("cannot determine data directory")
	}
	cfg := Config{DataDir: dataDir, Backend: appConfig.Store.Backend}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level), opts.Stderr)

	c := &Container{
		Clock:         domain.RealClock{},
		IDs:           idgen.New(),
		Logger:        logger,
		ConfigManager: manager,
		AppConfig:     appConfig,
		Config:        cfg,
		closers:       []io.Closer{logger},
	}
	c.openKV = func() (domain.KeyValueStore, io.Closer, error) {
		return openKeyValueStore(cfg)
	}
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// The store is opened over kv immediately.
func NewWithDeps(cfg Config, appConfig *domain.Config, kv domain.KeyValueStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, configManager domain.ConfigManager) *Container {
	return &Container{
		Clock:         clock,
		IDs:           ids,
		Logger:        logger,
		ConfigManager: configManager,
		AppConfig:     appConfig,
		Config:        cfg,
		openKV: func() (domain.KeyValueStore, io.Closer, error) {
			return kv, nil, nil
		},
	}
}

// openKeyValueStore opens the backend selected by cfg.
func openKeyValueStore(cfg Config) (domain.KeyValueStore, io.Closer, error) {
	switch cfg.Backend {
	case domain.StoreBackendSQLite:
		db, err := sqlitekv.Open(domain.SQLiteStorePath(cfg.DataDir))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return db, db, nil
	default:
		return filekv.New(domain.FileStoreDir(cfg.DataDir)), nil, nil
	}
}

// Store returns the diary store, loading it on first call.
func (c *Container) Store() (*diary.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	kv, closer, err := c.openKV()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	store := diary.Open(persist.New(kv, c.Logger, c.Clock), c.IDs, c.Clock, c.Logger)
	if err := store.Refused(); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	c.store = store
	return c.store, nil
}

// Composer returns the message composer for delivery, or the configured
// delivery when empty.
func (c *Container) Composer(delivery string) (domain.MessageComposer, error) {
	if delivery == "" {
		delivery = c.AppConfig.Mail.Delivery
	}
	d, err := mailer.NewDeliverer(delivery)
	if err != nil {
		return nil, err
	}
	return mailer.New(c.AppConfig.Mail.To, d), nil
}

// Close flushes the store, if it was opened, and releases resources.
func (c *Container) Close() error {
	var errs []error
	if c.store != nil {
		if err := c.store.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("flush store: %w", err))
		}
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// AddIdeaUseCase returns a new AddIdea use case.
func (c *Container) AddIdeaUseCase(store *diary.Store) *usecase.AddIdea {
	return usecase.NewAddIdea(store, c.Logger)
}

// UpdateIdeaFieldUseCase returns a new UpdateIdeaField use case.
func (c *Container) UpdateIdeaFieldUseCase(store *diary.Store) *usecase.UpdateIdeaField {
	return usecase.NewUpdateIdeaField(store, c.Logger)
}

// ToggleIdeaUseCase returns a new ToggleIdea use case.
func (c *Container) ToggleIdeaUseCase(store *diary.Store) *usecase.ToggleIdea {
	return usecase.NewToggleIdea(store, c.Logger)
}

// DeleteIdeaUseCase returns a new DeleteIdea use case.
func (c *Container) DeleteIdeaUseCase(store *diary.Store) *usecase.DeleteIdea {
	return usecase.NewDeleteIdea(store, c.Logger)
}

// ShowIdeaUseCase returns a new ShowIdea use case.
func (c *Container) ShowIdeaUseCase(store *diary.Store) *usecase.ShowIdea {
	return usecase.NewShowIdea(store)
}

// ListIdeasUseCase returns a new ListIdeas use case.
func (c *Container) ListIdeasUseCase(store *diary.Store) *usecase.ListIdeas {
	return usecase.NewListIdeas(store)
}

// AddLogUseCase returns a new AddLog use case.
func (c *Container) AddLogUseCase(store *diary.Store) *usecase.AddLog {
	return usecase.NewAddLog(store, c.Logger)
}

// DeleteLogUseCase returns a new DeleteLog use case.
func (c *Container) DeleteLogUseCase(store *diary.Store) *usecase.DeleteLog {
	return usecase.NewDeleteLog(store, c.Logger)
}

// ListLogsUseCase returns a new ListLogs use case.
func (c *Container) ListLogsUseCase(store *diary.Store) *usecase.ListLogs {
	return usecase.NewListLogs(store)
}

// ListCategoriesUseCase returns a new ListCategories use case.
func (c *Container) ListCategoriesUseCase(store *diary.Store) *usecase.ListCategories {
	return usecase.NewListCategories(store)
}

// ExportSnapshotUseCase returns a new ExportSnapshot use case.
func (c *Container) ExportSnapshotUseCase(store *diary.Store) *usecase.ExportSnapshot {
	return usecase.NewExportSnapshot(store, c.Clock)
}

// ImportSnapshotUseCase returns a new ImportSnapshot use case.
func (c *Container) ImportSnapshotUseCase(store *diary.Store) *usecase.ImportSnapshot {
	return usecase.NewImportSnapshot(store, c.Logger)
}

// ComposeMessageUseCase returns a new ComposeMessage use case.
func (c *Container) ComposeMessageUseCase(store *diary.Store, composer domain.MessageComposer) *usecase.ComposeMessage {
	return usecase.NewComposeMessage(store, composer, c.Logger)
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase(store *diary.Store) *usecase.ShowStatus {
	return usecase.NewShowStatus(store, c.Config.Backend, c.Config.DataDir)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

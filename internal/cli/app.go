// Package cli wires the devconf command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/cli/styles"
	"github.com/bnema/devconf/internal/domain/build"
	"github.com/bnema/devconf/internal/infrastructure/config"
	"github.com/bnema/devconf/internal/infrastructure/docwatch"
	"github.com/bnema/devconf/internal/infrastructure/filelock"
	"github.com/bnema/devconf/internal/infrastructure/logarchive"
	"github.com/bnema/devconf/internal/infrastructure/persistence/yamlfile"
	"github.com/bnema/devconf/internal/infrastructure/signal"
	"github.com/bnema/devconf/internal/infrastructure/templates"
	"github.com/bnema/devconf/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Settings     *config.Settings
	SettingsFile string
	Theme        *styles.Theme
	BuildInfo    build.Info

	Templates *templates.Provider
	Repo      *yamlfile.Repository
	Locker    *filelock.Locker
	Migrator  *usecase.MigrateConfigUseCase
	Registry  *usecase.StoreRegistry
	Signals   port.SignalRegistry
	Archiver  port.LogArchiver

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// Options tune NewApp from global flags.
type Options struct {
	// SettingsFile overrides the default settings location.
	SettingsFile string
	// ConfigDir overrides settings.config_dir.
	ConfigDir string
	// Verbose forces debug logging.
	Verbose bool
}

// NewApp loads settings and builds the document stack.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.SettingsFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settings := mgr.Get()
	if opts.ConfigDir != "" {
		settings.ConfigDir = opts.ConfigDir
	}

	logCfg := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(settings.Logging.Level); ok {
		logCfg.Level = level
	}
	if opts.Verbose {
		logCfg.Level, _ = logging.ParseLevel("debug")
	}
	logCfg.Format = settings.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	if settings.Logging.File {
		logCfg.LogDir = settings.LogDir
	}
	logger, closer, err := logging.NewWithFile(logCfg)
	if err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	provider, err := templates.New()
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	repo := yamlfile.New()
	locker := filelock.New()
	migrator := usecase.NewMigrateConfigUseCase(
		repo,
		locker,
		provider,
		config.NewLegacyConfigTransformer(),
		config.NewDiffFormatter(),
		usecase.WithLockTimeout(settings.Lock.Timeout),
		usecase.WithLegacyDirs(settings.LegacyDirs...),
	)
	registry := usecase.NewStoreRegistry(settings.ConfigDir, repo, locker, provider, migrator, docwatch.New(0))

	logger.Debug().
		Str("config_dir", settings.ConfigDir).
		Str("settings_file", mgr.SettingsFileUsed()).
		Msg("cli initialized")

	return &App{
		Settings:     settings,
		SettingsFile: mgr.SettingsFileUsed(),
		Theme:        styles.NewTheme(),
		Templates:    provider,
		Repo:         repo,
		Locker:       locker,
		Migrator:     migrator,
		Registry:     registry,
		Signals:      signal.NewRegistry(settings.SignalDir),
		Archiver:     logarchive.New(),
		ctx:          ctx,
		logCloser:    closer,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		return a.logCloser.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext replaces the application context, keeping its logger.
func (a *App) WithContext(ctx context.Context) {
	a.ctx = logging.WithContext(ctx, *logging.FromContext(a.ctx))
}

// Store opens the store for a logical document name.
func (a *App) Store(name string) (*usecase.ConfigStore, error) {
	return a.Registry.Open(name)
}

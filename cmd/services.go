package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/xvierd/dusk/internal/adapters/screen"
	"github.com/xvierd/dusk/internal/adapters/storage"
	"github.com/xvierd/dusk/internal/config"
	"github.com/xvierd/dusk/internal/logging"
	"github.com/xvierd/dusk/internal/ports"
	"github.com/xvierd/dusk/internal/services"
)

// appDeps groups the dependencies initialized at startup.
type appDeps struct {
	config  *config.Config
	log     zerolog.Logger
	storage ports.Storage
}

// app holds the initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the configuration and builds the logger.
// Storage is opened on demand by the commands that need it.
func initializeServices() error {
	if err := cleanupServices(); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logging.Stderr(cfg.Log.Level, noColor)
	if err != nil {
		return err
	}

	app = appDeps{config: cfg, log: log}
	return nil
}

// openStorage opens the run journal when history is enabled or --db was
// given. With required set, a disabled journal still opens the default
// database so it can be read.
func openStorage(required bool) error {
	if app.storage != nil {
		return nil
	}
	if !required && !app.config.History.Enabled && dbPath == "" {
		return nil
	}

	path := journalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	s, err := storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.storage = s
	app.log.Debug().Str("path", path).Msg("run journal opened")
	return nil
}

// journalPath returns --db, or the database in the configured data dir.
func journalPath() string {
	if dbPath != "" {
		return dbPath
	}
	return config.GetDBPath(app.config)
}

// newScreen returns the tint command, or a logging stand-in for dry runs.
func newScreen(dry bool) (ports.ScreenTint, error) {
	if dry {
		return screen.NewNoop(app.log), nil
	}
	tint, err := screen.New(app.config.Screen.Command, app.log)
	if err != nil {
		return nil, err
	}
	return tint, nil
}

// serviceConfig converts the file configuration into scheduler settings.
func serviceConfig(cfg *config.Config) services.Config {
	return services.Config{
		Pomodoro:           cfg.ToPomodoroDomainConfig(),
		Ramp:               cfg.ToRampDomainConfig(),
		Flash:              cfg.ToFlashDomainConfig(),
		PollInterval:       cfg.Loop.PollInterval,
		RestoreOnInterrupt: cfg.Screen.RestoreOnInterrupt,
	}
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		err := app.storage.Close()
		app.storage = nil
		return err
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

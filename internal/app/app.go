// Package app wires the planner together: logger, settings, the
// persistence adapter and the three stores, constructed once per
// process and handed to the CLI by reference.
package app

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/vlinks/planner/internal/config"
	"github.com/vlinks/planner/internal/storage"
	"github.com/vlinks/planner/internal/store"
)

// App is the composition root.
type App struct {
	Config   *config.Config
	Settings config.Settings
	Logger   *zap.Logger
	Fs       afero.Fs

	Schedule *store.ScheduleStore
	Tasks    *store.TaskStore
	Journal  *store.JournalStore
}

// New builds the application on the given filesystem. Settings that
// fail to load fall back to defaults with a warning; the stores
// themselves recover from unreadable blobs internally.
func New(cfg *config.Config, fs afero.Fs, logger *zap.Logger) *App {
	settings, err := config.LoadSettings(fs, cfg.DataDir)
	if err != nil {
		logger.Warn("Using default settings", zap.Error(err))
	}

	db := storage.NewFileStore(fs, cfg.DataDir)

	return &App{
		Config:   cfg,
		Settings: settings,
		Logger:   logger,
		Fs:       fs,
		Schedule: store.NewScheduleStore(db, logger),
		Tasks:    store.NewTaskStore(db, logger),
		Journal:  store.NewJournalStore(db, logger),
	}
}

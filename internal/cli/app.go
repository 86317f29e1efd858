// Package cli wires schemer's dependencies for the cobra commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/schemer/internal/application/usecase"
	"github.com/bnema/schemer/internal/domain/build"
	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/domain/repository"
	"github.com/bnema/schemer/internal/infrastructure/colorscheme"
	"github.com/bnema/schemer/internal/infrastructure/config"
	"github.com/bnema/schemer/internal/infrastructure/i18n"
	"github.com/bnema/schemer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/schemer/internal/logging"
	"github.com/bnema/schemer/internal/ui/controller"
	"github.com/bnema/schemer/internal/ui/listmodel"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	BuildInfo     build.Info
	Translator    *i18n.Translator
	Resolver      *colorscheme.Resolver
	Preferences   repository.PreferenceRepository

	// Selection state
	Model      *listmodel.ColorSchemeModel
	Controller *controller.SchemeController

	// Use cases
	SchemeUC *usecase.ManageColorSchemeUseCase

	db  *sql.DB
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	return newApp(mgr)
}

// NewAppAt creates an application whose config lives in configDir.
func NewAppAt(configDir string) (*App, error) {
	mgr, err := config.NewManagerAt(configDir)
	if err != nil {
		return nil, err
	}
	return newApp(mgr)
}

func newApp(mgr *config.Manager) (*App, error) {
	var err error

	// Load errors fall back to defaults.
	loadErr := mgr.Load()
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("failed to load config, using defaults")
	}

	dbFile := cfg.Database.Path
	if dbFile == "" {
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Database.Path = dbFile
	}
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	fallback, err := entity.ParseColorScheme(cfg.Appearance.ColorScheme)
	if err != nil {
		fallback = entity.ColorSchemeSystem
	}

	tr := i18n.NewTranslator(cfg.Appearance.Locale)
	resolver := colorscheme.NewDefaultResolver()
	prefRepo := sqlite.NewPreferenceRepository(db)
	schemeUC := usecase.NewManageColorSchemeUseCase(prefRepo, resolver, fallback)

	model := listmodel.NewColorSchemeModel(tr)
	ctrl := controller.NewSchemeController(logging.WithComponent(ctx, "scheme"), model, schemeUC)
	if err = ctrl.Restore(); err != nil {
		logger.Warn().Err(err).Msg("stored color scheme unavailable")
	}
	resolver.Refresh(model.CurrentScheme())

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Translator:    tr,
		Resolver:      resolver,
		Preferences:   prefRepo,
		Model:         model,
		Controller:    ctrl,
		SchemeUC:      schemeUC,
		db:            db,
		ctx:           ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Controller != nil {
		a.Controller.Close()
	}
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Select makes scheme the current selection and makes sure it is stored,
// even when it already was the current row.
func (a *App) Select(scheme entity.ColorScheme) (entity.EffectiveScheme, error) {
	if _, ok := a.Model.IndexOf(scheme); !ok {
		return entity.EffectiveScheme{}, fmt.Errorf("%w: %s", entity.ErrUnknownScheme, scheme)
	}

	if a.Model.CurrentScheme() == scheme {
		return a.SchemeUC.Save(a.ctx, scheme)
	}

	var (
		effective entity.EffectiveScheme
		saveErr   error
	)
	a.Controller.SetOnSaved(func(e entity.EffectiveScheme) { effective = e })
	a.Controller.SetOnError(func(err error) { saveErr = err })
	defer func() {
		a.Controller.SetOnSaved(nil)
		a.Controller.SetOnError(nil)
	}()

	a.Model.SetCurrentScheme(scheme)
	return effective, saveErr
}

// Reset removes the stored preference and moves the model back to the fallback.
func (a *App) Reset() (entity.ColorScheme, error) {
	fallback, err := a.SchemeUC.Reset(a.ctx)
	if err != nil {
		return fallback, err
	}
	if err := a.Controller.Restore(); err != nil {
		return fallback, err
	}
	return fallback, nil
}

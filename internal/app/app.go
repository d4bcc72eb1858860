package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/common"
	"github.com/ternarybob/tickerlens/internal/handlers"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/services/analysis"
	"github.com/ternarybob/tickerlens/internal/services/catalog"
	"github.com/ternarybob/tickerlens/internal/services/llm"
	"github.com/ternarybob/tickerlens/internal/services/quotes"
	"github.com/ternarybob/tickerlens/internal/services/stock"
	"github.com/ternarybob/tickerlens/internal/storage"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Storage
	RecordStorage interfaces.RecordStorage

	// Providers
	QuoteProvider    interfaces.QuoteProvider
	AnalysisProvider interfaces.AnalysisProvider // nil when hosted analysis is disabled
	Synthesizer      *analysis.Synthesizer

	// Services
	StockService *stock.Service
	Catalog      *catalog.Catalog

	// HTTP handlers
	APIHandler     *handlers.APIHandler
	StockHandler   *handlers.StockHandler
	CatalogHandler *handlers.CatalogHandler
}

// Options adjusts initialization for callers other than the HTTP server
type Options struct {
	// Offline skips the hosted analysis provider
	Offline bool
}

// New initializes the application with all dependencies
func New(ctx context.Context, cfg *common.Config, logger arbor.ILogger, opts Options) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initStorage(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := app.initServices(ctx, opts); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.initHandlers()

	logger.Info().
		Str("quotes", app.QuoteProvider.Name()).
		Bool("hosted_analysis", app.AnalysisProvider != nil).
		Str("profile", app.Synthesizer.Profile().Name).
		Msg("Application initialization complete")

	return app, nil
}

// initStorage creates the analysis record store
func (a *App) initStorage() error {
	records, err := storage.NewRecordStorage(a.Logger, a.Config)
	if err != nil {
		return err
	}
	a.RecordStorage = records

	a.Logger.Debug().
		Str("storage", a.Config.Storage.Type).
		Msg("Storage layer initialized")
	return nil
}

// initServices initializes providers and services in dependency order
func (a *App) initServices(ctx context.Context, opts Options) error {
	var err error

	a.QuoteProvider, err = quotes.NewProvider(a.Config, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create quote provider: %w", err)
	}

	if opts.Offline {
		a.Logger.Info().Msg("Offline mode, hosted analysis disabled")
	} else {
		a.AnalysisProvider, err = llm.NewAnalysisProvider(ctx, a.Config, a.Logger)
		if err != nil {
			return fmt.Errorf("failed to create analysis provider: %w", err)
		}
	}

	profile, err := analysis.ProfileByName(a.Config.Analysis.Profile)
	if err != nil {
		return err
	}
	a.Synthesizer = analysis.NewSynthesizer(profile, analysis.NewRandomSource(a.Config.Analysis.Seed), a.Logger)

	freshness := common.ParseDuration(a.Config.Cache.Freshness, stock.DefaultFreshness)
	a.StockService = stock.NewService(
		a.QuoteProvider,
		a.AnalysisProvider,
		a.Synthesizer,
		a.RecordStorage,
		a.Logger,
		stock.WithFreshness(freshness),
	)

	a.Catalog, err = catalog.New()
	if err != nil {
		return err
	}

	a.Logger.Debug().
		Dur("freshness", freshness).
		Int("catalog_entries", a.Catalog.Len()).
		Msg("Services initialized")
	return nil
}

// initHandlers initializes all HTTP handlers
func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler(a.Logger)
	a.StockHandler = handlers.NewStockHandler(a.StockService, a.Logger)
	a.CatalogHandler = handlers.NewCatalogHandler(a.Catalog, a.Logger)
}

// Close closes all application resources
func (a *App) Close() error {
	if a.RecordStorage != nil {
		if err := a.RecordStorage.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"LocalNewsDesk/internal/config"
	"LocalNewsDesk/internal/identity"
	"LocalNewsDesk/internal/infrastructure/llm"
	"LocalNewsDesk/internal/infrastructure/parser"
	"LocalNewsDesk/internal/infrastructure/scheduler"
	"LocalNewsDesk/internal/infrastructure/telegram"
	"LocalNewsDesk/internal/logging"
	"LocalNewsDesk/internal/moderation"
	"LocalNewsDesk/internal/ports"
	"LocalNewsDesk/internal/scanner"
	"LocalNewsDesk/internal/storage"
	"LocalNewsDesk/internal/usecase"
)

// memoryPath selects the throwaway in-memory engine instead of SQLite.
const memoryPath = ":memory:"

// Application wires configuration to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	identity identity.Provider

	Pipeline *usecase.Pipeline
	Feed     *usecase.Feed
	Stats    *usecase.Stats
	Importer *usecase.Importer

	scheduler *usecase.Scheduler
	close     func() error
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	var kv ports.KV
	closeKV := func() error { return nil }
	if cfg.Database.Path == memoryPath {
		kv = storage.NewMemory()
	} else {
		db, err := storage.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		kv = db
		closeKV = db.Close
	}
	store := storage.NewNewsStore(kv)

	rules := moderation.NewRules()
	var remote moderation.Moderator
	if cfg.OpenAI.APIKey != "" {
		remote = llm.NewModerator(cfg.OpenAI)
	}
	chain := moderation.NewChain(remote, rules, cfg.Moderation.Timeout(),
		baseLogger.With("component", "moderation"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Store:     store,
		Moderator: chain,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	registry := scanner.NewRegistry()
	registry.Register(parser.NewBoardScanner(nil, baseLogger.With("component", "scanner.board")))
	source := parser.NewStrategySource(registry, cfg.Sites, baseLogger.With("component", "source"))

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram)
	}

	importer := usecase.NewImporter(usecase.ImporterDeps{
		Source:   source,
		Pipeline: pipeline,
		Notifier: notifier,
		Logger:   baseLogger.With("component", "importer"),
	})

	driver := scheduler.NewIntervalScheduler(cfg.Scheduler.Interval())

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		identity:  identity.NewStatic(cfg.Identity.UserID),
		Pipeline:  pipeline,
		Feed:      usecase.NewFeed(store),
		Stats:     usecase.NewStats(store, nil),
		Importer:  importer,
		scheduler: usecase.NewScheduler(driver, importer, baseLogger.With("component", "scheduler")),
		close:     closeKV,
	}, nil
}

// UserID returns the opaque id scoping bookmark state.
func (a *Application) UserID() string {
	return a.identity.UserID()
}

// Run starts the recurring import job and blocks until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	<-ctx.Done()
	return a.scheduler.Stop(context.Background())
}

// Close releases the durable store.
func (a *Application) Close() error {
	return a.close()
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/montazhpro/smeta/internal/api"
	"github.com/montazhpro/smeta/internal/config"
	"github.com/montazhpro/smeta/internal/domain/estimates"
	"github.com/montazhpro/smeta/internal/domain/materials"
	"github.com/montazhpro/smeta/internal/domain/persons"
	"github.com/montazhpro/smeta/internal/domain/projects"
	"github.com/montazhpro/smeta/internal/domain/units"
	"github.com/montazhpro/smeta/internal/domain/works"
	"github.com/montazhpro/smeta/internal/infra/db"
	httpx "github.com/montazhpro/smeta/internal/infra/http"
	"github.com/montazhpro/smeta/internal/infra/logger"
	"github.com/montazhpro/smeta/internal/infra/notify"
	"github.com/montazhpro/smeta/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func newStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "memory":
		return store.NewMemory(), func() {}, nil
	case "file":
		s, err := store.NewFile(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	case "postgres":
		if err := runMigrations(cfg.Postgres.DSN); err != nil {
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		log.Info("migrations applied")
		pool, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgres(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", "err", err)
		return
	}
	defer closeStore()
	log.Info("storage ready", "backend", cfg.Storage.Backend)

	unitsRepo := units.NewManager(st)
	materialsRepo := materials.NewManager(st)
	worksRepo := works.NewManager(st)
	personsRepo := persons.NewManager(st)
	projectsRepo := projects.NewManager(st)
	estimatesRepo := estimates.NewManager(st, worksRepo, materialsRepo)

	var notifier *notify.Telegram
	if cfg.Telegram.Token != "" {
		notifier, err = notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
		if err != nil {
			log.Error("telegram init failed", "err", err)
			return
		}
		log.Info("telegram notifications enabled", "chat", cfg.Telegram.AdminChatID)
	}

	handler := api.New(log, unitsRepo, materialsRepo, worksRepo,
		personsRepo, projectsRepo, estimatesRepo, notifier)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, handler.Routes())
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

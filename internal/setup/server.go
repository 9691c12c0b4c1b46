package setup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anuntech/expense-backend/internal/domain/usecase"
	"github.com/anuntech/expense-backend/internal/infra/db/memory"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/expense-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/anuntech/expense-backend/internal/infra/db/sqlite"
	"github.com/anuntech/expense-backend/internal/infra/report"
	"github.com/anuntech/expense-backend/internal/logger"
	"github.com/anuntech/expense-backend/internal/setup/config"
	"github.com/anuntech/expense-backend/internal/setup/factory"
	"github.com/anuntech/expense-backend/internal/setup/middlewares"
)

// Closer releases whatever NewDeps opened.
type Closer func(ctx context.Context)

// NewStore opens the expense store selected by cfg.StoreBackend.
func NewStore(ctx context.Context, cfg *config.Config) (usecase.ExpenseRepository, Closer, error) {
	switch cfg.StoreBackend {
	case config.BackendMongo:
		db, err := helpers.MongoHelper(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		closer := func(ctx context.Context) {
			if err := db.Client().Disconnect(ctx); err != nil {
				logger.L().WithError(err).Warn("disconnect mongodb")
			}
		}
		return expense_repository.NewExpenseRepository(db), closer, nil

	case config.BackendSQLite:
		store, err := sqlite.NewExpenseRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		closer := func(context.Context) {
			if err := store.Close(); err != nil {
				logger.L().WithError(err).Warn("close sqlite")
			}
		}
		return store, closer, nil

	case config.BackendMemory:
		logger.L().Warn("using the in-memory expense store, data is lost on restart")
		return memory.NewExpenseRepository(), func(context.Context) {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// NewDeps wires the store, renderers and the optional archive.
func NewDeps(ctx context.Context, cfg *config.Config) (*factory.Deps, Closer, error) {
	store, closeStore, err := NewStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	deps := &factory.Deps{
		Expenses:  store,
		Renderers: report.NewDefaultRegistry(cfg.ReportPageSize),
		Location:  cfg.Location(),
	}
	closers := []Closer{closeStore}

	if cfg.RedisURL != "" {
		client, err := helpers.RedisHelper(ctx, cfg.RedisURL)
		if err != nil {
			closeStore(ctx)
			return nil, nil, err
		}
		deps.Archive = redis_repository.NewReportArchiveRepository(client, cfg.ReportArchiveTTL)
		closers = append(closers, func(context.Context) {
			if err := client.Close(); err != nil {
				logger.L().WithError(err).Warn("close redis")
			}
		})
	} else {
		logger.L().Info("REDIS_URL not set, report archive disabled")
	}

	closeAll := func(ctx context.Context) {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i](ctx)
		}
	}
	return deps, closeAll, nil
}

// Server builds the full handler: /api routes plus health, wrapped in the middleware chain.
func Server(cfg *config.Config, deps *factory.Deps) http.Handler {
	mux := http.NewServeMux()

	config.SetupRoutes(mux, deps)

	var handler http.Handler = mux
	handler = middlewares.NoStoreHeader(handler)
	handler = middlewares.CorsMiddleware(cfg.AllowedOrigins)(handler)
	handler = middlewares.RecoveryMiddleware(handler)
	handler = middlewares.RequestLogger(handler)
	return handler
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sebuszqo/FinanceTracker/internal/account"
	"github.com/sebuszqo/FinanceTracker/internal/category"
	"github.com/sebuszqo/FinanceTracker/internal/config"
	"github.com/sebuszqo/FinanceTracker/internal/currency"
	database "github.com/sebuszqo/FinanceTracker/internal/db"
	"github.com/sebuszqo/FinanceTracker/internal/httputil"
	"github.com/sebuszqo/FinanceTracker/internal/logger"
	"github.com/sebuszqo/FinanceTracker/internal/metrics"
	"github.com/sebuszqo/FinanceTracker/internal/server"
	"github.com/sebuszqo/FinanceTracker/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Missing configuration, update to start server: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// balances go out as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	dbService, err := database.NewDBService(cfg.DB, log)
	if err != nil {
		log.Fatal("could not initialize database", zap.Error(err))
	}

	ctx := context.Background()
	if err := dbService.Ping(ctx); err != nil {
		log.Error("database unreachable, continuing without a verified connection", zap.Error(err))
	} else {
		log.Info("database connection established")
		prepareDatabase(ctx, cfg.DB, dbService, log)
	}

	m := metrics.New()
	if sqlDB, err := dbService.DB.DB(); err == nil {
		m.Registry().MustRegister(collectors.NewDBStatsCollector(sqlDB, "finance_tracker"))
	}

	responder := httputil.NewResponder(log)

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo, log)
	userHandler := user.NewHandler(userService, responder.JSON, responder.Error)

	categoryRepo := category.NewCategoryRepository(dbService.DB)
	categoryService := category.NewCategoryService(categoryRepo, log)
	categoryHandler := category.NewCategoryHandler(categoryService, responder.JSON, responder.Error)

	accountRepo := account.NewAccountRepository(dbService.DB)
	accountService := account.NewAccountService(accountRepo, log)
	accountHandler := account.NewAccountHandler(accountService, responder.JSON, responder.Error)

	currencyHandler := currency.NewCurrencyHandler(newCurrencyService(dbService, log), responder.JSON, responder.Error)

	srv := server.NewServer(log, dbService, m, responder, cfg.CORSAllowedOrigins, server.Handlers{
		User:     userHandler,
		Category: categoryHandler,
		Account:  accountHandler,
		Currency: currencyHandler,
	})
	srv.RegisterRoutes()

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", httpServer.Addr), zap.String("version", server.Version))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	if err := dbService.Close(); err != nil {
		log.Error("db close failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func newCurrencyService(dbService *database.DBService, log *zap.Logger) currency.Service {
	return currency.NewCurrencyService(currency.NewCurrencyRepository(dbService.DB), log)
}

// prepareDatabase runs the optional schema migration and currency seed.
// Failures are logged; the API still starts.
func prepareDatabase(ctx context.Context, cfg config.DBConfig, dbService *database.DBService, log *zap.Logger) {
	if cfg.AutoMigrate {
		if err := dbService.Migrate(ctx); err != nil {
			log.Error("schema migration failed", zap.Error(err))
			return
		}
	}
	if cfg.Seed {
		if err := newCurrencyService(dbService, log).Seed(ctx); err != nil {
			log.Error("currency seed failed", zap.Error(err))
		}
	}
}

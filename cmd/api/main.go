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

	"github.com/joho/godotenv"

	"github.com/faizp/bookshelf/backend/go-graphql/graph"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/config"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/db/repo"
	platformlogger "github.com/faizp/bookshelf/backend/go-graphql/internal/platform/logger"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/platform/metrics"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := platformlogger.New(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	store := repo.New()
	if cfg.SeedData {
		store.Seed()
	}
	counts := store.Counts()
	log.Info("store_ready", "authors", counts.Authors, "books", counts.Books)

	svc := service.New(store, log)
	schema, err := graph.NewSchema(&graph.Resolver{Service: svc})
	if err != nil {
		log.Error("schema_build_failed", "error", err)
		os.Exit(1)
	}

	m := metrics.New(func() (int, int) {
		c := store.Counts()
		return c.Authors, c.Books
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(cfg, &schema, store, log, m),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 2*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server_starting", "addr", httpServer.Addr, "graphiql", cfg.GraphiQL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server_failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", "error", err)
	}
	log.Info("server_stopped")
}

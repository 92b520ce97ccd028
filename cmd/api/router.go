package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gorilla/mux"
	"github.com/graphql-go/graphql"

	"github.com/faizp/bookshelf/backend/go-graphql/graph"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/config"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/graphql/middleware"
	platformlogger "github.com/faizp/bookshelf/backend/go-graphql/internal/platform/logger"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/platform/metrics"
)

const graphqlPath = "/graphql"

type pinger interface {
	Ping(context.Context) error
}

func newRouter(cfg config.Config, schema *graphql.Schema, store pinger, log *platformlogger.Logger, m *metrics.Metrics) http.Handler {
	router := mux.NewRouter()
	middlewares := []mux.MiddlewareFunc{middleware.RequestID, middleware.Logging(log), middleware.Metrics(m)}
	router.Use(middlewares...)

	// mux skips Use middleware when no route matches.
	router.NotFoundHandler = chain(http.NotFoundHandler(), middlewares...)
	router.MethodNotAllowedHandler = chain(methodNotAllowedHandler(), middlewares...)

	gql := graph.NewHandler(schema, graph.HandlerConfig{
		GraphiQL: cfg.GraphiQL,
		Logger:   log,
		Metrics:  m,
	})
	router.Handle(graphqlPath, middleware.Timeout(cfg.RequestTimeout)(gql)).
		Methods(http.MethodGet, http.MethodPost)

	router.Handle("/", playground.Handler("Bookshelf GraphQL", graphqlPath)).Methods(http.MethodGet)
	router.Handle("/healthz", healthHandler(store, log)).Methods(http.MethodGet)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	return router
}

func chain(h http.Handler, middlewares ...mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func methodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})
}

func healthHandler(store pinger, logger *platformlogger.Logger) http.Handler {
	type response struct {
		Status string `json:"status"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := store.Ping(ctx); err != nil {
			logger.Error("health_check_failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(response{Status: "unhealthy"})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response{Status: "ok"})
	})
}

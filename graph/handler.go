package graph

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/faizp/bookshelf/backend/go-graphql/internal/graphql/middleware"
	platformlogger "github.com/faizp/bookshelf/backend/go-graphql/internal/platform/logger"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/platform/metrics"
)

type HandlerConfig struct {
	// GraphiQL serves the explorer to browsers on the same path.
	GraphiQL bool
	Logger   *platformlogger.Logger
	Metrics  *metrics.Metrics
}

// NewHandler serves GraphQL over GET and POST and reports every executed
// operation to the logger and metrics.
func NewHandler(schema *graphql.Schema, cfg HandlerConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = platformlogger.Nop()
	}

	return postOnlyMutations(handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: cfg.GraphiQL,
		ResultCallbackFn: func(ctx context.Context, params *graphql.Params, result *graphql.Result, _ []byte) {
			op := DescribeOperation(params.RequestString, params.OperationName)
			failed := result.HasErrors()

			if cfg.Metrics != nil {
				cfg.Metrics.ObserveOperation(op.Kind, failed)
			}

			kv := []interface{}{
				"kind", op.Kind,
				"operation", op.Name,
				"fields", op.Fields,
				"request_id", middleware.RequestIDFromContext(ctx),
			}
			if failed {
				log.Warn("graphql_operation_failed", append(kv, "errors", errorMessages(result))...)
				return
			}
			log.Debug("graphql_operation", kv...)
		},
	}))
}

// postOnlyMutations answers GET mutations with 405 so that links and
// embedded resources cannot change data.
func postOnlyMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			q := r.URL.Query()
			if op := DescribeOperation(q.Get("query"), q.Get("operationName")); op.Kind == string(ast.Mutation) {
				w.Header().Set("Allow", http.MethodPost)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusMethodNotAllowed)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"errors": []map[string]interface{}{{
						"message":    "Can only perform a mutation operation from a POST request.",
						"extensions": map[string]interface{}{"code": "METHOD_NOT_ALLOWED"},
					}},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func errorMessages(result *graphql.Result) []string {
	out := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		out = append(out, e.Message)
	}
	return out
}

package graph

import (
	"context"
	"errors"

	"github.com/faizp/bookshelf/backend/go-graphql/internal/graphql/middleware"
	"github.com/faizp/bookshelf/backend/go-graphql/internal/service"
)

// graphError carries GraphQL error extensions. graphql-go copies
// Extensions() into the formatted error.
type graphError struct {
	message    string
	extensions map[string]interface{}
}

func (e *graphError) Error() string {
	return e.message
}

func (e *graphError) Extensions() map[string]interface{} {
	return e.extensions
}

func asGraphQLError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	out := &graphError{
		message:    "internal server error",
		extensions: map[string]interface{}{"code": string(service.CodeInternal)},
	}

	var appErr *service.AppError
	if errors.As(err, &appErr) {
		out.message = appErr.Message
		out.extensions["code"] = string(appErr.Code)
		if appErr.Entity != "" {
			out.extensions["entity"] = string(appErr.Entity)
			out.extensions["id"] = appErr.ID
		}
	}
	if reqID := middleware.RequestIDFromContext(ctx); reqID != "" {
		out.extensions["request_id"] = reqID
	}
	return out
}

package service

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode string

const (
	CodeBadUserInput ErrorCode = "BAD_USER_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeTimeout      ErrorCode = "TIMEOUT"
	CodeInternal     ErrorCode = "INTERNAL"
)

// Entity names the collection a NOT_FOUND error refers to.
type Entity string

const (
	EntityAuthor Entity = "author"
	EntityBook   Entity = "book"
)

type AppError struct {
	Code    ErrorCode
	Message string
	// Entity and ID are set when the error is about one record.
	Entity Entity
	ID     int
	Err    error
}

func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Entity != "" {
		fmt.Fprintf(&b, " %s=%d", e.Entity, e.ID)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadInput(msg string) *AppError {
	return &AppError{Code: CodeBadUserInput, Message: msg}
}

// NewNotFound reports a missing author or book.
func NewNotFound(entity Entity, id int) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %d not found", entity, id),
		Entity:  entity,
		ID:      id,
	}
}

func NewTimeout(msg string, err error) *AppError {
	return &AppError{Code: CodeTimeout, Message: msg, Err: err}
}

func NewInternal(msg string, err error) *AppError {
	return &AppError{Code: CodeInternal, Message: msg, Err: err}
}

func IsAppErrorCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

package api

import (
	"fmt"

	"github.com/dmitrijs2005/techkatta/internal/common"
)

// APIError is a non-2xx response from the TechKatta API, carrying the
// server's field-level detail message when one was supplied.
//
// For 401/403 responses the error also matches common.ErrUnauthorized via
// errors.Is.
type APIError struct {
	StatusCode int
	Detail     string
	sentinel   error
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.sentinel }

func newUnauthorizedError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail, sentinel: common.ErrUnauthorized}
}

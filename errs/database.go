package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrStoreQuery      = errors.New("document store query failed")
	ErrStoreConnection = errors.New("document store unavailable")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError wraps a document-store failure with the operation and
// collection it happened in
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case errors.Is(cause, ErrNotFound) || strings.Contains(errStr, "NotFound") || strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s not found", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "AlreadyExists"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "PermissionDenied") || strings.Contains(errStr, "Unauthenticated"):
			return &ApiErr{
				StatusCode: http.StatusForbidden,
				err:        fmt.Errorf("access to %s denied", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "Unavailable") || strings.Contains(errStr, "DeadlineExceeded") || strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrStoreConnection,
				Details:    "Unable to reach the document store",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStoreQuery,
		Details:    details,
		Cause:      cause,
	}
}

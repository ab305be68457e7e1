package repo

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// QueryExecutionError reports a data-store failure while running a search
// statement. It is fatal for the request: the search layer makes no retry
// attempt and propagates it to the caller.
type QueryExecutionError struct {
	Op   string
	Code codes.Code
	Err  error
}

// Error implements the error interface.
func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query execution failed during %s (%s): %v", e.Op, e.Code, e.Err)
}

// Unwrap exposes the underlying data-store error.
func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

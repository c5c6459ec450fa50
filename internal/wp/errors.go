package wp

import (
	"errors"
	"fmt"
)

// ErrNotFound means the upstream answered correctly but has no such entity.
// It is a normal outcome, routed to a 404 presentation, never a transport
// failure.
var ErrNotFound = errors.New("wp: not found")

// ErrAuthRequired means a preview operation was attempted without
// configured credentials. It is distinguishable from ErrNotFound so the
// user sees an explanatory page instead of a generic 404.
var ErrAuthRequired = errors.New("wp: authentication required")

// APIError is a transport or protocol failure: a non-2xx status, a
// non-JSON payload, or a network error.
type APIError struct {
	Endpoint string
	Status   int
	Body     string
	Err      error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wp: request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("wp: request to %s returned status %d", e.Endpoint, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

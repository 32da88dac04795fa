// Package providers holds what the upstream clients share.
package providers

import (
	"errors"
	"fmt"
)

// StatusError is returned by provider clients when the upstream answers
// with a non-2xx status. Adapters inspect StatusCode to classify it.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// IsStatus reports whether err carries a StatusError with the given code
func IsStatus(err error, statusCode int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == statusCode
}

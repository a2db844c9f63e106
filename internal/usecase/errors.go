package usecase

import (
	"errors"
	"fmt"
)

// HTTPError carries the status a handler should answer with. Validation
// problems are 400s with the message surfaced verbatim to the caller;
// missing orders/items are 404s.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

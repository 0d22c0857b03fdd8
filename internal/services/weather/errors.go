package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed covers network errors, non-200 responses and
	// unexpected payloads alike.
	ErrFetchFailed = errors.New("fetch failed")

	ErrEmptyCity = errors.New("city must not be empty")

	// ErrMalformedResponse is a 200 answer whose body is not the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is a non-200 answer from the weather API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.Code)
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrServerOffline indicates the dictionary API is unreachable
	ErrServerOffline = errors.New("dictionary API is unreachable")

	// ErrNotFound indicates the requested entry or word does not exist
	ErrNotFound = errors.New("entry not found")

	// ErrNotConfigured indicates no API base URL has been set
	ErrNotConfigured = errors.New("dictionary API URL is not configured")
)

// APIError is a non-2xx response from the dictionary API.
// Message comes from the response's Message header.
type APIError struct {
	Status  int
	Message string

	// Alternatives holds the similar words a failed word search returns in its body.
	Alternatives []string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d", e.Status)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}

// AsAPIError unwraps err into an *APIError if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

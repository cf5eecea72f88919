package pantry

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches any StatusError carrying a 404.
	ErrNotFound = errors.New("basket not found")
	// ErrNotConfigured is returned when the API URL or pantry id is missing.
	ErrNotConfigured = errors.New("pantry client is not configured")
)

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Method     string
	Basket     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s basket %q: http %d", e.Method, e.Basket, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

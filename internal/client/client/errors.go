package client

import (
	"errors"
	"net/http"
)

// FallbackMessage is used when a failed response carries no message.
const FallbackMessage = "An error occurred"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// NetworkError means no response came back: connection refused, DNS,
// timeout, cancellation. errors.Is(err, ErrUnavailable) holds.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool {
	return target == ErrUnavailable
}

// ApplicationError is a non-2xx response. Message is the server's text when
// it sent one, FallbackMessage otherwise.
type ApplicationError struct {
	Status  int
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

func (e *ApplicationError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

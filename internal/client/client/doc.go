// Package client is the single network boundary of the artgallery client.
//
// # Overview
//
// Client lists every backend endpoint as a typed method. HTTPClient
// implements it over net/http against one configured base URL:
//
//   - JSON requests carry Content-Type application/json; register, profile
//     update and the art forms are multipart/form-data, with text fields
//     encoded from schema-tagged structs (gorilla/schema) and pictures read
//     from local paths.
//   - Mutations send their parameters in the body; reads use path and query.
//   - Every request carries X-Request-ID.
//
// # Error Handling
//
// Failures come back as one of two types, both matchable with errors.As:
//
//   - *NetworkError: no response at all; errors.Is(err, ErrUnavailable).
//   - *ApplicationError: a non-2xx status. Its message is the server's own
//     text when present and FallbackMessage otherwise. 401/403 match
//     ErrUnauthorized and 404 matches ErrNotFound.
//
// Nothing is retried. Cancellation and deadlines come from the caller's
// context, plus an optional per-request timeout (WithTimeout).
package client

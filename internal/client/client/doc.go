// Package client talks to the flower shop HTTP API.
//
// HTTPClient implements Client over net/http. Every failed reply becomes an
// *APIError that carries the server's detail message and matches the
// common sentinel errors (ErrorNotFound, ErrorThrottled, ...) through
// errors.Is. Transport failures match ErrUnavailable.
package client

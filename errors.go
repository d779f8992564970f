package wren

import "errors"

var (
	// ErrNotHTTPRequest is returned when the bytes read from a connection do
	// not form a valid HTTP request start-line. The connection is dropped
	// without a response.
	ErrNotHTTPRequest = errors.New("wren: not an HTTP request")

	// ErrNotHTTPResponse is returned by the response parser when the reply
	// from a backend does not start with a valid HTTP status line.
	ErrNotHTTPResponse = errors.New("wren: not an HTTP response")

	// ErrServerClosed is returned by Run after Shutdown closes the listener.
	ErrServerClosed = errors.New("wren: server closed")

	// ErrNoProxyTarget is returned by ForwardDefault when no proxy targets
	// have been configured.
	ErrNoProxyTarget = errors.New("wren: no proxy target configured")
)

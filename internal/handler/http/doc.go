// Package http implements the HTTP transport layer of the portal.
//
// It exposes route wiring, page and API handlers, and middleware. The
// session access guard, login rate limiting, request tracing and access
// logging are handled in this package before requests reach the service
// layer.
package http

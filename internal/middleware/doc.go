// Package middleware provides the HTTP middleware stack for the file hub.
//
// All middleware use the standard func(http.Handler) http.Handler shape and
// compose with chi's Use. The stack covers cross-cutting concerns only:
// request identity, CORS, request logging, and panic recovery. Authentication
// lives in the auth package because it carries domain types.
package middleware

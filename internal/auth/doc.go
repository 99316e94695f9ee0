// Package auth verifies the session tokens issued by the central auth service.
//
// Tokens are HS256 JWTs carrying the user's hub membership and role list.
// The middleware extracts a token from the session cookie or a Bearer header,
// validates it, and stores the parsed claims in the request context. Requests
// without a valid token are redirected to the auth service with 303 See Other,
// which is where browsers pick up a fresh token.
package auth

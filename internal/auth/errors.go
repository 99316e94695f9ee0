package auth

import "errors"

var (
	// ErrExpiredToken is returned when the token is past its expiration.
	ErrExpiredToken = errors.New("auth: token expired")

	// ErrInvalidToken is returned when the token fails parsing or signature checks.
	ErrInvalidToken = errors.New("auth: invalid token")
)

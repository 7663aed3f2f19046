// Package auth is the authorization gate in front of every sensor
// operation. Identity management itself (users, credentials, token
// issuance) lives outside this service; the gate only decides whether a
// presented token is acceptable.
package auth

import "errors"

var (
	ErrMissingToken = errors.New("access token required")
	ErrExpiredToken = errors.New("access token expired")
	ErrInvalidToken = errors.New("access token invalid")
)

// Authorizer verifies a bearer token and returns the caller's subject.
type Authorizer interface {
	Authorize(token string) (subject string, err error)
}

package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthorizer validates HS256 tokens issued by the external identity
// service sharing the same secret.
type JWTAuthorizer struct {
	secret []byte
}

func NewJWTAuthorizer(secret string) *JWTAuthorizer {
	return &JWTAuthorizer{secret: []byte(secret)}
}

var _ Authorizer = (*JWTAuthorizer)(nil)

func (a *JWTAuthorizer) Authorize(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", ErrInvalidToken
	}

	return subject, nil
}

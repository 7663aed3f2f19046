package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubjectKey is where the middleware stores the authorized caller in the
// request locals.
const SubjectKey = "auth_subject"

// Middleware guards a route group with the given Authorizer. Tokens come
// from the Authorization header ("Bearer <token>"); websocket clients that
// cannot set headers may pass a "token" query parameter instead. Missing
// or expired tokens get 401, anything else invalid gets 403.
func Middleware(authorizer Authorizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			token = c.Query("token", "")
		}
		if token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": ErrMissingToken.Error(),
			})
		}

		subject, err := authorizer.Authorize(token)
		if err != nil {
			if errors.Is(err, ErrExpiredToken) {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
					"error":   "unauthorized",
					"message": err.Error(),
				})
			}
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"error":   "forbidden",
				"message": ErrInvalidToken.Error(),
			})
		}

		c.Locals(SubjectKey, subject)
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if strings.HasPrefix(header, prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

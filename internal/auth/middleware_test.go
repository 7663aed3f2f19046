package auth_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sensor-telemetry-service/internal/auth"

	"github.com/gofiber/fiber/v2"
)

type fakeAuthorizer struct {
	AuthorizeFn func(token string) (string, error)
	lastToken   string
}

func (f *fakeAuthorizer) Authorize(token string) (string, error) {
	f.lastToken = token
	if f.AuthorizeFn != nil {
		return f.AuthorizeFn(token)
	}
	return "", auth.ErrInvalidToken
}

func setupApp(authorizer auth.Authorizer) *fiber.App {
	app := fiber.New()
	app.Get("/protected", auth.Middleware(authorizer), func(c *fiber.Ctx) error {
		subject, _ := c.Locals(auth.SubjectKey).(string)
		return c.SendString(subject)
	})
	return app
}

func TestMiddleware_MissingToken(t *testing.T) {
	app := setupApp(&fakeAuthorizer{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestMiddleware_InvalidToken(t *testing.T) {
	app := setupApp(&fakeAuthorizer{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, resp.StatusCode)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	app := setupApp(&fakeAuthorizer{
		AuthorizeFn: func(token string) (string, error) {
			return "", auth.ErrExpiredToken
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer expired")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestMiddleware_ValidBearerToken(t *testing.T) {
	fake := &fakeAuthorizer{
		AuthorizeFn: func(token string) (string, error) {
			if token != "good-token" {
				return "", auth.ErrInvalidToken
			}
			return "user-42", nil
		},
	}
	app := setupApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "user-42" {
		t.Errorf("expected subject in locals, got %q", string(body))
	}
}

func TestMiddleware_QueryTokenFallback(t *testing.T) {
	fake := &fakeAuthorizer{
		AuthorizeFn: func(token string) (string, error) {
			return "user-42", nil
		},
	}
	app := setupApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/protected?token=query-token", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if fake.lastToken != "query-token" {
		t.Errorf("expected query token to be used, got %q", fake.lastToken)
	}
}

func TestMiddleware_HeaderWinsOverQuery(t *testing.T) {
	fake := &fakeAuthorizer{
		AuthorizeFn: func(token string) (string, error) {
			return "user-42", nil
		},
	}
	app := setupApp(fake)

	req := httptest.NewRequest(http.MethodGet, "/protected?token=query-token", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer header-token")
	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if fake.lastToken != "header-token" {
		t.Errorf("expected header token to win, got %q", fake.lastToken)
	}
}

var errOther = errors.New("other failure")

func TestMiddleware_UnknownAuthorizerErrorIsForbidden(t *testing.T) {
	app := setupApp(&fakeAuthorizer{
		AuthorizeFn: func(token string) (string, error) {
			return "", errOther
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer whatever")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, resp.StatusCode)
	}
}

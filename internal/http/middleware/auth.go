package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"cdms/internal/auth"
)

const (
	// ClaimsLocalKey is the key under which verified token claims are stored
	// in Fiber's context locals.
	ClaimsLocalKey = "auth_claims"

	bearerPrefix = "Bearer "
)

// RequireAuth returns a middleware that verifies the request's bearer token
// against the injected TokenManager. On success the token claims are attached
// to the request context for downstream handlers; any missing, malformed,
// invalid, or expired token short-circuits with 401.
//
// The 401 body is the standard error envelope; the fiber.NewError status is
// translated by the global error handler.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if tokenString == header || tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization format")
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims attached by RequireAuth, or nil
// when the request was not authenticated.
func ClaimsFromCtx(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*auth.Claims)
	return claims
}

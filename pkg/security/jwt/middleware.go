package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/accounts/pkg/credential"
)

// Locals keys set by the auth middleware.
const (
	LocalsUser  = "user"
	LocalsToken = "token"
)

// NewAuthMiddleware returns a Fiber middleware that extracts a Bearer token
// and resolves it through the credential service, so revoked sessions and
// deactivated users are rejected even while the signature is still valid.
// On success sets the resolved account.User into c.Locals(LocalsUser) and the
// raw token into c.Locals(LocalsToken).
func NewAuthMiddleware(creds credential.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		var tokenStr string
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			} else {
				tokenStr = strings.TrimSpace(authHeader)
			}
		} else {
			tokenStr = strings.TrimSpace(authHeader)
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}

		user, err := creds.Resolve(c.Context(), tokenStr)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}

		c.Locals(LocalsUser, user)
		c.Locals(LocalsToken, tokenStr)
		return c.Next()
	}
}

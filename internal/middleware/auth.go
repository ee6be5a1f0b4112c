package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/B7A9F/exercices-api/internal/apperrors"
	"github.com/B7A9F/exercices-api/internal/auth"
)

const (
	localUserID   = "userID"
	localUsername = "username"
	localEmail    = "email"
)

// ValidateToken rejects requests without a valid bearer token before
// they reach any handler. A missing token and an invalid or expired one
// produce distinct messages.
func ValidateToken(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return apperrors.Unauthorized("Token is missing")
		}

		identity, err := issuer.Verify(strings.TrimSpace(token))
		if err != nil {
			return apperrors.Unauthorized("User is not authorized")
		}

		c.Locals(localUserID, identity.UserID)
		c.Locals(localUsername, identity.Username)
		c.Locals(localEmail, identity.Email)
		return c.Next()
	}
}

// CallerID returns the authenticated user id stored by ValidateToken.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// CallerUsername returns the authenticated username.
func CallerUsername(c *fiber.Ctx) string {
	name, _ := c.Locals(localUsername).(string)
	return name
}

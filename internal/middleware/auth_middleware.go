package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

const userLocalsKey = "current_user"

// Auth validates the bearer token and loads the actor's user record into the
// request context. The record is loaded per request so role changes and
// deactivation take effect without waiting for token expiry.
func Auth(tokens *auth.TokenService, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Take the token from the Authorization header
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperrors.Handle(c, apperrors.ErrInvalidToken)
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// 2. Validate signature and expiry
		userID, err := tokens.Validate(tokenString)
		if err != nil {
			return apperrors.Handle(c, err)
		}

		// 3. Resolve the subject to a stored user
		user, err := users.FindByID(userID)
		if err != nil {
			return apperrors.Handle(c, apperrors.ErrInvalidToken)
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userLocalsKey).(*model.User)
	return user
}

// SetCurrentUser stores the actor in the request context. Exposed for tests
// that exercise handlers without the full Auth chain.
func SetCurrentUser(c *fiber.Ctx, user *model.User) {
	c.Locals(userLocalsKey, user)
}

package middleware

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/internal/apperrors"
)

// Role allows the request through only when the actor's role is in the
// allowed set. It must run after Auth.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return apperrors.Handle(c, apperrors.ErrInvalidToken)
		}

		for _, role := range allowedRoles {
			if role == user.Role {
				return c.Next()
			}
		}

		return apperrors.Handle(c, apperrors.ErrForbidden)
	}
}

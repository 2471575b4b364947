package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// RequireRole gates a route to one of the three fixed account roles. Roles
// are immutable after registration, so a static check is all that is needed.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User role not found in context",
			})
		}
		for _, role := range roles {
			if models.Role(roleVal) == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/quillhq/quill/pkg/internal/services"
)

// ContextMiddleware resolves the bearer token, if any, and parks the
// account in the request locals. Requests with a missing or bad token
// simply continue unauthenticated; the write handlers reject them.
func ContextMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if id, err := services.ParseToken(token); err == nil {
			var account models.Account
			if err := database.C.Where("id = ?", id).First(&account).Error; err == nil {
				c.Locals("user", account)
			}
		}
	}

	return c.Next()
}

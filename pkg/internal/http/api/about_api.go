package api

import (
	pkg "github.com/quillhq/quill/pkg/internal"

	"github.com/gofiber/fiber/v2"
)

func (ctl *Controller) aboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name": "Quill",
		"bio":  "A small blogging service: write posts, gather them into groups, follow the authors you like.",
	})
}

func (ctl *Controller) aboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": pkg.AppVersion,
		"stack":   []string{"go", "fiber", "gorm", "postgres", "ristretto"},
	})
}

package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillhq/quill/pkg/internal/http/exts"
	"github.com/quillhq/quill/pkg/internal/services"
)

func (ctl *Controller) listGroup(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	groups, err := services.ListGroup(take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func (ctl *Controller) createGroup(c *fiber.Ctx) error {
	if _, err := ensureAuthenticated(c); err != nil {
		return err
	}

	var data struct {
		Slug        string `json:"slug" form:"slug" validate:"required,lowercase"`
		Title       string `json:"title" form:"title" validate:"required"`
		Description string `json:"description" form:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

func (ctl *Controller) listGroupPost(c *fiber.Ctx) error {
	slug := c.Params("slug")

	group, err := services.GetGroup(slug)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctl.serveFeedPage(c, "group", group.Slug, services.FilterPostWithGroup(group.Slug))
}

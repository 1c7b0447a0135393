package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/http/exts"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/quillhq/quill/pkg/internal/services"
)

func (ctl *Controller) listComment(c *fiber.Ctx) error {
	take := c.QueryInt("take", 20)
	offset := c.QueryInt("offset", 0)

	var post models.Post
	if err := database.C.Where("id = ?", c.Params("postId")).First(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	items, err := services.ListComment(post.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": services.CountComment(post.ID),
		"data":  items,
	})
}

func (ctl *Controller) createComment(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var post models.Post
	if err := database.C.Where("id = ?", c.Params("postId")).First(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post to comment: %v", err))
	}

	var data struct {
		Text string `json:"text" form:"text" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	comment, err := services.NewComment(user, post, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctl.pages.Clear(c.UserContext())

	return c.Status(fiber.StatusCreated).JSON(comment)
}

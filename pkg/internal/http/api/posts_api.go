package api

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/quillhq/quill/pkg/internal/cache"
	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/http/exts"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/quillhq/quill/pkg/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// serveFeedPage answers one page of a feed, preferring a previously cached
// copy. Whatever gets assembled here is stored back so the next identical
// request short-circuits.
func (ctl *Controller) serveFeedPage(c *fiber.Ctx, scope, filter string, filters ...services.FeedFilter) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "page must be greater than zero")
	}

	key := cache.FeedPageKey(scope, filter, page)
	if cached, ok := ctl.pages.Get(c.UserContext(), key, new(services.FeedPage)); ok {
		return c.JSON(cached)
	}

	feed, err := services.AssembleFeed(database.C, page, filters...)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.pages.Set(c.UserContext(), key, feed); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to store feed page in cache...")
	}

	return c.JSON(feed)
}

func (ctl *Controller) listPost(c *fiber.Ctx) error {
	return ctl.serveFeedPage(c, "main", "")
}

func (ctl *Controller) listFeaturedPost(c *fiber.Ctx) error {
	take := c.QueryInt("take", 5)
	take = max(1, min(take, 10))

	items, err := services.GetFeaturedPosts(take)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func (ctl *Controller) getPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("postId", 0)
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid post id, must be a number")
	}

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item.Comments, err = services.ListComment(item.ID, 100, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

func (ctl *Controller) createPost(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	var data struct {
		Text  string `json:"text" form:"text" validate:"required"`
		Group string `json:"group" form:"group"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text: data.Text,
	}

	if len(data.Group) > 0 {
		group, err := services.GetGroup(data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("group was not found: %v", err))
		}
		item.GroupID = &group.ID
	}

	if image, err := saveUploadedImage(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to save image: %v", err))
	} else {
		item.Image = image
	}

	item, err = services.NewPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctl.pages.Clear(c.UserContext())

	c.Set(fiber.HeaderLocation, "/api/users/"+user.Username)
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (ctl *Controller) editPost(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	id, _ := c.ParamsInt("postId", 0)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if decision := services.CanEditPost(user, item); !decision.Allow {
		return fiber.NewError(fiber.StatusForbidden, decision.Reason)
	}

	var data struct {
		Text  string `json:"text" form:"text" validate:"required"`
		Group string `json:"group" form:"group"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item.Text = data.Text
	if len(data.Group) > 0 {
		group, err := services.GetGroup(data.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("group was not found: %v", err))
		}
		item.GroupID = &group.ID
	} else {
		item.GroupID = nil
	}

	if image, err := saveUploadedImage(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to save image: %v", err))
	} else if image != nil {
		item.Image = image
	}

	if item, err = services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctl.pages.Clear(c.UserContext())

	return c.JSON(item)
}

func (ctl *Controller) deletePost(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	id, _ := c.ParamsInt("postId", 0)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if decision := services.CanDeletePost(user, item); !decision.Allow {
		return fiber.NewError(fiber.StatusForbidden, decision.Reason)
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctl.pages.Clear(c.UserContext())

	return c.SendStatus(fiber.StatusOK)
}

// saveUploadedImage stores the optional multipart image under the media
// directory with a fresh name. A request without an image is not an error.
func saveUploadedImage(c *fiber.Ctx) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return nil, nil
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(viper.GetString("media_dir"), name)); err != nil {
		return nil, err
	}

	return &name, nil
}

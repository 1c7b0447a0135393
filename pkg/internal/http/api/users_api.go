package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/quillhq/quill/pkg/internal/services"
	"github.com/rs/zerolog/log"
)

func (ctl *Controller) getUserProfile(c *fiber.Ctx) error {
	account, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	isFollowing := false
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		follow, err := services.GetFollowOnAuthor(user, account)
		if err != nil {
			log.Warn().Err(err).Str("username", account.Username).Msg("Failed to resolve follow edge for profile...")
		}
		isFollowing = follow != nil
	}

	return c.JSON(fiber.Map{
		"account":      account,
		"followers":    services.CountFollowers(account),
		"following":    services.CountFollowing(account),
		"is_following": isFollowing,
	})
}

func (ctl *Controller) listUserPost(c *fiber.Ctx) error {
	account, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctl.serveFeedPage(c, "author", account.Username, services.FilterPostWithAuthor(account.Username))
}

func (ctl *Controller) listFollowedPost(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	return ctl.serveFeedPage(c, "following", user.Username, services.FilterPostWithFollowed(user.ID))
}

func (ctl *Controller) followUser(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	follow, err := services.FollowAuthor(user, author)
	if err != nil {
		if errors.Is(err, services.ErrFollowSelf) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ctl.pages.Clear(c.UserContext())

	return c.JSON(follow)
}

func (ctl *Controller) unfollowUser(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	author, err := services.GetAccountWithName(c.Params("username"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAuthor(user, author); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ctl.pages.Clear(c.UserContext())

	return c.SendStatus(fiber.StatusOK)
}

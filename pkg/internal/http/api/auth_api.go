package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillhq/quill/pkg/internal/http/exts"
	"github.com/quillhq/quill/pkg/internal/services"
)

func (ctl *Controller) doRegister(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" form:"username" validate:"required,lowercase,alphanum,min=3,max=32"`
		Email    string `json:"email" form:"email" validate:"required,email"`
		Password string `json:"password" form:"password" validate:"required,min=6"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(data.Username, data.Email, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	token, err := services.IssueToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}

func (ctl *Controller) doLogin(c *fiber.Ctx) error {
	var data struct {
		Username string `json:"username" form:"username" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.AuthenticateAccount(data.Username, data.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	token, err := services.IssueToken(account)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}

func (ctl *Controller) getMe(c *fiber.Ctx) error {
	user, err := ensureAuthenticated(c)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

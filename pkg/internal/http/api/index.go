package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillhq/quill/pkg/internal/cache"
	"github.com/quillhq/quill/pkg/internal/models"
)

// Controller groups the handlers around their shared dependencies, most
// importantly the page cache that every feed read consults and every
// write invalidates.
type Controller struct {
	pages *cache.PageCache
}

func MapAPIs(app *fiber.App, pages *cache.PageCache) {
	ctl := &Controller{pages: pages}

	app.Get("/about/author", ctl.aboutAuthor)
	app.Get("/about/tech", ctl.aboutTech)

	api := app.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.Post("/register", ctl.doRegister)
			auth.Post("/login", ctl.doLogin)
			auth.Get("/me", ctl.getMe)
		}

		api.Get("/posts", ctl.listPost)
		api.Post("/posts", ctl.createPost)
		api.Get("/posts/featured", ctl.listFeaturedPost)
		api.Get("/posts/:postId", ctl.getPost)
		api.Put("/posts/:postId", ctl.editPost)
		api.Delete("/posts/:postId", ctl.deletePost)

		api.Get("/posts/:postId/comments", ctl.listComment)
		api.Post("/posts/:postId/comments", ctl.createComment)

		api.Get("/groups", ctl.listGroup)
		api.Post("/groups", ctl.createGroup)
		api.Get("/groups/:slug/posts", ctl.listGroupPost)

		api.Get("/users/:username", ctl.getUserProfile)
		api.Get("/users/:username/posts", ctl.listUserPost)
		api.Post("/users/:username/follow", ctl.followUser)
		api.Post("/users/:username/unfollow", ctl.unfollowUser)

		api.Get("/feed/following", ctl.listFollowedPost)
	}
}

func ensureAuthenticated(c *fiber.Ctx) (models.Account, error) {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		return user, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return user, nil
}

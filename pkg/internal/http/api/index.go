package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App) {
	app.Get("/", getHomeFeed)
	app.Get("/group/:slug", getGroupFeed)
	app.Get("/profile/:username", getProfile)
	app.Post("/profile/:username/follow", followAccount)
	app.Post("/profile/:username/unfollow", unfollowAccount)
	app.Get("/posts/:postId", getPost)
	app.Post("/posts/:postId/comment", createComment)
	app.Post("/posts/:postId/edit", editPost)
	app.Post("/create", createPost)
	app.Get("/follow", getFollowedFeed)

	app.Get("/auth/login", getLogin)
	app.Post("/auth/login", doLogin)

	app.Get("/about/author", getAboutAuthor)
	app.Get("/about/tech", getAboutTech)
}

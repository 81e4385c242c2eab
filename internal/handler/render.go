package handler

import (
	"errors"
	"movie_watchlist/api/middleware"
	"movie_watchlist/internal/service"
	"movie_watchlist/model"
	errorHandler "movie_watchlist/pkg/error"
	"movie_watchlist/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const layout = "layouts/main"

// pageRenderer fills the values every page shows: the signed in user, the
// watchlist badge, the theme and pending flash messages.
type pageRenderer struct {
	userService service.IUserService
}

func (r *pageRenderer) render(c *fiber.Ctx, status int, view string, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	s := middleware.GetSession(c)

	var currentUser *model.User
	if s.IsAuthenticated() {
		user, err := r.userService.GetProfile(c.UserContext(), s.UserId)
		if err != nil && !errors.Is(err, model.ErrUserNotFound) {
			errorHandler.SaveError("could not load current user", err)
		}
		currentUser = user
	}

	data["Title"] = title
	data["CurrentUser"] = currentUser
	data["WatchlistCount"] = currentUser.WatchlistCount()
	data["Theme"] = s.Theme
	data["CurrentPath"] = c.OriginalURL()
	data["Flashes"] = s.PopFlashes()
	return c.Status(status).Render(view, data, layout)
}

func (r *pageRenderer) notFound(c *fiber.Ctx, message string) error {
	return r.render(c, fiber.StatusNotFound, "404", response.PageNotFound, fiber.Map{
		"Message": message,
	})
}

// redirectWithFlash queues a flash for the next rendered page.
func redirectWithFlash(c *fiber.Ctx, location string, category string, message string) error {
	middleware.GetSession(c).AddFlash(category, message)
	return c.Redirect(location)
}

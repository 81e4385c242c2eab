package api

import (
	"context"
	"errors"
	"movie_watchlist/api/middleware"
	_ "movie_watchlist/docs"
	"movie_watchlist/internal/handler"
	"movie_watchlist/internal/session"
	errorHandler "movie_watchlist/pkg/error"
	"movie_watchlist/pkg/response"
	"movie_watchlist/templates"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const defaultRequestTimeout = 30 * time.Second

type RouterOptions struct {
	UserHandler    *handler.UserHandler
	MovieHandler   *handler.MovieHandler
	Sessions       *session.Manager
	SecureCookies  bool
	StaticDir      string
	RequestTimeout time.Duration
}

func InitRouter(opts RouterOptions) *fiber.App {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code == fiber.StatusNotFound {
			return errorPage(c, code, "404", response.PageNotFound, "")
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			errorHandler.SaveError("request failed: "+c.Path(), err)
		}

		message := response.ServerError
		if code < 500 && e != nil {
			message = e.Message
		}
		return errorPage(c, code, "error", "Error", message)
	}

	router := fiber.New(fiber.Config{
		ErrorHandler: defaultErrorHandler,
		Views:        templates.NewEngine(),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		// form values end up in stores and sessions that outlive the request
		Immutable: true,
	})

	router.Use(helmet.New(helmet.Config{
		// trailers are embedded from youtube
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	router.Use(timeoutMiddleware(opts.RequestTimeout))
	router.Use(recover.New())
	router.Use(middleware.RequestLogger)
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir, fiber.Static{
			Compress: true,
			MaxAge:   3600,
		})
	}

	router.Get("/health", HealthCheck)
	router.Get("/metrics", monitor.New())
	router.Get("/swagger/*", swagger.HandlerDefault) // default

	pages := router.Group("", middleware.SessionMiddleware(opts.Sessions, opts.SecureCookies))
	{
		userHandler := opts.UserHandler
		movieHandler := opts.MovieHandler

		pages.Get("/", movieHandler.Home)
		pages.Get("/index", middleware.AuthRequired, movieHandler.Watchlist)

		pages.Get("/register", middleware.GuestOnly, userHandler.RegisterPage)
		pages.Post("/register", middleware.GuestOnly, userHandler.Register)
		pages.Get("/login", middleware.GuestOnly, userHandler.LoginPage)
		pages.Post("/login", middleware.GuestOnly, userHandler.Login)
		pages.Get("/logout", userHandler.Logout)
		pages.Get("/toggle-theme", userHandler.ToggleTheme)
		pages.Get("/profile", middleware.AuthRequired, userHandler.ProfilePage)
		pages.Post("/profile", middleware.AuthRequired, userHandler.UpdateProfile)

		pages.Get("/add", middleware.AuthRequired, movieHandler.AddMoviePage)
		pages.Post("/add", middleware.AuthRequired, movieHandler.AddMovie)
		pages.Get("/edit/:id", middleware.AuthRequired, movieHandler.EditMoviePage)
		pages.Post("/edit/:id", middleware.AuthRequired, movieHandler.EditMovie)
		pages.Get("/movie/:id", movieHandler.MovieDetails)
		pages.Get("/movie/:id/rate", middleware.AuthRequired, movieHandler.RateMovie)
		pages.Get("/movie/:id/watch", middleware.AuthRequired, movieHandler.WatchMovie)

		pages.Get("/search", middleware.AuthRequired, movieHandler.Search)
		pages.Get("/tmdb/movie/:id", middleware.AuthRequired, movieHandler.CatalogMovie)
		pages.Post("/add_from_tmdb/:id", middleware.AuthRequired, movieHandler.AddFromCatalog)
		pages.Get("/add_featured/:id", middleware.AuthRequired, movieHandler.AddFeatured)
	}

	return router
}

func errorPage(c *fiber.Ctx, code int, view string, title string, message string) error {
	return c.Status(code).Render(view, fiber.Map{
		"Title":       title,
		"Message":     message,
		"Theme":       middleware.GetSession(c).Theme,
		"CurrentPath": "/",
	}, "layouts/main")
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()

		c.SetUserContext(ctx)
		err := c.Next()
		// a page that was produced in time for the client is kept, even if late
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fiber.ErrGatewayTimeout
		}
		return err
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	response.ResponseOKWithDataModel
//	@Router			/health [get]
func HealthCheck(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, "Server is up and running")
}

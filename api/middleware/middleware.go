package middleware

import (
	"movie_watchlist/internal/session"
	errorHandler "movie_watchlist/pkg/error"
	"movie_watchlist/pkg/logger"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookieName = "session"
	sessionLocalsKey  = "session"
)

// SessionMiddleware resolves the session cookie into a request scoped
// *session.Session and writes it back once the handler changed it.
func SessionMiddleware(manager *session.Manager, secureCookie bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := manager.Decode(c.UserContext(), c.Cookies(SessionCookieName, ""))
		c.Locals(sessionLocalsKey, s)

		err := c.Next()

		if s.Modified() {
			token, signErr := manager.Encode(s)
			if signErr != nil {
				errorHandler.SaveError("could not sign session cookie", signErr)
				return err
			}
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(manager.MaxAge().Seconds()),
				Secure:   secureCookie,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		return err
	}
}

// GetSession never returns nil, requests that skipped SessionMiddleware are anonymous.
func GetSession(c *fiber.Ctx) *session.Session {
	if s, ok := c.Locals(sessionLocalsKey).(*session.Session); ok && s != nil {
		return s
	}
	return &session.Session{}
}

func AuthRequired(c *fiber.Ctx) error {
	if !GetSession(c).IsAuthenticated() {
		return c.Redirect("/login")
	}
	return c.Next()
}

// GuestOnly sends logged-in users away from the login and register pages.
func GuestOnly(c *fiber.Ctx) error {
	if GetSession(c).IsAuthenticated() {
		return c.Redirect("/")
	}
	return c.Next()
}

func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	event := logger.Info()
	if status >= fiber.StatusInternalServerError {
		event = logger.Warn()
	}
	event.
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("duration", time.Since(start)).
		Msg("request")
	return err
}

package handler

import (
	"errors"
	"movie_watchlist/api/middleware"
	"movie_watchlist/internal/service"
	"movie_watchlist/internal/session"
	"movie_watchlist/model"
	"movie_watchlist/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	RegisterPage(c *fiber.Ctx) error
	Register(c *fiber.Ctx) error
	LoginPage(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	ProfilePage(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	ToggleTheme(c *fiber.Ctx) error
}

type UserHandler struct {
	pageRenderer
	userService service.IUserService
	sessions    *session.Manager
}

func NewUserHandler(userService service.IUserService, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		pageRenderer: pageRenderer{userService: userService},
		userService:  userService,
		sessions:     sessions,
	}
}

//------------------------------------------
//------------------------------------------

func (m *UserHandler) RegisterPage(c *fiber.Ctx) error {
	return m.renderRegister(c, fiber.StatusOK, RegisterForm{}, nil)
}

// Register godoc
//
//	@Summary		Register
//	@Description	Create an account. Does not log the new user in.
//	@Tags			User
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			email				formData	string	true	"email"
//	@Param			password			formData	string	true	"password"
//	@Param			confirm_password	formData	string	true	"password again"
//	@Success		302
//	@Failure		400,409
//	@Router			/register [post]
func (m *UserHandler) Register(c *fiber.Ctx) error {
	var form RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return m.renderRegister(c, fiber.StatusBadRequest, form, formErrors(err))
	}
	if err := validate.Struct(form); err != nil {
		return m.renderRegister(c, fiber.StatusBadRequest, form, formErrors(err))
	}

	_, err := m.userService.Register(c.UserContext(), form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateEmail):
			return m.renderRegister(c, fiber.StatusConflict, form, map[string]string{"email": response.EmailAlreadyExist})
		case errors.Is(err, model.ErrInvalidEmail):
			return m.renderRegister(c, fiber.StatusBadRequest, form, map[string]string{"email": response.InvalidEmail})
		default:
			return err
		}
	}

	return redirectWithFlash(c, "/login", response.FlashSuccess, response.UserRegistered)
}

func (m *UserHandler) LoginPage(c *fiber.Ctx) error {
	return m.renderLogin(c, fiber.StatusOK, LoginForm{}, nil)
}

// Login godoc
//
//	@Summary		Login
//	@Description	Bind the session to the user on valid credentials.
//	@Tags			User
//	@Accept			x-www-form-urlencoded
//	@Produce		html
//	@Param			email		formData	string	true	"email"
//	@Param			password	formData	string	true	"password"
//	@Success		302
//	@Failure		400,401
//	@Router			/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		return m.renderLogin(c, fiber.StatusBadRequest, form, formErrors(err))
	}
	if err := validate.Struct(form); err != nil {
		return m.renderLogin(c, fiber.StatusBadRequest, form, formErrors(err))
	}

	user, err := m.userService.Login(c.UserContext(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return m.renderLogin(c, fiber.StatusUnauthorized, form, map[string]string{"form": response.InvalidCredentials})
		}
		return err
	}

	middleware.GetSession(c).Login(user.Id, user.Email)
	return c.Redirect("/")
}

// Logout keeps the theme of the browser.
func (m *UserHandler) Logout(c *fiber.Ctx) error {
	s := middleware.GetSession(c)
	m.sessions.Revoke(c.UserContext(), s)
	s.Logout()
	return c.Redirect("/login")
}

func (m *UserHandler) ProfilePage(c *fiber.Ctx) error {
	user, err := m.currentUser(c)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Redirect("/login")
	}
	return m.renderProfile(c, fiber.StatusOK, user, ProfileForm{
		Name:      user.Name,
		Bio:       user.Bio,
		AvatarUrl: user.AvatarUrl,
	}, nil)
}

func (m *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := m.currentUser(c)
	if err != nil {
		return err
	}
	if user == nil {
		return c.Redirect("/login")
	}

	var form ProfileForm
	if err = c.BodyParser(&form); err != nil {
		return m.renderProfile(c, fiber.StatusBadRequest, user, form, formErrors(err))
	}
	form.AvatarUrl = strings.TrimSpace(form.AvatarUrl)
	if err = validate.Struct(form); err != nil {
		return m.renderProfile(c, fiber.StatusBadRequest, user, form, formErrors(err))
	}

	_, err = m.userService.UpdateProfile(c.UserContext(), user.Id, model.ProfileUpdate{
		Name:      form.Name,
		Bio:       form.Bio,
		AvatarUrl: form.AvatarUrl,
	})
	if err != nil {
		return err
	}
	return redirectWithFlash(c, "/profile", response.FlashSuccess, response.ProfileUpdated)
}

func (m *UserHandler) ToggleTheme(c *fiber.Ctx) error {
	middleware.GetSession(c).ToggleTheme()
	return c.Redirect(localRedirect(c.Query("current_page", "")))
}

//------------------------------------------
//------------------------------------------

// currentUser returns nil and ends the session when the signed in user no longer exists.
func (m *UserHandler) currentUser(c *fiber.Ctx) (*model.User, error) {
	s := middleware.GetSession(c)
	user, err := m.userService.GetProfile(c.UserContext(), s.UserId)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.Logout()
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (m *UserHandler) renderRegister(c *fiber.Ctx, status int, form RegisterForm, errs map[string]string) error {
	form.Password = ""
	form.ConfirmPassword = ""
	return m.render(c, status, "register", "Movies Watchlist - Register", fiber.Map{
		"Form":   form,
		"Errors": errs,
	})
}

func (m *UserHandler) renderLogin(c *fiber.Ctx, status int, form LoginForm, errs map[string]string) error {
	form.Password = ""
	return m.render(c, status, "login", "Movies Watchlist - Login", fiber.Map{
		"Form":   form,
		"Errors": errs,
	})
}

func (m *UserHandler) renderProfile(c *fiber.Ctx, status int, user *model.User, form ProfileForm, errs map[string]string) error {
	return m.render(c, status, "profile", "My Profile", fiber.Map{
		"User":       user,
		"Form":       form,
		"Errors":     errs,
		"MovieCount": user.WatchlistCount(),
	})
}

// localRedirect only follows paths on this site.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

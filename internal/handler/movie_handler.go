package handler

import (
	"errors"
	"fmt"
	"movie_watchlist/api/middleware"
	"movie_watchlist/internal/service"
	"movie_watchlist/model"
	"movie_watchlist/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	Home(c *fiber.Ctx) error
	Watchlist(c *fiber.Ctx) error
	AddMoviePage(c *fiber.Ctx) error
	AddMovie(c *fiber.Ctx) error
	EditMoviePage(c *fiber.Ctx) error
	EditMovie(c *fiber.Ctx) error
	MovieDetails(c *fiber.Ctx) error
	RateMovie(c *fiber.Ctx) error
	WatchMovie(c *fiber.Ctx) error
	Search(c *fiber.Ctx) error
	CatalogMovie(c *fiber.Ctx) error
	AddFromCatalog(c *fiber.Ctx) error
	AddFeatured(c *fiber.Ctx) error
}

type MovieHandler struct {
	pageRenderer
	movieService   service.IMovieService
	catalogService service.ICatalogService
}

func NewMovieHandler(movieService service.IMovieService, catalogService service.ICatalogService, userService service.IUserService) *MovieHandler {
	return &MovieHandler{
		pageRenderer:   pageRenderer{userService: userService},
		movieService:   movieService,
		catalogService: catalogService,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MovieHandler) Home(c *fiber.Ctx) error {
	return m.render(c, fiber.StatusOK, "home", "Movies Watchlist", fiber.Map{
		"Movies": m.movieService.GetFeatured(c.UserContext()),
	})
}

func (m *MovieHandler) Watchlist(c *fiber.Ctx) error {
	s := middleware.GetSession(c)
	movies, err := m.movieService.GetWatchlist(c.UserContext(), s.UserId)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.Logout()
			return c.Redirect("/login")
		}
		return err
	}
	return m.render(c, fiber.StatusOK, "index", "Movies Watchlist", fiber.Map{
		"Movies": movies,
	})
}

func (m *MovieHandler) AddMoviePage(c *fiber.Ctx) error {
	return m.renderNewMovie(c, fiber.StatusOK, MovieForm{}, nil)
}

func (m *MovieHandler) AddMovie(c *fiber.Ctx) error {
	var form MovieForm
	if err := c.BodyParser(&form); err != nil {
		return m.renderNewMovie(c, fiber.StatusBadRequest, form, formErrors(err))
	}
	if err := validate.Struct(form); err != nil {
		return m.renderNewMovie(c, fiber.StatusBadRequest, form, formErrors(err))
	}

	movie, err := m.movieService.CreateMovie(c.UserContext(), middleware.GetSession(c).UserId, form.toUpdate())
	if err != nil {
		return err
	}
	return c.Redirect("/movie/" + movie.Id)
}

func (m *MovieHandler) EditMoviePage(c *fiber.Ctx) error {
	movie, err := m.movieService.GetMovie(c.UserContext(), c.Params("id"))
	if err != nil {
		return m.handleError(c, err)
	}
	return m.renderEditMovie(c, fiber.StatusOK, movie, extendedFormFromMovie(movie), nil)
}

func (m *MovieHandler) EditMovie(c *fiber.Ctx) error {
	movie, err := m.movieService.GetMovie(c.UserContext(), c.Params("id"))
	if err != nil {
		return m.handleError(c, err)
	}

	var form ExtendedMovieForm
	if err = c.BodyParser(&form); err != nil {
		return m.renderEditMovie(c, fiber.StatusBadRequest, movie, form, formErrors(err))
	}
	if err = validate.Struct(form); err != nil {
		return m.renderEditMovie(c, fiber.StatusBadRequest, movie, form, formErrors(err))
	}

	if err = m.movieService.UpdateMovie(c.UserContext(), movie.Id, form.toUpdate()); err != nil {
		return m.handleError(c, err)
	}
	return c.Redirect("/movie/" + movie.Id)
}

// MovieDetails godoc
//
//	@Summary		Movie Details
//	@Description	Show an owned movie.
//	@Tags			Movie
//	@Produce		html
//	@Param			id	path	string	true	"movie id"
//	@Success		200
//	@Failure		404
//	@Router			/movie/{id} [get]
func (m *MovieHandler) MovieDetails(c *fiber.Ctx) error {
	movie, err := m.movieService.GetMovie(c.UserContext(), c.Params("id"))
	if err != nil {
		return m.handleError(c, err)
	}
	return m.render(c, fiber.StatusOK, "movie_details", movie.Title, fiber.Map{
		"Movie": movie,
	})
}

// RateMovie godoc
//
//	@Summary		Rate Movie
//	@Tags			Movie
//	@Param			id		path	string	true	"movie id"
//	@Param			rating	query	int		true	"1 to 5"
//	@Success		302
//	@Failure		404
//	@Router			/movie/{id}/rate [get]
func (m *MovieHandler) RateMovie(c *fiber.Ctx) error {
	movieId := c.Params("id")
	err := m.movieService.RateMovie(c.UserContext(), movieId, c.QueryInt("rating", 0))
	if err != nil {
		if errors.Is(err, model.ErrInvalidRating) {
			return redirectWithFlash(c, "/movie/"+movieId, response.FlashDanger, response.InvalidRating)
		}
		return m.handleError(c, err)
	}
	return c.Redirect("/movie/" + movieId)
}

func (m *MovieHandler) WatchMovie(c *fiber.Ctx) error {
	movieId := c.Params("id")
	if err := m.movieService.MarkWatched(c.UserContext(), movieId); err != nil {
		return m.handleError(c, err)
	}
	return c.Redirect("/movie/" + movieId)
}

//------------------------------------------
//------------------------------------------

// Search godoc
//
//	@Summary		Search Catalog
//	@Description	Search the movie catalog. A blank query renders the empty form.
//	@Tags			Catalog
//	@Produce		html
//	@Param			q		query	string	false	"search text"
//	@Param			page	query	int		false	"page, starts at 1"
//	@Success		200
//	@Router			/search [get]
func (m *MovieHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q", ""))
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	var results *model.SearchResult
	if query != "" {
		results = m.catalogService.Search(c.UserContext(), query, page)
	}
	return m.render(c, fiber.StatusOK, "search", "Search Movies", fiber.Map{
		"Query":   query,
		"Results": results,
	})
}

func (m *MovieHandler) CatalogMovie(c *fiber.Ctx) error {
	catalogId, ok := catalogIdParam(c)
	if !ok {
		return m.notFound(c, response.InvalidCatalogId)
	}

	info := m.movieService.GetFullInfo(c.UserContext(), catalogId)
	if info == nil {
		return redirectWithFlash(c, "/search", response.FlashDanger, response.MovieNotFound)
	}
	return m.render(c, fiber.StatusOK, "tmdb_movie", info.Movie.Title, fiber.Map{
		"Movie":    info.Movie,
		"Cast":     info.Cast,
		"Trailer":  info.Trailer,
		"Director": m.catalogService.GetDirector(c.UserContext(), catalogId),
	})
}

// AddFromCatalog godoc
//
//	@Summary		Import Catalog Movie
//	@Description	Copy a catalog movie into the watchlist of the signed in user.
//	@Tags			Catalog
//	@Param			id	path	int	true	"catalog movie id"
//	@Success		302
//	@Router			/add_from_tmdb/{id} [post]
func (m *MovieHandler) AddFromCatalog(c *fiber.Ctx) error {
	catalogId, ok := catalogIdParam(c)
	if !ok {
		return m.notFound(c, response.InvalidCatalogId)
	}

	movie, err := m.movieService.ImportFromCatalog(c.UserContext(), middleware.GetSession(c).UserId, catalogId)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			return redirectWithFlash(c, "/search", response.FlashDanger, response.MovieNotFound)
		}
		return err
	}
	return redirectWithFlash(c, "/movie/"+movie.Id, response.FlashSuccess, fmt.Sprintf(response.AddedToWatchlist, movie.Title))
}

func (m *MovieHandler) AddFeatured(c *fiber.Ctx) error {
	catalogId, ok := catalogIdParam(c)
	if !ok {
		return redirectWithFlash(c, "/", response.FlashDanger, response.FeaturedLoadFailed)
	}

	movie, err := m.movieService.ImportFromCatalog(c.UserContext(), middleware.GetSession(c).UserId, catalogId)
	if err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			return redirectWithFlash(c, "/", response.FlashDanger, response.FeaturedLoadFailed)
		}
		return err
	}
	return redirectWithFlash(c, "/index", response.FlashSuccess, fmt.Sprintf(response.AddedToWatchlist, movie.Title))
}

//------------------------------------------
//------------------------------------------

// handleError turns store lookups that miss into the not found page.
func (m *MovieHandler) handleError(c *fiber.Ctx, err error) error {
	if model.GetErrorCode(err) == fiber.StatusNotFound {
		return m.notFound(c, response.MovieNotFound)
	}
	return err
}

func (m *MovieHandler) renderNewMovie(c *fiber.Ctx, status int, form MovieForm, errs map[string]string) error {
	return m.render(c, status, "new_movie", "Movies Watchlist - Add Movie", fiber.Map{
		"Form":   form,
		"Errors": errs,
	})
}

func (m *MovieHandler) renderEditMovie(c *fiber.Ctx, status int, movie *model.Movie, form ExtendedMovieForm, errs map[string]string) error {
	return m.render(c, status, "movie_form", "Edit "+movie.Title, fiber.Map{
		"Movie":  movie,
		"Form":   form,
		"Errors": errs,
	})
}

func catalogIdParam(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id", 0)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

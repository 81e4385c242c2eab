package service

import (
	"context"
	"movie_watchlist/internal/repository"
	"movie_watchlist/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

const featuredLimit = 12

type IMovieService interface {
	GetFullInfo(ctx context.Context, catalogId int64) *model.FullMovieInfo
	ImportFromCatalog(ctx context.Context, userId string, catalogId int64) (*model.Movie, error)
	GetFeatured(ctx context.Context) []model.FeaturedMovie
	CreateMovie(ctx context.Context, userId string, input model.MovieUpdate) (*model.Movie, error)
	GetMovie(ctx context.Context, movieId string) (*model.Movie, error)
	GetWatchlist(ctx context.Context, userId string) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movieId string, update model.MovieUpdate) error
	RateMovie(ctx context.Context, movieId string, rating int) error
	MarkWatched(ctx context.Context, movieId string) error
}

type MovieService struct {
	catalog   ICatalogService
	movieRepo repository.IMovieRepository
	userRepo  repository.IUserRepository
	now       func() time.Time
}

func NewMovieService(catalog ICatalogService, movieRepo repository.IMovieRepository, userRepo repository.IUserRepository) *MovieService {
	return &MovieService{
		catalog:   catalog,
		movieRepo: movieRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

//------------------------------------------
//------------------------------------------

// GetFullInfo returns nil without touching credits or videos when the catalog
// has no details for catalogId.
func (m *MovieService) GetFullInfo(ctx context.Context, catalogId int64) *model.FullMovieInfo {
	details := m.catalog.GetDetails(ctx, catalogId)
	if details == nil {
		return nil
	}

	info := &model.FullMovieInfo{
		Movie:  details,
		Cast:   m.catalog.GetCredits(ctx, catalogId),
		Videos: m.catalog.GetVideos(ctx, catalogId),
	}
	for i := range info.Videos {
		if info.Videos[i].PlaybackURL() != "" {
			info.Trailer = &info.Videos[i]
			break
		}
	}
	return info
}

// CatalogToMovie materializes an aggregate into an owned movie. Only cast names
// are kept; the returned movie has no id yet.
func CatalogToMovie(info *model.FullMovieInfo, director string) model.Movie {
	cast := make([]string, 0, len(info.Cast))
	for _, member := range info.Cast {
		cast = append(cast, member.Name)
	}
	tags := info.Movie.Genres
	if tags == nil {
		tags = []string{}
	}
	videoLink := ""
	if info.Trailer != nil {
		videoLink = info.Trailer.PlaybackURL()
	}

	return model.Movie{
		Title:       info.Movie.Title,
		Director:    director,
		Year:        info.Movie.Year(),
		Cast:        cast,
		Series:      []string{},
		Tags:        tags,
		Description: info.Movie.Overview,
		VideoLink:   videoLink,
	}
}

func (m *MovieService) ImportFromCatalog(ctx context.Context, userId string, catalogId int64) (*model.Movie, error) {
	info := m.GetFullInfo(ctx, catalogId)
	if info == nil {
		return nil, model.ErrMovieNotFound
	}

	movie := CatalogToMovie(info, m.catalog.GetDirector(ctx, catalogId))
	movie.Id = newId()
	if err := m.saveToWatchlist(ctx, userId, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetFeatured resolves the director of every featured movie one after another.
func (m *MovieService) GetFeatured(ctx context.Context) []model.FeaturedMovie {
	movies := m.catalog.GetFeatured(ctx, featuredLimit)
	featured := make([]model.FeaturedMovie, 0, len(movies))
	for _, movie := range movies {
		title := movie.Title
		if title == "" {
			title = "No Title"
		}
		featured = append(featured, model.FeaturedMovie{
			Id:          movie.Id,
			Title:       title,
			PosterPath:  movie.PosterPath,
			ReleaseDate: movie.ReleaseDate,
			VoteAverage: movie.VoteAverage,
			Director:    m.catalog.GetDirector(ctx, movie.Id),
		})
	}
	return featured
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) CreateMovie(ctx context.Context, userId string, input model.MovieUpdate) (*model.Movie, error) {
	movie := model.Movie{
		Id:          newId(),
		Title:       strings.TrimSpace(input.Title),
		Director:    strings.TrimSpace(input.Director),
		Year:        input.Year,
		Cast:        input.Cast,
		Series:      input.Series,
		Tags:        input.Tags,
		Description: input.Description,
		VideoLink:   input.VideoLink,
	}
	if err := m.saveToWatchlist(ctx, userId, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (m *MovieService) GetMovie(ctx context.Context, movieId string) (*model.Movie, error) {
	return m.movieRepo.GetMovieById(ctx, movieId)
}

// GetWatchlist follows the order of the user's watchlist and skips ids whose
// movie no longer exists.
func (m *MovieService) GetWatchlist(ctx context.Context, userId string) ([]model.Movie, error) {
	user, err := m.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	return m.movieRepo.GetMoviesByIds(ctx, user.Movies)
}

func (m *MovieService) UpdateMovie(ctx context.Context, movieId string, update model.MovieUpdate) error {
	update.Title = strings.TrimSpace(update.Title)
	update.Director = strings.TrimSpace(update.Director)
	return m.movieRepo.UpdateMovie(ctx, movieId, update)
}

func (m *MovieService) RateMovie(ctx context.Context, movieId string, rating int) error {
	if rating < 1 || rating > 5 {
		return model.ErrInvalidRating
	}
	return m.movieRepo.SetRating(ctx, movieId, rating)
}

func (m *MovieService) MarkWatched(ctx context.Context, movieId string) error {
	return m.movieRepo.SetLastWatched(ctx, movieId, m.now().UTC())
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) saveToWatchlist(ctx context.Context, userId string, movie *model.Movie) error {
	if err := m.movieRepo.CreateMovie(ctx, movie); err != nil {
		return err
	}
	return m.userRepo.AddMovieToWatchlist(ctx, userId, movie.Id)
}

func newId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

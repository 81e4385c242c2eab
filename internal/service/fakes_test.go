package service

import (
	"context"
	"movie_watchlist/model"
	"sync"
	"time"
)

type fakeCatalog struct {
	mu       sync.Mutex
	details  map[int64]*model.CatalogMovie
	credits  map[int64][]model.CatalogCastMember
	videos   map[int64][]model.CatalogVideo
	director map[int64]string
	featured []model.CatalogMovie
	calls    map[string]int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		details:  map[int64]*model.CatalogMovie{},
		credits:  map[int64][]model.CatalogCastMember{},
		videos:   map[int64][]model.CatalogVideo{},
		director: map[int64]string{},
		calls:    map[string]int{},
	}
}

func (f *fakeCatalog) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeCatalog) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeCatalog) Search(_ context.Context, query string, page int) *model.SearchResult {
	f.hit("search")
	return model.EmptySearchResult()
}

func (f *fakeCatalog) GetDetails(_ context.Context, catalogId int64) *model.CatalogMovie {
	f.hit("details")
	return f.details[catalogId]
}

func (f *fakeCatalog) GetCredits(_ context.Context, catalogId int64) []model.CatalogCastMember {
	f.hit("credits")
	if cast, ok := f.credits[catalogId]; ok {
		return cast
	}
	return []model.CatalogCastMember{}
}

func (f *fakeCatalog) GetVideos(_ context.Context, catalogId int64) []model.CatalogVideo {
	f.hit("videos")
	if videos, ok := f.videos[catalogId]; ok {
		return videos
	}
	return []model.CatalogVideo{}
}

func (f *fakeCatalog) GetDirector(_ context.Context, catalogId int64) string {
	f.hit("director")
	return f.director[catalogId]
}

func (f *fakeCatalog) GetFeatured(_ context.Context, limit int) []model.CatalogMovie {
	f.hit("featured")
	if len(f.featured) > limit {
		return f.featured[:limit]
	}
	return f.featured
}

//------------------------------------------
//------------------------------------------

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[string]model.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[string]model.Movie{}}
}

func (f *fakeMovieRepo) CreateMovie(_ context.Context, movie *model.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.Id] = *movie
	return nil
}

func (f *fakeMovieRepo) GetMovieById(_ context.Context, movieId string) (*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.movies[movieId]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	return &movie, nil
}

func (f *fakeMovieRepo) GetMoviesByIds(_ context.Context, movieIds []string) ([]model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movies := []model.Movie{}
	for _, id := range movieIds {
		if movie, ok := f.movies[id]; ok {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func (f *fakeMovieRepo) UpdateMovie(_ context.Context, movieId string, update model.MovieUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.movies[movieId]
	if !ok {
		return model.ErrMovieNotFound
	}
	movie.Title = update.Title
	movie.Director = update.Director
	movie.Year = update.Year
	movie.Cast = update.Cast
	movie.Series = update.Series
	movie.Tags = update.Tags
	movie.Description = update.Description
	movie.VideoLink = update.VideoLink
	f.movies[movieId] = movie
	return nil
}

func (f *fakeMovieRepo) SetRating(_ context.Context, movieId string, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.movies[movieId]
	if !ok {
		return model.ErrMovieNotFound
	}
	movie.Rating = rating
	f.movies[movieId] = movie
	return nil
}

func (f *fakeMovieRepo) SetLastWatched(_ context.Context, movieId string, watchedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.movies[movieId]
	if !ok {
		return model.ErrMovieNotFound
	}
	movie.LastWatched = &watchedAt
	f.movies[movieId] = movie
	return nil
}

//------------------------------------------
//------------------------------------------

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		f.users[u.Id] = u
	}
	return f
}

func (f *fakeUserRepo) EnsureIndexes(context.Context) error {
	return nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return model.ErrDuplicateEmail
		}
	}
	copied := *user
	f.users[user.Id] = &copied
	return nil
}

func (f *fakeUserRepo) GetUserById(_ context.Context, userId string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userId]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) AddMovieToWatchlist(_ context.Context, userId string, movieId string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userId]
	if !ok {
		return model.ErrUserNotFound
	}
	for _, id := range u.Movies {
		if id == movieId {
			return nil
		}
	}
	u.Movies = append(u.Movies, movieId)
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, userId string, update model.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userId]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Name = update.Name
	u.Bio = update.Bio
	u.AvatarUrl = update.AvatarUrl
	return nil
}

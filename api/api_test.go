package api

import (
	"context"
	"io"
	"movie_watchlist/internal/handler"
	"movie_watchlist/internal/service"
	"movie_watchlist/internal/session"
	"movie_watchlist/model"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, sessionId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[sessionId]
}

func (s *memoryRevocationStore) Revoke(_ context.Context, sessionId string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[sessionId] = true
	return nil
}

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func (r *memoryUserRepo) EnsureIndexes(context.Context) error { return nil }

func (r *memoryUserRepo) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return model.ErrDuplicateEmail
		}
	}
	r.users[user.Id] = cloneUser(user)
	return nil
}

func (r *memoryUserRepo) GetUserById(_ context.Context, userId string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userId]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, model.ErrUserNotFound
}

func (r *memoryUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *memoryUserRepo) AddMovieToWatchlist(_ context.Context, userId string, movieId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userId]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Movies = append(u.Movies, strings.Clone(movieId))
	return nil
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, userId string, update model.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userId]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Name, u.Bio, u.AvatarUrl = strings.Clone(update.Name), strings.Clone(update.Bio), strings.Clone(update.AvatarUrl)
	return nil
}

type memoryMovieRepo struct {
	mu     sync.Mutex
	movies map[string]model.Movie
}

func (r *memoryMovieRepo) CreateMovie(_ context.Context, movie *model.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movies[movie.Id] = cloneMovie(*movie)
	return nil
}

func (r *memoryMovieRepo) GetMovieById(_ context.Context, movieId string) (*model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if movie, ok := r.movies[movieId]; ok {
		return &movie, nil
	}
	return nil, model.ErrMovieNotFound
}

func (r *memoryMovieRepo) GetMoviesByIds(_ context.Context, movieIds []string) ([]model.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	movies := []model.Movie{}
	for _, id := range movieIds {
		if movie, ok := r.movies[id]; ok {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func (r *memoryMovieRepo) UpdateMovie(_ context.Context, movieId string, update model.MovieUpdate) error {
	return r.modify(movieId, func(movie *model.Movie) {
		movie.Title, movie.Director, movie.Year = update.Title, update.Director, update.Year
		movie.Cast, movie.Series, movie.Tags = update.Cast, update.Series, update.Tags
		movie.Description, movie.VideoLink = update.Description, update.VideoLink
		*movie = cloneMovie(*movie)
	})
}

func (r *memoryMovieRepo) SetRating(_ context.Context, movieId string, rating int) error {
	return r.modify(movieId, func(movie *model.Movie) { movie.Rating = rating })
}

func (r *memoryMovieRepo) SetLastWatched(_ context.Context, movieId string, watchedAt time.Time) error {
	return r.modify(movieId, func(movie *model.Movie) { movie.LastWatched = &watchedAt })
}

func (r *memoryMovieRepo) modify(movieId string, fn func(movie *model.Movie)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	movie, ok := r.movies[movieId]
	if !ok {
		return model.ErrMovieNotFound
	}
	fn(&movie)
	r.movies[movieId] = movie
	return nil
}

// The fakes keep their own copies of every string so that nothing they store
// aliases memory owned by a finished request.
func cloneUser(user *model.User) *model.User {
	copied := *user
	copied.Id = strings.Clone(user.Id)
	copied.Email = strings.Clone(user.Email)
	copied.Password = strings.Clone(user.Password)
	copied.Name = strings.Clone(user.Name)
	copied.Bio = strings.Clone(user.Bio)
	copied.AvatarUrl = strings.Clone(user.AvatarUrl)
	copied.Movies = cloneStrings(user.Movies)
	return &copied
}

func cloneMovie(movie model.Movie) model.Movie {
	movie.Id = strings.Clone(movie.Id)
	movie.Title = strings.Clone(movie.Title)
	movie.Director = strings.Clone(movie.Director)
	movie.Cast = cloneStrings(movie.Cast)
	movie.Series = cloneStrings(movie.Series)
	movie.Tags = cloneStrings(movie.Tags)
	movie.Description = strings.Clone(movie.Description)
	movie.VideoLink = strings.Clone(movie.VideoLink)
	return movie
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	copied := make([]string, len(values))
	for i, v := range values {
		copied[i] = strings.Clone(v)
	}
	return copied
}

// stubCatalog only knows Inception.
type stubCatalog struct {
	mu       sync.Mutex
	searches int
}

func (s *stubCatalog) Search(_ context.Context, query string, page int) *model.SearchResult {
	s.mu.Lock()
	s.searches++
	s.mu.Unlock()
	if query != "Inception" {
		return model.EmptySearchResult()
	}
	return &model.SearchResult{
		Movies:       []model.CatalogMovie{{Id: 27205, Title: "Inception", ReleaseDate: "2010-07-15"}},
		Page:         page,
		TotalPages:   1,
		TotalResults: 1,
	}
}

func (s *stubCatalog) GetDetails(_ context.Context, catalogId int64) *model.CatalogMovie {
	if catalogId != 27205 {
		return nil
	}
	return &model.CatalogMovie{
		Id:          27205,
		Title:       "Inception",
		Overview:    "Dreams within dreams.",
		ReleaseDate: "2010-07-15",
		Genres:      []string{"Action"},
	}
}

func (s *stubCatalog) GetCredits(_ context.Context, catalogId int64) []model.CatalogCastMember {
	return []model.CatalogCastMember{{Id: 1, Name: "Leonardo DiCaprio", Character: "Cobb"}}
}

func (s *stubCatalog) GetVideos(_ context.Context, catalogId int64) []model.CatalogVideo {
	return []model.CatalogVideo{{Id: "v", Key: "YoHD9XEInc0", Site: "YouTube", Type: model.VideoTypeTrailer}}
}

func (s *stubCatalog) GetDirector(_ context.Context, catalogId int64) string {
	if catalogId != 27205 {
		return ""
	}
	return "Christopher Nolan"
}

func (s *stubCatalog) GetFeatured(_ context.Context, limit int) []model.CatalogMovie {
	return []model.CatalogMovie{{Id: 27205, Title: "Inception"}}
}

//------------------------------------------
//------------------------------------------

type testEnv struct {
	app      *fiber.App
	sessions *session.Manager
	revoked  *memoryRevocationStore
	users    *memoryUserRepo
	movies   *memoryMovieRepo
	catalog  *stubCatalog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	catalog := &stubCatalog{}
	env := newTestEnvWithCatalog(t, catalog, 0)
	env.catalog = catalog
	return env
}

func newTestEnvWithCatalog(t *testing.T, catalog service.ICatalogService, requestTimeout time.Duration) *testEnv {
	t.Helper()
	env := &testEnv{
		revoked: &memoryRevocationStore{revoked: map[string]bool{}},
		users:   &memoryUserRepo{users: map[string]*model.User{}},
		movies:  &memoryMovieRepo{movies: map[string]model.Movie{}},
	}
	env.sessions = session.NewManager("test-secret", time.Hour, env.revoked)

	userSvc := service.NewUserService(env.users)
	movieSvc := service.NewMovieService(catalog, env.movies, env.users)
	env.app = InitRouter(RouterOptions{
		UserHandler:    handler.NewUserHandler(userSvc, env.sessions),
		MovieHandler:   handler.NewMovieHandler(movieSvc, catalog, userSvc),
		Sessions:       env.sessions,
		RequestTimeout: requestTimeout,
	})
	return env
}

// browser keeps the session cookie between requests.
type browser struct {
	t      *testing.T
	env    *testEnv
	cookie string
}

func (env *testEnv) browser(t *testing.T) *browser {
	return &browser{t: t, env: env}
}

func (b *browser) do(method string, target string, form url.Values) (*http.Response, string) {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	if b.cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: b.cookie})
	}

	resp, err := b.env.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			b.cookie = c.Value
		}
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp, string(raw)
}

func (b *browser) session() *session.Session {
	return b.env.sessions.Decode(context.Background(), b.cookie)
}

func (b *browser) registerAndLogin(email string, password string) {
	b.t.Helper()
	resp, _ := b.do(http.MethodPost, "/register", url.Values{
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
	require.Equal(b.t, http.StatusFound, resp.StatusCode)

	resp, _ = b.do(http.MethodPost, "/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(b.t, http.StatusFound, resp.StatusCode)
	require.True(b.t, b.session().IsAuthenticated())
}

//------------------------------------------
//------------------------------------------

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.browser(t).do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Server is up and running")
}

func TestFormValuesOutliveTheRequest(t *testing.T) {
	env := newTestEnv(t)
	var kept []string
	env.app.Post("/keep", func(c *fiber.Ctx) error {
		kept = append(kept, c.FormValue("v"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	b := env.browser(t)
	b.do(http.MethodPost, "/keep", url.Values{"v": {"first-value"}})
	b.do(http.MethodPost, "/keep", url.Values{"v": {"other-value"}})
	assert.Equal(t, []string{"first-value", "other-value"}, kept)
}

func TestRegisterThenLoginAfterOtherRequests(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	resp, _ := b.do(http.MethodPost, "/register", url.Values{
		"email":            {"ann@example.com"},
		"password":         {"hunter22"},
		"confirm_password": {"hunter22"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	b.do(http.MethodPost, "/register", url.Values{
		"email":            {"bob@example.com"},
		"password":         {"xxxxxxxx"},
		"confirm_password": {"yyyyyyyy"},
	})

	resp, _ = b.do(http.MethodPost, "/login", url.Values{"email": {"ann@example.com"}, "password": {"hunter22"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.True(t, b.session().IsAuthenticated())
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	for _, target := range []string{"/index", "/add", "/profile", "/search?q=x", "/movie/m1/rate?rating=3", "/add_featured/27205"} {
		resp, _ := b.do(http.MethodGet, target, nil)
		assert.Equal(t, http.StatusFound, resp.StatusCode, target)
		assert.Equal(t, "/login", resp.Header.Get("Location"), target)
	}
	assert.Zero(t, env.catalog.searches)
}

func TestRegisterDoesNotLogin(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	resp, _ := b.do(http.MethodPost, "/register", url.Values{
		"email":            {"Ann@Example.com"},
		"password":         {"hunter22"},
		"confirm_password": {"hunter22"},
	})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.False(t, b.session().IsAuthenticated())

	_, body := b.do(http.MethodGet, "/login", nil)
	assert.Contains(t, body, "User registered successfully")

	resp, body = b.do(http.MethodPost, "/register", url.Values{
		"email":            {"ann@example.com"},
		"password":         {"other1"},
		"confirm_password": {"other1"},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "This email already exists")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.browser(t).do(http.MethodPost, "/register", url.Values{
		"email":            {"ann@example.com"},
		"password":         {"hunter22"},
		"confirm_password": {"hunter23"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Passwords must match.")
	assert.Empty(t, env.users.users)
}

func TestLoginWithWrongPasswordKeepsSessionAnonymous(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")
	b.do(http.MethodGet, "/logout", nil)

	resp, body := b.do(http.MethodPost, "/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong-one"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Login credentials not correct")
	assert.False(t, b.session().IsAuthenticated())
	assert.Equal(t, "", b.session().UserId)
}

func TestLoggedInUserSkipsLoginPage(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")

	resp, _ := b.do(http.MethodGet, "/login", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestToggleThemeAndLogoutKeepsTheme(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")
	loginCookie := b.cookie
	assert.Equal(t, "", b.session().Theme)

	resp, _ := b.do(http.MethodGet, "/toggle-theme?current_page=/index", nil)
	assert.Equal(t, "/index", resp.Header.Get("Location"))
	assert.Equal(t, session.ThemeDark, b.session().Theme)

	b.do(http.MethodGet, "/toggle-theme?current_page=/index", nil)
	assert.Equal(t, session.ThemeLight, b.session().Theme)

	b.do(http.MethodGet, "/toggle-theme?current_page=/", nil)
	lastCookie := b.cookie
	require.NotEqual(t, loginCookie, lastCookie)
	sessionId := b.session().Id()

	resp, _ = b.do(http.MethodGet, "/logout", nil)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.False(t, b.session().IsAuthenticated())
	assert.Equal(t, session.ThemeDark, b.session().Theme)
	assert.NotEqual(t, sessionId, b.session().Id())
	assert.True(t, env.revoked.IsRevoked(context.Background(), sessionId))

	// none of the cookies issued before logout authenticate any more
	for _, cookie := range []string{loginCookie, lastCookie} {
		stale := env.browser(t)
		stale.cookie = cookie
		resp, _ = stale.do(http.MethodGet, "/index", nil)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	}

	resp, _ = b.do(http.MethodGet, "/index", nil)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestToggleThemeOnlyRedirectsLocally(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	for _, target := range []string{"", "https://evil.example", "//evil.example"} {
		resp, _ := b.do(http.MethodGet, "/toggle-theme?current_page="+url.QueryEscape(target), nil)
		assert.Equal(t, "/", resp.Header.Get("Location"), target)
	}
}

func TestMissingMovieRendersNotFound(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)

	resp, body := b.do(http.MethodGet, "/movie/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Movie not found")

	b.registerAndLogin("ann@example.com", "hunter22")
	resp, _ = b.do(http.MethodGet, "/edit/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = b.do(http.MethodGet, "/movie/nope/watch", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.browser(t).do(http.MethodGet, "/does/not/exist", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Page not found")
}

func TestAddMovieAndEdit(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")

	resp, body := b.do(http.MethodPost, "/add", url.Values{"title": {""}, "director": {"Ridley Scott"}, "year": {"1979"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "This field is required.")

	resp, _ = b.do(http.MethodPost, "/add", url.Values{"title": {"Alien"}, "director": {"Ridley Scott"}, "year": {"1979"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/movie/"))
	movieId := strings.TrimPrefix(location, "/movie/")

	resp, _ = b.do(http.MethodPost, "/edit/"+movieId, url.Values{
		"title":      {"Alien"},
		"director":   {"Ridley Scott"},
		"year":       {"1979"},
		"cast":       {"Sigourney Weaver\nTom Skerritt\n"},
		"tags":       {"Horror\nSci-Fi"},
		"video_link": {"https://www.youtube.com/embed/LjLamj-b0I8"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, []string{"Sigourney Weaver", "Tom Skerritt"}, env.movies.movies[movieId].Cast)

	resp, body = b.do(http.MethodGet, location, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sigourney Weaver, Tom Skerritt")

	_, body = b.do(http.MethodGet, "/index", nil)
	assert.Contains(t, body, "Alien")
}

func TestEditImportedMovieWithoutYear(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")
	env.movies.movies["m2"] = model.Movie{Id: "m2", Title: "Untitled Project"}

	resp, body := b.do(http.MethodGet, "/edit/m2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="year" type="number" value=""`)

	resp, _ = b.do(http.MethodPost, "/edit/m2", url.Values{
		"title":    {"Untitled Project"},
		"director": {"Jane Doe"},
		"year":     {""},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "Jane Doe", env.movies.movies["m2"].Director)
	assert.Equal(t, 0, env.movies.movies["m2"].Year)

	resp, body = b.do(http.MethodPost, "/edit/m2", url.Values{
		"title":    {"Untitled Project"},
		"director": {"Jane Doe"},
		"year":     {"1800"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Must be at least 1878.")
}

func TestRateMovie(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")
	env.movies.movies["m1"] = model.Movie{Id: "m1", Title: "Alien"}

	resp, _ := b.do(http.MethodGet, "/movie/m1/rate?rating=9", nil)
	assert.Equal(t, "/movie/m1", resp.Header.Get("Location"))
	assert.Equal(t, 0, env.movies.movies["m1"].Rating)

	_, body := b.do(http.MethodGet, "/movie/m1", nil)
	assert.Contains(t, body, "Rating must be a number between 1 and 5")

	b.do(http.MethodGet, "/movie/m1/rate?rating=4", nil)
	assert.Equal(t, 4, env.movies.movies["m1"].Rating)
}

func TestSearchAndImportFromCatalog(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")

	_, body := b.do(http.MethodGet, "/search", nil)
	assert.Zero(t, env.catalog.searches)
	assert.NotContains(t, body, "Page 1 of")

	_, body = b.do(http.MethodGet, "/search?q=Inception", nil)
	assert.Contains(t, body, "Inception")

	resp, body := b.do(http.MethodGet, "/tmdb/movie/27205", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Christopher Nolan")

	resp, _ = b.do(http.MethodPost, "/add_from_tmdb/27205", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/movie/"))

	_, body = b.do(http.MethodGet, location, nil)
	assert.Contains(t, body, "&#39;Inception&#39; added to your watchlist!")
	assert.Contains(t, body, "https://www.youtube.com/embed/YoHD9XEInc0")

	user, err := env.users.GetUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Len(t, user.Movies, 1)
}

func TestCatalogMovieMissingRedirectsToSearch(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")

	resp, _ := b.do(http.MethodGet, "/tmdb/movie/1", nil)
	assert.Equal(t, "/search", resp.Header.Get("Location"))

	resp, _ = b.do(http.MethodPost, "/add_from_tmdb/1", nil)
	assert.Equal(t, "/search", resp.Header.Get("Location"))
	assert.Empty(t, env.movies.movies)

	resp, _ = b.do(http.MethodGet, "/add_featured/1", nil)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, _ = b.do(http.MethodGet, "/add_featured/27205", nil)
	assert.Equal(t, "/index", resp.Header.Get("Location"))
}

func TestProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	b := env.browser(t)
	b.registerAndLogin("ann@example.com", "hunter22")

	resp, body := b.do(http.MethodPost, "/profile", url.Values{"name": {"Ann"}, "avatar_url": {"not a url"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Invalid URL.")

	resp, _ = b.do(http.MethodPost, "/profile", url.Values{"name": {"  Ann  "}, "bio": {"film nerd"}})
	assert.Equal(t, "/profile", resp.Header.Get("Location"))

	_, body = b.do(http.MethodGet, "/profile", nil)
	assert.Contains(t, body, "Profile updated successfully!")
	assert.Contains(t, body, `value="Ann"`)
}

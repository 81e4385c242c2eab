package service

import (
	"context"
	"errors"
	"fmt"
	"movie_watchlist/model"
	errorHandler "movie_watchlist/pkg/error"
	"movie_watchlist/pkg/logger"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	catalogCastLimit      = 10
	catalogLanguage       = "en-US"
	defaultCatalogBase    = "https://api.themoviedb.org/3"
	defaultCatalogReserve = 5 * time.Second
)

var errOutOfTime = errors.New("request deadline reached")

// ICatalogService never returns errors: upstream failures are reported and
// degrade to an empty or nil result.
type ICatalogService interface {
	Search(ctx context.Context, query string, page int) *model.SearchResult
	GetDetails(ctx context.Context, catalogId int64) *model.CatalogMovie
	GetCredits(ctx context.Context, catalogId int64) []model.CatalogCastMember
	GetVideos(ctx context.Context, catalogId int64) []model.CatalogVideo
	GetDirector(ctx context.Context, catalogId int64) string
	GetFeatured(ctx context.Context, limit int) []model.CatalogMovie
}

type CatalogService struct {
	apiKey          string
	baseUrl         string
	featuredCountry string
	deadlineReserve time.Duration
	client          *http.Client
}

type CatalogOptions struct {
	ApiKey          string
	BaseUrl         string
	Timeout         time.Duration
	FeaturedCountry string
	// DeadlineReserve is the part of the request deadline left for the
	// store and for rendering once catalog calls have to stop.
	DeadlineReserve time.Duration
}

func NewCatalogService(opts CatalogOptions) (*CatalogService, error) {
	if strings.TrimSpace(opts.ApiKey) == "" {
		return nil, model.ErrMissingCatalogKey
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultCatalogBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.FeaturedCountry == "" {
		opts.FeaturedCountry = "IN"
	}
	if opts.DeadlineReserve <= 0 {
		opts.DeadlineReserve = defaultCatalogReserve
	}
	return &CatalogService{
		apiKey:          opts.ApiKey,
		baseUrl:         strings.TrimRight(opts.BaseUrl, "/"),
		featuredCountry: opts.FeaturedCountry,
		deadlineReserve: opts.DeadlineReserve,
		client:          &http.Client{Timeout: opts.Timeout},
	}, nil
}

//------------------------------------------
//------------------------------------------

type catalogMovieRes struct {
	Id           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIds     []int   `json:"genre_ids"`
	Genres       []struct {
		Id   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
	Runtime int    `json:"runtime"`
	Tagline string `json:"tagline"`
}

func (r *catalogMovieRes) toModel() model.CatalogMovie {
	genres := make([]string, 0, len(r.Genres))
	for _, g := range r.Genres {
		genres = append(genres, g.Name)
	}
	genreIds := r.GenreIds
	if genreIds == nil {
		genreIds = []int{}
	}
	return model.CatalogMovie{
		Id:           r.Id,
		Title:        r.Title,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseDate:  r.ReleaseDate,
		VoteAverage:  r.VoteAverage,
		VoteCount:    r.VoteCount,
		GenreIds:     genreIds,
		Genres:       genres,
		Runtime:      r.Runtime,
		Tagline:      r.Tagline,
	}
}

type catalogPageRes struct {
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
	Results      []catalogMovieRes `json:"results"`
}

type catalogCreditsRes struct {
	Cast []struct {
		Id          int64  `json:"id"`
		Name        string `json:"name"`
		Character   string `json:"character"`
		ProfilePath string `json:"profile_path"`
	} `json:"cast"`
	Crew []struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	} `json:"crew"`
}

type catalogVideosRes struct {
	Results []model.CatalogVideo `json:"results"`
}

//------------------------------------------
//------------------------------------------

func (m *CatalogService) Search(ctx context.Context, query string, page int) *model.SearchResult {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	var res catalogPageRes
	if err := m.get(ctx, "/search/movie", params, &res); err != nil {
		report("Error searching movies", err)
		return model.EmptySearchResult()
	}

	result := &model.SearchResult{
		Movies:       make([]model.CatalogMovie, 0, len(res.Results)),
		Page:         res.Page,
		TotalPages:   res.TotalPages,
		TotalResults: res.TotalResults,
	}
	if result.Page == 0 {
		result.Page = 1
	}
	if result.TotalPages == 0 {
		result.TotalPages = 1
	}
	for i := range res.Results {
		result.Movies = append(result.Movies, res.Results[i].toModel())
	}
	return result
}

func (m *CatalogService) GetDetails(ctx context.Context, catalogId int64) *model.CatalogMovie {
	var res catalogMovieRes
	if err := m.get(ctx, fmt.Sprintf("/movie/%d", catalogId), nil, &res); err != nil {
		report("Error getting movie details", err)
		return nil
	}
	movie := res.toModel()
	return &movie
}

func (m *CatalogService) GetCredits(ctx context.Context, catalogId int64) []model.CatalogCastMember {
	res, err := m.getCredits(ctx, catalogId)
	if err != nil {
		report("Error getting movie credits", err)
		return []model.CatalogCastMember{}
	}

	cast := res.Cast
	if len(cast) > catalogCastLimit {
		cast = cast[:catalogCastLimit]
	}
	members := make([]model.CatalogCastMember, 0, len(cast))
	for _, c := range cast {
		members = append(members, model.CatalogCastMember{
			Id:          c.Id,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
		})
	}
	return members
}

func (m *CatalogService) GetVideos(ctx context.Context, catalogId int64) []model.CatalogVideo {
	var res catalogVideosRes
	if err := m.get(ctx, fmt.Sprintf("/movie/%d/videos", catalogId), nil, &res); err != nil {
		report("Error getting movie videos", err)
		return []model.CatalogVideo{}
	}
	videos := res.Results
	if videos == nil {
		videos = []model.CatalogVideo{}
	}
	model.SortVideos(videos)
	return videos
}

func (m *CatalogService) GetDirector(ctx context.Context, catalogId int64) string {
	res, err := m.getCredits(ctx, catalogId)
	if err != nil {
		report("Error getting director", err)
		return ""
	}
	for _, crew := range res.Crew {
		if crew.Job == "Director" {
			return crew.Name
		}
	}
	return ""
}

// GetFeatured lists the most popular movies from the configured origin country.
func (m *CatalogService) GetFeatured(ctx context.Context, limit int) []model.CatalogMovie {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("with_origin_country", m.featuredCountry)
	params.Set("page", "1")

	var res catalogPageRes
	if err := m.get(ctx, "/discover/movie", params, &res); err != nil {
		report("Error fetching featured movies", err)
		return []model.CatalogMovie{}
	}

	results := res.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	movies := make([]model.CatalogMovie, 0, len(results))
	for i := range results {
		movies = append(movies, results[i].toModel())
	}
	return movies
}

//------------------------------------------
//------------------------------------------

func (m *CatalogService) getCredits(ctx context.Context, catalogId int64) (*catalogCreditsRes, error) {
	var res catalogCreditsRes
	if err := m.get(ctx, fmt.Sprintf("/movie/%d/credits", catalogId), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (m *CatalogService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", m.apiKey)
	params.Set("language", catalogLanguage)

	callCtx, cancel := m.callContext(ctx)
	defer cancel()
	if callCtx.Err() != nil {
		return fmt.Errorf("%w: %w on %s", model.ErrUpstreamUnavailable, errOutOfTime, path)
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, m.baseUrl+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		if callCtx.Err() != nil {
			return fmt.Errorf("%w: %w on %s", model.ErrUpstreamUnavailable, errOutOfTime, path)
		}
		return fmt.Errorf("%w: %s", model.ErrUpstreamUnavailable, redactKey(err.Error(), m.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", model.ErrCatalogNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: bad status %s on %s", model.ErrUpstreamUnavailable, resp.Status, path)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		if callCtx.Err() != nil {
			return fmt.Errorf("%w: %w on %s", model.ErrUpstreamUnavailable, errOutOfTime, path)
		}
		return fmt.Errorf("%w: decode %s: %v", model.ErrUpstreamUnavailable, path, err)
	}
	return nil
}

// callContext stops upstream calls early enough that the rest of the request
// still has deadlineReserve to reach the store and render.
func (m *CatalogService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return context.WithCancel(ctx)
	}
	return context.WithDeadline(ctx, deadline.Add(-m.deadlineReserve))
}

// report keeps expected misses out of sentry: unknown ids and calls cut by the request deadline.
func report(message string, err error) {
	if errors.Is(err, model.ErrCatalogNotFound) || errors.Is(err, errOutOfTime) {
		logger.Debug().Err(err).Msg(message)
		return
	}
	errorHandler.SaveError(fmt.Sprintf("%s: %v", message, err), err)
}

// redactKey keeps the api key out of logged transport errors, which embed the request url.
func redactKey(message string, apiKey string) string {
	if apiKey == "" {
		return message
	}
	return strings.ReplaceAll(message, apiKey, "***")
}

package model

import (
	"sort"
	"strconv"
	"strings"
)

const (
	CatalogImageBaseUrl = "https://image.tmdb.org/t/p"
	YoutubeEmbedBaseUrl = "https://www.youtube.com/embed/"
)

const (
	VideoTypeTrailer = "Trailer"
	VideoTypeTeaser  = "Teaser"
)

type CatalogMovie struct {
	Id           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview"`
	PosterPath   string   `json:"posterPath"`
	BackdropPath string   `json:"backdropPath"`
	ReleaseDate  string   `json:"releaseDate"`
	VoteAverage  float64  `json:"voteAverage"`
	VoteCount    int      `json:"voteCount"`
	GenreIds     []int    `json:"genreIds"`
	Genres       []string `json:"genres"`
	Runtime      int      `json:"runtime"`
	Tagline      string   `json:"tagline"`
}

// Year is the leading component of ReleaseDate, 0 when it is empty or not a number.
func (m CatalogMovie) Year() int {
	if m.ReleaseDate == "" {
		return 0
	}
	year, err := strconv.Atoi(strings.SplitN(m.ReleaseDate, "-", 2)[0])
	if err != nil {
		return 0
	}
	return year
}

func (m CatalogMovie) PosterURL() string {
	return imageURL("w500", m.PosterPath)
}

func (m CatalogMovie) BackdropURL() string {
	return imageURL("original", m.BackdropPath)
}

type CatalogCastMember struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profilePath"`
}

func (c CatalogCastMember) ProfileURL() string {
	return imageURL("w185", c.ProfilePath)
}

type CatalogVideo struct {
	Id   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// PlaybackURL is only available for videos hosted on youtube.
func (v CatalogVideo) PlaybackURL() string {
	if strings.EqualFold(v.Site, "youtube") {
		return YoutubeEmbedBaseUrl + v.Key
	}
	return ""
}

func (v CatalogVideo) priority() int {
	switch v.Type {
	case VideoTypeTrailer:
		return 0
	case VideoTypeTeaser:
		return 1
	default:
		return 2
	}
}

// SortVideos orders trailers first, then teasers, then the rest, keeping the
// original order inside each group.
func SortVideos(videos []CatalogVideo) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].priority() < videos[j].priority()
	})
}

type SearchResult struct {
	Movies       []CatalogMovie `json:"movies"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"totalPages"`
	TotalResults int            `json:"totalResults"`
}

func EmptySearchResult() *SearchResult {
	return &SearchResult{
		Movies:       []CatalogMovie{},
		Page:         1,
		TotalPages:   1,
		TotalResults: 0,
	}
}

func (s *SearchResult) HasPrev() bool {
	return s.Page > 1
}

func (s *SearchResult) HasNext() bool {
	return s.Page < s.TotalPages
}

func (s *SearchResult) PrevPage() int {
	return s.Page - 1
}

func (s *SearchResult) NextPage() int {
	return s.Page + 1
}

//---------------------------------------
//---------------------------------------

func imageURL(size string, path string) string {
	if path == "" {
		return ""
	}
	return CatalogImageBaseUrl + "/" + size + path
}

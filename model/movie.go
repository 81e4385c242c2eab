package model

import "time"

type Movie struct {
	Id          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Director    string     `bson:"director" json:"director"`
	Year        int        `bson:"year" json:"year"`
	Cast        []string   `bson:"cast" json:"cast"`
	Series      []string   `bson:"series" json:"series"`
	Tags        []string   `bson:"tags" json:"tags"`
	Description string     `bson:"description" json:"description"`
	VideoLink   string     `bson:"video_link" json:"videoLink"`
	Rating      int        `bson:"rating" json:"rating"`
	LastWatched *time.Time `bson:"last_watched" json:"lastWatched"`
}

// MovieUpdate holds the fields editable from the movie form.
type MovieUpdate struct {
	Title       string
	Director    string
	Year        int
	Cast        []string
	Series      []string
	Tags        []string
	Description string
	VideoLink   string
}

//---------------------------------------
//---------------------------------------

type FullMovieInfo struct {
	Movie   *CatalogMovie       `json:"movie"`
	Cast    []CatalogCastMember `json:"cast"`
	Videos  []CatalogVideo      `json:"videos"`
	Trailer *CatalogVideo       `json:"trailer"`
}

type FeaturedMovie struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"posterPath"`
	ReleaseDate string  `json:"releaseDate"`
	VoteAverage float64 `json:"voteAverage"`
	Director    string  `json:"director"`
}

func (f FeaturedMovie) PosterURL() string {
	return imageURL("w500", f.PosterPath)
}

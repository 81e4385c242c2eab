package repository

import (
	"context"
	"errors"
	"movie_watchlist/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const movieCollection = "movie"

type IMovieRepository interface {
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovieById(ctx context.Context, movieId string) (*model.Movie, error)
	GetMoviesByIds(ctx context.Context, movieIds []string) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movieId string, update model.MovieUpdate) error
	SetRating(ctx context.Context, movieId string, rating int) error
	SetLastWatched(ctx context.Context, movieId string, watchedAt time.Time) error
}

type MovieRepository struct {
	mongodb *mongo.Database
}

func NewMovieRepository(mongodb *mongo.Database) *MovieRepository {
	return &MovieRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

type movieRecord struct {
	Id          string     `bson:"_id"`
	Title       string     `bson:"title"`
	Director    *string    `bson:"director,omitempty"`
	Year        *int       `bson:"year,omitempty"`
	Cast        []string   `bson:"cast"`
	Series      []string   `bson:"series"`
	Tags        []string   `bson:"tags"`
	Description *string    `bson:"description,omitempty"`
	VideoLink   *string    `bson:"video_link,omitempty"`
	Rating      *int       `bson:"rating,omitempty"`
	LastWatched *time.Time `bson:"last_watched,omitempty"`
}

func (r *movieRecord) toModel() model.Movie {
	movie := model.Movie{
		Id:          r.Id,
		Title:       r.Title,
		Director:    stringOrEmpty(r.Director),
		Cast:        emptyIfNil(r.Cast),
		Series:      emptyIfNil(r.Series),
		Tags:        emptyIfNil(r.Tags),
		Description: stringOrEmpty(r.Description),
		VideoLink:   stringOrEmpty(r.VideoLink),
		LastWatched: r.LastWatched,
	}
	if r.Year != nil {
		movie.Year = *r.Year
	}
	if r.Rating != nil {
		movie.Rating = *r.Rating
	}
	return movie
}

func movieRecordFromModel(m *model.Movie) *movieRecord {
	record := &movieRecord{
		Id:          m.Id,
		Title:       m.Title,
		Director:    &m.Director,
		Year:        &m.Year,
		Cast:        emptyIfNil(m.Cast),
		Series:      emptyIfNil(m.Series),
		Tags:        emptyIfNil(m.Tags),
		Description: &m.Description,
		VideoLink:   &m.VideoLink,
		LastWatched: m.LastWatched,
	}
	if m.Rating != 0 {
		record.Rating = &m.Rating
	}
	return record
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) CreateMovie(ctx context.Context, movie *model.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.mongodb.
		Collection(movieCollection).
		InsertOne(ctx, movieRecordFromModel(movie))
	return err
}

func (r *MovieRepository) GetMovieById(ctx context.Context, movieId string) (*model.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var record movieRecord
	err := r.mongodb.
		Collection(movieCollection).
		FindOne(ctx, bson.D{{"_id", movieId}}).
		Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	movie := record.toModel()
	return &movie, nil
}

// GetMoviesByIds returns the movies in the order of movieIds. Ids without a
// stored movie are skipped.
func (r *MovieRepository) GetMoviesByIds(ctx context.Context, movieIds []string) ([]model.Movie, error) {
	if len(movieIds) == 0 {
		return []model.Movie{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.mongodb.
		Collection(movieCollection).
		Find(ctx, bson.D{{"_id", bson.D{{"$in", movieIds}}}})
	if err != nil {
		return nil, err
	}

	var records []movieRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	byId := make(map[string]model.Movie, len(records))
	for i := range records {
		byId[records[i].Id] = records[i].toModel()
	}

	movies := make([]model.Movie, 0, len(records))
	for _, id := range movieIds {
		if movie, ok := byId[id]; ok {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, movieId string, update model.MovieUpdate) error {
	return r.updateOne(ctx, movieId, bson.D{
		{"title", update.Title},
		{"director", update.Director},
		{"year", update.Year},
		{"cast", emptyIfNil(update.Cast)},
		{"series", emptyIfNil(update.Series)},
		{"tags", emptyIfNil(update.Tags)},
		{"description", update.Description},
		{"video_link", update.VideoLink},
	})
}

func (r *MovieRepository) SetRating(ctx context.Context, movieId string, rating int) error {
	return r.updateOne(ctx, movieId, bson.D{{"rating", rating}})
}

func (r *MovieRepository) SetLastWatched(ctx context.Context, movieId string, watchedAt time.Time) error {
	return r.updateOne(ctx, movieId, bson.D{{"last_watched", watchedAt}})
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) updateOne(ctx context.Context, movieId string, set bson.D) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.mongodb.
		Collection(movieCollection).
		UpdateOne(ctx, bson.D{{"_id", movieId}}, bson.D{{"$set", set}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

package repository

import (
	"context"
	"errors"
	"movie_watchlist/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userCollection = "user"
	queryTimeout   = 10 * time.Second
)

type IUserRepository interface {
	EnsureIndexes(ctx context.Context) error
	CreateUser(ctx context.Context, user *model.User) error
	GetUserById(ctx context.Context, userId string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	AddMovieToWatchlist(ctx context.Context, userId string, movieId string) error
	UpdateProfile(ctx context.Context, userId string, update model.ProfileUpdate) error
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

//------------------------------------------
//------------------------------------------

// userRecord mirrors the stored document. Optional fields are pointers so that
// documents written before a field existed decode without ambiguity.
type userRecord struct {
	Id        string   `bson:"_id"`
	Email     string   `bson:"email"`
	Password  string   `bson:"password"`
	Name      *string  `bson:"name,omitempty"`
	Bio       *string  `bson:"bio,omitempty"`
	AvatarUrl *string  `bson:"avatar_url,omitempty"`
	Movies    []string `bson:"movies"`
}

func (r *userRecord) toModel() *model.User {
	movies := r.Movies
	if movies == nil {
		movies = []string{}
	}
	return &model.User{
		Id:        r.Id,
		Email:     r.Email,
		Password:  r.Password,
		Name:      stringOrEmpty(r.Name),
		Bio:       stringOrEmpty(r.Bio),
		AvatarUrl: stringOrEmpty(r.AvatarUrl),
		Movies:    movies,
	}
}

func userRecordFromModel(u *model.User) *userRecord {
	movies := u.Movies
	if movies == nil {
		movies = []string{}
	}
	return &userRecord{
		Id:        u.Id,
		Email:     u.Email,
		Password:  u.Password,
		Name:      &u.Name,
		Bio:       &u.Bio,
		AvatarUrl: &u.AvatarUrl,
		Movies:    movies,
	}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.mongodb.
		Collection(userCollection).
		Indexes().
		CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{"email", 1}},
			Options: options.Index().SetUnique(true).SetName("user_email_unique"),
		})
	return err
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.mongodb.
		Collection(userCollection).
		InsertOne(ctx, userRecordFromModel(user))
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) GetUserById(ctx context.Context, userId string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{"_id", userId}})
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.D{{"email", email}})
}

// AddMovieToWatchlist relies on $addToSet, so concurrent adds never lose
// updates and adding the same movie twice keeps a single entry.
func (r *UserRepository) AddMovieToWatchlist(ctx context.Context, userId string, movieId string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(ctx,
			bson.D{{"_id", userId}},
			bson.D{{"$addToSet", bson.D{{"movies", movieId}}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userId string, update model.ProfileUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(ctx,
			bson.D{{"_id", userId}},
			bson.D{{"$set", bson.D{
				{"name", update.Name},
				{"bio", update.Bio},
				{"avatar_url", update.AvatarUrl},
			}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var record userRecord
	err := r.mongodb.
		Collection(userCollection).
		FindOne(ctx, filter).
		Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return record.toModel(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

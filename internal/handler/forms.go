package handler

import (
	"errors"
	"fmt"
	"movie_watchlist/model"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type RegisterForm struct {
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=4,max=20"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type MovieForm struct {
	Title    string `form:"title" validate:"required,max=200"`
	Director string `form:"director" validate:"required,max=200"`
	Year     int    `form:"year" validate:"required,min=1878,max=2100"`
}

func (f MovieForm) toUpdate() model.MovieUpdate {
	return model.MovieUpdate{
		Title:    f.Title,
		Director: f.Director,
		Year:     f.Year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
	}
}

// ExtendedMovieForm is the edit form. List fields hold one entry per line.
// The year may stay empty since imported movies can have no release date.
type ExtendedMovieForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Director    string `form:"director" validate:"required,max=200"`
	Year        int    `form:"year" validate:"omitempty,min=1878,max=2100"`
	Cast        string `form:"cast"`
	Series      string `form:"series"`
	Tags        string `form:"tags"`
	Description string `form:"description" validate:"max=5000"`
	VideoLink   string `form:"video_link" validate:"omitempty,url"`
}

func (f ExtendedMovieForm) toUpdate() model.MovieUpdate {
	return model.MovieUpdate{
		Title:       f.Title,
		Director:    f.Director,
		Year:        f.Year,
		Cast:        splitLines(f.Cast),
		Series:      splitLines(f.Series),
		Tags:        splitLines(f.Tags),
		Description: strings.TrimSpace(f.Description),
		VideoLink:   strings.TrimSpace(f.VideoLink),
	}
}

func extendedFormFromMovie(movie *model.Movie) ExtendedMovieForm {
	return ExtendedMovieForm{
		Title:       movie.Title,
		Director:    movie.Director,
		Year:        movie.Year,
		Cast:        strings.Join(movie.Cast, "\n"),
		Series:      strings.Join(movie.Series, "\n"),
		Tags:        strings.Join(movie.Tags, "\n"),
		Description: movie.Description,
		VideoLink:   movie.VideoLink,
	}
}

type ProfileForm struct {
	Name      string `form:"name" validate:"max=100"`
	Bio       string `form:"bio" validate:"max=500"`
	AvatarUrl string `form:"avatar_url" validate:"omitempty,url"`
}

//------------------------------------------
//------------------------------------------

// formErrors maps every failing field to a message, keyed by its form name.
func formErrors(err error) map[string]string {
	result := map[string]string{}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result["form"] = "Invalid form data"
		return result
	}
	for _, fieldErr := range validationErrors {
		result[fieldErr.Field()] = fieldMessage(fieldErr)
	}
	return result
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "eqfield":
		return "Passwords must match."
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long.", fieldErr.Param())
		}
		return fmt.Sprintf("Must be at least %s.", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long.", fieldErr.Param())
		}
		return fmt.Sprintf("Must be at most %s.", fieldErr.Param())
	default:
		return "Invalid value."
	}
}

func splitLines(value string) []string {
	result := []string{}
	for _, line := range strings.Split(value, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}

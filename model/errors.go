package model

import (
	"errors"
	"slices"
	"strings"
)

var ErrMissingCatalogKey = errors.New("catalog api key is not configured")
var ErrMovieNotFound = errors.New("movie not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidEmail = errors.New("invalid email address")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrUpstreamUnavailable = errors.New("movie catalog unavailable")
var ErrCatalogNotFound = errors.New("movie not found in catalog")

// ConfigurationError is fatal and only surfaces at startup.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

func GetErrorCode(err error) int {
	code400 := []error{
		ErrInvalidRating,
		ErrInvalidEmail,
	}
	code401 := []error{
		ErrInvalidCredentials,
	}
	code404 := []error{
		ErrMovieNotFound,
		ErrUserNotFound,
	}
	code409 := []error{
		ErrDuplicateEmail,
	}
	code502 := []error{
		ErrUpstreamUnavailable,
	}

	contains := func(list []error) bool {
		return slices.ContainsFunc(list, func(e error) bool { return errors.Is(err, e) })
	}

	if contains(code400) {
		return 400
	}
	if contains(code401) {
		return 401
	}
	if contains(code404) {
		return 404
	}
	if contains(code409) {
		return 409
	}
	if contains(code502) {
		return 502
	}

	return 0
}

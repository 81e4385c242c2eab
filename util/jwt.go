package util

import (
	"errors"
	"fmt"
	"movie_watchlist/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	UserId  string               `json:"userId,omitempty"`
	Email   string               `json:"email,omitempty"`
	Theme   string               `json:"theme,omitempty"`
	Flashes []model.FlashMessage `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

var ErrEmptySecret = errors.New("session secret is empty")

func SignSessionToken(claims SessionClaims, secret string, maxAge time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(maxAge))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func VerifySessionToken(tokenString string, secret string) (*jwt.Token, *SessionClaims, error) {
	if secret == "" {
		return nil, nil, ErrEmptySecret
	}
	claims := SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, nil, err
	}

	return token, &claims, nil
}
